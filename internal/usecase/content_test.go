//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"kairo-server/internal/infra/configstore"
	"kairo-server/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContentUseCase() usecase.ContentUseCase {
	return usecase.NewContentUseCase(configstore.NewStore(configstore.NewMemoryBackend()))
}

func TestContentPages(t *testing.T) {
	ctx := context.Background()

	t.Run("unedited page returns an empty document", func(t *testing.T) {
		uc := newContentUseCase()

		doc, err := uc.GetPage(ctx, "accueil")
		require.NoError(t, err)
		assert.Empty(t, doc)
	})

	t.Run("replace then read back", func(t *testing.T) {
		uc := newContentUseCase()

		require.NoError(t, uc.ReplacePage(ctx, "services", map[string]any{"title": "Nos services"}))

		doc, err := uc.GetPage(ctx, "services")
		require.NoError(t, err)
		assert.Equal(t, "Nos services", doc["title"])
	})

	t.Run("pages are independent", func(t *testing.T) {
		uc := newContentUseCase()

		require.NoError(t, uc.ReplacePage(ctx, "accueil", map[string]any{"hero": "Bienvenue"}))

		doc, err := uc.GetPage(ctx, "services")
		require.NoError(t, err)
		assert.Empty(t, doc)
	})
}

func TestSiteSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("empty before first write", func(t *testing.T) {
		uc := newContentUseCase()

		doc, err := uc.GetSiteSettings(ctx)
		require.NoError(t, err)
		assert.Empty(t, doc)
	})

	t.Run("merge accumulates nested fields", func(t *testing.T) {
		uc := newContentUseCase()

		_, err := uc.MergeSiteSettings(ctx, map[string]any{
			"seo": map[string]any{"title": "Kairo Digital", "description": "Agence web"},
		})
		require.NoError(t, err)

		doc, err := uc.MergeSiteSettings(ctx, map[string]any{
			"seo": map[string]any{"title": "Kairo Digital | Agence web"},
		})
		require.NoError(t, err)

		seo, ok := doc["seo"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Kairo Digital | Agence web", seo["title"])
		assert.Equal(t, "Agence web", seo["description"])

		stored, err := uc.GetSiteSettings(ctx)
		require.NoError(t, err)
		assert.Contains(t, stored, "seo")
	})
}
