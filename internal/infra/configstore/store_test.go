//go:build unit

package configstore_test

import (
	"context"
	"testing"

	"kairo-server/internal/infra/configstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreReplace(t *testing.T) {
	store := configstore.NewStore(configstore.NewMemoryBackend())
	ctx := context.Background()

	require.NoError(t, store.Replace(ctx, "accueil", map[string]any{
		"hero": map[string]any{"title": "Bienvenue"},
	}))

	doc, err := store.Get(ctx, "accueil")
	require.NoError(t, err)
	hero, ok := doc["hero"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Bienvenue", hero["title"])

	// Replace drops fields that are not resubmitted.
	require.NoError(t, store.Replace(ctx, "accueil", map[string]any{"footer": "ok"}))
	doc, err = store.Get(ctx, "accueil")
	require.NoError(t, err)
	assert.NotContains(t, doc, "hero")
}

func TestStoreGetMissing(t *testing.T) {
	store := configstore.NewStore(configstore.NewMemoryBackend())

	_, err := store.Get(context.Background(), "inconnu")
	assert.ErrorIs(t, err, configstore.ErrNotFound)
}

func TestStoreMerge(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the document when absent", func(t *testing.T) {
		store := configstore.NewStore(configstore.NewMemoryBackend())

		doc, err := store.Merge(ctx, "site_settings", map[string]any{"siteName": "Kairo Digital"})
		require.NoError(t, err)
		assert.Equal(t, "Kairo Digital", doc["siteName"])
	})

	t.Run("nested maps merge instead of replacing", func(t *testing.T) {
		store := configstore.NewStore(configstore.NewMemoryBackend())

		_, err := store.Merge(ctx, "site_settings", map[string]any{
			"contact": map[string]any{
				"email": "contact@kairo-digital.fr",
				"phone": "01 23 45 67 89",
			},
		})
		require.NoError(t, err)

		doc, err := store.Merge(ctx, "site_settings", map[string]any{
			"contact": map[string]any{"phone": "09 87 65 43 21"},
		})
		require.NoError(t, err)

		contact, ok := doc["contact"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "09 87 65 43 21", contact["phone"])
		assert.Equal(t, "contact@kairo-digital.fr", contact["email"])
	})

	t.Run("top-level fields survive unrelated patches", func(t *testing.T) {
		store := configstore.NewStore(configstore.NewMemoryBackend())

		_, err := store.Merge(ctx, "site_settings", map[string]any{"siteName": "Kairo Digital"})
		require.NoError(t, err)

		doc, err := store.Merge(ctx, "site_settings", map[string]any{"tagline": "Agence web"})
		require.NoError(t, err)

		assert.Equal(t, "Kairo Digital", doc["siteName"])
		assert.Equal(t, "Agence web", doc["tagline"])
	})
}

func TestFileBackend(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip through disk", func(t *testing.T) {
		backend, err := configstore.NewFileBackend(t.TempDir())
		require.NoError(t, err)

		store := configstore.NewStore(backend)
		require.NoError(t, store.Replace(ctx, "services", map[string]any{"count": float64(4)}))

		doc, err := store.Get(ctx, "services")
		require.NoError(t, err)
		assert.Equal(t, float64(4), doc["count"])
	})

	t.Run("missing file maps to not found", func(t *testing.T) {
		backend, err := configstore.NewFileBackend(t.TempDir())
		require.NoError(t, err)

		_, err = backend.Read(ctx, "absent")
		assert.ErrorIs(t, err, configstore.ErrNotFound)
	})

	t.Run("keys cannot escape the directory", func(t *testing.T) {
		backend, err := configstore.NewFileBackend(t.TempDir())
		require.NoError(t, err)

		err = backend.Write(ctx, "../evil", map[string]any{})
		assert.Error(t, err)
	})
}
