//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"kairo-server/internal/domain/booking"
	"kairo-server/internal/infra"
	"kairo-server/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSettingsRepo struct {
	stored  *booking.Settings
	creates int
	updates int
	getErr  error
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*booking.Settings, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.stored == nil {
		return nil, infra.WrapRepoErr("settings not found", nil, infra.KindNotFound)
	}
	copied := *f.stored
	return &copied, nil
}

func (f *fakeSettingsRepo) Create(_ context.Context, s *booking.Settings) error {
	f.creates++
	copied := *s
	f.stored = &copied
	return nil
}

func (f *fakeSettingsRepo) Update(_ context.Context, s *booking.Settings) error {
	f.updates++
	copied := *s
	f.stored = &copied
	return nil
}

func (f *fakeSettingsRepo) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestSettingsGet(t *testing.T) {
	t.Run("first read creates the defaults", func(t *testing.T) {
		repo := &fakeSettingsRepo{}
		uc := usecase.NewSettingsUseCase(repo)

		s, err := uc.Get(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 1, repo.creates)
		assert.Equal(t, 60, s.DefaultSessionDuration)
		assert.Equal(t, 24, s.ReminderHoursBeforeEvent)
	})

	t.Run("subsequent reads reuse the row", func(t *testing.T) {
		repo := &fakeSettingsRepo{}
		uc := usecase.NewSettingsUseCase(repo)

		first, err := uc.Get(context.Background())
		require.NoError(t, err)
		second, err := uc.Get(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 1, repo.creates)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("db failures surface", func(t *testing.T) {
		repo := &fakeSettingsRepo{getErr: infra.WrapRepoErr("boom", assert.AnError)}
		uc := usecase.NewSettingsUseCase(repo)

		_, err := uc.Get(context.Background())
		assert.Error(t, err)
	})
}

func TestSettingsUpdate(t *testing.T) {
	t.Run("merges only provided fields", func(t *testing.T) {
		repo := &fakeSettingsRepo{}
		uc := usecase.NewSettingsUseCase(repo)

		_, err := uc.Get(context.Background())
		require.NoError(t, err)

		notice := 72
		s, err := uc.Update(context.Background(), booking.SettingsPatch{MinNoticeTime: &notice})
		require.NoError(t, err)

		assert.Equal(t, 72, s.MinNoticeTime)
		assert.Equal(t, 60, s.MaxAdvanceBookingDays)
		assert.Equal(t, 1, repo.updates)
	})

	t.Run("creates the row when updating before any read", func(t *testing.T) {
		repo := &fakeSettingsRepo{}
		uc := usecase.NewSettingsUseCase(repo)

		audit := 45
		s, err := uc.Update(context.Background(), booking.SettingsPatch{AuditSessionDuration: &audit})
		require.NoError(t, err)

		assert.Equal(t, 1, repo.creates)
		assert.Equal(t, 45, s.AuditSessionDuration)
		assert.Equal(t, 60, s.ConsultingSessionDuration)
	})
}
