package usecase

import (
	"context"

	"kairo-server/internal/domain/booking"
	"kairo-server/internal/infra"
)

type SettingsRepository interface {
	Get(ctx context.Context) (*booking.Settings, error)
	Create(ctx context.Context, s *booking.Settings) error
	Update(ctx context.Context, s *booking.Settings) error
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type SettingsUseCase interface {
	Get(ctx context.Context) (*booking.Settings, error)
	Update(ctx context.Context, patch booking.SettingsPatch) (*booking.Settings, error)
}

type settingsUseCaseImpl struct {
	repo SettingsRepository
}

func NewSettingsUseCase(repo SettingsRepository) SettingsUseCase {
	return &settingsUseCaseImpl{repo: repo}
}

// Get returns the singleton row, creating it with defaults on first read.
func (u *settingsUseCaseImpl) Get(ctx context.Context) (*booking.Settings, error) {
	var result *booking.Settings
	err := u.repo.WithTx(ctx, func(ctx context.Context) error {
		s, err := u.repo.Get(ctx)
		if err == nil {
			result = s
			return nil
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return err
		}

		s = booking.DefaultSettings()
		if err := u.repo.Create(ctx, s); err != nil {
			return err
		}
		result = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Update merges only the provided fields into the current row; omitted
// fields keep their prior values.
func (u *settingsUseCaseImpl) Update(ctx context.Context, patch booking.SettingsPatch) (*booking.Settings, error) {
	var result *booking.Settings
	err := u.repo.WithTx(ctx, func(ctx context.Context) error {
		s, err := u.repo.Get(ctx)
		if err != nil {
			if !infra.IsKind(err, infra.KindNotFound) {
				return err
			}
			s = booking.DefaultSettings()
			if err := u.repo.Create(ctx, s); err != nil {
				return err
			}
		}

		s.Apply(patch)
		if err := u.repo.Update(ctx, s); err != nil {
			return err
		}
		result = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
