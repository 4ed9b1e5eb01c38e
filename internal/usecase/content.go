package usecase

import (
	"context"
	"errors"

	"kairo-server/internal/infra/configstore"
)

const siteSettingsKey = "site_settings"

type ContentUseCase interface {
	GetPage(ctx context.Context, page string) (map[string]any, error)
	ReplacePage(ctx context.Context, page string, doc map[string]any) error
	GetSiteSettings(ctx context.Context) (map[string]any, error)
	MergeSiteSettings(ctx context.Context, patch map[string]any) (map[string]any, error)
}

type contentUseCaseImpl struct {
	store *configstore.Store
}

func NewContentUseCase(store *configstore.Store) ContentUseCase {
	return &contentUseCaseImpl{store: store}
}

func (u *contentUseCaseImpl) GetPage(ctx context.Context, page string) (map[string]any, error) {
	doc, err := u.store.Get(ctx, page)
	if err != nil {
		if errors.Is(err, configstore.ErrNotFound) {
			// Unedited pages render from their built-in defaults.
			return map[string]any{}, nil
		}
		return nil, err
	}
	return doc, nil
}

func (u *contentUseCaseImpl) ReplacePage(ctx context.Context, page string, doc map[string]any) error {
	return u.store.Replace(ctx, page, doc)
}

func (u *contentUseCaseImpl) GetSiteSettings(ctx context.Context) (map[string]any, error) {
	doc, err := u.store.Get(ctx, siteSettingsKey)
	if err != nil {
		if errors.Is(err, configstore.ErrNotFound) {
			return map[string]any{}, nil
		}
		return nil, err
	}
	return doc, nil
}

func (u *contentUseCaseImpl) MergeSiteSettings(ctx context.Context, patch map[string]any) (map[string]any, error) {
	return u.store.Merge(ctx, siteSettingsKey, patch)
}
