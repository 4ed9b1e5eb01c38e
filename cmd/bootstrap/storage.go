package bootstrap

import (
	"kairo-server/internal/infra/blob"
	"kairo-server/internal/infra/configstore"
	"kairo-server/internal/pkg/config"

	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewContentStore,
		NewBlobStore,
	),
)

func NewContentStore(cfg config.Config) (*configstore.Store, error) {
	backend, err := configstore.NewFileBackend(cfg.Content.Dir)
	if err != nil {
		return nil, err
	}
	return configstore.NewStore(backend), nil
}

func NewBlobStore(cfg config.Config) (*blob.LocalStore, error) {
	return blob.NewLocalStore(cfg.Upload)
}
