package bootstrap

import (
	"kairo-server/internal/pkg/config"
	"kairo-server/internal/pkg/session"

	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		NewSessionService,
	),
)

func NewSessionService(cfg config.Config) *session.Service {
	return session.NewService(cfg.Session.Secret, cfg.Session.Duration)
}
