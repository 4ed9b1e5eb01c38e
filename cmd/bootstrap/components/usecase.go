package components

import (
	"kairo-server/internal/infra/mail"
	"kairo-server/internal/pkg/clock"
	"kairo-server/internal/pkg/config"
	"kairo-server/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewAuthUseCase,
		usecase.NewBookingUseCase,
		usecase.NewReservationUseCase,
		usecase.NewSettingsUseCase,
		usecase.NewUserUseCase,
		usecase.NewContentUseCase,
		func(repo usecase.ContactRepository, mailer mail.Mailer, cfg config.Config) usecase.ContactUseCase {
			return usecase.NewContactUseCase(repo, mailer, cfg.Admin.Email)
		},
	),
)
