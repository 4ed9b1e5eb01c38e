package components

import (
	"kairo-server/internal/infra/postgres"
	"kairo-server/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			postgres.NewAvailabilityRepository,
			fx.As(new(usecase.AvailabilityRepository)),
		),
		fx.Annotate(
			postgres.NewExclusionRepository,
			fx.As(new(usecase.ExclusionRepository)),
		),
		fx.Annotate(
			postgres.NewSettingsRepository,
			fx.As(new(usecase.SettingsRepository)),
		),
		fx.Annotate(
			postgres.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			postgres.NewContactRepository,
			fx.As(new(usecase.ContactRepository)),
		),
		// The reminder worker needs the concrete type, so the
		// interfaces are derived from it instead of annotated away.
		postgres.NewReservationRepository,
		func(r *postgres.ReservationRepository) usecase.ReservationRepository { return r },
		func(r *postgres.ReservationRepository) usecase.ReservationReader { return r },
		func(r usecase.UserRepository) usecase.UserChecker { return r },
	),
)
