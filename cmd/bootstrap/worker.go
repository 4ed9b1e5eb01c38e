package bootstrap

import (
	"context"

	"kairo-server/internal/infra/mail"
	"kairo-server/internal/infra/postgres"
	"kairo-server/internal/pkg/clock"
	"kairo-server/internal/usecase"
	"kairo-server/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewReminderWorker,
	),
	fx.Invoke(startReminderWorker),
)

func NewReminderWorker(
	repo *postgres.ReservationRepository,
	settings usecase.SettingsUseCase,
	mailer mail.Mailer,
	clk clock.Clock,
) *worker.ReminderWorker {
	return worker.NewReminderWorker(repo, settings, mailer, clk)
}

func startReminderWorker(lc fx.Lifecycle, w *worker.ReminderWorker) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return w.Start()
		},
		OnStop: func(_ context.Context) error {
			w.Stop()
			return nil
		},
	})
}
