package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"kairo-server/internal/domain/booking"
	"kairo-server/internal/infra/mail"
	"kairo-server/internal/pkg/clock"
	"kairo-server/internal/usecase"
)

// ReminderRepository is the slice of reservation persistence the
// reminder scan needs.
type ReminderRepository interface {
	FindDueReminders(ctx context.Context, now time.Time, window time.Duration) ([]*booking.Reservation, error)
	MarkReminderSent(ctx context.Context, id uuid.UUID) error
}

// ReminderWorker periodically mails clients whose confirmed session is
// about to start. Failures are logged and retried on the next tick;
// they never stop the scan.
type ReminderWorker struct {
	repo     ReminderRepository
	settings usecase.SettingsUseCase
	mailer   mail.Mailer
	clock    clock.Clock
	cron     *cron.Cron
}

func NewReminderWorker(repo ReminderRepository, settings usecase.SettingsUseCase, mailer mail.Mailer, clk clock.Clock) *ReminderWorker {
	return &ReminderWorker{
		repo:     repo,
		settings: settings,
		mailer:   mailer,
		clock:    clk,
		cron:     cron.New(),
	}
}

func (w *ReminderWorker) Start() error {
	if _, err := w.cron.AddFunc("*/15 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		w.Scan(ctx)
	}); err != nil {
		return err
	}
	w.cron.Start()
	return nil
}

func (w *ReminderWorker) Stop() {
	ctx := w.cron.Stop()
	<-ctx.Done()
}

// Scan sends one reminder per due reservation and marks it sent only
// after the mail went out, so a failed send is retried next tick.
func (w *ReminderWorker) Scan(ctx context.Context) {
	settings, err := w.settings.Get(ctx)
	if err != nil {
		slog.Error("reminder scan: failed to load settings", "error", err.Error())
		return
	}

	now := w.clock.Now()
	window := time.Duration(settings.ReminderHoursBeforeEvent) * time.Hour

	due, err := w.repo.FindDueReminders(ctx, now, window)
	if err != nil {
		slog.Error("reminder scan: failed to list reservations", "error", err.Error())
		return
	}

	for _, res := range due {
		if err := w.mailer.Send(ctx, reminderMail(res)); err != nil {
			slog.Warn("reminder scan: failed to send reminder",
				"reservation_id", res.ID(), "error", err.Error())
			continue
		}
		if err := w.repo.MarkReminderSent(ctx, res.ID()); err != nil {
			slog.Warn("reminder scan: failed to mark reminder sent",
				"reservation_id", res.ID(), "error", err.Error())
		}
	}
	if len(due) > 0 {
		slog.Info("reminder scan complete", "due", len(due))
	}
}

func reminderMail(res *booking.Reservation) mail.Message {
	start := res.StartTime()
	body := fmt.Sprintf(
		"Bonjour %s,\n\n"+
			"Petit rappel : votre rendez-vous %s est prévu le %s à %s.\n\n"+
			"À très bientôt,\nL'équipe Kairo Digital",
		res.ClientName(),
		res.ServiceType(),
		start.Format("02/01/2006"),
		start.Format("15h04"),
	)
	return mail.Message{
		To:      res.ClientEmail(),
		Subject: "Rappel de votre rendez-vous - Kairo Digital",
		Body:    body,
	}
}
