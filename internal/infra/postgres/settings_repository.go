package postgres

import (
	"context"

	"kairo-server/internal/domain/booking"
	"kairo-server/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SettingsRepository struct {
	pool *pgxpool.Pool
}

func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}

const settingsColumns = `id, min_notice_time, max_advance_booking_days, default_session_duration, audit_session_duration, consulting_session_duration, development_session_duration, training_session_duration, reminder_hours_before_event, updated_at`

// WithTx runs fn inside a transaction so get-or-create stays atomic.
func (r *SettingsRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.pool, fn)
}

// Get returns the singleton row, KindNotFound when none exists yet.
func (r *SettingsRepository) Get(ctx context.Context) (*booking.Settings, error) {
	const query = `SELECT ` + settingsColumns + ` FROM reservation_settings LIMIT 1`

	var s booking.Settings
	err := r.queryRow(ctx, query).Scan(
		&s.ID,
		&s.MinNoticeTime,
		&s.MaxAdvanceBookingDays,
		&s.DefaultSessionDuration,
		&s.AuditSessionDuration,
		&s.ConsultingSessionDuration,
		&s.DevelopmentSessionDuration,
		&s.TrainingSessionDuration,
		&s.ReminderHoursBeforeEvent,
		&s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("settings not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get settings", err)
	}
	return &s, nil
}

func (r *SettingsRepository) Create(ctx context.Context, s *booking.Settings) error {
	const stmt = `
INSERT INTO reservation_settings (id, min_notice_time, max_advance_booking_days, default_session_duration, audit_session_duration, consulting_session_duration, development_session_duration, training_session_duration, reminder_hours_before_event)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.exec(ctx, stmt,
		s.ID,
		s.MinNoticeTime,
		s.MaxAdvanceBookingDays,
		s.DefaultSessionDuration,
		s.AuditSessionDuration,
		s.ConsultingSessionDuration,
		s.DevelopmentSessionDuration,
		s.TrainingSessionDuration,
		s.ReminderHoursBeforeEvent,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create settings", err)
	}
	return nil
}

func (r *SettingsRepository) Update(ctx context.Context, s *booking.Settings) error {
	const stmt = `
UPDATE reservation_settings
SET min_notice_time = $2,
    max_advance_booking_days = $3,
    default_session_duration = $4,
    audit_session_duration = $5,
    consulting_session_duration = $6,
    development_session_duration = $7,
    training_session_duration = $8,
    reminder_hours_before_event = $9,
    updated_at = NOW()
WHERE id = $1`

	tag, err := r.exec(ctx, stmt,
		s.ID,
		s.MinNoticeTime,
		s.MaxAdvanceBookingDays,
		s.DefaultSessionDuration,
		s.AuditSessionDuration,
		s.ConsultingSessionDuration,
		s.DevelopmentSessionDuration,
		s.TrainingSessionDuration,
		s.ReminderHoursBeforeEvent,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update settings", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("settings not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *SettingsRepository) exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Exec(ctx, sql, args...)
	}
	return r.pool.Exec(ctx, sql, args...)
}

func (r *SettingsRepository) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRow(ctx, sql, args...)
	}
	return r.pool.QueryRow(ctx, sql, args...)
}
