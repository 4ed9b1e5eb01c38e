package postgres

import (
	"context"
	"time"

	"kairo-server/internal/domain/booking"
	"kairo-server/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AvailabilityRepository struct {
	pool *pgxpool.Pool
}

func NewAvailabilityRepository(pool *pgxpool.Pool) *AvailabilityRepository {
	return &AvailabilityRepository{pool: pool}
}

func (r *AvailabilityRepository) Create(ctx context.Context, a *booking.Availability) error {
	const stmt = `
INSERT INTO availabilities (id, user_id, day_of_week, date, start_time, end_time, is_recurring)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.exec(ctx, stmt,
		a.ID,
		a.UserID,
		a.DayOfWeek,
		a.Date,
		a.StartTime,
		a.EndTime,
		a.IsRecurring,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create availability", err)
	}
	return nil
}

func (r *AvailabilityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const stmt = `DELETE FROM availabilities WHERE id = $1`

	tag, err := r.exec(ctx, stmt, id)
	if err != nil {
		if isInvalidUUID(err) {
			return infra.WrapRepoErr("availability not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to delete availability", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("availability not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *AvailabilityRepository) FindRecurring(ctx context.Context) ([]*booking.Availability, error) {
	const query = `
SELECT id, user_id, day_of_week, date, start_time, end_time, is_recurring, created_at
FROM availabilities
WHERE is_recurring
ORDER BY day_of_week, start_time`

	rows, err := r.query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find recurring availabilities", err)
	}
	defer rows.Close()

	return scanAvailabilities(rows)
}

func (r *AvailabilityRepository) FindSpecificInRange(ctx context.Context, start, end time.Time) ([]*booking.Availability, error) {
	const query = `
SELECT id, user_id, day_of_week, date, start_time, end_time, is_recurring, created_at
FROM availabilities
WHERE NOT is_recurring AND date >= $1 AND date <= $2
ORDER BY date, start_time`

	rows, err := r.query(ctx, query, start, end)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find specific availabilities", err)
	}
	defer rows.Close()

	return scanAvailabilities(rows)
}

func scanAvailabilities(rows pgx.Rows) ([]*booking.Availability, error) {
	result := make([]*booking.Availability, 0)
	for rows.Next() {
		var a booking.Availability
		if err := rows.Scan(&a.ID, &a.UserID, &a.DayOfWeek, &a.Date, &a.StartTime, &a.EndTime, &a.IsRecurring, &a.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan availability", err)
		}
		result = append(result, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate availabilities", err)
	}
	return result, nil
}

func (r *AvailabilityRepository) exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Exec(ctx, sql, args...)
	}
	return r.pool.Exec(ctx, sql, args...)
}

func (r *AvailabilityRepository) query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Query(ctx, sql, args...)
	}
	return r.pool.Query(ctx, sql, args...)
}
