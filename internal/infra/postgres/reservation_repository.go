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

type ReservationRepository struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

const reservationColumns = `id, client_name, client_email, service_type, start_time, end_time, status, cancellation_token, notes, reminder_sent, created_at, updated_at`

func (r *ReservationRepository) Create(ctx context.Context, res *booking.Reservation) error {
	const stmt = `
INSERT INTO reservations (id, client_name, client_email, service_type, start_time, end_time, status, cancellation_token, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.exec(ctx, stmt,
		res.ID(),
		res.ClientName(),
		res.ClientEmail(),
		res.ServiceType(),
		res.StartTime(),
		res.EndTime(),
		res.Status().String(),
		res.CancellationToken(),
		res.Notes(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Reservation, error) {
	const query = `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	res, err := r.scanOne(r.queryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows || isInvalidUUID(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}
	return res, nil
}

// FindInRange returns non-cancelled reservations starting within [start, end].
func (r *ReservationRepository) FindInRange(ctx context.Context, start, end time.Time) ([]*booking.Reservation, error) {
	const query = `
SELECT ` + reservationColumns + `
FROM reservations
WHERE start_time >= $1 AND start_time <= $2 AND status <> 'CANCELLED'
ORDER BY start_time`

	rows, err := r.query(ctx, query, start, end)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations", err)
	}
	defer rows.Close()

	return r.scanAll(rows)
}

// FindDueReminders returns confirmed, unreminded reservations starting
// within the next `window`.
func (r *ReservationRepository) FindDueReminders(ctx context.Context, now time.Time, window time.Duration) ([]*booking.Reservation, error) {
	const query = `
SELECT ` + reservationColumns + `
FROM reservations
WHERE status = 'CONFIRMED' AND NOT reminder_sent AND start_time > $1 AND start_time <= $2
ORDER BY start_time`

	rows, err := r.query(ctx, query, now, now.Add(window))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find due reminders", err)
	}
	defer rows.Close()

	return r.scanAll(rows)
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	const stmt = `UPDATE reservations SET status = $2, updated_at = NOW() WHERE id = $1`

	tag, err := r.exec(ctx, stmt, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) MarkReminderSent(ctx context.Context, id uuid.UUID) error {
	const stmt = `UPDATE reservations SET reminder_sent = TRUE, updated_at = NOW() WHERE id = $1`

	_, err := r.exec(ctx, stmt, id)
	if err != nil {
		return infra.WrapRepoErr("failed to mark reminder sent", err)
	}
	return nil
}

func (r *ReservationRepository) scanOne(row pgx.Row) (*booking.Reservation, error) {
	var (
		id                uuid.UUID
		clientName        string
		clientEmail       string
		serviceType       string
		startTime         time.Time
		endTime           time.Time
		status            string
		cancellationToken string
		notes             string
		reminderSent      bool
		createdAt         time.Time
		updatedAt         time.Time
	)
	err := row.Scan(&id, &clientName, &clientEmail, &serviceType, &startTime, &endTime, &status, &cancellationToken, &notes, &reminderSent, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructReservation(
		id, clientName, clientEmail, serviceType,
		startTime, endTime,
		booking.Status(status),
		cancellationToken, notes, reminderSent,
		createdAt, updatedAt,
	), nil
}

func (r *ReservationRepository) scanAll(rows pgx.Rows) ([]*booking.Reservation, error) {
	result := make([]*booking.Reservation, 0)
	for rows.Next() {
		res, err := r.scanOne(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		result = append(result, res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return result, nil
}

func (r *ReservationRepository) exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Exec(ctx, sql, args...)
	}
	return r.pool.Exec(ctx, sql, args...)
}

func (r *ReservationRepository) query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Query(ctx, sql, args...)
	}
	return r.pool.Query(ctx, sql, args...)
}

func (r *ReservationRepository) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRow(ctx, sql, args...)
	}
	return r.pool.QueryRow(ctx, sql, args...)
}
