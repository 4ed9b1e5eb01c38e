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

type ExclusionRepository struct {
	pool *pgxpool.Pool
}

func NewExclusionRepository(pool *pgxpool.Pool) *ExclusionRepository {
	return &ExclusionRepository{pool: pool}
}

func (r *ExclusionRepository) Create(ctx context.Context, e *booking.Exclusion) error {
	const stmt = `
INSERT INTO exclusions (id, start_date, end_date, reason)
VALUES ($1, $2, $3, $4)`

	_, err := r.exec(ctx, stmt, e.ID, e.StartDate, e.EndDate, e.Reason)
	if err != nil {
		return infra.WrapRepoErr("failed to create exclusion", err)
	}
	return nil
}

func (r *ExclusionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const stmt = `DELETE FROM exclusions WHERE id = $1`

	tag, err := r.exec(ctx, stmt, id)
	if err != nil {
		if isInvalidUUID(err) {
			return infra.WrapRepoErr("exclusion not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to delete exclusion", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("exclusion not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

// FindOverlapping returns blackout ranges intersecting [start, end].
func (r *ExclusionRepository) FindOverlapping(ctx context.Context, start, end time.Time) ([]*booking.Exclusion, error) {
	const query = `
SELECT id, start_date, end_date, reason, created_at
FROM exclusions
WHERE start_date <= $2 AND end_date >= $1
ORDER BY start_date`

	rows, err := r.query(ctx, query, start, end)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find exclusions", err)
	}
	defer rows.Close()

	result := make([]*booking.Exclusion, 0)
	for rows.Next() {
		var e booking.Exclusion
		if err := rows.Scan(&e.ID, &e.StartDate, &e.EndDate, &e.Reason, &e.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan exclusion", err)
		}
		result = append(result, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate exclusions", err)
	}
	return result, nil
}

func (r *ExclusionRepository) exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Exec(ctx, sql, args...)
	}
	return r.pool.Exec(ctx, sql, args...)
}

func (r *ExclusionRepository) query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Query(ctx, sql, args...)
	}
	return r.pool.Query(ctx, sql, args...)
}
