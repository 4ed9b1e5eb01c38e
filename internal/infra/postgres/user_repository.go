package postgres

import (
	"context"
	"time"

	"kairo-server/internal/domain/user"
	"kairo-server/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, email, name, password_hash, role, created_at, updated_at`

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	const stmt = `
INSERT INTO users (id, email, name, password_hash, role)
VALUES ($1, $2, $3, $4, $5)`

	_, err := r.exec(ctx, stmt, u.ID(), u.Email(), u.Name(), u.PasswordHash(), u.Role().String())
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("email already in use", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(r.queryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows || isInvalidUUID(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*user.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users ORDER BY created_at`

	rows, err := r.query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	result := make([]*user.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan user", err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate users", err)
	}
	return result, nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	const stmt = `
UPDATE users
SET email = $2, name = $3, password_hash = $4, role = $5, updated_at = NOW()
WHERE id = $1`

	tag, err := r.exec(ctx, stmt, u.ID(), u.Email(), u.Name(), u.PasswordHash(), u.Role().String())
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("email already in use", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const stmt = `DELETE FROM users WHERE id = $1`

	tag, err := r.exec(ctx, stmt, id)
	if err != nil {
		if isInvalidUUID(err) {
			return infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`

	var exists bool
	if err := r.queryRow(ctx, query, id).Scan(&exists); err != nil {
		if isInvalidUUID(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to check user existence", err)
	}
	return exists, nil
}

func scanUser(row pgx.Row) (*user.User, error) {
	var (
		id           uuid.UUID
		email        string
		name         string
		passwordHash string
		role         string
		createdAt    time.Time
		updatedAt    time.Time
	)
	if err := row.Scan(&id, &email, &name, &passwordHash, &role, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return user.ReconstructUser(id, email, name, passwordHash, user.Role(role), createdAt, updatedAt), nil
}

func (r *UserRepository) exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Exec(ctx, sql, args...)
	}
	return r.pool.Exec(ctx, sql, args...)
}

func (r *UserRepository) query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Query(ctx, sql, args...)
	}
	return r.pool.Query(ctx, sql, args...)
}

func (r *UserRepository) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRow(ctx, sql, args...)
	}
	return r.pool.QueryRow(ctx, sql, args...)
}
