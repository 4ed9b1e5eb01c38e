package postgres

import (
	"context"
	"time"

	"kairo-server/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ContactMessage is the persisted form of a contact-funnel submission.
type ContactMessage struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Company   string    `json:"company,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type ContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{pool: pool}
}

func (r *ContactRepository) Create(ctx context.Context, m *ContactMessage) error {
	const stmt = `
INSERT INTO contact_messages (id, name, email, phone, company, subject, message)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, stmt, m.ID, m.Name, m.Email, m.Phone, m.Company, m.Subject, m.Message)
	if err != nil {
		return infra.WrapRepoErr("failed to create contact message", err)
	}
	return nil
}

func (r *ContactRepository) List(ctx context.Context, limit int) ([]*ContactMessage, error) {
	const query = `
SELECT id, name, email, phone, company, subject, message, created_at
FROM contact_messages
ORDER BY created_at DESC
LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list contact messages", err)
	}
	defer rows.Close()

	result := make([]*ContactMessage, 0)
	for rows.Next() {
		var m ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Company, &m.Subject, &m.Message, &m.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan contact message", err)
		}
		result = append(result, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate contact messages", err)
	}
	return result, nil
}
