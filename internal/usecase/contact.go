package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"kairo-server/internal/infra/mail"
	"kairo-server/internal/infra/postgres"
	"kairo-server/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidContact = errs.New("invalid contact submission")

var contactEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Subject string
	Message string
}

type ContactRepository interface {
	Create(ctx context.Context, m *postgres.ContactMessage) error
}

type ContactUseCase interface {
	Submit(ctx context.Context, in ContactInput) (*postgres.ContactMessage, error)
}

type contactUseCaseImpl struct {
	repo       ContactRepository
	mailer     mail.Mailer
	adminEmail string
}

func NewContactUseCase(repo ContactRepository, mailer mail.Mailer, adminEmail string) ContactUseCase {
	return &contactUseCaseImpl{
		repo:       repo,
		mailer:     mailer,
		adminEmail: adminEmail,
	}
}

// Submit persists the message, then notifies the agency inbox. The
// notification is fire-and-forget: a mail failure never fails the request.
func (u *contactUseCaseImpl) Submit(ctx context.Context, in ContactInput) (*postgres.ContactMessage, error) {
	name := strings.TrimSpace(in.Name)
	message := strings.TrimSpace(in.Message)
	if name == "" || message == "" || !contactEmailRegex.MatchString(strings.TrimSpace(in.Email)) {
		return nil, ErrInvalidContact
	}

	m := &postgres.ContactMessage{
		ID:      uuid.New(),
		Name:    name,
		Email:   strings.TrimSpace(in.Email),
		Phone:   strings.TrimSpace(in.Phone),
		Company: strings.TrimSpace(in.Company),
		Subject: strings.TrimSpace(in.Subject),
		Message: message,
	}

	if err := u.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	go func() {
		msg := mail.Message{
			To:      u.adminEmail,
			ReplyTo: m.Email,
			Subject: fmt.Sprintf("Nouveau message de %s", m.Name),
			Body:    notificationBody(m),
		}
		if err := u.mailer.Send(context.Background(), msg); err != nil {
			slog.Warn("failed to send contact notification", "message_id", m.ID, "error", err.Error())
		}
	}()

	return m, nil
}

func notificationBody(m *postgres.ContactMessage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Nom : %s\nEmail : %s\n", m.Name, m.Email)
	if m.Phone != "" {
		fmt.Fprintf(&b, "Téléphone : %s\n", m.Phone)
	}
	if m.Company != "" {
		fmt.Fprintf(&b, "Société : %s\n", m.Company)
	}
	if m.Subject != "" {
		fmt.Fprintf(&b, "Sujet : %s\n", m.Subject)
	}
	fmt.Fprintf(&b, "\n%s\n", m.Message)
	return b.String()
}
