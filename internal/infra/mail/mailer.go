package mail

import (
	"context"
	"log/slog"

	"gopkg.in/gomail.v2"

	"kairo-server/internal/pkg/config"
	"kairo-server/internal/pkg/errs"
)

// Message is a plain-text outbound email.
type Message struct {
	To      string
	ReplyTo string
	Subject string
	Body    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPMailer delivers through the configured SMTP relay. Sends are
// synchronous; callers decide whether a failure is fatal.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

func (m *SMTPMailer) Send(_ context.Context, msg Message) error {
	mail := gomail.NewMessage()
	mail.SetHeader("From", m.from)
	mail.SetHeader("To", msg.To)
	if msg.ReplyTo != "" {
		mail.SetHeader("Reply-To", msg.ReplyTo)
	}
	mail.SetHeader("Subject", msg.Subject)
	mail.SetBody("text/plain", msg.Body)

	if err := m.dialer.DialAndSend(mail); err != nil {
		return errs.Wrap(err, "failed to send mail")
	}
	return nil
}

// NoopMailer logs instead of sending; used when SMTP is not configured and
// in tests.
type NoopMailer struct{}

func NewNoopMailer() *NoopMailer {
	return &NoopMailer{}
}

func (m *NoopMailer) Send(_ context.Context, msg Message) error {
	slog.Info("mail delivery skipped (no SMTP configured)", "to", msg.To, "subject", msg.Subject)
	return nil
}
