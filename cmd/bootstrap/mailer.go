package bootstrap

import (
	"kairo-server/internal/infra/mail"
	"kairo-server/internal/pkg/config"

	"go.uber.org/fx"
)

var MailerModule = fx.Module("mailer",
	fx.Provide(
		NewMailer,
	),
)

// NewMailer falls back to a logging no-op when SMTP is not configured,
// so local development works without a mail server.
func NewMailer(cfg config.Config) mail.Mailer {
	if cfg.SMTP.Host == "" {
		return mail.NewNoopMailer()
	}
	return mail.NewSMTPMailer(cfg.SMTP)
}
