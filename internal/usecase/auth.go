package usecase

import (
	"kairo-server/internal/pkg/config"
	"kairo-server/internal/pkg/errs"
	"kairo-server/internal/pkg/session"
)

var (
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrInvalidSession     = errs.New("invalid session")
)

type AuthUseCase interface {
	Login(email, password string) (string, error)
	Verify(token string) error
}

type authUseCaseImpl struct {
	admin    config.AdminConfig
	sessions *session.Service
}

func NewAuthUseCase(cfg config.Config, sessions *session.Service) AuthUseCase {
	return &authUseCaseImpl{
		admin:    cfg.Admin,
		sessions: sessions,
	}
}

// Login checks the credentials against the environment-configured admin
// account and issues a signed session token.
func (a *authUseCaseImpl) Login(email, password string) (string, error) {
	if email != a.admin.Email || password != a.admin.Password {
		return "", ErrInvalidCredentials
	}

	token, err := a.sessions.IssueToken(email)
	if err != nil {
		return "", errs.Wrap(err, "failed to issue session token")
	}
	return token, nil
}

func (a *authUseCaseImpl) Verify(token string) error {
	if token == "" {
		return ErrInvalidSession
	}
	if _, err := a.sessions.VerifyToken(token); err != nil {
		return errs.Mark(err, ErrInvalidSession)
	}
	return nil
}
