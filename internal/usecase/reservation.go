package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"kairo-server/internal/domain/booking"
	"kairo-server/internal/infra"
	"kairo-server/internal/infra/mail"
	"kairo-server/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound  = errs.New("reservation not found")
	ErrTokenMismatch        = errs.New("cancellation token mismatch")
	ErrReservationFinalized = errs.New("reservation already cancelled or completed")
	ErrInvalidReservation   = errs.New("invalid reservation request")
)

type ReservationReader interface {
	FindInRange(ctx context.Context, start, end time.Time) ([]*booking.Reservation, error)
}

type ReservationRepository interface {
	ReservationReader
	Create(ctx context.Context, res *booking.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Reservation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error
}

type RequestReservationInput struct {
	ClientName  string
	ClientEmail string
	ServiceType string
	StartTime   time.Time
	EndTime     time.Time
	Notes       string
}

type ReservationUseCase interface {
	Request(ctx context.Context, in RequestReservationInput) (*booking.Reservation, error)
	Cancel(ctx context.Context, id uuid.UUID, token string) error
}

type reservationUseCaseImpl struct {
	repo   ReservationRepository
	mailer mail.Mailer
}

func NewReservationUseCase(repo ReservationRepository, mailer mail.Mailer) ReservationUseCase {
	return &reservationUseCaseImpl{
		repo:   repo,
		mailer: mailer,
	}
}

// Request creates a PENDING reservation and emails the client their
// cancellation token. The confirmation mail is a soft failure: the
// reservation stands even when delivery fails.
func (u *reservationUseCaseImpl) Request(ctx context.Context, in RequestReservationInput) (*booking.Reservation, error) {
	res, err := booking.NewReservation(in.ClientName, in.ClientEmail, in.ServiceType, in.StartTime, in.EndTime, in.Notes)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidReservation)
	}

	if err := u.repo.Create(ctx, res); err != nil {
		return nil, err
	}

	if err := u.mailer.Send(ctx, confirmationMail(res)); err != nil {
		slog.Warn("failed to send booking confirmation", "reservation_id", res.ID(), "error", err.Error())
	}

	return res, nil
}

// Cancel enforces the token check and the terminal-status rule. Repeated
// calls on a cancelled reservation keep returning ErrReservationFinalized
// without touching the status. No notification is sent on cancellation.
func (u *reservationUseCaseImpl) Cancel(ctx context.Context, id uuid.UUID, token string) error {
	res, err := u.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return err
	}

	if err := res.Cancel(token); err != nil {
		switch err {
		case booking.ErrTokenMismatch:
			return ErrTokenMismatch
		case booking.ErrAlreadyTerminal:
			return ErrReservationFinalized
		default:
			return err
		}
	}

	return u.repo.UpdateStatus(ctx, res.ID(), res.Status())
}

func confirmationMail(res *booking.Reservation) mail.Message {
	body := fmt.Sprintf(
		"Bonjour %s,\n\nVotre demande de rendez-vous (%s) du %s a bien été enregistrée.\n"+
			"Elle sera confirmée par nos équipes dans les plus brefs délais.\n\n"+
			"Pour annuler, utilisez ce code : %s\n\nKairo Digital",
		res.ClientName(),
		res.ServiceType(),
		res.StartTime().Format("02/01/2006 15:04"),
		res.CancellationToken(),
	)
	return mail.Message{
		To:      res.ClientEmail(),
		Subject: "Votre demande de rendez-vous - Kairo Digital",
		Body:    body,
	}
}
