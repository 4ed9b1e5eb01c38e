//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"kairo-server/internal/domain/booking"
	"kairo-server/internal/infra"
	"kairo-server/internal/infra/mail"
	"kairo-server/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReservationRepo struct {
	byID      map[uuid.UUID]*booking.Reservation
	createErr error
	statuses  map[uuid.UUID]booking.Status
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{
		byID:     map[uuid.UUID]*booking.Reservation{},
		statuses: map[uuid.UUID]booking.Status{},
	}
}

func (f *fakeReservationRepo) Create(_ context.Context, res *booking.Reservation) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.byID[res.ID()] = res
	return nil
}

func (f *fakeReservationRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Reservation, error) {
	res, ok := f.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	// Return a detached copy the way a row scan would.
	return booking.ReconstructReservation(
		res.ID(), res.ClientName(), res.ClientEmail(), res.ServiceType(),
		res.StartTime(), res.EndTime(), res.Status(),
		res.CancellationToken(), res.Notes(), res.ReminderSent(),
		res.CreatedAt(), res.UpdatedAt(),
	), nil
}

func (f *fakeReservationRepo) FindInRange(_ context.Context, _, _ time.Time) ([]*booking.Reservation, error) {
	return nil, nil
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, id uuid.UUID, status booking.Status) error {
	f.statuses[id] = status
	res := f.byID[id]
	f.byID[id] = booking.ReconstructReservation(
		res.ID(), res.ClientName(), res.ClientEmail(), res.ServiceType(),
		res.StartTime(), res.EndTime(), status,
		res.CancellationToken(), res.Notes(), res.ReminderSent(),
		res.CreatedAt(), res.UpdatedAt(),
	)
	return nil
}

type recordingMailer struct {
	sent    []mail.Message
	sendErr error
}

func (m *recordingMailer) Send(_ context.Context, msg mail.Message) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, msg)
	return nil
}

func validReservationInput() usecase.RequestReservationInput {
	start := time.Date(2026, 5, 12, 10, 0, 0, 0, time.UTC)
	return usecase.RequestReservationInput{
		ClientName:  "Paul Girard",
		ClientEmail: "paul@example.com",
		ServiceType: "consulting",
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
	}
}

func TestReservationRequest(t *testing.T) {
	t.Run("creates pending and mails the token", func(t *testing.T) {
		repo := newFakeReservationRepo()
		mailer := &recordingMailer{}
		uc := usecase.NewReservationUseCase(repo, mailer)

		res, err := uc.Request(context.Background(), validReservationInput())
		require.NoError(t, err)

		assert.Equal(t, booking.StatusPending, res.Status())
		require.Len(t, mailer.sent, 1)
		assert.Equal(t, "paul@example.com", mailer.sent[0].To)
		assert.Contains(t, mailer.sent[0].Body, res.CancellationToken())
	})

	t.Run("mail failure does not fail the request", func(t *testing.T) {
		repo := newFakeReservationRepo()
		mailer := &recordingMailer{sendErr: assert.AnError}
		uc := usecase.NewReservationUseCase(repo, mailer)

		res, err := uc.Request(context.Background(), validReservationInput())
		require.NoError(t, err)
		assert.Contains(t, repo.byID, res.ID())
	})

	t.Run("invalid slot is rejected before persistence", func(t *testing.T) {
		repo := newFakeReservationRepo()
		uc := usecase.NewReservationUseCase(repo, &recordingMailer{})

		in := validReservationInput()
		in.EndTime = in.StartTime.Add(-time.Hour)

		_, err := uc.Request(context.Background(), in)
		assert.ErrorIs(t, err, usecase.ErrInvalidReservation)
		assert.Empty(t, repo.byID)
	})
}

func TestReservationCancelUseCase(t *testing.T) {
	setup := func(t *testing.T) (*fakeReservationRepo, usecase.ReservationUseCase, *booking.Reservation) {
		t.Helper()
		repo := newFakeReservationRepo()
		uc := usecase.NewReservationUseCase(repo, &recordingMailer{})
		res, err := uc.Request(context.Background(), validReservationInput())
		require.NoError(t, err)
		return repo, uc, res
	}

	t.Run("cancels with the right token", func(t *testing.T) {
		repo, uc, res := setup(t)

		require.NoError(t, uc.Cancel(context.Background(), res.ID(), res.CancellationToken()))
		assert.Equal(t, booking.StatusCancelled, repo.statuses[res.ID()])
	})

	t.Run("unknown id", func(t *testing.T) {
		_, uc, _ := setup(t)

		err := uc.Cancel(context.Background(), uuid.New(), "whatever")
		assert.ErrorIs(t, err, usecase.ErrReservationNotFound)
	})

	t.Run("wrong token leaves status untouched", func(t *testing.T) {
		repo, uc, res := setup(t)

		err := uc.Cancel(context.Background(), res.ID(), "wrong")
		assert.ErrorIs(t, err, usecase.ErrTokenMismatch)
		assert.NotContains(t, repo.statuses, res.ID())
	})

	t.Run("second cancel reports finalized", func(t *testing.T) {
		_, uc, res := setup(t)

		require.NoError(t, uc.Cancel(context.Background(), res.ID(), res.CancellationToken()))
		err := uc.Cancel(context.Background(), res.ID(), res.CancellationToken())
		assert.ErrorIs(t, err, usecase.ErrReservationFinalized)
	})
}
