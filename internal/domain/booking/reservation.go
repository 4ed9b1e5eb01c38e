package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// Terminal statuses cannot be cancelled again.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

var (
	ErrInvalidTimeSlot      = errors.New("invalid time slot")
	ErrTokenMismatch        = errors.New("cancellation token mismatch")
	ErrAlreadyTerminal      = errors.New("reservation is already cancelled or completed")
	ErrInvalidStatusChange  = errors.New("invalid status transition")
	ErrMissingClientDetails = errors.New("client name and email are required")
)

// Reservation is a booked appointment. Status moves one-directionally away
// from PENDING; the cancellation token authorizes self-service cancellation.
type Reservation struct {
	id                uuid.UUID
	clientName        string
	clientEmail       string
	serviceType       string
	startTime         time.Time
	endTime           time.Time
	status            Status
	cancellationToken string
	notes             string
	reminderSent      bool
	createdAt         time.Time
	updatedAt         time.Time
}

func NewReservation(clientName, clientEmail, serviceType string, start, end time.Time, notes string) (*Reservation, error) {
	if clientName == "" || clientEmail == "" {
		return nil, ErrMissingClientDetails
	}
	if !start.Before(end) {
		return nil, ErrInvalidTimeSlot
	}

	return &Reservation{
		id:                uuid.New(),
		clientName:        clientName,
		clientEmail:       clientEmail,
		serviceType:       serviceType,
		startTime:         start,
		endTime:           end,
		status:            StatusPending,
		cancellationToken: uuid.NewString(),
		notes:             notes,
	}, nil
}

func ReconstructReservation(
	id uuid.UUID,
	clientName, clientEmail, serviceType string,
	start, end time.Time,
	status Status,
	cancellationToken, notes string,
	reminderSent bool,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:                id,
		clientName:        clientName,
		clientEmail:       clientEmail,
		serviceType:       serviceType,
		startTime:         start,
		endTime:           end,
		status:            status,
		cancellationToken: cancellationToken,
		notes:             notes,
		reminderSent:      reminderSent,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// Cancel verifies the client-held token and moves the reservation to
// CANCELLED. Terminal reservations are left untouched.
func (r *Reservation) Cancel(token string) error {
	if token != r.cancellationToken {
		return ErrTokenMismatch
	}
	if r.status.IsTerminal() {
		return ErrAlreadyTerminal
	}
	r.status = StatusCancelled
	return nil
}

func (r *Reservation) Confirm() error {
	if r.status != StatusPending {
		return ErrInvalidStatusChange
	}
	r.status = StatusConfirmed
	return nil
}

func (r *Reservation) Complete() error {
	if r.status != StatusConfirmed {
		return ErrInvalidStatusChange
	}
	r.status = StatusCompleted
	return nil
}

func (r *Reservation) MarkReminderSent() {
	r.reminderSent = true
}

func (r *Reservation) ID() uuid.UUID             { return r.id }
func (r *Reservation) ClientName() string        { return r.clientName }
func (r *Reservation) ClientEmail() string       { return r.clientEmail }
func (r *Reservation) ServiceType() string       { return r.serviceType }
func (r *Reservation) StartTime() time.Time      { return r.startTime }
func (r *Reservation) EndTime() time.Time        { return r.endTime }
func (r *Reservation) Status() Status            { return r.status }
func (r *Reservation) CancellationToken() string { return r.cancellationToken }
func (r *Reservation) Notes() string             { return r.notes }
func (r *Reservation) ReminderSent() bool        { return r.reminderSent }
func (r *Reservation) CreatedAt() time.Time      { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time      { return r.updatedAt }
