package usecase

import (
	"context"
	"time"

	"kairo-server/internal/domain/booking"
	"kairo-server/internal/infra"
	"kairo-server/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrAvailabilityNotFound = errs.New("availability not found")
	ErrExclusionNotFound    = errs.New("exclusion not found")
	ErrInvalidAvailability  = errs.New("invalid availability")
	ErrInvalidExclusion     = errs.New("invalid exclusion")
)

// AvailabilityData is the raw aggregation for a date range. Collections are
// returned unmerged; slot reconciliation happens client-side.
type AvailabilityData struct {
	RecurringAvailabilities []*booking.Availability
	SpecificAvailabilities  []*booking.Availability
	Exclusions              []*booking.Exclusion
	Reservations            []*booking.Reservation
	Settings                *booking.Settings
}

type CreateAvailabilityInput struct {
	UserID      uuid.UUID
	DayOfWeek   *int
	Date        *time.Time
	StartTime   string
	EndTime     string
	IsRecurring bool
}

type CreateExclusionInput struct {
	StartDate time.Time
	EndDate   time.Time
	Reason    string
}

type AvailabilityRepository interface {
	Create(ctx context.Context, a *booking.Availability) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindRecurring(ctx context.Context) ([]*booking.Availability, error)
	FindSpecificInRange(ctx context.Context, start, end time.Time) ([]*booking.Availability, error)
}

type ExclusionRepository interface {
	Create(ctx context.Context, e *booking.Exclusion) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOverlapping(ctx context.Context, start, end time.Time) ([]*booking.Exclusion, error)
}

type UserChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type BookingUseCase interface {
	GetAvailability(ctx context.Context, start, end time.Time) (*AvailabilityData, error)
	CreateAvailability(ctx context.Context, in CreateAvailabilityInput) (*booking.Availability, error)
	DeleteAvailability(ctx context.Context, id uuid.UUID) error
	CreateExclusion(ctx context.Context, in CreateExclusionInput) (*booking.Exclusion, error)
	DeleteExclusion(ctx context.Context, id uuid.UUID) error
}

type bookingUseCaseImpl struct {
	availabilityRepo AvailabilityRepository
	exclusionRepo    ExclusionRepository
	reservationRepo  ReservationReader
	settings         SettingsUseCase
	users            UserChecker
}

func NewBookingUseCase(
	availabilityRepo AvailabilityRepository,
	exclusionRepo ExclusionRepository,
	reservationRepo ReservationReader,
	settings SettingsUseCase,
	users UserChecker,
) BookingUseCase {
	return &bookingUseCaseImpl{
		availabilityRepo: availabilityRepo,
		exclusionRepo:    exclusionRepo,
		reservationRepo:  reservationRepo,
		settings:         settings,
		users:            users,
	}
}

// GetAvailability issues the four range reads plus the settings fetch and
// returns the collections as-is. The reads are independent; the aggregator
// makes no booking decision, so a write landing between them is tolerated.
func (b *bookingUseCaseImpl) GetAvailability(ctx context.Context, start, end time.Time) (*AvailabilityData, error) {
	recurring, err := b.availabilityRepo.FindRecurring(ctx)
	if err != nil {
		return nil, err
	}

	specific, err := b.availabilityRepo.FindSpecificInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	exclusions, err := b.exclusionRepo.FindOverlapping(ctx, start, end)
	if err != nil {
		return nil, err
	}

	reservations, err := b.reservationRepo.FindInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	settings, err := b.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	return &AvailabilityData{
		RecurringAvailabilities: recurring,
		SpecificAvailabilities:  specific,
		Exclusions:              exclusions,
		Reservations:            reservations,
		Settings:                settings,
	}, nil
}

func (b *bookingUseCaseImpl) CreateAvailability(ctx context.Context, in CreateAvailabilityInput) (*booking.Availability, error) {
	exists, err := b.users.Exists(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	var entity *booking.Availability
	if in.IsRecurring {
		if in.DayOfWeek == nil {
			return nil, errs.Mark(booking.ErrInvalidDayOfWeek, ErrInvalidAvailability)
		}
		entity, err = booking.NewRecurringAvailability(in.UserID, *in.DayOfWeek, in.StartTime, in.EndTime)
	} else {
		if in.Date == nil {
			return nil, errs.Mark(booking.ErrMissingDate, ErrInvalidAvailability)
		}
		entity, err = booking.NewSpecificAvailability(in.UserID, *in.Date, in.StartTime, in.EndTime)
	}
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidAvailability)
	}

	// Overlapping windows are allowed; the calendar merges them client-side.
	if err := b.availabilityRepo.Create(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

func (b *bookingUseCaseImpl) DeleteAvailability(ctx context.Context, id uuid.UUID) error {
	if err := b.availabilityRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrAvailabilityNotFound
		}
		return err
	}
	return nil
}

func (b *bookingUseCaseImpl) CreateExclusion(ctx context.Context, in CreateExclusionInput) (*booking.Exclusion, error) {
	entity, err := booking.NewExclusion(in.StartDate, in.EndDate, in.Reason)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidExclusion)
	}

	if err := b.exclusionRepo.Create(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

func (b *bookingUseCaseImpl) DeleteExclusion(ctx context.Context, id uuid.UUID) error {
	if err := b.exclusionRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrExclusionNotFound
		}
		return err
	}
	return nil
}
