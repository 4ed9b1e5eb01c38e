//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"kairo-server/internal/domain/booking"
	"kairo-server/internal/infra"
	"kairo-server/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAvailabilityRepo struct {
	recurring []*booking.Availability
	specific  []*booking.Availability
	created   []*booking.Availability
	deleteErr error
}

func (f *fakeAvailabilityRepo) Create(_ context.Context, a *booking.Availability) error {
	f.created = append(f.created, a)
	return nil
}

func (f *fakeAvailabilityRepo) Delete(_ context.Context, _ uuid.UUID) error {
	return f.deleteErr
}

func (f *fakeAvailabilityRepo) FindRecurring(_ context.Context) ([]*booking.Availability, error) {
	return f.recurring, nil
}

func (f *fakeAvailabilityRepo) FindSpecificInRange(_ context.Context, _, _ time.Time) ([]*booking.Availability, error) {
	return f.specific, nil
}

type fakeExclusionRepo struct {
	overlapping []*booking.Exclusion
	deleteErr   error
}

func (f *fakeExclusionRepo) Create(_ context.Context, _ *booking.Exclusion) error { return nil }
func (f *fakeExclusionRepo) Delete(_ context.Context, _ uuid.UUID) error          { return f.deleteErr }
func (f *fakeExclusionRepo) FindOverlapping(_ context.Context, _, _ time.Time) ([]*booking.Exclusion, error) {
	return f.overlapping, nil
}

type fakeUserChecker struct {
	exists bool
}

func (f *fakeUserChecker) Exists(_ context.Context, _ uuid.UUID) (bool, error) {
	return f.exists, nil
}

func newBookingUseCase(t *testing.T, avail *fakeAvailabilityRepo, excl *fakeExclusionRepo, users *fakeUserChecker) usecase.BookingUseCase {
	t.Helper()
	settings := usecase.NewSettingsUseCase(&fakeSettingsRepo{})
	return usecase.NewBookingUseCase(avail, excl, newFakeReservationRepo(), settings, users)
}

func TestGetAvailability(t *testing.T) {
	userID := uuid.New()
	rec, err := booking.NewRecurringAvailability(userID, 2, "09:00", "12:00")
	require.NoError(t, err)
	spec, err := booking.NewSpecificAvailability(userID, time.Date(2026, 6, 4, 0, 0, 0, 0, time.UTC), "14:00", "16:00")
	require.NoError(t, err)

	avail := &fakeAvailabilityRepo{
		recurring: []*booking.Availability{rec},
		specific:  []*booking.Availability{spec},
	}
	uc := newBookingUseCase(t, avail, &fakeExclusionRepo{}, &fakeUserChecker{exists: true})

	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	data, err := uc.GetAvailability(context.Background(), start, start.AddDate(0, 0, 7))
	require.NoError(t, err)

	assert.Len(t, data.RecurringAvailabilities, 1)
	assert.Len(t, data.SpecificAvailabilities, 1)
	assert.Empty(t, data.Exclusions)
	assert.Empty(t, data.Reservations)
	require.NotNil(t, data.Settings)
	assert.Equal(t, 60, data.Settings.DefaultSessionDuration)
}

func TestCreateAvailability(t *testing.T) {
	day := 3
	date := time.Date(2026, 6, 4, 0, 0, 0, 0, time.UTC)

	baseInput := func() usecase.CreateAvailabilityInput {
		return usecase.CreateAvailabilityInput{
			UserID:      uuid.New(),
			DayOfWeek:   &day,
			StartTime:   "09:00",
			EndTime:     "12:00",
			IsRecurring: true,
		}
	}

	t.Run("recurring slot created", func(t *testing.T) {
		avail := &fakeAvailabilityRepo{}
		uc := newBookingUseCase(t, avail, &fakeExclusionRepo{}, &fakeUserChecker{exists: true})

		a, err := uc.CreateAvailability(context.Background(), baseInput())
		require.NoError(t, err)
		assert.True(t, a.IsRecurring)
		assert.Len(t, avail.created, 1)
	})

	t.Run("unknown user", func(t *testing.T) {
		uc := newBookingUseCase(t, &fakeAvailabilityRepo{}, &fakeExclusionRepo{}, &fakeUserChecker{exists: false})

		_, err := uc.CreateAvailability(context.Background(), baseInput())
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})

	t.Run("recurring without day of week", func(t *testing.T) {
		uc := newBookingUseCase(t, &fakeAvailabilityRepo{}, &fakeExclusionRepo{}, &fakeUserChecker{exists: true})

		in := baseInput()
		in.DayOfWeek = nil
		_, err := uc.CreateAvailability(context.Background(), in)
		assert.ErrorIs(t, err, usecase.ErrInvalidAvailability)
	})

	t.Run("dated without date", func(t *testing.T) {
		uc := newBookingUseCase(t, &fakeAvailabilityRepo{}, &fakeExclusionRepo{}, &fakeUserChecker{exists: true})

		in := baseInput()
		in.IsRecurring = false
		in.DayOfWeek = nil
		_, err := uc.CreateAvailability(context.Background(), in)
		assert.ErrorIs(t, err, usecase.ErrInvalidAvailability)
	})

	t.Run("dated slot created", func(t *testing.T) {
		avail := &fakeAvailabilityRepo{}
		uc := newBookingUseCase(t, avail, &fakeExclusionRepo{}, &fakeUserChecker{exists: true})

		in := baseInput()
		in.IsRecurring = false
		in.DayOfWeek = nil
		in.Date = &date

		a, err := uc.CreateAvailability(context.Background(), in)
		require.NoError(t, err)
		assert.False(t, a.IsRecurring)
		require.NotNil(t, a.Date)
	})
}

func TestDeleteAvailability(t *testing.T) {
	t.Run("missing row maps to not found", func(t *testing.T) {
		avail := &fakeAvailabilityRepo{
			deleteErr: infra.WrapRepoErr("availability not found", nil, infra.KindNotFound),
		}
		uc := newBookingUseCase(t, avail, &fakeExclusionRepo{}, &fakeUserChecker{exists: true})

		err := uc.DeleteAvailability(context.Background(), uuid.New())
		assert.ErrorIs(t, err, usecase.ErrAvailabilityNotFound)
	})

	t.Run("delete succeeds", func(t *testing.T) {
		uc := newBookingUseCase(t, &fakeAvailabilityRepo{}, &fakeExclusionRepo{}, &fakeUserChecker{exists: true})
		assert.NoError(t, uc.DeleteAvailability(context.Background(), uuid.New()))
	})
}

func TestExclusions(t *testing.T) {
	t.Run("valid range created", func(t *testing.T) {
		uc := newBookingUseCase(t, &fakeAvailabilityRepo{}, &fakeExclusionRepo{}, &fakeUserChecker{exists: true})

		start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		e, err := uc.CreateExclusion(context.Background(), usecase.CreateExclusionInput{
			StartDate: start,
			EndDate:   start.AddDate(0, 0, 14),
			Reason:    "fermeture estivale",
		})
		require.NoError(t, err)
		assert.Equal(t, "fermeture estivale", e.Reason)
	})

	t.Run("inverted range rejected", func(t *testing.T) {
		uc := newBookingUseCase(t, &fakeAvailabilityRepo{}, &fakeExclusionRepo{}, &fakeUserChecker{exists: true})

		start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		_, err := uc.CreateExclusion(context.Background(), usecase.CreateExclusionInput{
			StartDate: start,
			EndDate:   start.AddDate(0, 0, -1),
		})
		assert.ErrorIs(t, err, usecase.ErrInvalidExclusion)
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		excl := &fakeExclusionRepo{
			deleteErr: infra.WrapRepoErr("exclusion not found", nil, infra.KindNotFound),
		}
		uc := newBookingUseCase(t, &fakeAvailabilityRepo{}, excl, &fakeUserChecker{exists: true})

		err := uc.DeleteExclusion(context.Background(), uuid.New())
		assert.ErrorIs(t, err, usecase.ErrExclusionNotFound)
	})
}
