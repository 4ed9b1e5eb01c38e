package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidDayOfWeek  = errors.New("day of week must be between 0 and 6")
	ErrMissingDate       = errors.New("specific availability requires a date")
	ErrUnexpectedDate    = errors.New("recurring availability cannot carry a date")
	ErrInvalidTimeWindow = errors.New("start time must be before end time")
)

// Availability is a window during which a user can be booked, either
// recurring on a weekday or tied to a single date. The two forms are
// mutually exclusive.
type Availability struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"userId"`
	DayOfWeek   *int       `json:"dayOfWeek,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	StartTime   string     `json:"startTime"`
	EndTime     string     `json:"endTime"`
	IsRecurring bool       `json:"isRecurring"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func NewRecurringAvailability(userID uuid.UUID, dayOfWeek int, startTime, endTime string) (*Availability, error) {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return nil, ErrInvalidDayOfWeek
	}
	if err := validateWindow(startTime, endTime); err != nil {
		return nil, err
	}

	day := dayOfWeek
	return &Availability{
		ID:          uuid.New(),
		UserID:      userID,
		DayOfWeek:   &day,
		StartTime:   startTime,
		EndTime:     endTime,
		IsRecurring: true,
	}, nil
}

func NewSpecificAvailability(userID uuid.UUID, date time.Time, startTime, endTime string) (*Availability, error) {
	if date.IsZero() {
		return nil, ErrMissingDate
	}
	if err := validateWindow(startTime, endTime); err != nil {
		return nil, err
	}

	d := date
	return &Availability{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      &d,
		StartTime: startTime,
		EndTime:   endTime,
	}, nil
}

// Times are wall-clock "HH:MM" strings; lexical order matches chronological
// order for zero-padded values.
func validateWindow(startTime, endTime string) error {
	if startTime == "" || endTime == "" || startTime >= endTime {
		return ErrInvalidTimeWindow
	}
	return nil
}
