package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidDateRange = errors.New("start date must not be after end date")

// Exclusion is a blackout range overriding any availability.
type Exclusion struct {
	ID        uuid.UUID `json:"id"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewExclusion(startDate, endDate time.Time, reason string) (*Exclusion, error) {
	if startDate.After(endDate) {
		return nil, ErrInvalidDateRange
	}
	return &Exclusion{
		ID:        uuid.New(),
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    reason,
	}, nil
}

func (e *Exclusion) Overlaps(start, end time.Time) bool {
	return !e.StartDate.After(end) && !e.EndDate.Before(start)
}
