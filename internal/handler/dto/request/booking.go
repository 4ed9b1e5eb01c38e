package request

import (
	"time"

	"kairo-server/internal/usecase"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type CreateAvailabilityRequest struct {
	UserID      uuid.UUID `json:"userId" binding:"required"`
	DayOfWeek   *int      `json:"dayOfWeek,omitempty"`
	Date        *string   `json:"date,omitempty"`
	StartTime   string    `json:"startTime" binding:"required"`
	EndTime     string    `json:"endTime" binding:"required"`
	IsRecurring bool      `json:"isRecurring"`
}

func (r CreateAvailabilityRequest) ToInput() (usecase.CreateAvailabilityInput, error) {
	in := usecase.CreateAvailabilityInput{
		UserID:      r.UserID,
		DayOfWeek:   r.DayOfWeek,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		IsRecurring: r.IsRecurring,
	}
	if r.Date != nil {
		d, err := time.Parse(dateLayout, *r.Date)
		if err != nil {
			return usecase.CreateAvailabilityInput{}, err
		}
		in.Date = &d
	}
	return in, nil
}

type CreateExclusionRequest struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	Reason    string `json:"reason,omitempty"`
}

func (r CreateExclusionRequest) ToInput() (usecase.CreateExclusionInput, error) {
	start, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return usecase.CreateExclusionInput{}, err
	}
	end, err := time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return usecase.CreateExclusionInput{}, err
	}
	return usecase.CreateExclusionInput{
		StartDate: start,
		EndDate:   end,
		Reason:    r.Reason,
	}, nil
}

type RequestReservationRequest struct {
	Name        string    `json:"name" binding:"required"`
	Email       string    `json:"email" binding:"required,email"`
	ServiceType string    `json:"serviceType" binding:"required"`
	StartTime   time.Time `json:"startTime" binding:"required"`
	EndTime     time.Time `json:"endTime" binding:"required"`
	Notes       string    `json:"notes,omitempty"`
}

func (r RequestReservationRequest) ToInput() usecase.RequestReservationInput {
	return usecase.RequestReservationInput{
		ClientName:  r.Name,
		ClientEmail: r.Email,
		ServiceType: r.ServiceType,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Notes:       r.Notes,
	}
}

// ID stays a string so a malformed value reaches the handler and is
// answered as an unknown reservation rather than a binding error.
type CancelReservationRequest struct {
	ID    string `json:"id" binding:"required"`
	Token string `json:"token" binding:"required"`
}
