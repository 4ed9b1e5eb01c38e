package response

import (
	"time"

	"kairo-server/internal/domain/booking"
	"kairo-server/internal/usecase"

	"github.com/google/uuid"
)

// ReservationView hides the cancellation token: it is only ever disclosed
// in the confirmation email at booking time.
type ReservationView struct {
	ID          uuid.UUID `json:"id"`
	ServiceType string    `json:"serviceType"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Status      string    `json:"status"`
}

func NewReservationView(r *booking.Reservation) ReservationView {
	return ReservationView{
		ID:          r.ID(),
		ServiceType: r.ServiceType(),
		StartTime:   r.StartTime(),
		EndTime:     r.EndTime(),
		Status:      r.Status().String(),
	}
}

type AvailabilityDataResponse struct {
	RecurringAvailabilities []*booking.Availability `json:"recurringAvailabilities"`
	SpecificAvailabilities  []*booking.Availability `json:"specificAvailabilities"`
	Exclusions              []*booking.Exclusion    `json:"exclusions"`
	Reservations            []ReservationView       `json:"reservations"`
	Settings                *booking.Settings       `json:"settings"`
}

// NewAvailabilityDataResponse always serializes arrays, never null, so the
// calendar client can iterate without guards.
func NewAvailabilityDataResponse(data *usecase.AvailabilityData) AvailabilityDataResponse {
	reservations := make([]ReservationView, len(data.Reservations))
	for i, r := range data.Reservations {
		reservations[i] = NewReservationView(r)
	}

	recurring := data.RecurringAvailabilities
	if recurring == nil {
		recurring = []*booking.Availability{}
	}
	specific := data.SpecificAvailabilities
	if specific == nil {
		specific = []*booking.Availability{}
	}
	exclusions := data.Exclusions
	if exclusions == nil {
		exclusions = []*booking.Exclusion{}
	}

	return AvailabilityDataResponse{
		RecurringAvailabilities: recurring,
		SpecificAvailabilities:  specific,
		Exclusions:              exclusions,
		Reservations:            reservations,
		Settings:                data.Settings,
	}
}
