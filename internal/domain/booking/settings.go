package booking

import (
	"time"

	"github.com/google/uuid"
)

// Settings is the singleton booking configuration row. Durations are in
// minutes, notice windows in hours/days.
type Settings struct {
	ID                         uuid.UUID `json:"id"`
	MinNoticeTime              int       `json:"minNoticeTime"`
	MaxAdvanceBookingDays      int       `json:"maxAdvanceBookingDays"`
	DefaultSessionDuration     int       `json:"defaultSessionDuration"`
	AuditSessionDuration       int       `json:"auditSessionDuration"`
	ConsultingSessionDuration  int       `json:"consultingSessionDuration"`
	DevelopmentSessionDuration int       `json:"developmentSessionDuration"`
	TrainingSessionDuration    int       `json:"trainingSessionDuration"`
	ReminderHoursBeforeEvent   int       `json:"reminderHoursBeforeEvent"`
	UpdatedAt                  time.Time `json:"updatedAt"`
}

func DefaultSettings() *Settings {
	return &Settings{
		ID:                         uuid.New(),
		MinNoticeTime:              1,
		MaxAdvanceBookingDays:      60,
		DefaultSessionDuration:     60,
		AuditSessionDuration:       90,
		ConsultingSessionDuration:  60,
		DevelopmentSessionDuration: 120,
		TrainingSessionDuration:    180,
		ReminderHoursBeforeEvent:   24,
	}
}

// SettingsPatch carries the fields of a partial update; nil fields are left
// untouched by Apply.
type SettingsPatch struct {
	MinNoticeTime              *int `json:"minNoticeTime,omitempty"`
	MaxAdvanceBookingDays      *int `json:"maxAdvanceBookingDays,omitempty"`
	DefaultSessionDuration     *int `json:"defaultSessionDuration,omitempty"`
	AuditSessionDuration       *int `json:"auditSessionDuration,omitempty"`
	ConsultingSessionDuration  *int `json:"consultingSessionDuration,omitempty"`
	DevelopmentSessionDuration *int `json:"developmentSessionDuration,omitempty"`
	TrainingSessionDuration    *int `json:"trainingSessionDuration,omitempty"`
	ReminderHoursBeforeEvent   *int `json:"reminderHoursBeforeEvent,omitempty"`
}

func (s *Settings) Apply(p SettingsPatch) {
	if p.MinNoticeTime != nil {
		s.MinNoticeTime = *p.MinNoticeTime
	}
	if p.MaxAdvanceBookingDays != nil {
		s.MaxAdvanceBookingDays = *p.MaxAdvanceBookingDays
	}
	if p.DefaultSessionDuration != nil {
		s.DefaultSessionDuration = *p.DefaultSessionDuration
	}
	if p.AuditSessionDuration != nil {
		s.AuditSessionDuration = *p.AuditSessionDuration
	}
	if p.ConsultingSessionDuration != nil {
		s.ConsultingSessionDuration = *p.ConsultingSessionDuration
	}
	if p.DevelopmentSessionDuration != nil {
		s.DevelopmentSessionDuration = *p.DevelopmentSessionDuration
	}
	if p.TrainingSessionDuration != nil {
		s.TrainingSessionDuration = *p.TrainingSessionDuration
	}
	if p.ReminderHoursBeforeEvent != nil {
		s.ReminderHoursBeforeEvent = *p.ReminderHoursBeforeEvent
	}
}

// SessionDuration returns the configured duration for a service type,
// falling back to the default.
func (s *Settings) SessionDuration(serviceType string) int {
	switch serviceType {
	case "audit":
		return s.AuditSessionDuration
	case "consulting":
		return s.ConsultingSessionDuration
	case "development":
		return s.DevelopmentSessionDuration
	case "training":
		return s.TrainingSessionDuration
	default:
		return s.DefaultSessionDuration
	}
}
