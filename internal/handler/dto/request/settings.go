package request

import "kairo-server/internal/domain/booking"

type UpdateSettingsRequest struct {
	MinNoticeTime              *int `json:"minNoticeTime,omitempty"`
	MaxAdvanceBookingDays      *int `json:"maxAdvanceBookingDays,omitempty"`
	DefaultSessionDuration     *int `json:"defaultSessionDuration,omitempty"`
	AuditSessionDuration       *int `json:"auditSessionDuration,omitempty"`
	ConsultingSessionDuration  *int `json:"consultingSessionDuration,omitempty"`
	DevelopmentSessionDuration *int `json:"developmentSessionDuration,omitempty"`
	TrainingSessionDuration    *int `json:"trainingSessionDuration,omitempty"`
	ReminderHoursBeforeEvent   *int `json:"reminderHoursBeforeEvent,omitempty"`
}

func (r UpdateSettingsRequest) ToPatch() booking.SettingsPatch {
	return booking.SettingsPatch{
		MinNoticeTime:              r.MinNoticeTime,
		MaxAdvanceBookingDays:      r.MaxAdvanceBookingDays,
		DefaultSessionDuration:     r.DefaultSessionDuration,
		AuditSessionDuration:       r.AuditSessionDuration,
		ConsultingSessionDuration:  r.ConsultingSessionDuration,
		DevelopmentSessionDuration: r.DevelopmentSessionDuration,
		TrainingSessionDuration:    r.TrainingSessionDuration,
		ReminderHoursBeforeEvent:   r.ReminderHoursBeforeEvent,
	}
}
