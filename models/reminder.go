package models

// ReminderPayload is the asynq task payload for appointment reminders.
// Kind is "24h" or "2h" depending on how far ahead of the start time the
// reminder fires.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	Kind          string `json:"kind"`
}
