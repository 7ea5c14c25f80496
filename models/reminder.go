package models

// ReminderPayload is the asynq task payload for booking reminders.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	DancerID  string `json:"dancerId"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	FireDate  string `json:"fireDate"`
}
