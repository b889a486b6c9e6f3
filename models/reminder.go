package models

// ReminderPayload is the asynq task payload for a scheduled assessment reminder.
type ReminderPayload struct {
	ReminderID string `json:"reminderId"`
	StudentID  string `json:"studentId"`
	Assessment string `json:"assessment"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	FireDate   string `json:"fireDate"`
}
