package models

// ReminderKind classifies a reminder item.
type ReminderKind string

const (
	ReminderMedication  ReminderKind = "medication"
	ReminderAppointment ReminderKind = "appointment"
	ReminderTask        ReminderKind = "task"
)

type Reminder struct {
	ID    string       `json:"id"`
	Kind  ReminderKind `json:"type"`
	Title string       `json:"title"`
	// Time is free-form display text ("08:00", "All day"); it is never parsed.
	Time string `json:"time"`
	// Date is an ISO date string (YYYY-MM-DD).
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
	// Recur is an optional cron expression for recurring reminders.
	Recur string `json:"recur,omitempty"`
}
