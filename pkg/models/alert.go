package models

// Severity grades an SOS alert.
type Severity string

const (
	SeverityUrgent   Severity = "urgent"
	SeverityModerate Severity = "moderate"
)

// SosAlert is an emergency notification raised by a patient. An alert is
// active until it is dismissed or responded to; both transitions are terminal.
type SosAlert struct {
	ID          string   `json:"id"`
	PatientName string   `json:"patient_name"`
	Reason      string   `json:"reason"`
	Contact     string   `json:"contact"`
	Severity    Severity `json:"severity"`
	// CreatedTS is the creation timestamp (ns).
	CreatedTS int64 `json:"created_ts"`
}
