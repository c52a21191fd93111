// Package dashboard maps a session role to the dashboard variant it is shown.
// Selection is a pure total function; an unknown role selects an explicit
// terminal "unknown" display instead of failing.
package dashboard

import "github.com/YuvrajZende/patientcare-flows/pkg/models"

// Variant identifies one of the role dashboards.
type Variant string

const (
	VariantHospital Variant = "hospital"
	VariantDoctor   Variant = "doctor"
	VariantPatient  Variant = "patient"
	VariantIntern   Variant = "intern"
	VariantSuper    Variant = "super"
	VariantUnknown  Variant = "unknown"
)

// Select returns the dashboard variant for the user's role. Total over all
// inputs: roles outside the five known values map to VariantUnknown.
func Select(u models.User) Variant {
	switch u.Role {
	case models.RoleHospital:
		return VariantHospital
	case models.RoleDoctor:
		return VariantDoctor
	case models.RolePatient:
		return VariantPatient
	case models.RoleIntern:
		return VariantIntern
	case models.RoleSuper:
		return VariantSuper
	default:
		return VariantUnknown
	}
}

// Stat is one overview tile on a dashboard.
type Stat struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change,omitempty"`
	Trend  string `json:"trend,omitempty"`
}

// View is the role-specific dashboard payload.
type View struct {
	Variant  Variant `json:"variant"`
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle"`
	Stats    []Stat  `json:"stats,omitempty"`
}

// ViewFor builds the full dashboard view for a user.
func ViewFor(u models.User) View {
	v := Select(u)
	view := View{Variant: v}
	switch v {
	case VariantHospital:
		view.Title = "Hospital Dashboard"
		view.Subtitle = "Manage hospital operations, staff, and departments"
		view.Stats = []Stat{
			{Title: "Total Patients", Value: "2,845", Change: "+12.5%", Trend: "up"},
			{Title: "Total Doctors", Value: "156", Change: "+4.2%", Trend: "up"},
			{Title: "Departments", Value: "12", Change: "0%", Trend: "neutral"},
			{Title: "Occupancy Rate", Value: "78%", Change: "+3.1%", Trend: "up"},
		}
	case VariantDoctor:
		view.Title = "Doctor Dashboard"
		view.Subtitle = "View patients, appointments, and medical records"
		view.Stats = []Stat{
			{Title: "My Patients", Value: "42", Change: "+3.2%", Trend: "up"},
			{Title: "Today's Appointments", Value: "8", Change: "+1", Trend: "up"},
			{Title: "Pending Reports", Value: "5", Change: "-2", Trend: "down"},
			{Title: "Surgery Schedule", Value: "2", Change: "0", Trend: "neutral"},
		}
	case VariantPatient:
		view.Title = "Patient Dashboard"
		view.Subtitle = "Access medical history and schedule appointments"
	case VariantIntern:
		view.Title = "Intern Dashboard"
		view.Subtitle = "Assist doctors and track training progress"
		view.Stats = []Stat{
			{Title: "Days Completed", Value: "45"},
			{Title: "Assigned Patients", Value: "8"},
			{Title: "Procedures Observed", Value: "24"},
			{Title: "Skill Assessment", Value: "3.8"},
		}
	case VariantSuper:
		view.Title = "Super Admin Dashboard"
		view.Subtitle = "Full system administration and management controls"
		view.Stats = []Stat{
			{Title: "Total Users", Value: "3,247", Change: "+156", Trend: "up"},
			{Title: "System Uptime", Value: "99.9%", Change: "0%", Trend: "neutral"},
			{Title: "Database Size", Value: "42 GB", Change: "+2.3 GB", Trend: "up"},
			{Title: "System Alerts", Value: "2", Change: "-3", Trend: "down"},
		}
	default:
		view.Title = "Unknown Role"
		view.Subtitle = "This account has no dashboard assigned"
	}
	return view
}
