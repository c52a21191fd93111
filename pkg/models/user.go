package models

// Role is one of the five fixed user categories. It governs which dashboard
// variant a session is shown.
type Role string

const (
	RoleHospital Role = "hospital"
	RoleDoctor   Role = "doctor"
	RolePatient  Role = "patient"
	RoleIntern   Role = "intern"
	RoleSuper    Role = "super"
)

// Valid reports whether r is one of the five known role values.
func (r Role) Valid() bool {
	switch r {
	case RoleHospital, RoleDoctor, RolePatient, RoleIntern, RoleSuper:
		return true
	}
	return false
}

type User struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      Role   `json:"role"`
	ID        string `json:"id,omitempty"`
	AvatarURL string `json:"avatar,omitempty"`
}

// IsSuper reports whether the user holds the super-admin role.
func (u User) IsSuper() bool { return u.Role == RoleSuper }
