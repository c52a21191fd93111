package auth

import "github.com/YuvrajZende/patientcare-flows/pkg/models"

// superUsers are the seeded demo accounts reachable through QuickLogin.
var superUsers = []models.User{
	{
		ID:        "super1",
		Email:     "admin@hospital.com",
		Name:      "Admin User",
		Role:      models.RoleSuper,
		AvatarURL: "https://api.dicebear.com/7.x/personas/svg?seed=admin",
	},
	{
		ID:        "super2",
		Email:     "system@hospital.com",
		Name:      "System Admin",
		Role:      models.RoleSuper,
		AvatarURL: "https://api.dicebear.com/7.x/personas/svg?seed=system",
	},
	{
		ID:        "super3",
		Email:     "tech@hospital.com",
		Name:      "Tech Support",
		Role:      models.RoleSuper,
		AvatarURL: "https://api.dicebear.com/7.x/personas/svg?seed=tech",
	},
}

// SuperUsers returns a copy of the seeded super-user accounts.
func SuperUsers() []models.User {
	out := make([]models.User, len(superUsers))
	copy(out, superUsers)
	return out
}
