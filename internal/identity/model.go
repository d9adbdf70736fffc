package identity

import "github.com/myflixlabs/myflix-backend/pkg/enums"

// User is an account record. UIDs are opaque strings; auto-provisioned
// accounts use a millisecond timestamp.
type User struct {
	UID        string           `json:"uid"`
	Email      string           `json:"email"`
	Role       enums.Role       `json:"role"`
	PlanStatus enums.PlanStatus `json:"planStatus"`
	ExpiryDate string           `json:"expiryDate"`
	Avatar     string           `json:"avatar,omitempty"`
}

// seedUsers is written on first access when the users key is absent:
// one elevated premium account and one standard free account.
func seedUsers() []User {
	return []User{
		{
			UID:        "admin123",
			Email:      "admin@myflix.com",
			Role:       enums.RoleSuperAdmin,
			PlanStatus: enums.PlanStatusPremium,
			ExpiryDate: "2099-12-31",
			Avatar:     "https://api.dicebear.com/7.x/avataaars/svg?seed=Felix",
		},
		{
			UID:        "user123",
			Email:      "user@example.com",
			Role:       enums.RoleUser,
			PlanStatus: enums.PlanStatusFree,
			ExpiryDate: "2024-12-31",
			Avatar:     "https://api.dicebear.com/7.x/avataaars/svg?seed=Aneka",
		},
	}
}
