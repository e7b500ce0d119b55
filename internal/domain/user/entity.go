package user

import "time"

type Role string

const (
	RoleAdmin Role = "admin" // Back-office administrator - full access
	RoleStaff Role = "staff" // Read-only back-office access
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if the user may access the back office
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
