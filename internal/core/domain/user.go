package domain

import "time"

const (
	// RoleAdmin is the only privileged role in the system.
	RoleAdmin = "admin"
	// RoleUser is reserved for future non-privileged accounts.
	RoleUser = "user"
)

// User models an administrator account. PasswordHash is opaque to every
// component except the password hasher and is never serialised.
type User struct {
	ID                     string    `json:"id"`
	Username               string    `json:"username"`
	PasswordHash           string    `json:"-"`
	Role                   string    `json:"role"`
	RequiresPasswordChange bool      `json:"requiresPasswordChange"`
	CreatedAt              time.Time `json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`
}

// Principal is the authenticated identity attached to a request after token
// verification. It is derived per request and never persisted.
type Principal struct {
	UserID   string
	Username string
	Role     string
}

// IsAdmin reports whether the principal carries the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
