package domain

import "time"

// Role gates access to the administrative and owner views
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
	RoleOwner Role = "owner"
)

// Profile represents a registered customer or staff account.
// ID is the auth subject; Role defaults to "user" at signup and is promoted
// out-of-band.
type Profile struct {
	ID           string // uuid
	FullName     string
	Phone        string
	Email        string
	PasswordHash string
	Role         Role

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin returns true for administrator accounts
func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// IsOwner returns true for owner accounts
func (p *Profile) IsOwner() bool {
	return p.Role == RoleOwner
}

// ValidRole reports whether r is a known role
func ValidRole(r Role) bool {
	switch r {
	case RoleUser, RoleAdmin, RoleOwner:
		return true
	}
	return false
}
