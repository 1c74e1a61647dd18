// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleGuardian indicates a regular guardian account.
	RoleGuardian Role = "guardian"
	// RoleAdmin indicates an administrative account that may manage drives
	// and read audit data across tenants.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleGuardian, RoleAdmin:
		return true
	default:
		return false
	}
}

// AccessScope carries the authenticated identity down to the data-access
// layer. Repositories use it to constrain every query over user-owned rows;
// the admin override is an explicit capability check, never a default.
type AccessScope struct {
	UserID uuid.UUID
	Role   Role
}

// IsAdmin reports whether this scope may bypass per-owner row filtering.
func (s AccessScope) IsAdmin() bool {
	return s.Role == RoleAdmin
}
