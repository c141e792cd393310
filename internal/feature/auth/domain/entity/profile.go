package entity

import "time"

// Role is the access level assigned to an identity through its profile.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleLibrarian Role = "librarian"
	RoleUser      Role = "user"

	// RoleNone is the degraded state of an identity without a profile.
	// It is strictly less privileged than every named role and is a valid
	// state, not an error.
	RoleNone Role = ""
)

// ValidRole reports whether r is one of the named, assignable roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleLibrarian, RoleUser:
		return true
	}
	return false
}

// Profile is the role-bearing extension of a user identity. Every identity
// that acts in the system should have exactly one profile; a missing
// profile means "no role assigned" and must be tolerated.
type Profile struct {
	ID uint `gorm:"primaryKey"`

	// UserID links the profile to its identity, one-to-one.
	UserID string `gorm:"uniqueIndex;size:36;not null"`

	// Email duplicates the identity's email for listing convenience.
	Email string `gorm:"size:255;not null"`

	// Role is the access level granted to the identity.
	Role Role `gorm:"size:20;not null"`

	// CreatedAt is the timestamp when the profile was created.
	CreatedAt time.Time
}

// TableName returns the table name for GORM.
func (Profile) TableName() string {
	return "profiles"
}
