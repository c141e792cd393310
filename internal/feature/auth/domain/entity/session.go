package entity

import "time"

// Session represents an authenticated user's session. It backs the
// "current identity" notion: a live session means the identity is signed
// in, revocation means it signed out.
type Session struct {
	ID        string     // Session token value (UUID)
	UserID    string     // Associated user ID
	Email     string     // Identity email at sign-in time
	Role      Role       // Role resolved at sign-in time
	CreatedAt time.Time  // Session creation time
	ExpiresAt time.Time  // Session expiration time
	RevokedAt *time.Time // Revocation time (nil if active)
}

// IsExpired returns true if the session has passed its expiration time.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// IsRevoked returns true if the session has been revoked.
func (s *Session) IsRevoked() bool {
	return s.RevokedAt != nil
}

// IsValid returns true if the session is neither expired nor revoked.
func (s *Session) IsValid() bool {
	return !s.IsExpired() && !s.IsRevoked()
}
