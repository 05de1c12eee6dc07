package domain

import "time"

// Session is an opaque bearer credential bound to a user for a fixed window.
// A session is valid iff RevokedAt is nil and ExpiresAt is in the future;
// the store enforces both in the lookup query.
type Session struct {
	Token     string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
	RevokedAt *time.Time
}

// Valid reports the session validity rule against the given instant.
func (s Session) Valid(now time.Time) bool {
	return s.RevokedAt == nil && s.ExpiresAt.After(now)
}
