package domain

import "time"

// User represents a registered account in the domain.
type User struct {
	UserID      string     `json:"id"`
	Email       string     `json:"email"`
	Username    string     `json:"username"`
	FullName    string     `json:"fullName,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

// NewUser carries the fields required to register an account. The plaintext
// password never leaves the repository layer, which hashes it before storage.
type NewUser struct {
	Email         string
	Username      string
	FullName      *string
	Password      string
	AcceptTerms   bool
	AcceptPrivacy bool
}

// UserPatch enumerates the optional profile fields present in an update.
// A nil pointer means "not supplied"; the repository computes the SET list
// from the non-nil fields only.
type UserPatch struct {
	FullName *string
	Username *string
}

// IsEmpty reports whether the patch carries no fields to persist.
func (p UserPatch) IsEmpty() bool {
	return p.FullName == nil && p.Username == nil
}

// GoogleIdentity holds the verified claims extracted from a Google ID token.
type GoogleIdentity struct {
	Email         string
	Subject       string
	Name          string
	EmailVerified bool
}
