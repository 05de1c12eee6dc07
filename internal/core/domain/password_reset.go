package domain

import "time"

// PasswordReset is a single-use token letting a user set a new password.
// Consuming it is atomic with the password update; a consumed or expired
// token can never be replayed.
type PasswordReset struct {
	Token     string     `json:"token"`
	UserID    string     `json:"userId"`
	ExpiresAt time.Time  `json:"expiresAt"`
	UsedAt    *time.Time `json:"-"`
}
