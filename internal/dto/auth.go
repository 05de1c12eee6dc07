package dto

import "time"

// RegisterRequest is the body for POST /auth/register.
type RegisterRequest struct {
	Email         string  `json:"email"`
	Username      string  `json:"username"`
	FullName      *string `json:"fullName"`
	Password      string  `json:"password"`
	AcceptTerms   bool    `json:"acceptTerms"`
	AcceptPrivacy bool    `json:"acceptPrivacy"`
}

// RegisterResponse returns the new account's ID.
type RegisterResponse struct {
	UserID string `json:"userId"`
}

// LoginRequest is the body for POST /auth/login. Identifier is an email or a
// username; the response is identical for both so existence cannot be probed.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// LoginResponse carries the session credential the client holds in memory.
type LoginResponse struct {
	UserID       string `json:"userId"`
	SessionToken string `json:"sessionToken"`
}

// GoogleLoginRequest is the body for POST /auth/login/google.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken"`
}

// PasswordResetRequestBody is the body for POST /auth/password-reset/request.
type PasswordResetRequestBody struct {
	Email string `json:"email"`
}

// PasswordResetRequestResponse always reports ok; token fields are echoed only
// outside production so development flows work without an email sender.
type PasswordResetRequestResponse struct {
	OK        bool       `json:"ok"`
	UserID    string     `json:"userId,omitempty"`
	Token     string     `json:"token,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// PasswordResetConsumeBody is the body for POST /auth/password-reset/consume.
type PasswordResetConsumeBody struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// PasswordResetConsumeResponse reports success as a bare flag, never a stack
// of reasons.
type PasswordResetConsumeResponse struct {
	OK bool `json:"ok"`
}
