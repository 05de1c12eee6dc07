package services

import (
	"context"

	"github.com/upcyclehq/recycle_scan_api/internal/core/domain"
)

// PasswordResetSvcFacade covers the reset-token lifecycle.
type PasswordResetSvcFacade interface {
	// RequestReset issues a single-use token for the account owning email.
	// Returns (nil, nil) when the email is unknown so the handler can respond
	// with an indistinguishable success (anti-enumeration).
	RequestReset(ctx context.Context, email string) (*domain.PasswordReset, error)

	// ConsumeReset atomically validates the token and sets the new password.
	// Returns false for an invalid, expired or already-used token.
	ConsumeReset(ctx context.Context, token, newPassword string) (bool, error)
}
