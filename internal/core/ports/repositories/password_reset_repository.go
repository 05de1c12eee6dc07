package repositories

import (
	"context"
	"time"

	"github.com/upcyclehq/recycle_scan_api/internal/core/domain"
)

// PasswordResetRepository owns single-use password reset tokens.
type PasswordResetRepository interface {
	// CreateReset issues a reset token for the account owning email.
	// Returns apperrors.ErrNotFound when no such account exists; the service
	// above hides that from the caller (anti-enumeration).
	CreateReset(ctx context.Context, email string, lifetime time.Duration) (*domain.PasswordReset, error)

	// ConsumeReset atomically validates the token (unused, unexpired) and
	// updates the owning user's password, marking the token used. Returns
	// false when the token is invalid, expired or already consumed.
	ConsumeReset(ctx context.Context, token, newPassword string) (bool, error)
}
