package repositories

import (
	"context"
	"time"

	"github.com/upcyclehq/recycle_scan_api/internal/core/domain"
)

// SessionRepository owns the session table.
type SessionRepository interface {
	// CreateSession issues a new opaque token bound to the user for the given
	// lifetime and returns it.
	CreateSession(ctx context.Context, userID string, lifetime time.Duration) (string, error)

	// FindValidSession returns the session for token when it is neither
	// revoked nor expired; otherwise apperrors.ErrNotFound.
	FindValidSession(ctx context.Context, token string) (*domain.Session, error)

	// RevokeSession sets revoked_at on the session. Revoking an unknown or
	// already revoked token is not an error.
	RevokeSession(ctx context.Context, token string) error
}
