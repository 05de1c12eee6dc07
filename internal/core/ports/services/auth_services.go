package services

import (
	"context"

	"github.com/upcyclehq/recycle_scan_api/internal/core/domain"
)

// SessionValidator resolves a bearer token to the owning user ID. The auth
// middleware depends on this narrow interface, not on the whole facade.
type SessionValidator interface {
	// ValidateSession returns the user ID bound to a session that is neither
	// revoked nor expired; apperrors.ErrUnauthorized otherwise.
	ValidateSession(ctx context.Context, token string) (string, error)
}

// IdentityVerifier verifies a federated identity token against the provider.
type IdentityVerifier interface {
	// VerifyIDToken checks signature and audience and extracts the claims.
	VerifyIDToken(ctx context.Context, idToken string) (*domain.GoogleIdentity, error)
}

// AuthSvcFacade covers the session lifecycle: login, validation, logout.
type AuthSvcFacade interface {
	SessionValidator

	// LoginWithPassword authenticates and creates a session. Authentication
	// failures are apperrors.ErrUnauthorized regardless of whether the
	// identifier exists; a store failure after successful authentication is
	// apperrors.ErrSessionCreation.
	LoginWithPassword(ctx context.Context, identifier, password string) (*domain.User, string, error)

	// LoginWithGoogle verifies the ID token, finds or provisions the user and
	// creates a session identically to LoginWithPassword.
	LoginWithGoogle(ctx context.Context, idToken string) (*domain.User, string, error)

	// Logout revokes the presented session token.
	Logout(ctx context.Context, token string) error
}
