package services

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/idtoken"

	"github.com/upcyclehq/recycle_scan_api/internal/core/domain"
	portssvc "github.com/upcyclehq/recycle_scan_api/internal/core/ports/services"
)

type googleIdentityVerifier struct {
	clientID string
}

// NewGoogleIdentityVerifier verifies Google ID tokens against the configured
// OAuth client ID (the token audience).
func NewGoogleIdentityVerifier(clientID string) portssvc.IdentityVerifier {
	return &googleIdentityVerifier{clientID: clientID}
}

var _ portssvc.IdentityVerifier = (*googleIdentityVerifier)(nil)

func (v *googleIdentityVerifier) VerifyIDToken(ctx context.Context, idTokenString string) (*domain.GoogleIdentity, error) {
	if v.clientID == "" {
		return nil, errors.New("google client ID is not configured in the application")
	}

	payload, err := idtoken.Validate(ctx, idTokenString, v.clientID)
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %w", err)
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	emailVerified, _ := payload.Claims["email_verified"].(bool)

	return &domain.GoogleIdentity{
		Email:         email,
		Subject:       payload.Subject,
		Name:          name,
		EmailVerified: emailVerified,
	}, nil
}
