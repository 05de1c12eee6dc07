package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/upcyclehq/recycle_scan_api/internal/apperrors"
	"github.com/upcyclehq/recycle_scan_api/internal/core/domain"
	portsrepo "github.com/upcyclehq/recycle_scan_api/internal/core/ports/repositories"
	portssvc "github.com/upcyclehq/recycle_scan_api/internal/core/ports/services"
	"github.com/upcyclehq/recycle_scan_api/internal/platform/config"
)

type authService struct {
	cfg         *config.Config
	userRepo    portsrepo.UserRepository
	sessionRepo portsrepo.SessionRepository
	users       portssvc.UserProvisioningSvc
	verifier    portssvc.IdentityVerifier
}

// NewAuthService creates the session-lifecycle service.
func NewAuthService(
	cfg *config.Config,
	userRepo portsrepo.UserRepository,
	sessionRepo portsrepo.SessionRepository,
	users portssvc.UserProvisioningSvc,
	verifier portssvc.IdentityVerifier,
) portssvc.AuthSvcFacade {
	return &authService{
		cfg:         cfg,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		users:       users,
		verifier:    verifier,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) LoginWithPassword(ctx context.Context, identifier, password string) (*domain.User, string, error) {
	if identifier == "" || password == "" {
		return nil, "", fmt.Errorf("identifier and password are required: %w", apperrors.ErrValidation)
	}

	userID, err := s.userRepo.AuthenticateUser(ctx, identifier, password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			return nil, "", apperrors.ErrUnauthorized
		}
		return nil, "", fmt.Errorf("authentication failed: %w", err)
	}

	return s.openSession(ctx, userID)
}

func (s *authService) LoginWithGoogle(ctx context.Context, idToken string) (*domain.User, string, error) {
	identity, err := s.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, "", fmt.Errorf("identity token verification failed: %w", apperrors.ErrUnauthorized)
	}
	if identity.Email == "" || identity.Subject == "" {
		return nil, "", fmt.Errorf("identity token missing email or subject: %w", apperrors.ErrUnauthorized)
	}

	user, err := s.users.FindOrCreateGoogleUser(ctx, *identity)
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve federated user: %w", err)
	}

	token, err := s.sessionRepo.CreateSession(ctx, user.UserID, s.cfg.SessionLifetime)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s", apperrors.ErrSessionCreation, err.Error())
	}
	return user, token, nil
}

func (s *authService) ValidateSession(ctx context.Context, token string) (string, error) {
	session, err := s.sessionRepo.FindValidSession(ctx, token)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.ErrUnauthorized
		}
		return "", fmt.Errorf("session lookup failed: %w", err)
	}
	return session.UserID, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.sessionRepo.RevokeSession(ctx, token); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	return nil
}

// openSession loads the user and issues a session. Authentication already
// succeeded here, so any failure in this window is reported as a session
// problem rather than a generic store error; the login must not look like a
// credential failure after the credentials were accepted.
func (s *authService) openSession(ctx context.Context, userID string) (*domain.User, string, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, "", fmt.Errorf("%w: loading authenticated user: %s", apperrors.ErrSessionCreation, err.Error())
	}

	token, err := s.sessionRepo.CreateSession(ctx, userID, s.cfg.SessionLifetime)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s", apperrors.ErrSessionCreation, err.Error())
	}
	return user, token, nil
}
