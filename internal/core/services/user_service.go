package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/upcyclehq/recycle_scan_api/internal/apperrors"
	"github.com/upcyclehq/recycle_scan_api/internal/core/domain"
	portsrepo "github.com/upcyclehq/recycle_scan_api/internal/core/ports/repositories"
	portssvc "github.com/upcyclehq/recycle_scan_api/internal/core/ports/services"
	"github.com/upcyclehq/recycle_scan_api/internal/dto"
	"github.com/upcyclehq/recycle_scan_api/internal/utils"
)

// usernameBaseMaxLen caps the email local part used for derived usernames.
const usernameBaseMaxLen = 20

// randomPasswordBytes sizes the unusable password given to federated users.
const randomPasswordBytes = 24

type userService struct {
	userRepo portsrepo.UserRepository
}

// NewUserService creates the user service.
func NewUserService(userRepo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (string, error) {
	// Input validation happens before any store call.
	if req.Email == "" || req.Username == "" || req.Password == "" {
		return "", fmt.Errorf("email, username and password are required: %w", apperrors.ErrValidation)
	}

	userID, err := s.userRepo.RegisterUser(ctx, domain.NewUser{
		Email:         req.Email,
		Username:      req.Username,
		FullName:      req.FullName,
		Password:      req.Password,
		AcceptTerms:   req.AcceptTerms,
		AcceptPrivacy: req.AcceptPrivacy,
	})
	if err != nil {
		return "", fmt.Errorf("failed to register user: %w", err)
	}
	return userID, nil
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error) {
	var patch domain.UserPatch
	if req.FullName != nil {
		// Fields that normalize to nothing are skipped, not blanked.
		if normalized := utils.NormalizeFullName(*req.FullName); normalized != "" {
			patch.FullName = &normalized
		}
	}
	if req.Username != nil {
		if normalized := utils.NormalizeUsername(*req.Username); normalized != "" {
			patch.Username = &normalized
		}
	}
	if patch.IsEmpty() {
		return nil, fmt.Errorf("no updatable fields supplied: %w", apperrors.ErrValidation)
	}

	user, err := s.userRepo.PatchUser(ctx, userID, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}

// FindOrCreateGoogleUser reuses the account matching the verified email, or
// registers one with a random unusable password. The derived username is the
// sanitized email local part plus a suffix from the provider subject ID;
// collision avoidance is best-effort, a clash surfaces as a conflict.
func (s *userService) FindOrCreateGoogleUser(ctx context.Context, identity domain.GoogleIdentity) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByEmail(ctx, identity.Email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	randomPassword, err := utils.GenerateSecureRandomString(randomPasswordBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to generate password for federated user: %w", err)
	}

	username := deriveUsername(identity.Email, identity.Subject)
	var fullName *string
	if identity.Name != "" {
		fullName = &identity.Name
	}

	userID, err := s.userRepo.RegisterUser(ctx, domain.NewUser{
		Email:         identity.Email,
		Username:      username,
		FullName:      fullName,
		Password:      randomPassword,
		AcceptTerms:   true,
		AcceptPrivacy: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to auto-register federated user: %w", err)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load auto-registered user: %w", err)
	}
	return user, nil
}

// deriveUsername builds "<sanitized-local-part>_<last 6 of subject>".
func deriveUsername(email, subject string) string {
	local, _, _ := strings.Cut(email, "@")
	var b strings.Builder
	for _, r := range local {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		}
	}
	base := b.String()
	if len(base) > usernameBaseMaxLen {
		base = base[:usernameBaseMaxLen]
	}
	if base == "" {
		base = "user"
	}

	suffix := subject
	if len(suffix) > 6 {
		suffix = suffix[len(suffix)-6:]
	}
	return base + "_" + suffix
}
