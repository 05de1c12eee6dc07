package services

import (
	"context"

	"github.com/upcyclehq/recycle_scan_api/internal/core/domain"
	"github.com/upcyclehq/recycle_scan_api/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetProfile retrieves a user by ID.
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// Register creates a new account and returns its user ID.
	Register(ctx context.Context, req dto.RegisterRequest) (string, error)

	// UpdateProfile normalizes and persists the supplied fields only.
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error)
}

// UserProvisioningSvc defines operations for auto-provisioning federated users.
type UserProvisioningSvc interface {
	// FindOrCreateGoogleUser reuses the account matching the verified email or
	// registers one with an unusable random password. Must never block on the
	// user setting a password.
	FindOrCreateGoogleUser(ctx context.Context, identity domain.GoogleIdentity) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserProvisioningSvc
}
