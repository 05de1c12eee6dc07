package repositories

import (
	"context"

	"github.com/upcyclehq/recycle_scan_api/internal/core/domain"
)

// UserRepository owns persistent user state. Password hashing and
// verification happen behind this interface; plaintext never escapes it.
type UserRepository interface {
	// RegisterUser creates an account and returns the new user ID.
	// Duplicate email/username surface as apperrors.ErrEmailTaken /
	// ErrUsernameTaken (both wrap ErrDuplicate).
	RegisterUser(ctx context.Context, user domain.NewUser) (string, error)

	// AuthenticateUser verifies identifier (email or username, case-insensitive)
	// and password, updates last_login_at and returns the user ID. Unknown
	// identifier and wrong password both return apperrors.ErrUnauthorized.
	AuthenticateUser(ctx context.Context, identifier, password string) (string, error)

	// FindUserByID retrieves a user by ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email, case-insensitively.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// PatchUser applies the supplied fields in a single parameterized update
	// and returns the updated user.
	PatchUser(ctx context.Context, userID string, patch domain.UserPatch) (*domain.User, error)
}
