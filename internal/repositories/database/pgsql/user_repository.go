package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/upcyclehq/recycle_scan_api/internal/apperrors"
	"github.com/upcyclehq/recycle_scan_api/internal/core/domain"
	portsrepo "github.com/upcyclehq/recycle_scan_api/internal/core/ports/repositories"
	"github.com/upcyclehq/recycle_scan_api/internal/utils"
)

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{db: db}
}

// Ensure PgxUserRepository implements portsrepo.UserRepository
var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

const userColumns = `id, email, username, COALESCE(full_name, ''), created_at, last_login_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.UserID,
		&u.Email,
		&u.Username,
		&u.FullName,
		&u.CreatedAt,
		&u.LastLoginAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PgxUserRepository) RegisterUser(ctx context.Context, user domain.NewUser) (string, error) {
	// Hashing is this layer's responsibility; plaintext stays here.
	hash, err := utils.HashPassword(user.Password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	userID := uuid.NewString()
	query := `
        INSERT INTO users (id, email, username, full_name, password_hash, accept_terms, accept_privacy)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err = r.db.Exec(ctx, query,
		userID,
		user.Email,
		user.Username,
		user.FullName,
		hash,
		user.AcceptTerms,
		user.AcceptPrivacy,
	)
	if err != nil {
		if dupErr := classifyUniqueViolation(err); dupErr != nil {
			return "", dupErr
		}
		return "", fmt.Errorf("failed to register user: %w", err)
	}
	return userID, nil
}

func (r *PgxUserRepository) AuthenticateUser(ctx context.Context, identifier, password string) (string, error) {
	query := `
		SELECT id, password_hash
		FROM users
		WHERE LOWER(email) = LOWER($1) OR LOWER(username) = LOWER($1);
	`
	var userID, hash string
	err := r.db.QueryRow(ctx, query, identifier).Scan(&userID, &hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Same error as a wrong password so existence cannot be probed.
			return "", apperrors.ErrUnauthorized
		}
		return "", fmt.Errorf("failed to look up user for authentication: %w", err)
	}

	if !utils.CheckPasswordHash(password, hash) {
		return "", apperrors.ErrUnauthorized
	}

	if _, err := r.db.Exec(ctx, `UPDATE users SET last_login_at = now() WHERE id = $1;`, userID); err != nil {
		return "", fmt.Errorf("failed to record login time: %w", err)
	}
	return userID, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1;`
	user, err := scanUser(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %s: %w", userID, err)
	}
	return user, nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1);`
	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

// PatchUser applies only the supplied fields. The SET list is computed from
// which pointers are non-nil; values are always bound parameters.
func (r *PgxUserRepository) PatchUser(ctx context.Context, userID string, patch domain.UserPatch) (*domain.User, error) {
	if patch.IsEmpty() {
		return nil, fmt.Errorf("empty patch: %w", apperrors.ErrValidation)
	}

	sets := make([]string, 0, 2)
	args := []any{userID}
	if patch.FullName != nil {
		args = append(args, *patch.FullName)
		sets = append(sets, fmt.Sprintf("full_name = $%d", len(args)))
	}
	if patch.Username != nil {
		args = append(args, *patch.Username)
		sets = append(sets, fmt.Sprintf("username = $%d", len(args)))
	}

	query := `UPDATE users SET ` + strings.Join(sets, ", ") +
		` WHERE id = $1 RETURNING ` + userColumns + `;`

	user, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		if dupErr := classifyUniqueViolation(err); dupErr != nil {
			return nil, dupErr
		}
		return nil, fmt.Errorf("failed to patch user %s: %w", userID, err)
	}
	return user, nil
}
