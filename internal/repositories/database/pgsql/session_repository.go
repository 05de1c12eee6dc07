package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/upcyclehq/recycle_scan_api/internal/apperrors"
	"github.com/upcyclehq/recycle_scan_api/internal/core/domain"
	portsrepo "github.com/upcyclehq/recycle_scan_api/internal/core/ports/repositories"
	"github.com/upcyclehq/recycle_scan_api/internal/utils"
)

// sessionTokenBytes gives a 64-character hex token.
const sessionTokenBytes = 32

type PgxSessionRepository struct {
	db *pgxpool.Pool
}

func newPgxSessionRepository(db *pgxpool.Pool) portsrepo.SessionRepository {
	return &PgxSessionRepository{db: db}
}

var _ portsrepo.SessionRepository = (*PgxSessionRepository)(nil)

func (r *PgxSessionRepository) CreateSession(ctx context.Context, userID string, lifetime time.Duration) (string, error) {
	token, err := utils.GenerateSecureRandomString(sessionTokenBytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}

	query := `
        INSERT INTO sessions (session_token, user_id, expires_at)
        VALUES ($1, $2, $3);
    `
	_, err = r.db.Exec(ctx, query, token, userID, time.Now().Add(lifetime))
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	return token, nil
}

func (r *PgxSessionRepository) FindValidSession(ctx context.Context, token string) (*domain.Session, error) {
	// Validity is decided here, in one place: not revoked, not expired.
	query := `
		SELECT session_token, user_id, created_at, expires_at, revoked_at
		FROM sessions
		WHERE session_token = $1
		  AND revoked_at IS NULL
		  AND expires_at > now();
	`
	var s domain.Session
	err := r.db.QueryRow(ctx, query, token).Scan(
		&s.Token,
		&s.UserID,
		&s.CreatedAt,
		&s.ExpiresAt,
		&s.RevokedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}
	return &s, nil
}

func (r *PgxSessionRepository) RevokeSession(ctx context.Context, token string) error {
	query := `
        UPDATE sessions
        SET revoked_at = now()
        WHERE session_token = $1 AND revoked_at IS NULL;
    `
	// Revoking an unknown or already revoked token is a no-op, not an error.
	if _, err := r.db.Exec(ctx, query, token); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}
