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

const resetTokenBytes = 32

type PgxPasswordResetRepository struct {
	db *pgxpool.Pool
}

func newPgxPasswordResetRepository(db *pgxpool.Pool) portsrepo.PasswordResetRepository {
	return &PgxPasswordResetRepository{db: db}
}

var _ portsrepo.PasswordResetRepository = (*PgxPasswordResetRepository)(nil)

func (r *PgxPasswordResetRepository) CreateReset(ctx context.Context, email string, lifetime time.Duration) (*domain.PasswordReset, error) {
	var userID string
	err := r.db.QueryRow(ctx, `SELECT id FROM users WHERE LOWER(email) = LOWER($1);`, email).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up user for password reset: %w", err)
	}

	token, err := utils.GenerateSecureRandomString(resetTokenBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to generate reset token: %w", err)
	}

	reset := domain.PasswordReset{
		Token:     token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(lifetime),
	}
	query := `
        INSERT INTO password_resets (token, user_id, expires_at)
        VALUES ($1, $2, $3);
    `
	if _, err := r.db.Exec(ctx, query, reset.Token, reset.UserID, reset.ExpiresAt); err != nil {
		return nil, fmt.Errorf("failed to create password reset: %w", err)
	}
	return &reset, nil
}

// ConsumeReset validates and consumes the token in one transaction so a token
// can never set a password twice, even under concurrent consumes.
func (r *PgxPasswordResetRepository) ConsumeReset(ctx context.Context, token, newPassword string) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to begin reset transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	var userID string
	err = tx.QueryRow(ctx, `
		SELECT user_id
		FROM password_resets
		WHERE token = $1 AND used_at IS NULL AND expires_at > now()
		FOR UPDATE;
	`, token).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Invalid, expired or already used: plain failure, no detail.
			return false, nil
		}
		return false, fmt.Errorf("failed to look up reset token: %w", err)
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return false, fmt.Errorf("failed to hash new password: %w", err)
	}

	if _, err := tx.Exec(ctx, `UPDATE users SET password_hash = $2 WHERE id = $1;`, userID, hash); err != nil {
		return false, fmt.Errorf("failed to update password: %w", err)
	}
	if _, err := tx.Exec(ctx, `UPDATE password_resets SET used_at = now() WHERE token = $1;`, token); err != nil {
		return false, fmt.Errorf("failed to mark reset token used: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit reset transaction: %w", err)
	}
	return true, nil
}
