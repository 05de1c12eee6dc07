package pgsql

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/upcyclehq/recycle_scan_api/internal/apperrors"
)

const uniqueViolationCode = "23505"

// classifyUniqueViolation maps a unique_violation to the app-level duplicate
// error for the offending field, or nil when err is something else.
func classifyUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolationCode {
		return nil
	}
	switch {
	case strings.Contains(pgErr.ConstraintName, "email"):
		return apperrors.ErrEmailTaken
	case strings.Contains(pgErr.ConstraintName, "username"):
		return apperrors.ErrUsernameTaken
	default:
		return apperrors.ErrDuplicate
	}
}
