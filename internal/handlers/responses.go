package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/upcyclehq/recycle_scan_api/internal/apperrors"
	"github.com/upcyclehq/recycle_scan_api/internal/middleware"
)

// ErrorResponse is the generic error response structure for handlers. The
// error field carries a machine-readable tag, never prose.
type ErrorResponse struct {
	Error string `json:"error"`
}

func respondError(c *gin.Context, status int, tag string) {
	c.JSON(status, ErrorResponse{Error: tag})
}

// respondServerError logs the underlying failure and returns the opaque
// server_error tag; details stay in the log, not the response.
func respondServerError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Error("Request failed", slog.String("error", err.Error()))
	respondError(c, http.StatusInternalServerError, "server_error")
}

// conflictTag maps a duplicate-classified error to its specific tag.
func conflictTag(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrEmailTaken):
		return "email_taken"
	case errors.Is(err, apperrors.ErrUsernameTaken):
		return "username_taken"
	default:
		return "conflict"
	}
}
