package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	portssvc "github.com/upcyclehq/recycle_scan_api/internal/core/ports/services"
)

// sessionTokenKey stores the raw bearer token so the logout handler can
// revoke the exact session that authenticated the request.
const sessionTokenKey = contextKey("sessionToken")

// SessionAuthMiddleware creates a Gin middleware handler that resolves the
// bearer token to a user via the session store. Tokens are opaque; validity
// is decided entirely by the store (not revoked, not expired).
func SessionAuthMiddleware(validator portssvc.SessionValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_format"})
			return
		}

		token := parts[1]
		userID, err := validator.ValidateSession(c.Request.Context(), token)
		if err != nil {
			logger.Warn("Session validation failed", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_or_expired_token"})
			return
		}

		// Store the user ID and token in the context (using standard context)
		ctxWithUser := context.WithValue(c.Request.Context(), userIDKey, userID)
		ctxWithToken := context.WithValue(ctxWithUser, sessionTokenKey, token)

		// Add user ID to the logger and store the enriched logger back
		enrichedLogger := logger.With(slog.String("user_id", userID))
		ctxWithLoggerAndUser := context.WithValue(ctxWithToken, loggerCtxKey, enrichedLogger)

		c.Request = c.Request.WithContext(ctxWithLoggerAndUser)

		c.Next()
	}
}

// GetSessionTokenFromContext retrieves the bearer token the auth middleware
// validated for this request.
func GetSessionTokenFromContext(c *gin.Context) (string, bool) {
	token, ok := c.Request.Context().Value(sessionTokenKey).(string)
	return token, ok && token != ""
}
