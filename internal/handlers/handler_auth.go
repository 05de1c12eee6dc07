package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/upcyclehq/recycle_scan_api/internal/apperrors"
	portssvc "github.com/upcyclehq/recycle_scan_api/internal/core/ports/services"
	"github.com/upcyclehq/recycle_scan_api/internal/dto"
	"github.com/upcyclehq/recycle_scan_api/internal/middleware"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	userService portssvc.UserSvcFacade
	authService portssvc.AuthSvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserSvcFacade, as portssvc.AuthSvcFacade) *AuthHandler {
	return &AuthHandler{userService: us, authService: as}
}

// registerAuthRoutes sets up the public authentication routes.
func registerAuthRoutes(rg *gin.Engine, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.User, services.Auth)

	// Credential endpoints share one IP limiter: 5 requests per minute.
	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limited := middleware.RateLimit(ipLimiter)

	auth := rg.Group("/auth")
	{
		auth.POST("/register", limited, h.Register)
		auth.POST("/login", limited, h.Login)
		auth.POST("/login/google", limited, h.GoogleLogin)
	}
}

// Register godoc
// @Summary Register new user
// @Description Creates a new user account.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "User Registration Info"
// @Success 201 {object} dto.RegisterResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Conflict (email or username exists)"
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "missing_fields")
		return
	}
	if req.Email == "" || req.Username == "" || req.Password == "" {
		respondError(c, http.StatusBadRequest, "missing_fields")
		return
	}

	userID, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			respondError(c, http.StatusBadRequest, "missing_fields")
		case errors.Is(err, apperrors.ErrDuplicate):
			respondError(c, http.StatusConflict, conflictTag(err))
		default:
			respondServerError(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{UserID: userID})
}

// Login godoc
// @Summary User login
// @Description Authenticates by email or username and opens a session.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "missing_fields")
		return
	}
	if req.Identifier == "" || req.Password == "" {
		respondError(c, http.StatusBadRequest, "missing_fields")
		return
	}

	user, token, err := h.authService.LoginWithPassword(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		switch {
		// Same response whether the identifier exists or the password is
		// wrong, so accounts cannot be enumerated.
		case errors.Is(err, apperrors.ErrUnauthorized):
			respondError(c, http.StatusUnauthorized, "invalid_credentials")
		case errors.Is(err, apperrors.ErrSessionCreation):
			respondError(c, http.StatusInternalServerError, "session_creation_failed")
		default:
			respondServerError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{UserID: user.UserID, SessionToken: token})
}

// GoogleLogin godoc
// @Summary Login with a Google ID token
// @Description Verifies the ID token, provisioning an account on first login.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.GoogleLoginRequest true "Google ID Token"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login/google [post]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IDToken == "" {
		respondError(c, http.StatusBadRequest, "missing_id_token")
		return
	}

	user, token, err := h.authService.LoginWithGoogle(c.Request.Context(), req.IDToken)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnauthorized):
			respondError(c, http.StatusUnauthorized, "invalid_token")
		case errors.Is(err, apperrors.ErrDuplicate):
			respondError(c, http.StatusConflict, conflictTag(err))
		case errors.Is(err, apperrors.ErrSessionCreation):
			respondError(c, http.StatusInternalServerError, "session_creation_failed")
		default:
			respondServerError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{UserID: user.UserID, SessionToken: token})
}

// Logout godoc
// @Summary Revoke the current session
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]bool
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token, ok := middleware.GetSessionTokenFromContext(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "missing_authorization")
		return
	}

	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		respondServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
