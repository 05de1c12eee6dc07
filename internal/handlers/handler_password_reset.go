package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/upcyclehq/recycle_scan_api/internal/core/ports/services"
	"github.com/upcyclehq/recycle_scan_api/internal/dto"
	"github.com/upcyclehq/recycle_scan_api/internal/platform/config"
)

// PasswordResetHandler handles the reset-token request/consume pair.
type PasswordResetHandler struct {
	resetService portssvc.PasswordResetSvcFacade
	isProduction bool
}

// NewPasswordResetHandler creates a new PasswordResetHandler.
func NewPasswordResetHandler(rs portssvc.PasswordResetSvcFacade, cfg *config.Config) *PasswordResetHandler {
	return &PasswordResetHandler{resetService: rs, isProduction: cfg.IsProduction}
}

// registerPasswordResetRoutes sets up the public password-reset routes.
func registerPasswordResetRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer, limited gin.HandlerFunc) {
	h := NewPasswordResetHandler(services.PasswordReset, cfg)

	reset := rg.Group("/auth/password-reset")
	{
		reset.POST("/request", limited, h.Request)
		reset.POST("/consume", limited, h.Consume)
	}
}

// Request godoc
// @Summary Request a password reset token
// @Description Responds with a generic success whether or not the email is registered.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.PasswordResetRequestBody true "Account email"
// @Success 200 {object} dto.PasswordResetRequestResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/password-reset/request [post]
func (h *PasswordResetHandler) Request(c *gin.Context) {
	var req dto.PasswordResetRequestBody
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		respondError(c, http.StatusBadRequest, "missing_email")
		return
	}

	reset, err := h.resetService.RequestReset(c.Request.Context(), req.Email)
	if err != nil {
		respondServerError(c, err)
		return
	}

	resp := dto.PasswordResetRequestResponse{OK: true}
	// Outside production the token is echoed so development flows work
	// without an email sender. In production only {ok} leaves the server,
	// identical for known and unknown emails.
	if !h.isProduction && reset != nil {
		resp.UserID = reset.UserID
		resp.Token = reset.Token
		resp.ExpiresAt = &reset.ExpiresAt
	}
	c.JSON(http.StatusOK, resp)
}

// Consume godoc
// @Summary Consume a password reset token
// @Description Atomically validates the token and sets the new password.
// @Tags auth
// @Accept json
// @Produce json
// @Param consume body dto.PasswordResetConsumeBody true "Token and new password"
// @Success 200 {object} dto.PasswordResetConsumeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/password-reset/consume [post]
func (h *PasswordResetHandler) Consume(c *gin.Context) {
	var req dto.PasswordResetConsumeBody
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" || req.NewPassword == "" {
		respondError(c, http.StatusBadRequest, "missing_fields")
		return
	}

	ok, err := h.resetService.ConsumeReset(c.Request.Context(), req.Token, req.NewPassword)
	if err != nil {
		respondServerError(c, err)
		return
	}

	// An invalid, expired or reused token reports ok:false, not which of
	// the three it was.
	c.JSON(http.StatusOK, dto.PasswordResetConsumeResponse{OK: ok})
}
