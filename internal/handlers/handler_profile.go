package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/upcyclehq/recycle_scan_api/internal/apperrors"
	portssvc "github.com/upcyclehq/recycle_scan_api/internal/core/ports/services"
	"github.com/upcyclehq/recycle_scan_api/internal/dto"
	"github.com/upcyclehq/recycle_scan_api/internal/middleware"
)

// ProfileHandler handles profile read and update requests.
type ProfileHandler struct {
	userService portssvc.UserSvcFacade
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(us portssvc.UserSvcFacade) *ProfileHandler {
	return &ProfileHandler{userService: us}
}

// registerProfileRoutes sets up the authenticated profile routes.
func registerProfileRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := NewProfileHandler(userService)

	rg.GET("/auth/profile", h.GetProfile)
	rg.PUT("/auth/profile", h.UpdateProfile)
}

// GetProfile godoc
// @Summary Get the caller's profile
// @Description Returns the profile for userId, which must match the session owner.
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Param userId query string true "User ID (must equal the authenticated user)"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	requestedID := c.Query("userId")
	if requestedID == "" {
		respondError(c, http.StatusBadRequest, "missing_user_id")
		return
	}

	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "invalid_or_expired_token")
		return
	}
	// Ownership check before any store access.
	if requestedID != callerID {
		respondError(c, http.StatusForbidden, "access_denied")
		return
	}

	user, err := h.userService.GetProfile(c.Request.Context(), callerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "user_not_found")
			return
		}
		respondServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(user))
}

// UpdateProfile godoc
// @Summary Update the caller's profile
// @Description Normalizes and persists the supplied fields only.
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body dto.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} dto.UpdateProfileResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "invalid_or_expired_token")
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "missing_fields")
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), callerID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			respondError(c, http.StatusBadRequest, "missing_fields")
		case errors.Is(err, apperrors.ErrNotFound):
			respondError(c, http.StatusNotFound, "user_not_found")
		case errors.Is(err, apperrors.ErrDuplicate):
			respondError(c, http.StatusConflict, conflictTag(err))
		default:
			respondServerError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToUpdateProfileResponse(user))
}
