package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/upcyclehq/recycle_scan_api/internal/apperrors"
	portssvc "github.com/upcyclehq/recycle_scan_api/internal/core/ports/services"
	"github.com/upcyclehq/recycle_scan_api/internal/dto"
	"github.com/upcyclehq/recycle_scan_api/internal/middleware"
)

// ScanHistoryHandler handles the append-only scan-history endpoints.
type ScanHistoryHandler struct {
	scanService portssvc.ScanHistorySvcFacade
}

// NewScanHistoryHandler creates a new ScanHistoryHandler.
func NewScanHistoryHandler(ss portssvc.ScanHistorySvcFacade) *ScanHistoryHandler {
	return &ScanHistoryHandler{scanService: ss}
}

// registerScanHistoryRoutes sets up the authenticated scan-history routes.
func registerScanHistoryRoutes(rg *gin.RouterGroup, scanService portssvc.ScanHistorySvcFacade) {
	h := NewScanHistoryHandler(scanService)

	rg.POST("/scan-history", h.SaveScan)
	rg.GET("/scan-history", h.ListScans)
}

// SaveScan godoc
// @Summary Append a scan to the caller's history
// @Tags scan-history
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param scan body dto.SaveScanRequest true "Scan result"
// @Success 201 {object} dto.ScanRow
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /scan-history [post]
func (h *ScanHistoryHandler) SaveScan(c *gin.Context) {
	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "invalid_or_expired_token")
		return
	}

	var req dto.SaveScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "missing_material_label")
		return
	}
	// A caller-asserted user ID must match the session owner; when absent
	// the session owner is used.
	if req.UserID != "" && req.UserID != callerID {
		respondError(c, http.StatusForbidden, "access_denied")
		return
	}
	if strings.TrimSpace(req.MaterialLabel) == "" {
		respondError(c, http.StatusBadRequest, "missing_material_label")
		return
	}
	if req.Confidence == nil {
		respondError(c, http.StatusBadRequest, "invalid_confidence")
		return
	}

	entry, err := h.scanService.AppendScan(c.Request.Context(), callerID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			respondError(c, http.StatusBadRequest, "missing_material_label")
			return
		}
		respondServerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToScanRow(entry))
}

// ListScans godoc
// @Summary List the caller's scan history
// @Description Returns a newest-first page plus the total entry count.
// @Tags scan-history
// @Produce json
// @Security BearerAuth
// @Param userId query string false "User ID (must equal the authenticated user when present)"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListScansResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /scan-history [get]
func (h *ScanHistoryHandler) ListScans(c *gin.Context) {
	callerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "invalid_or_expired_token")
		return
	}

	var params dto.ListScansParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_query")
		return
	}
	// An omitted userId lists the caller's own history; a mismatched one is
	// rejected, same as the profile routes.
	if params.UserID != "" && params.UserID != callerID {
		respondError(c, http.StatusForbidden, "access_denied")
		return
	}

	entries, total, err := h.scanService.ListScans(c.Request.Context(), callerID, params.Limit, params.Offset)
	if err != nil {
		respondServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListScansResponse(entries, total))
}
