package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/upcyclehq/recycle_scan_api/internal/classifier"
	"github.com/upcyclehq/recycle_scan_api/internal/dto"
)

// DetectHandler runs the configured classification backend on an image.
type DetectHandler struct {
	classifier classifier.Classifier
}

// NewDetectHandler creates a new DetectHandler.
func NewDetectHandler(cl classifier.Classifier) *DetectHandler {
	return &DetectHandler{classifier: cl}
}

// registerDetectRoutes sets up the authenticated detection route.
func registerDetectRoutes(rg *gin.RouterGroup, cl classifier.Classifier) {
	h := NewDetectHandler(cl)

	rg.POST("/detect", h.Detect)
}

// Detect godoc
// @Summary Classify the material in an image
// @Description Runs the configured backend (mock or remote detection service).
// @Tags detect
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param image body dto.DetectRequest true "Base64-encoded image"
// @Success 200 {object} domain.ClassificationResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /detect [post]
func (h *DetectHandler) Detect(c *gin.Context) {
	var req dto.DetectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "missing_image")
		return
	}

	result, err := h.classifier.Classify(c.Request.Context(), req.Image)
	if err != nil {
		respondServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
