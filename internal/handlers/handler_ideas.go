package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/upcyclehq/recycle_scan_api/internal/apperrors"
	portssvc "github.com/upcyclehq/recycle_scan_api/internal/core/ports/services"
	"github.com/upcyclehq/recycle_scan_api/internal/dto"
)

// IdeaHandler serves the upcycling idea catalog.
type IdeaHandler struct {
	ideaService portssvc.IdeaSvcFacade
}

// NewIdeaHandler creates a new IdeaHandler.
func NewIdeaHandler(is portssvc.IdeaSvcFacade) *IdeaHandler {
	return &IdeaHandler{ideaService: is}
}

// registerIdeaRoutes sets up the public idea-catalog routes.
func registerIdeaRoutes(rg *gin.Engine, ideaService portssvc.IdeaSvcFacade) {
	h := NewIdeaHandler(ideaService)

	rg.GET("/ideas", h.ListIdeas)
	rg.GET("/ideas/:id", h.GetIdea)
}

// ListIdeas godoc
// @Summary List upcycling ideas
// @Description Optionally filtered by material label.
// @Tags ideas
// @Produce json
// @Param material query string false "Material filter"
// @Success 200 {object} dto.ListIdeasResponse
// @Router /ideas [get]
func (h *IdeaHandler) ListIdeas(c *gin.Context) {
	ideas := h.ideaService.ListIdeas(c.Request.Context(), c.Query("material"))
	c.JSON(http.StatusOK, dto.ListIdeasResponse{Ideas: ideas})
}

// GetIdea godoc
// @Summary Get a single upcycling idea
// @Tags ideas
// @Produce json
// @Param id path string true "Idea ID"
// @Success 200 {object} domain.Idea
// @Failure 404 {object} ErrorResponse
// @Router /ideas/{id} [get]
func (h *IdeaHandler) GetIdea(c *gin.Context) {
	idea, err := h.ideaService.GetIdea(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, "not_found")
			return
		}
		respondServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, idea)
}
