package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/upcyclehq/recycle_scan_api/internal/core/ports/services"
	"github.com/upcyclehq/recycle_scan_api/internal/middleware"
	"github.com/upcyclehq/recycle_scan_api/internal/platform/config"
)

// HealthHandler reports service and database health.
type HealthHandler struct {
	healthService portssvc.HealthSvcFacade
	environment   string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(hs portssvc.HealthSvcFacade, cfg *config.Config) *HealthHandler {
	env := "development"
	if cfg.IsProduction {
		env = "production"
	}
	return &HealthHandler{healthService: hs, environment: env}
}

// DatabaseStatus reports store reachability plus the store's clock.
type DatabaseStatus struct {
	Connected bool      `json:"connected"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthResponse is the body for GET /health.
type HealthResponse struct {
	OK          bool           `json:"ok"`
	Timestamp   time.Time      `json:"timestamp"`
	Database    DatabaseStatus `json:"database"`
	Environment string         `json:"environment"`
}

// HealthErrorResponse is the failure body for GET /health; unlike other
// endpoints it carries the full envelope alongside the error tag.
type HealthErrorResponse struct {
	OK          bool      `json:"ok"`
	Error       string    `json:"error"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment"`
}

// Health godoc
// @Summary Service health
// @Description Pings the database and reports its clock.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 500 {object} HealthErrorResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	dbTime, err := h.healthService.Check(c.Request.Context())
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Health check failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, HealthErrorResponse{
			OK:          false,
			Error:       "db_unavailable",
			Timestamp:   time.Now(),
			Environment: h.environment,
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		OK:          true,
		Timestamp:   dbTime,
		Database:    DatabaseStatus{Connected: true, Timestamp: dbTime},
		Environment: h.environment,
	})
}
