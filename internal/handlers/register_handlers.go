package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/upcyclehq/recycle_scan_api/cmd/docs"
	portssvc "github.com/upcyclehq/recycle_scan_api/internal/core/ports/services"
	"github.com/upcyclehq/recycle_scan_api/internal/middleware"
	"github.com/upcyclehq/recycle_scan_api/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	healthHandler := NewHealthHandler(services.Health, cfg)
	r.GET("/health", healthHandler.Health)

	// Public routes: registration/login and the reset pair, rate limited
	// on the credential-bearing endpoints.
	registerAuthRoutes(r, services)
	registerPasswordResetRoutes(r, cfg, services, newResetLimiter())
	registerIdeaRoutes(r, services.Idea)

	// Authenticated routes behind the session check.
	setupAuthenticatedRoutes(r, services)

	setupInfoRoute(r, cfg)
	setupSwaggerRoutes(r, cfg)
}

// newResetLimiter builds the IP limiter shared by the reset endpoints:
// 10 requests per minute.
func newResetLimiter() gin.HandlerFunc {
	rate, _ := limiter.NewRateFromFormatted("10-M")
	return middleware.RateLimit(limiter.New(memory.NewStore(), rate))
}

// setupAuthenticatedRoutes groups every endpoint that requires a valid
// session and delegates to the entity route registrations.
func setupAuthenticatedRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	authed := r.Group("/", middleware.SessionAuthMiddleware(services.Auth))

	authHandler := NewAuthHandler(services.User, services.Auth)
	authed.POST("/auth/logout", authHandler.Logout)

	registerProfileRoutes(authed, services.User)
	registerScanHistoryRoutes(authed, services.ScanHistory)
	registerDetectRoutes(authed, services.Classifier)
}

// setupInfoRoute exposes build/runtime facts outside production.
func setupInfoRoute(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		return
	}
	r.GET("/info", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"name":              "recycle_scan_api",
			"environment":       "development",
			"classifierBackend": cfg.ClassifierBackend,
		})
	})
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
