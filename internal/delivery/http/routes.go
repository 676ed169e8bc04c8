package http

import (
	"github.com/gin-gonic/gin"

	"github.com/cartwise/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	router.SetHTMLTemplate(pageTemplates())

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// Browser surface
	router.GET("/", handler.Index)
	router.POST("/plan", handler.PlanForm)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		shopping := v1.Group("/shopping")
		{
			shopping.POST("/plan", handler.PlanJSON)
		}
	}

	return router
}
