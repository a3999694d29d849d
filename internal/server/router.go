package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asketsystem/lifebook/internal/http/handlers"
	"github.com/asketsystem/lifebook/internal/http/middleware"
	"github.com/asketsystem/lifebook/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	ContentHandler *handlers.ContentHandler
	HealthHandler  *handlers.HealthHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimit      gin.HandlerFunc
	FrontendURL    string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(cfg.Log))
	router.Use(middleware.CORS(cfg.FrontendURL))
	if cfg.RateLimit != nil {
		router.Use(cfg.RateLimit)
	}

	// Public
	router.GET("/health", cfg.HealthHandler.HealthCheck)

	api := router.Group("/api")
	api.GET("", cfg.AuthMiddleware.OptionalAuth(), cfg.HealthHandler.APIIndex)

	// Protected
	contentGroup := api.Group("/content")
	contentGroup.Use(cfg.AuthMiddleware.RequireAuth())
	contentGroup.POST("/daily", cfg.ContentHandler.GenerateDaily)
	contentGroup.GET("/daily", cfg.ContentHandler.GetDaily)
	contentGroup.POST("/meditation", cfg.ContentHandler.GenerateMeditation)
	contentGroup.POST("/prayer", cfg.ContentHandler.GeneratePrayer)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Route not found",
			"path":  c.Request.URL.Path,
		})
	})

	return router
}
