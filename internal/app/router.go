package app

import (
	"github.com/gin-gonic/gin"

	"github.com/asketsystem/lifebook/internal/platform/logger"
	"github.com/asketsystem/lifebook/internal/server"
)

func wireRouter(log *logger.Logger, cfg Config, handlers Handlers, middleware Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		Log:            log,
		ContentHandler: handlers.Content,
		HealthHandler:  handlers.Health,
		AuthMiddleware: middleware.Auth,
		RateLimit:      middleware.RateLimit,
		FrontendURL:    cfg.FrontendURL,
	})
}
