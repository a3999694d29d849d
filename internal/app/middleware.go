package app

import (
	"github.com/gin-gonic/gin"

	"github.com/asketsystem/lifebook/internal/http/middleware"
	"github.com/asketsystem/lifebook/internal/platform/logger"
)

type Middleware struct {
	Auth      *middleware.AuthMiddleware
	RateLimit gin.HandlerFunc
}

func wireMiddleware(log *logger.Logger, cfg Config, clients Clients) Middleware {
	log.Info("Wiring middleware...")

	var counter middleware.Counter
	if clients.Redis != nil {
		counter = middleware.NewRedisCounter(clients.Redis)
	}

	return Middleware{
		Auth:      middleware.NewAuthMiddleware(log, clients.Verifier),
		RateLimit: middleware.RateLimit(log, counter, cfg.RateLimitWindow, cfg.RateLimitMax),
	}
}
