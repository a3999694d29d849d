package app

import (
	"github.com/asketsystem/lifebook/internal/http/handlers"
	"github.com/asketsystem/lifebook/internal/platform/logger"
)

type Handlers struct {
	Content *handlers.ContentHandler
	Health  *handlers.HealthHandler
}

func wireHandlers(log *logger.Logger, cfg Config, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Content: handlers.NewContentHandler(log, services.Content, cfg.Development()),
		Health:  handlers.NewHealthHandler(),
	}
}
