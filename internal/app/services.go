package app

import (
	"github.com/asketsystem/lifebook/internal/content"
	"github.com/asketsystem/lifebook/internal/platform/logger"
)

type Services struct {
	Content content.Service
}

func wireServices(log *logger.Logger, clients Clients) Services {
	log.Info("Wiring services...")
	return Services{
		Content: content.NewService(log, clients.AI, clients.Store),
	}
}
