package handler

import (
	"github.com/MKhiriev/conf-keeper/internal/config"
	"github.com/MKhiriev/conf-keeper/internal/handler/http"
	"github.com/MKhiriev/conf-keeper/internal/logger"
	"github.com/MKhiriev/conf-keeper/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, token string, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if token == "" {
		return nil, errEmptyToken
	}

	handlers := &Handlers{}
	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, token, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
