package http

import (
	"github.com/MKhiriev/conf-keeper/internal/config"
	"github.com/MKhiriev/conf-keeper/internal/logger"
	"github.com/MKhiriev/conf-keeper/internal/service"
)

type Handler struct {
	services  *service.Services
	token     string
	apiPrefix string

	logger *logger.Logger
}

// NewHandler returns a Handler accepting requests that carry token.
func NewHandler(services *service.Services, token string, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Str("api_prefix", cfg.APIPrefix).Msg("http handler created")
	return &Handler{
		services:  services,
		token:     token,
		apiPrefix: cfg.APIPrefix,
		logger:    logger,
	}
}
