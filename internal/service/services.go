package service

import (
	"github.com/MKhiriev/conf-keeper/internal/logger"
	"github.com/MKhiriev/conf-keeper/internal/store"
)

type Services struct {
	ConfService ConfService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		ConfService: NewConfValidationService().Wrap(NewConfService(storages.ConfStore, logger)),
	}
}
