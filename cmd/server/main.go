package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/conf-keeper/internal/config"
	"github.com/MKhiriev/conf-keeper/internal/handler"
	"github.com/MKhiriev/conf-keeper/internal/logger"
	"github.com/MKhiriev/conf-keeper/internal/server"
	"github.com/MKhiriev/conf-keeper/internal/service"
	"github.com/MKhiriev/conf-keeper/internal/store"
	"github.com/MKhiriev/conf-keeper/internal/utils"
	"github.com/MKhiriev/conf-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Println(models.NewBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("conf-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Any("storage", cfg.Storage).
		Any("server", cfg.Server).
		Str("runtime_dir", cfg.RuntimeDir).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	log.Info().Stringer("prefix", storages.ConfStore.Prefix()).Msg("conf store ready")
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	token, err := utils.ProvisionToken(cfg.App.Token, cfg.TokenPath())
	if err != nil {
		log.Fatal().Err(err).Msg("error provisioning access token")
	}
	if path := cfg.TokenPath(); path != "" {
		log.Info().Str("path", path).Msg("access token file ready")
	}

	services := service.NewServices(storages, log)

	handlers, err := handler.NewHandlers(services, token, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, cfg.PortPath(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		_ = storages.Close()
		log.Fatal().Err(err).Msg("server stopped with an error")
	}
}
