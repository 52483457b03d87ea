package main

import (
	"context"
	"os"

	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/config"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/handler"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/logger"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/server"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/service"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/store"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Print(os.Stdout)

	log := logger.NewLogger("tweet-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
