package main

import (
	"context"
	"os"

	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/client"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/config"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/logger"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	buildInfo.Print(os.Stdout)

	log := logger.NewClientLogger("tweet-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	app, err := client.NewApp(cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
