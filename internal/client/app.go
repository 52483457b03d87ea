package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/adapter"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/config"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/logger"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/service"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/tui"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/models"
)

var errNoUI = errors.New("no ui is provided")

type App struct {
	ui     UI
	logger *logger.Logger
}

// NewApp builds the adapter, the client services and the tweet form from
// cfg.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	api, err := adapter.NewHTTPTweetAPI(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create tweet api adapter: %w", err)
	}

	status := tui.NewStatusRegion()
	services := service.NewClientServices(api, status, logger)

	ui, err := tui.New(services, status, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("create tweet form: %w", err)
	}

	return newApp(ui, logger)
}

func newApp(ui UI, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errNoUI
	}
	return &App{ui: ui, logger: logger}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Msg("tweet form started")
	defer a.logger.Info().Msg("tweet form closed")

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
