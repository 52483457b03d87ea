// Package tui implements the terminal tweet form on top of Bubble Tea.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/logger"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/service"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/models"
)

type TUI struct {
	services  *service.ClientServices
	status    *StatusRegion
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

// New returns the form UI. status must be the StatusDisplay the client
// services were built with.
func New(services *service.ClientServices, status *StatusRegion, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.TweetService == nil {
		return nil, ErrNoTweetService
	}
	if status == nil {
		return nil, ErrNoStatusRegion
	}

	return &TUI{
		services:  services,
		status:    status,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Run shows the form and blocks until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context) error {
	ctx = t.logger.WithContext(ctx)
	model := NewFormModel(ctx, t.services.TweetService, t.status, t.buildInfo)

	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("tweet form: %w", err)
	}

	return nil
}
