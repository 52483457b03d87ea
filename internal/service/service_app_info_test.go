package service

import (
	"context"
	"testing"

	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/config"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/logger"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: ""}, logger.Nop())

	assert.Nil(t, svc)
	require.ErrorIs(t, err, ErrAPIVersionNotConfigured)
}

func TestNewAppInfoService_BlankVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "  \t"}, logger.Nop())

	assert.Nil(t, svc)
	require.ErrorIs(t, err, ErrAPIVersionNotConfigured)
}

func TestGetAppVersion_TrimsConfiguredVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: " 1.2.0\n"}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "1.2.0", svc.GetAppVersion(context.Background()))
}

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "3.1.4"}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "3.1.4", svc.GetAppVersion(context.Background()))
}

// ─────────────────────────────────────────────
// NewServices
// ─────────────────────────────────────────────

func TestNewServices(t *testing.T) {
	cfg := &config.StructuredConfig{App: config.App{Version: "1.0.0"}}

	services, err := NewServices(&store.Storages{}, cfg, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, services.UserService)
	assert.IsType(t, &TweetValidationService{}, services.TweetService)
	assert.Equal(t, "1.0.0", services.AppInfoService.GetAppVersion(context.Background()))
}

func TestNewServices_NoVersion(t *testing.T) {
	_, err := NewServices(&store.Storages{}, &config.StructuredConfig{}, logger.Nop())

	require.ErrorIs(t, err, ErrAPIVersionNotConfigured)
}
