package service

import (
	"context"
	"strings"

	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/config"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/logger"
)

// tweetAPIInfoService answers GET /api/version/ with the version the tweet
// API was deployed as (APP_VERSION or app.version in the config file).
type tweetAPIInfoService struct {
	version string
}

// NewAppInfoService returns [ErrAPIVersionNotConfigured] when the version is
// empty or only whitespace, so a server never reports a blank version.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrAPIVersionNotConfigured
	}

	logger.Debug().Str("api_version", version).Msg("tweet API version configured")

	return &tweetAPIInfoService{version: version}, nil
}

func (s *tweetAPIInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}
