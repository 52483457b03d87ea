package service

import (
	"fmt"

	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/config"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/logger"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/store"
)

type Services struct {
	UserService    UserService
	TweetService   TweetService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	tweetService := NewTweetValidationService().
		Wrap(NewTweetService(storages.UserRepository, storages.TweetRepository, logger))

	return &Services{
		UserService:    NewUserService(storages.UserRepository, logger),
		TweetService:   tweetService,
		AppInfoService: appInfoService,
	}, nil
}
