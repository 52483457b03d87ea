package service

import (
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/adapter"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/logger"
)

type ClientServices struct {
	TweetService ClientTweetService
}

func NewClientServices(api adapter.TweetAPI, display StatusDisplay, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		TweetService: NewClientTweetService(api, display, logger),
	}
}
