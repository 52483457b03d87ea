// Package service holds the business logic of both binaries.
//
// Server side: [UserService], [TweetService] and [AppInfoService] sit
// between the HTTP handlers and the repositories in package store.
//
// Client side: [ClientTweetService] is the submission handler of the tweet
// form. It validates the form input, resolves the username, posts the tweet
// and reports the outcome to a [StatusDisplay].
package service

import (
	"context"

	"github.com/cs1501-tools-of-the-trade/social-platform-demo/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

type UserService interface {
	// Register creates a user with a unique, non-empty username.
	Register(ctx context.Context, req models.RegisterUserRequest) (models.User, error)
	// Lookup resolves a username to its user.
	Lookup(ctx context.Context, username string) (models.User, error)
}

type TweetService interface {
	// Create stores a tweet for an existing author.
	Create(ctx context.Context, req models.TweetCreationRequest) (models.Tweet, error)
	// Get returns one stored tweet.
	Get(ctx context.Context, tweetID int64) (models.Tweet, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// TweetServiceWrapper defines middleware composition for TweetService.
// Implementations wrap an existing TweetService to add behavior such as
// validation.
type TweetServiceWrapper interface {
	Wrap(TweetService) TweetService
}
