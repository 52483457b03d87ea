// Package store is the server's persistence layer. It stores users and their
// tweets in PostgreSQL (through pgx) or SQLite (through mattn/go-sqlite3),
// builds queries with squirrel and applies goose migrations on start.
package store

import (
	"context"

	"github.com/cs1501-tools-of-the-trade/social-platform-demo/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/repositories_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts a user and returns it with UserID and CreatedAt
	// populated. Returns [ErrUsernameAlreadyExists] for a taken username.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the user with the exact username, or
	// [ErrUserNotFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID returns the user with the given identifier, or
	// [ErrUserNotFound].
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// TweetRepository persists tweets.
type TweetRepository interface {
	// CreateTweet inserts a tweet and returns it with TweetID and CreatedAt
	// populated. Returns [ErrAuthorNotFound] when AuthorID references no user.
	CreateTweet(ctx context.Context, tweet models.Tweet) (models.Tweet, error)

	// FindTweetByID returns the tweet with the given identifier, or
	// [ErrTweetNotFound].
	FindTweetByID(ctx context.Context, tweetID int64) (models.Tweet, error)
}
