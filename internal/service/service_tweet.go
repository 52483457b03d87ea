package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/logger"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/store"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/models"
)

type tweetService struct {
	userRepository  store.UserRepository
	tweetRepository store.TweetRepository

	logger *logger.Logger
}

// NewTweetService constructs a TweetService. It does not validate its input;
// wrap it with [NewTweetValidationService] for that.
func NewTweetService(userRepository store.UserRepository, tweetRepository store.TweetRepository, logger *logger.Logger) TweetService {
	return &tweetService{
		userRepository:  userRepository,
		tweetRepository: tweetRepository,
		logger:          logger,
	}
}

// Create checks that the author exists and stores the tweet. An unknown
// author is reported as store.ErrAuthorNotFound, whether it is detected by
// the lookup or by the foreign key.
func (s *tweetService) Create(ctx context.Context, req models.TweetCreationRequest) (models.Tweet, error) {
	log := logger.FromContext(ctx)

	if _, err := s.userRepository.FindUserByID(ctx, req.AuthorID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.Tweet{}, store.ErrAuthorNotFound
		}
		log.Err(err).Int64("author_id", req.AuthorID).Msg("author lookup failed")
		return models.Tweet{}, fmt.Errorf("author lookup failed: %w", err)
	}

	tweet, err := s.tweetRepository.CreateTweet(ctx, models.Tweet{AuthorID: req.AuthorID, Message: req.Message})
	if err != nil {
		log.Err(err).Int64("author_id", req.AuthorID).Msg("tweet creation ended with error")
		return models.Tweet{}, fmt.Errorf("tweet creation ended with error: %w", err)
	}

	log.Info().Int64("tweet_id", tweet.TweetID).Int64("author_id", tweet.AuthorID).Msg("tweet created")
	return tweet, nil
}

func (s *tweetService) Get(ctx context.Context, tweetID int64) (models.Tweet, error) {
	tweet, err := s.tweetRepository.FindTweetByID(ctx, tweetID)
	if err != nil {
		return models.Tweet{}, fmt.Errorf("tweet lookup failed: %w", err)
	}

	return tweet, nil
}
