package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/logger"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/models"
)

type tweetRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTweetRepository constructs a [TweetRepository] backed by db.
func NewTweetRepository(db *DB, logger *logger.Logger) TweetRepository {
	logger.Debug().Msg("creating tweet repository")
	return &tweetRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTweet implements [TweetRepository].
//
// Error handling:
//   - foreign key violation → [ErrAuthorNotFound].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *tweetRepository) CreateTweet(ctx context.Context, tweet models.Tweet) (models.Tweet, error) {
	log := logger.FromContext(ctx)

	tweet.CreatedAt = time.Now().UTC()
	query, args, err := buildCreateTweetQuery(r.db.builder(), tweet)
	if err != nil {
		return models.Tweet{}, err
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&tweet.TweetID); err != nil {
		log.Err(err).Str("func", "*tweetRepository.CreateTweet").Int64("author_id", tweet.AuthorID).Msg("error inserting tweet")
		return models.Tweet{}, r.db.classify(err, nil, ErrAuthorNotFound)
	}

	return tweet, nil
}

// FindTweetByID implements [TweetRepository].
func (r *tweetRepository) FindTweetByID(ctx context.Context, tweetID int64) (models.Tweet, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindTweetByIDQuery(r.db.builder(), tweetID)
	if err != nil {
		return models.Tweet{}, err
	}

	var found models.Tweet
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&found.TweetID, &found.AuthorID, &found.Message, &found.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Tweet{}, ErrTweetNotFound
	case err != nil:
		log.Err(err).Str("func", "*tweetRepository.FindTweetByID").Msg("error selecting tweet")
		return models.Tweet{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}
