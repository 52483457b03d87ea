package service

import (
	"context"

	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/logger"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/validators"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/models"
)

// TweetValidationService runs the shared tweet rules before delegating to
// the wrapped TweetService. Validation errors are returned unwrapped so their
// text can be sent to the client as is.
type TweetValidationService struct {
	inner     TweetService
	validator validators.Validator
}

func NewTweetValidationService() TweetServiceWrapper {
	return &TweetValidationService{
		validator: validators.NewTweetValidator(),
	}
}

func (v *TweetValidationService) Create(ctx context.Context, req models.TweetCreationRequest) (models.Tweet, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Int64("author_id", req.AuthorID).Msg("invalid tweet rejected")
		return models.Tweet{}, err
	}

	return v.inner.Create(ctx, req)
}

func (v *TweetValidationService) Get(ctx context.Context, tweetID int64) (models.Tweet, error) {
	if tweetID <= 0 {
		return models.Tweet{}, ErrInvalidTweetID
	}

	return v.inner.Get(ctx, tweetID)
}

func (v *TweetValidationService) Wrap(inner TweetService) TweetService {
	v.inner = inner
	return v
}
