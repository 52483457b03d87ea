package service

import (
	"context"
	"errors"

	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/adapter"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/logger"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/validators"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/models"
)

type clientTweetService struct {
	api       adapter.TweetAPI
	display   StatusDisplay
	validator validators.Validator

	logger *logger.Logger
}

func NewClientTweetService(api adapter.TweetAPI, display StatusDisplay, logger *logger.Logger) ClientTweetService {
	return &clientTweetService{
		api:       api,
		display:   display,
		validator: validators.NewTweetValidator(),
		logger:    logger,
	}
}

// Submit implements [ClientTweetService]. Concurrent calls are not
// serialised; the display shows whichever outcome is written last.
func (c *clientTweetService) Submit(ctx context.Context, input models.SubmissionInput) error {
	subErr := c.submit(ctx, input)
	if subErr == nil {
		c.display.SetErrorState("")
		c.logger.Info().Str("username", input.Username).Msg("tweet posted")
		return nil
	}

	c.display.SetErrorState(subErr.Message)
	c.logger.Warn().
		Str("kind", string(subErr.Kind)).
		Str("username", input.Username).
		Err(subErr.Err).
		Msg(subErr.Message)

	return subErr
}

func (c *clientTweetService) submit(ctx context.Context, input models.SubmissionInput) *SubmissionError {
	if err := c.validator.Validate(ctx, input); err != nil {
		return validationError(err)
	}

	lookup, err := c.api.LookupUser(ctx, input.Username)
	if err != nil {
		return newSubmissionError(KindRejected, err.Error(), err)
	}
	if lookup.Error != "" {
		return newSubmissionError(KindLookupFailed, lookup.Error, nil)
	}

	created, err := c.api.CreateTweet(ctx, models.TweetCreationRequest{
		Message:  input.TweetText,
		AuthorID: lookup.UserID,
	})
	if err != nil {
		return newSubmissionError(KindRejected, err.Error(), err)
	}
	if created.Error != "" {
		return newSubmissionError(KindCreateFailed, created.Error, nil)
	}

	return nil
}

func validationError(err error) *SubmissionError {
	switch {
	case errors.Is(err, validators.ErrTweetTooLong):
		return newSubmissionError(KindTooLong, err.Error(), err)
	case errors.Is(err, validators.ErrTweetEmpty):
		return newSubmissionError(KindEmpty, err.Error(), err)
	case errors.Is(err, validators.ErrUsernameEmpty):
		return newSubmissionError(KindMissingUsername, err.Error(), err)
	default:
		return newSubmissionError(KindRejected, err.Error(), err)
	}
}
