package service

import (
	"context"

	"github.com/cs1501-tools-of-the-trade/social-platform-demo/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// StatusDisplay is the single status region of the tweet form. It shows the
// outcome of the most recent submission only.
type StatusDisplay interface {
	// SetErrorState shows message. An empty message clears and hides the
	// region.
	SetErrorState(message string)
}

// ClientTweetService handles submissions of the tweet form.
type ClientTweetService interface {
	// Submit validates input, resolves input.Username with one lookup call,
	// then posts the tweet with one creation call.
	//
	// Every invocation updates the StatusDisplay exactly once: cleared on
	// success, set to the failure message otherwise. Validation failures
	// make no network call. The returned error is nil or a
	// *[SubmissionError].
	Submit(ctx context.Context, input models.SubmissionInput) error
}
