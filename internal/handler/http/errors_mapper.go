package http

import (
	"errors"
	"net/http"

	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/app"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/service"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/store"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/validators"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses is checked in order: more specific errors come first.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{ErrUnsupportedContentType, errorResponse{http.StatusUnsupportedMediaType, app.MsgInvalidDataProvided}},

	{validators.ErrTweetTooLong, errorResponse{http.StatusBadRequest, app.MsgTweetTooLong}},
	{validators.ErrTweetEmpty, errorResponse{http.StatusBadRequest, app.MsgTweetEmpty}},
	{validators.ErrUsernameEmpty, errorResponse{http.StatusBadRequest, app.MsgUsernameEmpty}},
	{validators.ErrInvalidAuthorID, errorResponse{http.StatusBadRequest, app.MsgInvalidAuthorID}},
	{service.ErrInvalidTweetID, errorResponse{http.StatusBadRequest, app.MsgInvalidTweetID}},

	{store.ErrUsernameAlreadyExists, errorResponse{http.StatusConflict, app.MsgUsernameAlreadyExists}},
	{store.ErrAuthorNotFound, errorResponse{http.StatusNotFound, app.MsgAuthorNotFound}},
	{store.ErrUserNotFound, errorResponse{http.StatusNotFound, app.MsgUserNotFound}},
	{store.ErrTweetNotFound, errorResponse{http.StatusNotFound, app.MsgTweetNotFound}},
}

// responseFromError returns the status code and the client-facing message
// for err. Unknown errors are reported as 500 without leaking their text.
func responseFromError(err error) (int, string) {
	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}
