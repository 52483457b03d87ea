package validators

import (
	"errors"

	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/app"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// The texts of the following errors are shown to users verbatim.
	ErrTweetTooLong    = errors.New(app.MsgTweetTooLong)
	ErrTweetEmpty      = errors.New(app.MsgTweetEmpty)
	ErrUsernameEmpty   = errors.New(app.MsgUsernameEmpty)
	ErrInvalidAuthorID = errors.New(app.MsgInvalidAuthorID)
)
