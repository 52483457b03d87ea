package service

import "errors"

// ErrorKind names the stage at which a submission failed.
type ErrorKind string

const (
	KindTooLong         ErrorKind = "TooLong"
	KindEmpty           ErrorKind = "Empty"
	KindMissingUsername ErrorKind = "MissingUsername"
	KindLookupFailed    ErrorKind = "LookupFailed"
	KindCreateFailed    ErrorKind = "CreateFailed"
	KindRejected        ErrorKind = "Rejected"
)

// Per-kind sentinels matched by [SubmissionError] through errors.Is.
var (
	ErrTooLong         = errors.New("tweet too long")
	ErrEmpty           = errors.New("tweet empty")
	ErrMissingUsername = errors.New("username missing")
	ErrLookupFailed    = errors.New("user lookup failed")
	ErrCreateFailed    = errors.New("tweet creation failed")
	ErrRejected        = errors.New("submission rejected")
)

var kindSentinels = map[ErrorKind]error{
	KindTooLong:         ErrTooLong,
	KindEmpty:           ErrEmpty,
	KindMissingUsername: ErrMissingUsername,
	KindLookupFailed:    ErrLookupFailed,
	KindCreateFailed:    ErrCreateFailed,
	KindRejected:        ErrRejected,
}

// SubmissionError is the failure of one submission. Message is exactly the
// text shown in the StatusDisplay.
type SubmissionError struct {
	Kind    ErrorKind
	Message string
	// Err is the underlying cause, if any.
	Err error
}

func newSubmissionError(kind ErrorKind, message string, cause error) *SubmissionError {
	return &SubmissionError{Kind: kind, Message: message, Err: cause}
}

func (e *SubmissionError) Error() string {
	return e.Message
}

// Unwrap exposes both the kind sentinel and the cause to errors.Is and
// errors.As.
func (e *SubmissionError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if sentinel, ok := kindSentinels[e.Kind]; ok {
		errs = append(errs, sentinel)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}
