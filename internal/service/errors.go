package service

import "errors"

var (
	// ErrAPIVersionNotConfigured is returned at startup when no tweet API
	// version is set.
	ErrAPIVersionNotConfigured = errors.New("tweet API version is not configured")
	ErrInvalidTweetID          = errors.New("invalid tweet id")
)
