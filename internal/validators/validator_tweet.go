// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/cs1501-tools-of-the-trade/social-platform-demo/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldTweetText targets the tweet body. Checks the upper bound first,
	// then emptiness.
	FieldTweetText = "tweet_text"

	// FieldUsername targets the author's username.
	FieldUsername = "username"

	// FieldAuthorID targets the resolved author identifier.
	FieldAuthorID = "author_id"
)

// TweetValidator implements Validator for the tweet form input and the
// requests accepted by the API server.
//
// Text lengths are counted in UTF-16 code units, not bytes. Values are checked as
// given; surrounding whitespace is not trimmed.
type TweetValidator struct {
}

// NewTweetValidator constructs a TweetValidator and returns it as the
// Validator interface.
func NewTweetValidator() Validator {
	return &TweetValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types (value and pointer forms):
//   - models.SubmissionInput: tweet text, then username
//   - models.TweetCreationRequest: message, then author id
//   - models.RegisterUserRequest: username
//
// Checks are short-circuit: only the first failing rule is reported.
func (v *TweetValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SubmissionInput:
		return v.validateSubmission(value, fields...)
	case *models.SubmissionInput:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateSubmission(*value, fields...)
	case models.TweetCreationRequest:
		return v.validateCreationRequest(value, fields...)
	case *models.TweetCreationRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCreationRequest(*value, fields...)
	case models.RegisterUserRequest:
		return v.validateRegisterRequest(value, fields...)
	case *models.RegisterUserRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateRegisterRequest(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *TweetValidator) validateSubmission(input models.SubmissionInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTweetText, FieldUsername}
	}

	for _, f := range fields {
		switch f {
		case FieldTweetText:
			if err := validateTweetText(input.TweetText); err != nil {
				return err
			}
		case FieldUsername:
			if input.Username == "" {
				return ErrUsernameEmpty
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *TweetValidator) validateCreationRequest(request models.TweetCreationRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTweetText, FieldAuthorID}
	}

	for _, f := range fields {
		switch f {
		case FieldTweetText:
			if err := validateTweetText(request.Message); err != nil {
				return err
			}
		case FieldAuthorID:
			if request.AuthorID <= 0 {
				return ErrInvalidAuthorID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *TweetValidator) validateRegisterRequest(request models.RegisterUserRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if request.Username == "" {
				return ErrUsernameEmpty
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateTweetText(text string) error {
	length := models.TweetLength(text)
	if length > models.MaxTweetLength {
		return ErrTweetTooLong
	}
	if length == 0 {
		return ErrTweetEmpty
	}

	return nil
}
