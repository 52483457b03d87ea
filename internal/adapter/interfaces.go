// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer the tweet form uses to talk to
// the API server.
//
// The primary abstraction is [TweetAPI], which decouples the submission logic
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPTweetAPI]) built on resty.
//
// Application-level failures are reported in the Error field of the returned
// result, whatever HTTP status carried them. Only failures without such a
// message (transport errors, bodies that are not JSON, unexpected statuses)
// are returned as Go errors; the status-based ones wrap the sentinel values in
// errors.go so callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/cs1501-tools-of-the-trade/social-platform-demo/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/tweet_api_mock.go -package=mock

// TweetAPI defines the two remote calls a tweet submission performs.
type TweetAPI interface {
	// LookupUser resolves username to a user identifier via
	// GET /api/v1/user/{username}. A non-empty Error in the result carries the
	// server's message verbatim.
	LookupUser(ctx context.Context, username string) (models.UserLookupResult, error)

	// CreateTweet posts req to POST /api/v1/tweet/. A non-empty Error in the
	// result carries the server's message verbatim.
	CreateTweet(ctx context.Context, req models.TweetCreationRequest) (models.TweetCreationResult, error)
}
