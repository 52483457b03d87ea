// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"
	"unicode/utf16"
)

// MaxTweetLength is the maximum number of characters a tweet may contain.
const MaxTweetLength = 140

// TweetLength counts text in UTF-16 code units, the unit the web form
// measured tweets in. Characters outside the Basic Multilingual Plane count
// twice.
func TweetLength(text string) int {
	return len(utf16.Encode([]rune(text)))
}

// Tweet is a stored message authored by a [User].
type Tweet struct {
	TweetID   int64     `json:"tweet_id"`
	AuthorID  int64     `json:"author_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Tweet model.
func (t Tweet) TableName() string {
	return "tweets"
}

// TweetCreationRequest is the body of POST /api/v1/tweet/. It is built from
// the submitted tweet text and the identifier the username resolved to.
type TweetCreationRequest struct {
	Message  string `json:"message"`
	AuthorID int64  `json:"author_id"`
}

// TweetCreationResult is returned by POST /api/v1/tweet/. A non-empty Error
// signals failure.
type TweetCreationResult struct {
	Error string `json:"error,omitempty"`
}
