// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the tweet
// form, the client services and the API server.
//
// The validation messages are shown verbatim in the form's status region and
// are also returned by the server in the "error" field of JSON responses, so
// both sides must use exactly the same wording.
package app

const (
	// MsgTweetTooLong is shown when the tweet text exceeds the maximum
	// tweet length.
	MsgTweetTooLong = "Exceeded max length of a tweet."

	// MsgTweetEmpty is shown when the tweet text is empty.
	MsgTweetEmpty = "Tweet cannot be empty."

	// MsgUsernameEmpty is shown when the username field is empty.
	MsgUsernameEmpty = "Username cannot be empty."

	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidAuthorID is returned when a tweet is posted without a
	// positive author identifier.
	MsgInvalidAuthorID = "invalid author id"

	// MsgInvalidTweetID is returned when the tweet identifier in the URL is
	// not a positive integer.
	MsgInvalidTweetID = "invalid tweet id"

	// MsgUserNotFound is returned when a username does not resolve to a user.
	MsgUserNotFound = "user not found"

	// MsgAuthorNotFound is returned when a tweet references a user that does
	// not exist.
	MsgAuthorNotFound = "author not found"

	// MsgTweetNotFound is returned when a tweet identifier does not exist.
	MsgTweetNotFound = "tweet not found"

	// MsgUsernameAlreadyExists is returned when registering a taken username.
	MsgUsernameAlreadyExists = "username already exists"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
