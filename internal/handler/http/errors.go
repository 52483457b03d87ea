// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/app"
)

var (
	// ErrInvalidDataProvided is returned when a request body cannot be
	// decoded into the expected payload.
	ErrInvalidDataProvided = errors.New(app.MsgInvalidDataProvided)

	// ErrUnsupportedContentType is returned for bodies that are neither JSON
	// nor a url-encoded form.
	ErrUnsupportedContentType = errors.New("unsupported content type")
)
