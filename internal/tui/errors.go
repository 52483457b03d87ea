// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

var (
	ErrNoTweetService = errors.New("tweet service is not provided")
	ErrNoStatusRegion = errors.New("status region is not provided")
)
