// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client is a runnable client application.
type Client interface {
	// Run starts the client and blocks until the user exits.
	Run(ctx context.Context) error
}

// UI is the interactive front end driven by App.
type UI interface {
	Run(ctx context.Context) error
}
