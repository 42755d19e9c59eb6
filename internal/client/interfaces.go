// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UserInterface is the foreground loop of the client.
type UserInterface interface {
	// Run blocks until the user quits or ctx is cancelled.
	Run(ctx context.Context) error
}

// Cleanup releases one resource when the client exits.
type Cleanup func() error
