// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client is anything cmd/client can run until the user quits or ctx ends.
type Client interface {
	Run(ctx context.Context) error
}

// UI is the interactive front end driven by [App]. Run returns once the
// user quits.
type UI interface {
	Run(ctx context.Context) error
}

var _ Client = (*App)(nil)
