// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

// ErrServicesNotSet is returned by [New] when the client stores are missing.
var ErrServicesNotSet = errors.New("client services are not set")
