// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers used across the client:
// calendar-day arithmetic, trace id generation, bearer/JWT token inspection
// and HTTP client initialization.
package utils
