// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches the backend.
//
// A [Validator] validates a value as a whole or, when field names are
// given, only those fields. The stores use it to reject out-of-range goals,
// amounts, cup volumes, weights and unknown companions locally, so invalid
// input never costs a round trip.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
