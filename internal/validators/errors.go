// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrGoalOutOfRange   = errors.New("daily goal out of range")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidCupVolume = errors.New("invalid cup volume")
	ErrInvalidWeight    = errors.New("invalid weight")
	ErrUnknownCompanion = errors.New("unknown companion")
	ErrEmptyEmail       = errors.New("email is required")
	ErrEmptyPassword    = errors.New("password is required")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
