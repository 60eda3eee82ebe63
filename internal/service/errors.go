// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-water-keeper/internal/validators"
)

// Precondition and validation errors. Operations failing with these never
// reach the backend.
var (
	ErrAuthRequired = errors.New("authentication required")
	ErrInvalidInput = errors.New("invalid input")

	ErrGoalOutOfRange   = validators.ErrGoalOutOfRange
	ErrInvalidAmount    = validators.ErrInvalidAmount
	ErrInvalidCupVolume = validators.ErrInvalidCupVolume
	ErrInvalidWeight    = validators.ErrInvalidWeight
	ErrUnknownCompanion = validators.ErrUnknownCompanion
)

// ErrGoalAlreadyReached is returned by AddWater when the entry would push
// today's total past the daily goal. Nothing is inserted.
var ErrGoalAlreadyReached = errors.New("daily goal already reached")

// Errors translated from backend responses.
var (
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrEmailTaken             = errors.New("email already registered")
	ErrEmailNotConfirmed      = errors.New("email not confirmed")
	ErrSessionExpired         = errors.New("session expired")
	ErrRegistrationIncomplete = errors.New("registration incomplete")
	ErrBackendUnavailable     = errors.New("backend unavailable")
	ErrTimeout                = errors.New("operation timed out")
)
