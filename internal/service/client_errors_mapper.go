// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-water-keeper/internal/adapter"
	"github.com/MKhiriev/go-water-keeper/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The original error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := err.Error()

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrTimeout, err)

	case errors.Is(err, adapter.ErrNoSession):
		return fmt.Errorf("%w: %w", ErrSessionExpired, err)

	case errors.Is(err, adapter.ErrSessionNotIssued):
		return fmt.Errorf("%w: %w", ErrRegistrationIncomplete, err)

	case errors.Is(err, adapter.ErrBadRequest), errors.Is(err, adapter.ErrUnprocessable):
		switch {
		case strings.Contains(msg, app.BackendInvalidCredentials):
			return fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		case strings.Contains(msg, app.BackendEmailNotConfirmed):
			return fmt.Errorf("%w: %w", ErrEmailNotConfirmed, err)
		case strings.Contains(msg, app.BackendUserAlreadyRegistered):
			return fmt.Errorf("%w: %w", ErrEmailTaken, err)
		}

	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		if strings.Contains(msg, app.BackendInvalidCredentials) {
			return fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		}
		return fmt.Errorf("%w: %w", ErrSessionExpired, err)

	case errors.Is(err, adapter.ErrTooManyRequests),
		errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrServiceUnavailable):
		return fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}

	return err
}

var errorMessages = []struct {
	err error
	msg string
}{
	{ErrAuthRequired, app.MsgAuthRequired},
	{ErrGoalOutOfRange, app.MsgGoalOutOfRange},
	{ErrGoalAlreadyReached, app.MsgGoalAlreadyReached},
	{ErrInvalidAmount, app.MsgInvalidAmount},
	{ErrInvalidCupVolume, app.MsgInvalidCupVolume},
	{ErrInvalidWeight, app.MsgInvalidWeight},
	{ErrUnknownCompanion, app.MsgUnknownCompanion},
	{ErrInvalidCredentials, app.MsgInvalidCredentials},
	{ErrEmailTaken, app.MsgEmailTaken},
	{ErrEmailNotConfirmed, app.MsgEmailNotConfirmed},
	{ErrSessionExpired, app.MsgSessionExpired},
	{ErrRegistrationIncomplete, app.MsgRegistrationIncomplete},
	{ErrTimeout, app.MsgTimeout},
	{ErrBackendUnavailable, app.MsgBackendUnavailable},
}

// errorMessage returns the text shown in a store's error field for err.
// Errors without a dedicated message fall back to fallback.
func errorMessage(err error, fallback string) string {
	for _, m := range errorMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	if errors.Is(err, ErrInvalidInput) {
		return err.Error()
	}
	return fallback
}
