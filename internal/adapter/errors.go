// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Transport-level errors mapped from HTTP status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

// Session errors.
var (
	// ErrNoSession is returned when an operation needs a session and none is
	// held.
	ErrNoSession = errors.New("no active session")

	// ErrSessionNotIssued is returned by SignUp when the backend created the
	// account but requires email confirmation before issuing a session.
	ErrSessionNotIssued = errors.New("session not issued")
)
