// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's view of the hosted backend: an
// identity/session provider and a row-oriented data store.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the wire protocol. The package ships an HTTP implementation
// ([NewHTTPServerAdapter]) speaking the Supabase auth API and the PostgREST
// row API.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for an absent row, [ErrUnauthorized]
// for a rejected token).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-water-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// AuthAdapter is the identity/session half of the backend.
type AuthAdapter interface {
	// SignUp registers a new account. When the backend issues a session
	// right away it is stored and returned; otherwise [ErrSessionNotIssued]
	// is returned together with the created identity.
	SignUp(ctx context.Context, reg models.Registration) (models.Session, error)

	// SignIn authenticates with email and password and stores the session.
	SignIn(ctx context.Context, creds models.Credentials) (models.Session, error)

	// SignOut revokes the session on the backend. The locally held session
	// is dropped even when the backend call fails.
	SignOut(ctx context.Context) error

	// Session returns the current session, refreshing it first when the
	// access token has expired. Returns [ErrNoSession] when signed out.
	Session(ctx context.Context) (models.Session, error)

	// SetSession installs a previously persisted session without contacting
	// the backend.
	SetSession(session models.Session)

	// OnAuthStateChange registers fn for session-change notifications and
	// returns a function that removes it. Notifications are delivered on a
	// separate goroutine.
	OnAuthStateChange(fn func(event models.AuthEvent, session *models.Session)) (unsubscribe func())
}

// DataAdapter is the row-store half of the backend. Every call is an
// independent request; there are no transactions across calls.
type DataAdapter interface {
	// GetSettings returns the settings row of userID or [ErrNotFound].
	GetSettings(ctx context.Context, userID string) (models.UserSettings, error)

	// InsertSettings creates the settings row and returns it as stored.
	InsertSettings(ctx context.Context, settings models.UserSettings) (models.UserSettings, error)

	// UpdateSettings applies patch to the row of userID and returns it as
	// stored, or [ErrNotFound] when no row matched.
	UpdateSettings(ctx context.Context, userID string, patch models.SettingsPatch) (models.UserSettings, error)

	// UpsertSettings inserts or merges the full row keyed by user id.
	UpsertSettings(ctx context.Context, settings models.UserSettings) (models.UserSettings, error)

	// InsertWaterEntry appends an intake record. ID and CreatedAt of the
	// result are assigned by the backend.
	InsertWaterEntry(ctx context.Context, entry models.WaterEntry) (models.WaterEntry, error)

	// ListWaterEntries returns the entries of userID for the requested days
	// ordered by creation time ascending.
	ListWaterEntries(ctx context.Context, userID string, query models.EntryQuery) ([]models.WaterEntry, error)
}

// ServerAdapter is the full Remote Data Collaborator.
type ServerAdapter interface {
	AuthAdapter
	DataAdapter
}
