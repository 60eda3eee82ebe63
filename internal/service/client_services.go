// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the client's state containers: the session
// store, the intake store, and the background refresh job that keeps the
// intake store current.
package service

import (
	"context"

	"github.com/MKhiriev/go-water-keeper/internal/adapter"
	"github.com/MKhiriev/go-water-keeper/internal/config"
	"github.com/MKhiriev/go-water-keeper/internal/logger"
	"github.com/MKhiriev/go-water-keeper/internal/store"
	"github.com/MKhiriev/go-water-keeper/models"
)

// ClientServices groups the client stores. The session store drives the
// intake store through [SessionHooks]; the intake store only reports settings
// changes back through [IntakeHooks].
type ClientServices struct {
	SessionService SessionService
	IntakeService  IntakeService
	RefreshJob     RefreshJob
}

// NewClientServices wires the stores together. storages may be nil, which
// disables local persistence.
func NewClientServices(cfg config.ClientApp, storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, log *logger.Logger) *ClientServices {
	var snapshots store.SnapshotRepository
	if storages != nil {
		snapshots = storages.SnapshotRepository
	}

	var session SessionService
	intake := NewIntakeService(serverAdapter, snapshots, IntakeHooks{
		OnSettingsChanged: func(settings models.UserSettings) {
			session.ApplySettings(settings)
		},
	}, cfg, log)
	session = NewSessionService(serverAdapter, serverAdapter, snapshots, intakeHooks(intake), cfg, log)

	return &ClientServices{
		SessionService: session,
		IntakeService:  intake,
		RefreshJob:     NewRefreshJob(intake),
	}
}

func intakeHooks(intake IntakeService) SessionHooks {
	return SessionHooks{
		OnAuthenticated: func(ctx context.Context, identity models.Identity) error {
			intake.Attach(identity)
			return intake.LoadHistory(ctx)
		},
		OnSettingsLoaded: intake.ApplySettings,
		OnSignedOut:      intake.ResetState,
	}
}
