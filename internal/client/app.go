// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-water-keeper/internal/config"
	"github.com/MKhiriev/go-water-keeper/internal/logger"
	"github.com/MKhiriev/go-water-keeper/internal/service"
)

// ErrNilDependency is returned by [NewApp] when a required dependency is
// missing.
var ErrNilDependency = errors.New("client app dependency is nil")

type App struct {
	services *service.ClientServices
	ui       UI
	workers  config.ClientWorkers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, workers config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil || log == nil {
		return nil, ErrNilDependency
	}
	return &App{services: services, ui: ui, workers: workers, logger: log}, nil
}

// Run restores local state, signs in with the persisted session when it is
// still valid and runs the UI until the user quits. Restore failures are
// logged and leave the user on the sign-in screen.
func (a *App) Run(ctx context.Context) error {
	if err := a.services.IntakeService.Restore(ctx); err != nil {
		a.logger.Warn().Err(err).Str("func", "*App.Run").Msg("intake snapshot not restored")
	}

	unwatch := a.services.SessionService.WatchAuthChanges(ctx)
	defer unwatch()

	if err := a.services.SessionService.RestoreSession(ctx); err != nil {
		a.logger.Warn().Err(err).Str("func", "*App.Run").Msg("session not restored")
	}

	a.services.RefreshJob.Start(ctx, a.workers.RefreshInterval)
	defer a.services.RefreshJob.Stop()

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}
