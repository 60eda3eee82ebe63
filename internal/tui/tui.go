// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal user interface of the client.
//
// A single Bubble Tea program hosts the sign-in menu, the login and
// registration forms and the intake dashboard. Pages are switched by the
// [RootModel] router, which follows the session store: a signed-in session
// opens the dashboard and a sign-out returns to the menu. Store changes are
// delivered to the program through store subscriptions, so every page
// renders the latest state.
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-water-keeper/internal/logger"
	"github.com/MKhiriev/go-water-keeper/internal/service"
	"github.com/MKhiriev/go-water-keeper/models"
)

// TUI runs the interactive terminal program on top of the client stores.
type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New creates a TUI bound to services.
func New(services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil || services.SessionService == nil || services.IntakeService == nil {
		return nil, ErrServicesNotSet
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: log}, nil
}

// Run blocks until the user quits. It opens the dashboard right away when a
// session was restored before the call.
func (t *TUI) Run(ctx context.Context) error {
	session := t.services.SessionService
	intake := t.services.IntakeService

	pages := map[string]tea.Model{
		pageMenu:      NewMenuModel(),
		pageLogin:     NewLoginModel(ctx, session),
		pageRegister:  NewRegisterModel(ctx, session),
		pageDashboard: NewDashboardModel(ctx, session, intake),
	}

	start := pageMenu
	if signedIn(session.State().Phase) {
		start = pageDashboard
	}

	program := tea.NewProgram(NewRootModel(pages, start, t.buildInfo), tea.WithAltScreen(), tea.WithContext(ctx))

	unsubscribeSession := session.Subscribe(func(st service.SessionState) {
		program.Send(sessionChangedMsg{state: st})
	})
	defer unsubscribeSession()

	unsubscribeIntake := intake.Subscribe(func(st service.IntakeState) {
		program.Send(intakeChangedMsg{state: st})
	})
	defer unsubscribeIntake()

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("terminal program failed")
		return fmt.Errorf("run terminal program: %w", err)
	}
	return nil
}
