// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-water-keeper/internal/service"
	"github.com/MKhiriev/go-water-keeper/models"
)

const (
	pageMenu      = "menu"
	pageLogin     = "login"
	pageRegister  = "register"
	pageDashboard = "dashboard"
)

// RootModel is a TUI router:
// 1) keeps the active page
// 2) handles global Ctrl+C quit and the about window
// 3) handles NavigateTo messages
// 4) follows the session store between the menu and the dashboard
// 5) delegates all other messages to the active page
type RootModel struct {
	pages   map[string]tea.Model
	current string

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   startPage,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	page := r.pages[r.current]
	if page == nil {
		return nil
	}
	return page.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return r, tea.Quit
		case "v":
			if r.current == pageMenu {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		return r.navigate(msg.Page, msg.Payload)

	case sessionChangedMsg:
		cmd := r.forward(pageDashboard, msg)

		switch {
		case signedIn(msg.state.Phase) && r.current != pageDashboard:
			next, navCmd := r.navigate(pageDashboard, nil)
			return next, tea.Batch(cmd, navCmd)
		case msg.state.Phase == service.PhaseSignedOut && r.current == pageDashboard:
			next, navCmd := r.navigate(pageMenu, msg)
			return next, tea.Batch(cmd, navCmd)
		}
		if r.current != pageDashboard {
			cmd = tea.Batch(cmd, r.forward(r.current, msg))
		}
		return r, cmd

	case intakeChangedMsg:
		return r, r.forward(pageDashboard, msg)
	}

	return r, r.forward(r.current, msg)
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	page := r.pages[r.current]
	if page == nil {
		return renderPage("WATER KEEPER", "", "")
	}
	return page.View()
}

func (r RootModel) navigate(name string, payload any) (tea.Model, tea.Cmd) {
	if _, exists := r.pages[name]; !exists {
		return r, nil
	}

	r.showBuildInfo = false
	r.current = name

	if payload != nil {
		return r, func() tea.Msg { return payload }
	}
	return r, r.pages[name].Init()
}

// forward delivers msg to the named page. Pages are pointers, so the page
// keeps its state even when it is not the active one.
func (r RootModel) forward(name string, msg tea.Msg) tea.Cmd {
	page := r.pages[name]
	if page == nil {
		return nil
	}
	updated, cmd := page.Update(msg)
	r.pages[name] = updated
	return cmd
}

func signedIn(phase service.SessionPhase) bool {
	return phase == service.PhaseReady || phase == service.PhaseReadyWithError
}
