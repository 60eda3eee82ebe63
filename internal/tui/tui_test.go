// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-water-keeper/internal/config"
	"github.com/MKhiriev/go-water-keeper/internal/logger"
	"github.com/MKhiriev/go-water-keeper/internal/mock"
	"github.com/MKhiriev/go-water-keeper/internal/service"
	"github.com/MKhiriev/go-water-keeper/models"
)

// stubPage records what the router delivered to it.
type stubPage struct {
	name     string
	received []tea.Msg
	inits    int
}

func (p *stubPage) Init() tea.Cmd {
	p.inits++
	return nil
}

func (p *stubPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	p.received = append(p.received, msg)
	return p, nil
}

func (p *stubPage) View() string { return p.name }

func newStubRoot(start string) (RootModel, map[string]*stubPage) {
	stubs := map[string]*stubPage{
		pageMenu:      {name: pageMenu},
		pageLogin:     {name: pageLogin},
		pageRegister:  {name: pageRegister},
		pageDashboard: {name: pageDashboard},
	}
	pages := make(map[string]tea.Model, len(stubs))
	for name, p := range stubs {
		pages[name] = p
	}
	return NewRootModel(pages, start, models.NewAppBuildInfo("1.0.0", "2026-10-15", "abc123")), stubs
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	require.NotNil(t, next)
	return next, cmd
}

// ── RootModel ────────────────────────────────────────────────────────────────

func TestRootModel_FollowsSession(t *testing.T) {
	root, stubs := newStubRoot(pageLogin)

	m, _ := update(t, root, sessionChangedMsg{state: service.SessionState{Phase: service.PhaseSettingsLoading}})
	assert.Equal(t, pageLogin, m.(RootModel).current)

	m, _ = update(t, m, sessionChangedMsg{state: service.SessionState{Phase: service.PhaseReady}})
	assert.Equal(t, pageDashboard, m.(RootModel).current)
	assert.Equal(t, 1, stubs[pageDashboard].inits)
	assert.Len(t, stubs[pageDashboard].received, 2, "dashboard sees every session change")

	m, cmd := update(t, m, sessionChangedMsg{state: service.SessionState{Phase: service.PhaseSignedOut}})
	assert.Equal(t, pageMenu, m.(RootModel).current)
	require.NotNil(t, cmd)
}

func TestRootModel_ReadyWithErrorOpensDashboard(t *testing.T) {
	root, _ := newStubRoot(pageMenu)

	m, _ := update(t, root, sessionChangedMsg{state: service.SessionState{Phase: service.PhaseReadyWithError}})
	assert.Equal(t, pageDashboard, m.(RootModel).current)
}

func TestRootModel_IntakeChangesGoToDashboard(t *testing.T) {
	root, stubs := newStubRoot(pageMenu)

	_, _ = update(t, root, intakeChangedMsg{state: service.IntakeState{WaterIntake: 250}})
	assert.Len(t, stubs[pageDashboard].received, 1)
	assert.Empty(t, stubs[pageMenu].received)
}

func TestRootModel_Navigate(t *testing.T) {
	root, stubs := newStubRoot(pageMenu)

	m, _ := update(t, root, NavigateTo{Page: pageRegister})
	assert.Equal(t, pageRegister, m.(RootModel).current)
	assert.Equal(t, pageRegister, m.View())

	m, cmd := update(t, m, NavigateTo{Page: pageMenu, Payload: RegisterNotice{Email: "a@b.c"}})
	assert.Equal(t, pageMenu, m.(RootModel).current)
	require.NotNil(t, cmd)
	assert.Equal(t, RegisterNotice{Email: "a@b.c"}, cmd())

	m, _ = update(t, m, NavigateTo{Page: "nowhere"})
	assert.Equal(t, pageMenu, m.(RootModel).current)
	assert.Empty(t, stubs[pageLogin].received)
}

func TestRootModel_BuildInfoOnMenuOnly(t *testing.T) {
	root, stubs := newStubRoot(pageMenu)

	m, _ := update(t, root, keyPress("v"))
	assert.Contains(t, m.View(), "1.0.0")
	assert.Contains(t, m.View(), "abc123")

	// keys are swallowed while the window is open
	m, _ = update(t, m, keyPress("a"))
	assert.Empty(t, stubs[pageMenu].received)

	m, _ = update(t, m, keyPress("esc"))
	assert.Equal(t, pageMenu, m.View())

	dash, _ := newStubRoot(pageDashboard)
	m, _ = update(t, dash, keyPress("v"))
	assert.Equal(t, pageDashboard, m.View())
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	root, _ := newStubRoot(pageLogin)

	_, cmd := update(t, root, keyPress("ctrl+c"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

// ── Menu ─────────────────────────────────────────────────────────────────────

func TestMenuModel(t *testing.T) {
	menu := NewMenuModel()

	_, cmd := update(t, menu, keyPress("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageLogin}, cmd())

	_, _ = update(t, menu, keyPress("down"))
	_, cmd = update(t, menu, keyPress("enter"))
	assert.Equal(t, NavigateTo{Page: pageRegister}, cmd())

	_, _ = update(t, menu, RegisterNotice{Email: "alice@example.com"})
	assert.Contains(t, menu.View(), "alice@example.com")

	_, cmd = update(t, menu, keyPress("q"))
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

// ── Forms ────────────────────────────────────────────────────────────────────

func newTestServices(t *testing.T) (*service.ClientServices, *mock.MockAuthAdapter, *mock.MockDataAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthAdapter(ctrl)
	data := mock.NewMockDataAdapter(ctrl)

	adapter := struct {
		*mock.MockAuthAdapter
		*mock.MockDataAdapter
	}{auth, data}

	return service.NewClientServices(config.ClientApp{}, nil, adapter, logger.Nop()), auth, data
}

func typeInto(t *testing.T, m tea.Model, text string) {
	t.Helper()
	for _, r := range text {
		_, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestLoginModel_RequiresFields(t *testing.T) {
	services, _, _ := newTestServices(t)
	login := NewLoginModel(context.Background(), services.SessionService)

	_, cmd := update(t, login, keyPress("enter"))
	assert.Nil(t, cmd)
	assert.Contains(t, login.View(), "email and password are required")
}

func TestLoginModel_SubmitAndFailure(t *testing.T) {
	services, auth, _ := newTestServices(t)
	login := NewLoginModel(context.Background(), services.SessionService)

	typeInto(t, login, "alice@example.com")
	_, _ = update(t, login, tea.KeyMsg{Type: tea.KeyTab})
	typeInto(t, login, "secret")

	auth.EXPECT().SignIn(gomock.Any(), models.Credentials{Email: "alice@example.com", Password: "secret"}).
		Return(models.Session{}, service.ErrInvalidCredentials)

	_, cmd := update(t, login, keyPress("enter"))
	require.NotNil(t, cmd)
	assert.True(t, login.submitting)

	_, _ = update(t, login, cmd())
	assert.False(t, login.submitting)
	assert.NotEmpty(t, login.errMsg)
}

func TestRegisterModel_Validation(t *testing.T) {
	services, _, _ := newTestServices(t)
	reg := NewRegisterModel(context.Background(), services.SessionService)

	reg.inputs[registerName].SetValue("Alice")
	reg.inputs[registerEmail].SetValue("alice@example.com")
	reg.inputs[registerPassword].SetValue("secret")
	reg.inputs[registerRepeat].SetValue("other")

	_, errMsg := reg.registration()
	assert.Equal(t, "passwords do not match", errMsg)

	reg.inputs[registerRepeat].SetValue("secret")
	reg.inputs[registerWeight].SetValue("heavy")
	_, errMsg = reg.registration()
	assert.Equal(t, "weight must be a positive number", errMsg)

	reg.inputs[registerWeight].SetValue("70,5")
	got, errMsg := reg.registration()
	assert.Empty(t, errMsg)
	require.NotNil(t, got.WeightKg)
	assert.Equal(t, 70.5, *got.WeightKg)
	assert.Equal(t, "Alice", got.Name)
}

func TestRegisterModel_PendingConfirmationReturnsToMenu(t *testing.T) {
	services, _, _ := newTestServices(t)
	reg := NewRegisterModel(context.Background(), services.SessionService)
	reg.email = "alice@example.com"
	reg.submitting = true

	_, cmd := update(t, reg, authDoneMsg{err: service.ErrRegistrationIncomplete})
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageMenu, Payload: RegisterNotice{Email: "alice@example.com"}}, cmd())
	assert.False(t, reg.submitting)
	assert.Empty(t, reg.inputs[registerName].Value())
}

// ── Dashboard ────────────────────────────────────────────────────────────────

func TestDashboardModel_Prompt(t *testing.T) {
	services, _, _ := newTestServices(t)
	dash := NewDashboardModel(context.Background(), services.SessionService, services.IntakeService)

	_, _ = update(t, dash, keyPress("g"))
	assert.Equal(t, promptGoal, dash.prompt)
	assert.Contains(t, dash.View(), "Daily goal")

	typeInto(t, dash, "lots")
	_, cmd := update(t, dash, keyPress("enter"))
	assert.Nil(t, cmd)
	assert.Equal(t, "goal must be a whole number of ml", dash.errMsg)
	assert.Equal(t, promptGoal, dash.prompt)

	_, _ = update(t, dash, keyPress("esc"))
	assert.Equal(t, promptNone, dash.prompt)
	assert.Empty(t, dash.errMsg)
}

func TestDashboardModel_AddCupWithoutSession(t *testing.T) {
	services, _, _ := newTestServices(t)
	dash := NewDashboardModel(context.Background(), services.SessionService, services.IntakeService)

	_, cmd := update(t, dash, keyPress("a"))
	require.NotNil(t, cmd)

	done := cmd().(opDoneMsg)
	assert.ErrorIs(t, done.err, service.ErrAuthRequired)

	_, _ = update(t, dash, intakeChangedMsg{state: services.IntakeService.State()})
	assert.Contains(t, dash.View(), "you need to sign in first")

	_, _ = update(t, dash, keyPress("x"))
	_, _ = update(t, dash, intakeChangedMsg{state: services.IntakeService.State()})
	assert.NotContains(t, dash.View(), "you need to sign in first")
}

func TestDashboardModel_View(t *testing.T) {
	services, _, _ := newTestServices(t)
	dash := NewDashboardModel(context.Background(), services.SessionService, services.IntakeService)

	view := dash.View()
	assert.Contains(t, view, "no goal set")
	assert.Contains(t, view, "capybara is normal")
	assert.Contains(t, view, "a: +250 ml")
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "░░░░", progressBar(0, 4))
	assert.Equal(t, "██░░", progressBar(50, 4))
	assert.Equal(t, "████", progressBar(100, 4))
	assert.Equal(t, "████", progressBar(250, 4))
	assert.Equal(t, "░░░░", progressBar(-10, 4))
	assert.Empty(t, progressBar(50, 0))
}

func TestViewHelpers(t *testing.T) {
	w := 70.5
	assert.Equal(t, "70.5 kg", formatWeight(&w))
	assert.Equal(t, "-", formatWeight(nil))
	assert.Equal(t, "1 day", pluralDays(1))
	assert.Equal(t, "3 days", pluralDays(3))
	assert.Equal(t, "abc...", fitText("abcdefgh", 6))
	assert.Equal(t, "abc", fitText("abc", 6))
	assert.Equal(t, "b", firstNonEmpty("", "b", "c"))
}
