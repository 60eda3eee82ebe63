// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-water-keeper/internal/service"
	"github.com/MKhiriev/go-water-keeper/models"
)

type promptKind int

const (
	promptNone promptKind = iota
	promptGoal
	promptCupVolume
	promptWeight
)

const (
	recentDaysShown = 7
	statusTTL       = 2 * time.Second
)

var companionFaces = map[models.Companion]map[models.Mood]string{
	models.CompanionCapybara: {
		models.MoodNormal: "(• ᴥ •)",
		models.MoodSad:    "(╥ ᴥ ╥)",
		models.MoodHappy:  "(^ ᴥ ^)",
	},
	models.CompanionCat: {
		models.MoodNormal: "(=•ω•=)",
		models.MoodSad:    "(=;ω;=)",
		models.MoodHappy:  "(=^ω^=)",
	},
}

// DashboardModel shows today's intake and drives the intake store. It keeps
// the latest state copies it received from the store subscriptions and
// renders from them.
type DashboardModel struct {
	ctx     context.Context
	session service.SessionService
	intake  service.IntakeService

	sessionState service.SessionState
	intakeState  service.IntakeState

	spinner spinner.Model
	prompt  promptKind
	input   textinput.Model
	errMsg  string
	status  string
}

func NewDashboardModel(ctx context.Context, session service.SessionService, intake service.IntakeService) *DashboardModel {
	input := textinput.New()
	input.CharLimit = 6
	input.Width = 12

	return &DashboardModel{
		ctx:          ctx,
		session:      session,
		intake:       intake,
		sessionState: session.State(),
		intakeState:  intake.State(),
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		input:        input,
	}
}

func (m *DashboardModel) Init() tea.Cmd {
	m.sessionState = m.session.State()
	m.intakeState = m.intake.State()
	return m.spinner.Tick
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionChangedMsg:
		m.sessionState = msg.state
		if msg.state.Phase == service.PhaseSignedOut {
			m.closePrompt()
			m.status = ""
		}
		return m, nil

	case intakeChangedMsg:
		m.intakeState = msg.state
		return m, nil

	case opDoneMsg:
		if msg.err == nil && msg.op != "" {
			m.status = msg.op
			return m, cmdClearStatus()
		}
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.prompt != promptNone {
			return m.updatePrompt(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *DashboardModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := m.ctx
	intake := m.intake

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit

	case key.Matches(msg, keys.addCup):
		ml := m.intakeState.CupVolumeMl
		return m, cmdOp(fmt.Sprintf("+%d ml", ml), func() error { return intake.AddWater(ctx, ml) })

	case key.Matches(msg, keys.goal):
		m.openPrompt(promptGoal, m.intakeState.DailyGoalMl)
	case key.Matches(msg, keys.cupVolume):
		m.openPrompt(promptCupVolume, m.intakeState.CupVolumeMl)
	case key.Matches(msg, keys.weight):
		m.openPrompt(promptWeight, 0)

	case key.Matches(msg, keys.companion):
		next := m.intakeState.SelectedCompanion.Next()
		return m, cmdOp("companion: "+string(next), func() error { return intake.SetSelectedCompanion(ctx, next) })

	case key.Matches(msg, keys.refresh):
		session := m.session
		reloadSettings := m.sessionState.Phase == service.PhaseReadyWithError
		return m, cmdOp("refreshed", func() error {
			if reloadSettings {
				if err := session.LoadSettings(ctx); err != nil {
					return err
				}
			}
			return intake.LoadHistory(ctx)
		})

	case key.Matches(msg, keys.clearError):
		m.errMsg = ""
		m.intake.ClearError()
		m.session.ClearError()

	case key.Matches(msg, keys.logout):
		session := m.session
		return m, cmdOp("", func() error { return session.SignOut(ctx) })
	}

	return m, nil
}

func (m *DashboardModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.closePrompt()
		return m, nil

	case key.Matches(msg, keys.enter):
		cmd, errMsg := m.submitPrompt(strings.TrimSpace(m.input.Value()))
		if errMsg != "" {
			m.errMsg = errMsg
			return m, nil
		}
		m.closePrompt()
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submitPrompt parses the prompt value. Range checks are left to the store,
// which records them in its error field.
func (m *DashboardModel) submitPrompt(raw string) (tea.Cmd, string) {
	ctx := m.ctx
	intake := m.intake

	switch m.prompt {
	case promptGoal:
		ml, err := strconv.Atoi(raw)
		if err != nil {
			return nil, "goal must be a whole number of ml"
		}
		return cmdOp(fmt.Sprintf("goal: %d ml", ml), func() error { return intake.SetDailyGoal(ctx, ml) }), ""

	case promptCupVolume:
		ml, err := strconv.Atoi(raw)
		if err != nil {
			return nil, "cup volume must be a whole number of ml"
		}
		return cmdOp(fmt.Sprintf("cup: %d ml", ml), func() error { return intake.SetCupVolume(ctx, ml) }), ""

	case promptWeight:
		kg, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
		if err != nil {
			return nil, "weight must be a number of kg"
		}
		return cmdOp("weight: "+formatWeight(&kg), func() error { return intake.SetWeight(ctx, kg) }), ""
	}

	return nil, ""
}

func (m *DashboardModel) openPrompt(kind promptKind, current int) {
	m.prompt = kind
	m.errMsg = ""
	m.input.Reset()
	if current > 0 {
		m.input.SetValue(strconv.Itoa(current))
	}
	m.input.Focus()
}

func (m *DashboardModel) closePrompt() {
	m.prompt = promptNone
	m.errMsg = ""
	m.input.Blur()
	m.input.Reset()
}

func (m *DashboardModel) View() string {
	st := m.intakeState
	progress := m.intake.DailyProgress()

	var b strings.Builder

	user := m.sessionState.Identity.Metadata.Name
	if user == "" {
		user = m.sessionState.Identity.Email
	}
	b.WriteString(fitText(user, progressWidth))
	if m.sessionState.IsLoading || st.IsLoading {
		b.WriteString("  ")
		b.WriteString(m.spinner.View())
	}
	b.WriteString("\n\n")

	mood := m.intake.CompanionMood()
	b.WriteString(companionFaces[st.SelectedCompanion][mood])
	b.WriteString("  ")
	b.WriteString(string(st.SelectedCompanion))
	b.WriteString(" is ")
	b.WriteString(string(mood))
	b.WriteString("\n\n")

	if st.DailyGoalMl > 0 {
		b.WriteString(fmt.Sprintf("Today   %d / %d ml (%.0f%%)\n", st.WaterIntake, st.DailyGoalMl, progress))
	} else {
		b.WriteString(fmt.Sprintf("Today   %d ml, no goal set\n", st.WaterIntake))
	}
	b.WriteString(waterStyle.Render(progressBar(progress, progressWidth)))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Streak  %s\n", pluralDays(m.intake.Streak())))
	b.WriteString(fmt.Sprintf("Cup     %d ml\n", st.CupVolumeMl))
	b.WriteString(fmt.Sprintf("Weight  %s (recommended %d ml)\n", formatWeight(st.WeightKg), m.intake.RecommendedIntake()))

	b.WriteString("\nToday's entries\n")
	if len(st.History) == 0 {
		b.WriteString("  -\n")
	}
	for _, e := range st.History {
		at := "--:--"
		if !e.CreatedAt.IsZero() {
			at = e.CreatedAt.Local().Format("15:04")
		}
		b.WriteString(fmt.Sprintf("  %s  %5d ml\n", at, e.AmountMl))
	}

	b.WriteString("\nRecent days\n")
	days := m.intake.DaySummaries()
	if len(days) > 0 {
		days = days[1:]
	}
	if len(days) == 0 {
		b.WriteString("  -\n")
	}
	for i, d := range days {
		if i == recentDaysShown {
			break
		}
		mark := ""
		if d.GoalMet {
			mark = okStyle.Render(" ✓")
		}
		b.WriteString(fmt.Sprintf("  %s  %5d ml%s\n", d.Date, d.TotalMl, mark))
	}

	if m.prompt != promptNone {
		b.WriteString("\n")
		b.WriteString(promptLabel(m.prompt))
		b.WriteString(" [")
		b.WriteString(m.input.View())
		b.WriteString("]\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(okStyle.Render(m.status))
		b.WriteString("\n")
	}
	if storeErr := firstNonEmpty(st.Error, m.sessionState.Error); storeErr != "" {
		b.WriteString("\n")
		b.WriteString(errorOverlayModel{message: storeErr}.View())
		b.WriteString("\n")
	}

	hotKeys := fmt.Sprintf("a: +%d ml │ g: goal │ v: cup │ w: weight │ p: companion │ r: refresh │ x: clear error │ l: sign out │ q: quit", st.CupVolumeMl)
	if m.prompt != promptNone {
		hotKeys = "enter: save │ esc: cancel"
	}

	return renderPage("WATER KEEPER", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func promptLabel(kind promptKind) string {
	switch kind {
	case promptGoal:
		return fmt.Sprintf("Daily goal, ml (%d-%d)", models.MinDailyGoalMl, models.MaxDailyGoalMl)
	case promptCupVolume:
		return "Cup volume, ml"
	case promptWeight:
		return "Weight, kg"
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func cmdOp(name string, fn func() error) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{op: name, err: fn()}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
