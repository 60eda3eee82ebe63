// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-water-keeper/internal/service"
	"github.com/MKhiriev/go-water-keeper/models"
)

const (
	registerName = iota
	registerEmail
	registerPassword
	registerRepeat
	registerWeight
)

// RegisterModel is the account creation form: name, email, password twice
// and an optional weight used to seed the daily goal.
type RegisterModel struct {
	ctx     context.Context
	session service.SessionService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
	email      string
}

func NewRegisterModel(ctx context.Context, session service.SessionService) *RegisterModel {
	fields := make([]textinput.Model, 5)

	fields[registerName] = textinput.New()
	fields[registerName].Placeholder = "name"
	fields[registerName].Width = 40
	fields[registerName].Focus()

	fields[registerEmail] = textinput.New()
	fields[registerEmail].Placeholder = "email"
	fields[registerEmail].CharLimit = 254
	fields[registerEmail].Width = 40

	fields[registerPassword] = textinput.New()
	fields[registerPassword].Placeholder = "password"
	fields[registerPassword].EchoMode = textinput.EchoPassword
	fields[registerPassword].EchoCharacter = '*'
	fields[registerPassword].Width = 40

	fields[registerRepeat] = textinput.New()
	fields[registerRepeat].Placeholder = "repeat password"
	fields[registerRepeat].EchoMode = textinput.EchoPassword
	fields[registerRepeat].EchoCharacter = '*'
	fields[registerRepeat].Width = 40

	fields[registerWeight] = textinput.New()
	fields[registerWeight].Placeholder = "weight, kg (optional)"
	fields[registerWeight].CharLimit = 6
	fields[registerWeight].Width = 40

	return &RegisterModel{
		ctx:     ctx,
		session: session,
		inputs:  fields,
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(authDoneMsg); ok {
		m.submitting = false
		switch {
		case errors.Is(result.err, service.ErrRegistrationIncomplete):
			email := m.email
			m.reset()
			return m, func() tea.Msg {
				return NavigateTo{Page: pageMenu, Payload: RegisterNotice{Email: email}}
			}
		case result.err != nil:
			m.errMsg = m.session.State().Error
		default:
			m.reset()
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.nextField):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.prevField):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			reg, errMsg := m.registration()
			if errMsg != "" {
				m.errMsg = errMsg
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			m.email = reg.Email
			return m, m.cmdRegister(reg)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// registration reads the form. A non-empty message means the form is not
// ready to submit.
func (m *RegisterModel) registration() (models.Registration, string) {
	reg := models.Registration{
		Credentials: models.Credentials{
			Email:    strings.TrimSpace(m.inputs[registerEmail].Value()),
			Password: m.inputs[registerPassword].Value(),
		},
		Name: strings.TrimSpace(m.inputs[registerName].Value()),
	}

	if reg.Name == "" || reg.Email == "" || reg.Password == "" {
		return reg, "name, email and password are required"
	}
	if reg.Password != m.inputs[registerRepeat].Value() {
		return reg, "passwords do not match"
	}

	if raw := strings.TrimSpace(m.inputs[registerWeight].Value()); raw != "" {
		kg, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
		if err != nil || kg <= 0 {
			return reg, "weight must be a positive number"
		}
		reg.WeightKg = &kg
	}

	return reg, ""
}

func (m *RegisterModel) View() string {
	labels := []string{"Name", "Email", "Password", "Repeat", "Weight"}

	var b strings.Builder
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	for i, label := range labels {
		b.WriteString(label)
		b.WriteString(strings.Repeat(" ", 10-len(label)))
		b.WriteString("│ [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[Create account]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("CREATE ACCOUNT", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(reg models.Registration) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		return authDoneMsg{err: session.SignUp(ctx, reg)}
	}
}

func (m *RegisterModel) reset() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[0].Focus()
	m.errMsg = ""
	m.email = ""
}

func (m *RegisterModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *RegisterModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
