// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-water-keeper/internal/service"

// NavigateTo asks the [RootModel] to switch to Page. A non-nil Payload is
// delivered to the new page as its first message.
type NavigateTo struct {
	Page    string
	Payload any
}

// RegisterNotice is delivered to the menu after a registration that needs
// email confirmation before the first sign-in.
type RegisterNotice struct {
	Email string
}

type sessionChangedMsg struct {
	state service.SessionState
}

type intakeChangedMsg struct {
	state service.IntakeState
}

type authDoneMsg struct {
	err error
}

type opDoneMsg struct {
	op  string
	err error
}

type clearStatusMsg struct{}
