// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	enter      key.Binding
	esc        key.Binding
	nextField  key.Binding
	prevField  key.Binding
	quit       key.Binding
	addCup     key.Binding
	goal       key.Binding
	cupVolume  key.Binding
	weight     key.Binding
	companion  key.Binding
	refresh    key.Binding
	clearError key.Binding
	logout     key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	nextField:  key.NewBinding(key.WithKeys("tab", "down")),
	prevField:  key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:       key.NewBinding(key.WithKeys("q")),
	addCup:     key.NewBinding(key.WithKeys("a")),
	goal:       key.NewBinding(key.WithKeys("g")),
	cupVolume:  key.NewBinding(key.WithKeys("v")),
	weight:     key.NewBinding(key.WithKeys("w")),
	companion:  key.NewBinding(key.WithKeys("p")),
	refresh:    key.NewBinding(key.WithKeys("r")),
	clearError: key.NewBinding(key.WithKeys("x")),
	logout:     key.NewBinding(key.WithKeys("l")),
}
