// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"slices"
	"sync"

	"github.com/MKhiriev/go-water-keeper/models"
)

// IntakeState is an immutable copy of the intake store.
type IntakeState struct {
	DailyGoalMl       int
	WaterIntake       int
	History           []models.WaterEntry
	PastDays          []models.DaySummary
	SelectedCompanion models.Companion
	CupVolumeMl       int
	WeightKg          *float64
	IsLoading         bool
	Error             string
}

func defaultIntakeState() IntakeState {
	return IntakeState{
		History:           []models.WaterEntry{},
		PastDays:          []models.DaySummary{},
		SelectedCompanion: models.DefaultCompanion,
		CupVolumeMl:       models.DefaultCupVolumeMl,
	}
}

func (s IntakeState) clone() IntakeState {
	s.History = slices.Clone(s.History)
	s.PastDays = slices.Clone(s.PastDays)
	if s.WeightKg != nil {
		w := *s.WeightKg
		s.WeightKg = &w
	}
	return s
}

func (s IntakeState) snapshot() models.Snapshot {
	return models.Snapshot{
		DailyGoalMl:       s.DailyGoalMl,
		WaterIntake:       s.WaterIntake,
		History:           slices.Clone(s.History),
		SelectedCompanion: s.SelectedCompanion,
		CupVolumeMl:       s.CupVolumeMl,
	}
}

// SessionPhase is the lifecycle position of the session store.
type SessionPhase string

const (
	PhaseSignedOut       SessionPhase = "signed-out"
	PhaseSettingsLoading SessionPhase = "settings-loading"
	PhaseReady           SessionPhase = "ready"
	// PhaseReadyWithError means signed in but the settings could not be
	// loaded; Settings is nil.
	PhaseReadyWithError SessionPhase = "ready-with-error"
)

// SessionState is an immutable copy of the session store.
type SessionState struct {
	Phase     SessionPhase
	Identity  models.Identity
	Settings  *models.UserSettings
	IsLoading bool
	Error     string
}

func (s SessionState) clone() SessionState {
	if s.Settings != nil {
		cp := *s.Settings
		s.Settings = &cp
	}
	return s
}

// subscribers fans state copies out to UI listeners.
type subscribers[T any] struct {
	mu   sync.Mutex
	next int
	fns  map[int]func(T)
}

func (s *subscribers[T]) add(fn func(T)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fns == nil {
		s.fns = make(map[int]func(T))
	}
	id := s.next
	s.next++
	s.fns[id] = fn

	return func() {
		s.mu.Lock()
		delete(s.fns, id)
		s.mu.Unlock()
	}
}

func (s *subscribers[T]) notify(v T) {
	s.mu.Lock()
	fns := make([]func(T), 0, len(s.fns))
	for _, fn := range s.fns {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(v)
	}
}
