// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-water-keeper/models"
)

// IntakeService owns today's water-intake records, the running total and
// the derived metrics.
//
// Every mutating operation is serialized with the others, bracketed by
// IsLoading, bounded by the operation timeout, and re-fetches authoritative
// state from the backend once its write succeeds. Failures are recorded in
// the Error field of the state and also returned.
type IntakeService interface {
	// Attach binds the signed-in identity. Operations that talk to the
	// backend fail with ErrAuthRequired until an identity is attached.
	Attach(identity models.Identity)

	// Attached reports whether an identity is bound.
	Attached() bool

	// ApplySettings copies goal, companion, cup volume and weight from a
	// settings row into the local state without contacting the backend.
	ApplySettings(settings models.UserSettings)

	// Restore loads the locally persisted snapshot for instant display.
	// A missing snapshot is not an error.
	Restore(ctx context.Context) error

	// SetDailyGoal validates 500 <= ml <= 5000, saves it, and reloads.
	SetDailyGoal(ctx context.Context, ml int) error

	// AddWater records ml for today unless it would exceed the daily goal,
	// in which case ErrGoalAlreadyReached is returned and nothing is stored.
	AddWater(ctx context.Context, ml int) error

	// LoadHistory refreshes settings and entries from the backend. On
	// failure the store is reset to defaults and the error recorded.
	LoadHistory(ctx context.Context) error

	SetSelectedCompanion(ctx context.Context, companion models.Companion) error
	SetCupVolume(ctx context.Context, ml int) error

	// SetWeight saves the weight and, when no goal is set yet, adopts the
	// recommended intake as the daily goal.
	SetWeight(ctx context.Context, kg float64) error

	// DailyProgress returns min(100, intake/goal*100), or 0 without a goal.
	DailyProgress() float64

	// Streak returns the number of consecutive days with at least one entry,
	// counting back from today.
	Streak() int

	// RecommendedIntake returns weight*35 when weight is known, else 2000.
	RecommendedIntake() int

	// DaySummaries returns per-day totals for the loaded window, newest
	// first, starting with today.
	DaySummaries() []models.DaySummary

	// CompanionMood derives the companion's mood from progress and streak.
	CompanionMood() models.Mood

	// ResetState restores defaults, detaches the identity and purges the
	// persisted snapshot.
	ResetState(ctx context.Context) error

	ClearError()
	State() IntakeState
	Subscribe(fn func(IntakeState)) (unsubscribe func())
}

// SessionService holds the current identity and coordinates the settings
// lifecycle.
type SessionService interface {
	// SignIn sets the identity, loads (or creates) the settings and hands
	// over to the intake store. Concurrent calls for the same identity are
	// coalesced and a call for an identity that is already loaded is a
	// no-op.
	SignIn(ctx context.Context, identity models.Identity) error

	// SignInWithPassword authenticates with the backend and then signs in.
	SignInWithPassword(ctx context.Context, creds models.Credentials) error

	// SignUp registers a new account and signs in when the backend issues
	// a session right away.
	SignUp(ctx context.Context, reg models.Registration) error

	// RestoreSession signs in with the locally persisted session when it is
	// still valid.
	RestoreSession(ctx context.Context) error

	// WatchAuthChanges follows the backend's session-change notifications
	// until the returned function is called.
	WatchAuthChanges(ctx context.Context) (unwatch func())

	// LoadSettings fetches the settings of the current identity, creating
	// them with defaults when absent.
	LoadSettings(ctx context.Context) error

	// SignOut clears local state first, then revokes the backend session.
	SignOut(ctx context.Context) error

	// UpdateSettings sends patch to the backend as a partial update, creating
	// the row with defaults when it is absent. Fields patch leaves unset keep
	// their stored values.
	UpdateSettings(ctx context.Context, patch models.SettingsPatch) error

	// ApplySettings adopts a settings row another store saved or loaded. It
	// is ignored unless it belongs to the signed-in identity and the initial
	// settings load has finished, and it runs no hooks.
	ApplySettings(settings models.UserSettings)

	// Identity returns the signed-in identity (zero when signed out).
	Identity() models.Identity

	// Settings returns the loaded settings or nil.
	Settings() *models.UserSettings

	ClearError()
	State() SessionState
	Subscribe(fn func(SessionState)) (unsubscribe func())
}

// RefreshJob periodically reloads the intake store so day rollover and
// changes from other devices show up.
type RefreshJob interface {
	// Start launches the background refresh goroutine. It refreshes every
	// interval, defaulting to 5 minutes if interval is zero or negative.
	// Any previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
