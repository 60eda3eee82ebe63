// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-water-keeper/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

const testUserID = "0192a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b"

func ptr[T any](v T) *T { return &v }

func validSettings() models.UserSettings {
	return models.UserSettings{
		UserID:            testUserID,
		DailyGoalMl:       2000,
		SelectedCompanion: models.CompanionCapybara,
		CupVolumeMl:       250,
		WeightKg:          ptr(70.0),
	}
}

func validEntry() models.WaterEntry {
	return models.WaterEntry{UserID: testUserID, AmountMl: 250, Date: "2026-10-15"}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestNewSettingsValidator(t *testing.T) {
	require.NotNil(t, NewSettingsValidator())
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewSettingsValidator()
	ctx := context.Background()

	s := validSettings()
	e := validEntry()
	creds := models.Credentials{Email: "alice@example.com", Password: "secret"}
	reg := models.Registration{Credentials: creds, Name: "Alice"}
	patch := models.SettingsPatch{DailyGoalMl: ptr(1500)}

	for name, obj := range map[string]any{
		"settings value":      s,
		"settings pointer":    &s,
		"entry value":         e,
		"entry pointer":       &e,
		"credentials value":   creds,
		"credentials pointer": &creds,
		"registration value":  reg,
		"registration ptr":    &reg,
		"patch value":         patch,
		"patch pointer":       &patch,
	} {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, v.Validate(ctx, obj))
		})
	}

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})
}

func TestValidate_UnknownField(t *testing.T) {
	v := NewSettingsValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, validSettings(), "nope"), ErrUnknownField)
	assert.ErrorIs(t, v.Validate(ctx, validEntry(), FieldCupVolume), ErrUnknownField)
	assert.ErrorIs(t, v.Validate(ctx, models.Credentials{}, FieldWeight), ErrUnknownField)
	assert.ErrorIs(t, v.Validate(ctx, models.SettingsPatch{}, FieldAmount), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// SettingsPatch
// ---------------------------------------------------------------------------

func TestValidate_SettingsPatch(t *testing.T) {
	v := NewSettingsValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		patch   models.SettingsPatch
		fields  []string
		wantErr error
	}{
		{name: "empty patch", patch: models.SettingsPatch{}},
		{name: "goal at lower bound", patch: models.SettingsPatch{DailyGoalMl: ptr(models.MinDailyGoalMl)}},
		{name: "goal at upper bound", patch: models.SettingsPatch{DailyGoalMl: ptr(models.MaxDailyGoalMl)}},
		{name: "goal too low", patch: models.SettingsPatch{DailyGoalMl: ptr(499)}, wantErr: ErrGoalOutOfRange},
		{name: "goal too high", patch: models.SettingsPatch{DailyGoalMl: ptr(5001)}, wantErr: ErrGoalOutOfRange},
		{name: "unknown companion", patch: models.SettingsPatch{SelectedCompanion: ptr(models.Companion("dog"))}, wantErr: ErrUnknownCompanion},
		{name: "cat", patch: models.SettingsPatch{SelectedCompanion: ptr(models.CompanionCat)}},
		{name: "zero cup", patch: models.SettingsPatch{CupVolumeMl: ptr(0)}, wantErr: ErrInvalidCupVolume},
		{name: "huge cup", patch: models.SettingsPatch{CupVolumeMl: ptr(models.MaxDailyGoalMl + 1)}, wantErr: ErrInvalidCupVolume},
		{name: "negative weight", patch: models.SettingsPatch{WeightKg: ptr(-1.0)}, wantErr: ErrInvalidWeight},
		{name: "NaN weight", patch: models.SettingsPatch{WeightKg: ptr(math.NaN())}, wantErr: ErrInvalidWeight},
		{name: "infinite weight", patch: models.SettingsPatch{WeightKg: ptr(math.Inf(1))}, wantErr: ErrInvalidWeight},
		{
			name:   "only named fields are checked",
			patch:  models.SettingsPatch{DailyGoalMl: ptr(1), CupVolumeMl: ptr(300)},
			fields: []string{FieldCupVolume},
		},
		{
			name:    "named field is checked",
			patch:   models.SettingsPatch{DailyGoalMl: ptr(1), CupVolumeMl: ptr(300)},
			fields:  []string{FieldCupVolume, FieldDailyGoal},
			wantErr: ErrGoalOutOfRange,
		},
		{name: "not empty rejects empty patch", patch: models.SettingsPatch{}, fields: []string{FieldNotEmpty}, wantErr: ErrNoFieldsToUpdate},
		{name: "not empty accepts a change", patch: models.SettingsPatch{CupVolumeMl: ptr(300)}, fields: []string{FieldNotEmpty}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.patch, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// UserSettings
// ---------------------------------------------------------------------------

func TestValidate_UserSettings(t *testing.T) {
	v := NewSettingsValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(s *models.UserSettings)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.UserSettings) {}},
		{name: "no weight", mutate: func(s *models.UserSettings) { s.WeightKg = nil }},
		{name: "bad user id", mutate: func(s *models.UserSettings) { s.UserID = "42" }, wantErr: ErrInvalidUserID},
		{name: "empty user id", mutate: func(s *models.UserSettings) { s.UserID = "" }, wantErr: ErrInvalidUserID},
		{name: "unset goal", mutate: func(s *models.UserSettings) { s.DailyGoalMl = 0 }, wantErr: ErrGoalOutOfRange},
		{name: "empty companion", mutate: func(s *models.UserSettings) { s.SelectedCompanion = "" }, wantErr: ErrUnknownCompanion},
		{name: "negative cup", mutate: func(s *models.UserSettings) { s.CupVolumeMl = -250 }, wantErr: ErrInvalidCupVolume},
		{name: "zero weight", mutate: func(s *models.UserSettings) { s.WeightKg = ptr(0.0) }, wantErr: ErrInvalidWeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSettings()
			tt.mutate(&s)

			err := v.Validate(ctx, s)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("field subset skips the rest", func(t *testing.T) {
		s := validSettings()
		s.UserID = ""
		assert.NoError(t, v.Validate(ctx, s, FieldDailyGoal, FieldCupVolume))
	})
}

// ---------------------------------------------------------------------------
// WaterEntry
// ---------------------------------------------------------------------------

func TestValidate_WaterEntry(t *testing.T) {
	v := NewSettingsValidator()
	ctx := context.Background()

	t.Run("amount only", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, models.WaterEntry{AmountMl: 1}, FieldAmount))
		assert.ErrorIs(t, v.Validate(ctx, models.WaterEntry{AmountMl: 0}, FieldAmount), ErrInvalidAmount)
		assert.ErrorIs(t, v.Validate(ctx, models.WaterEntry{AmountMl: -100}, FieldAmount), ErrInvalidAmount)
	})

	t.Run("date", func(t *testing.T) {
		e := validEntry()
		e.Date = "15.10.2026"
		assert.ErrorIs(t, v.Validate(ctx, e), ErrInvalidDate)

		e.Date = ""
		assert.ErrorIs(t, v.Validate(ctx, e, FieldDate), ErrInvalidDate)
	})

	t.Run("user id", func(t *testing.T) {
		e := validEntry()
		e.UserID = "not-a-uuid"
		assert.ErrorIs(t, v.Validate(ctx, e), ErrInvalidUserID)
	})
}

// ---------------------------------------------------------------------------
// Credentials and Registration
// ---------------------------------------------------------------------------

func TestValidate_Credentials(t *testing.T) {
	v := NewSettingsValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.Credentials{Password: "secret"}), ErrEmptyEmail)
	assert.ErrorIs(t, v.Validate(ctx, models.Credentials{Email: "   ", Password: "secret"}), ErrEmptyEmail)
	assert.ErrorIs(t, v.Validate(ctx, models.Credentials{Email: "alice@example.com"}), ErrEmptyPassword)
	assert.NoError(t, v.Validate(ctx, models.Credentials{Email: "alice@example.com"}, FieldEmail))
}

func TestValidate_Registration(t *testing.T) {
	v := NewSettingsValidator()
	ctx := context.Background()
	creds := models.Credentials{Email: "alice@example.com", Password: "secret"}

	assert.NoError(t, v.Validate(ctx, models.Registration{Credentials: creds, WeightKg: ptr(70.0)}))
	assert.ErrorIs(t, v.Validate(ctx, models.Registration{Credentials: creds, WeightKg: ptr(0.0)}), ErrInvalidWeight)
	assert.ErrorIs(t, v.Validate(ctx, models.Registration{WeightKg: ptr(70.0)}), ErrEmptyEmail)

	// weight is checked only when named or when no fields are given
	assert.NoError(t, v.Validate(ctx, models.Registration{Credentials: creds, WeightKg: ptr(-5.0)}, FieldEmail, FieldPassword))
}
