// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantHistory int
		wantGoal    int
	}{
		{
			name:        "full snapshot",
			raw:         `{"dailyGoalMl":2000,"waterIntake":500,"history":[{"id":"1","user_id":"u","amount":500,"date":"2026-10-15"}],"selectedCompanion":"cat","cupVolumeMl":250}`,
			wantHistory: 1,
			wantGoal:    2000,
		},
		{
			name:     "missing history",
			raw:      `{"dailyGoalMl":1500,"waterIntake":0}`,
			wantGoal: 1500,
		},
		{
			name:     "malformed history",
			raw:      `{"dailyGoalMl":1800,"history":"oops"}`,
			wantGoal: 1800,
		},
		{
			name:     "null history",
			raw:      `{"dailyGoalMl":1800,"history":null}`,
			wantGoal: 1800,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Snapshot
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &s))
			assert.NotNil(t, s.History)
			assert.Len(t, s.History, tt.wantHistory)
			assert.Equal(t, tt.wantGoal, s.DailyGoalMl)
		})
	}
}

func TestSnapshot_UnmarshalJSON_NotAnObject(t *testing.T) {
	var s Snapshot
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &s))
}

func TestRecommendedIntakeMl(t *testing.T) {
	w := 70.0
	zero := 0.0

	assert.Equal(t, 2450, RecommendedIntakeMl(&w))
	assert.Equal(t, DefaultDailyGoalMl, RecommendedIntakeMl(nil))
	assert.Equal(t, DefaultDailyGoalMl, RecommendedIntakeMl(&zero))
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings("u1", nil)
	assert.Equal(t, "u1", s.UserID)
	assert.Equal(t, DefaultDailyGoalMl, s.DailyGoalMl)
	assert.Equal(t, CompanionCapybara, s.SelectedCompanion)
	assert.Equal(t, DefaultCupVolumeMl, s.CupVolumeMl)

	w := 80.0
	assert.Equal(t, 2800, DefaultSettings("u1", &w).DailyGoalMl)
}

func TestCompanion(t *testing.T) {
	assert.True(t, CompanionCat.Valid())
	assert.False(t, Companion("dog").Valid())
	assert.Equal(t, CompanionCat, CompanionCapybara.Next())
	assert.Equal(t, CompanionCapybara, CompanionCat.Next())

	_, err := ParseCompanion("dog")
	assert.Error(t, err)
	c, err := ParseCompanion("cat")
	require.NoError(t, err)
	assert.Equal(t, CompanionCat, c)
}

func TestSettingsPatch_Apply(t *testing.T) {
	goal := 3000
	cat := CompanionCat
	w := 60.0
	base := DefaultSettings("u1", nil)

	assert.True(t, SettingsPatch{}.IsEmpty())

	got := SettingsPatch{DailyGoalMl: &goal, SelectedCompanion: &cat, WeightKg: &w}.Apply(base)
	assert.Equal(t, 3000, got.DailyGoalMl)
	assert.Equal(t, CompanionCat, got.SelectedCompanion)
	assert.Equal(t, DefaultCupVolumeMl, got.CupVolumeMl)
	require.NotNil(t, got.WeightKg)
	assert.Equal(t, 60.0, *got.WeightKg)
}

func TestSession_Expired(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	assert.False(t, Session{AccessToken: "t"}.Expired(now))
	assert.True(t, Session{AccessToken: "t", ExpiresAt: now}.Expired(now))
	assert.False(t, Session{AccessToken: "t", ExpiresAt: now.Add(time.Minute)}.Expired(now))
}

func TestSumAmounts(t *testing.T) {
	assert.Equal(t, 0, SumAmounts(nil))
	assert.Equal(t, 1200, SumAmounts([]WaterEntry{{AmountMl: 500}, {AmountMl: 700}}))
}

func TestMoodFor(t *testing.T) {
	assert.Equal(t, MoodNormal, MoodFor(80, 0))
	assert.Equal(t, MoodSad, MoodFor(49.9, 3))
	assert.Equal(t, MoodHappy, MoodFor(50, 1))
}

func TestClampDailyGoal(t *testing.T) {
	assert.Equal(t, MinDailyGoalMl, ClampDailyGoal(350))
	assert.Equal(t, 2450, ClampDailyGoal(2450))
	assert.Equal(t, MaxDailyGoalMl, ClampDailyGoal(7000))

	heavy := 200.0
	assert.Equal(t, MaxDailyGoalMl, DefaultSettings("u1", &heavy).DailyGoalMl)
}
