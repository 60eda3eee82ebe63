// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// Settings limits and defaults.
const (
	MinDailyGoalMl     = 500
	MaxDailyGoalMl     = 5000
	DefaultDailyGoalMl = 2000
	DefaultCupVolumeMl = 250

	// MlPerKg is the recommended daily intake per kilogram of body weight.
	MlPerKg = 35
)

// Companion is the virtual pet shown next to the hydration progress.
type Companion string

const (
	CompanionCapybara Companion = "capybara"
	CompanionCat      Companion = "cat"

	DefaultCompanion = CompanionCapybara
)

// Companions lists every selectable companion in display order.
var Companions = []Companion{CompanionCapybara, CompanionCat}

// Valid reports whether c is one of the supported companions.
func (c Companion) Valid() bool {
	switch c {
	case CompanionCapybara, CompanionCat:
		return true
	}
	return false
}

// Next returns the companion following c in [Companions], wrapping around.
func (c Companion) Next() Companion {
	for i, v := range Companions {
		if v == c {
			return Companions[(i+1)%len(Companions)]
		}
	}
	return DefaultCompanion
}

// ParseCompanion converts s into a [Companion].
func ParseCompanion(s string) (Companion, error) {
	c := Companion(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown companion %q", s)
	}
	return c, nil
}

// UserSettings is the per-user preference row stored in the user_settings
// table. Exactly one row exists per user; it is created lazily.
type UserSettings struct {
	UserID            string    `json:"user_id"`
	DailyGoalMl       int       `json:"daily_goal"`
	SelectedCompanion Companion `json:"selected_pet"`
	CupVolumeMl       int       `json:"cup_volume"`
	WeightKg          *float64  `json:"weight,omitempty"`
}

// TableName returns the backend table holding user settings.
func (UserSettings) TableName() string {
	return "user_settings"
}

// RecommendedIntakeMl returns weightKg × 35 when a weight is known and the
// default goal otherwise.
func RecommendedIntakeMl(weightKg *float64) int {
	if weightKg == nil || *weightKg <= 0 {
		return DefaultDailyGoalMl
	}
	return int(*weightKg * MlPerKg)
}

// ClampDailyGoal limits ml to [MinDailyGoalMl, MaxDailyGoalMl].
func ClampDailyGoal(ml int) int {
	return min(max(ml, MinDailyGoalMl), MaxDailyGoalMl)
}

// DefaultSettings returns a settings row for userID seeded with defaults.
// The goal follows the recommendation for weightKg when it is known.
func DefaultSettings(userID string, weightKg *float64) UserSettings {
	return UserSettings{
		UserID:            userID,
		DailyGoalMl:       ClampDailyGoal(RecommendedIntakeMl(weightKg)),
		SelectedCompanion: DefaultCompanion,
		CupVolumeMl:       DefaultCupVolumeMl,
		WeightKg:          weightKg,
	}
}

// SettingsPatch is a partial update of [UserSettings]. Nil fields are left
// untouched.
type SettingsPatch struct {
	DailyGoalMl       *int       `json:"daily_goal,omitempty"`
	SelectedCompanion *Companion `json:"selected_pet,omitempty"`
	CupVolumeMl       *int       `json:"cup_volume,omitempty"`
	WeightKg          *float64   `json:"weight,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p SettingsPatch) IsEmpty() bool {
	return p.DailyGoalMl == nil && p.SelectedCompanion == nil && p.CupVolumeMl == nil && p.WeightKg == nil
}

// Apply returns s with every non-nil field of p applied.
func (p SettingsPatch) Apply(s UserSettings) UserSettings {
	if p.DailyGoalMl != nil {
		s.DailyGoalMl = *p.DailyGoalMl
	}
	if p.SelectedCompanion != nil {
		s.SelectedCompanion = *p.SelectedCompanion
	}
	if p.CupVolumeMl != nil {
		s.CupVolumeMl = *p.CupVolumeMl
	}
	if p.WeightKg != nil {
		w := *p.WeightKg
		s.WeightKg = &w
	}
	return s
}
