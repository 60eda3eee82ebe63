// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Snapshot is the locally persisted copy of the intake state used for an
// instant dashboard on restart. It is a cache, never a source of truth.
type Snapshot struct {
	DailyGoalMl       int          `json:"dailyGoalMl"`
	WaterIntake       int          `json:"waterIntake"`
	History           []WaterEntry `json:"history"`
	SelectedCompanion Companion    `json:"selectedCompanion"`
	CupVolumeMl       int          `json:"cupVolumeMl"`
}

// UnmarshalJSON decodes a snapshot, substituting an empty history when the
// field is missing or malformed.
func (s *Snapshot) UnmarshalJSON(b []byte) error {
	var raw struct {
		DailyGoalMl       int             `json:"dailyGoalMl"`
		WaterIntake       int             `json:"waterIntake"`
		History           json.RawMessage `json:"history"`
		SelectedCompanion Companion       `json:"selectedCompanion"`
		CupVolumeMl       int             `json:"cupVolumeMl"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	history := []WaterEntry{}
	if len(raw.History) > 0 {
		var entries []WaterEntry
		if err := json.Unmarshal(raw.History, &entries); err == nil && entries != nil {
			history = entries
		}
	}

	*s = Snapshot{
		DailyGoalMl:       raw.DailyGoalMl,
		WaterIntake:       raw.WaterIntake,
		History:           history,
		SelectedCompanion: raw.SelectedCompanion,
		CupVolumeMl:       raw.CupVolumeMl,
	}
	return nil
}
