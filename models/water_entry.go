// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DateLayout is the calendar-day format used for [WaterEntry.Date].
const DateLayout = "2006-01-02"

// WaterEntry is an append-only intake record. ID and CreatedAt are assigned
// by the backend.
type WaterEntry struct {
	ID        string    `json:"id,omitempty"`
	UserID    string    `json:"user_id"`
	AmountMl  int       `json:"amount"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// TableName returns the backend table holding intake records.
func (WaterEntry) TableName() string {
	return "water_history"
}

// EntryQuery selects a user's entries for an inclusive range of calendar
// days. An empty To means "up to and including From".
type EntryQuery struct {
	From string
	To   string
}

// DaySummary is the aggregated consumption of a single calendar day.
type DaySummary struct {
	Date    string
	TotalMl int
	Entries int
	GoalMet bool
}

// SumAmounts returns the total amount of entries.
func SumAmounts(entries []WaterEntry) int {
	total := 0
	for _, e := range entries {
		total += e.AmountMl
	}
	return total
}
