// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/MKhiriev/go-water-keeper/models"
)

// Day returns the local calendar day of t in [models.DateLayout].
func Day(t time.Time) string {
	return t.Local().Format(models.DateLayout)
}

// AddDays shifts a calendar day by n days (n may be negative). An
// unparsable day is returned unchanged.
func AddDays(day string, n int) string {
	t, err := time.ParseInLocation(models.DateLayout, day, time.Local)
	if err != nil {
		return day
	}
	return t.AddDate(0, 0, n).Format(models.DateLayout)
}
