// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Mood is the companion's reaction to the user's hydration.
type Mood string

const (
	// MoodNormal is shown before a streak has started.
	MoodNormal Mood = "normal"
	// MoodSad is shown while today's progress is below half of the goal.
	MoodSad Mood = "sad"
	// MoodHappy is shown once the user is on a streak and at least half way.
	MoodHappy Mood = "happy"
)

// MoodHalfwayPercent is the progress below which the companion is sad.
const MoodHalfwayPercent = 50

// MoodFor derives the companion mood from today's progress (0..100) and the
// current streak length.
func MoodFor(progressPercent float64, streak int) Mood {
	switch {
	case streak == 0:
		return MoodNormal
	case progressPercent < MoodHalfwayPercent:
		return MoodSad
	default:
		return MoodHappy
	}
}
