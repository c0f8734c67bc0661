// SpotifyStats - Extended Streaming History Analytics
// Copyright 2026 Alex Gascón (alexgasconn)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alexgasconn/spotifystats

package analytics

import (
	"testing"

	"github.com/alexgasconn/spotifystats/internal/models"
)

func TestStreaks(t *testing.T) {
	// Active Jan 1-3, silent Jan 4-5, active Jan 6. Six days in range.
	events := []models.ListeningEvent{
		play("2023-01-01T10:00:00Z", 10, "A", "X", ""),
		play("2023-01-02T10:00:00Z", 20, "B", "X", ""),
		play("2023-01-03T10:00:00Z", 30, "C", "X", ""),
		play("2023-01-06T10:00:00Z", 60, "D", "X", ""),
	}

	s := Streaks(events)
	if s.DaysInRange != 6 {
		t.Errorf("DaysInRange = %d, want 6", s.DaysInRange)
	}
	if s.ActiveDays != 4 {
		t.Errorf("ActiveDays = %d, want 4", s.ActiveDays)
	}
	if s.SilentDays != 2 {
		t.Errorf("SilentDays = %d, want 2", s.SilentDays)
	}
	if s.LongestStreak != 3 {
		t.Errorf("LongestStreak = %d, want 3", s.LongestStreak)
	}
	if s.LongestSilence != 2 {
		t.Errorf("LongestSilence = %d, want 2", s.LongestSilence)
	}
	if s.AvgMinutesPerActiveDay != 30 {
		t.Errorf("AvgMinutesPerActiveDay = %v, want 30", s.AvgMinutesPerActiveDay)
	}
	if s.AvgMinutesPerDay != 20 {
		t.Errorf("AvgMinutesPerDay = %v, want 20", s.AvgMinutesPerDay)
	}
}

func TestStreaksSingleDay(t *testing.T) {
	events := []models.ListeningEvent{
		play("2023-05-05T08:00:00Z", 15, "A", "X", ""),
		play("2023-05-05T20:00:00Z", 15, "B", "X", ""),
	}

	s := Streaks(events)
	if s.DaysInRange != 1 || s.ActiveDays != 1 || s.SilentDays != 0 {
		t.Errorf("single-day summary = %+v, want one active day", s)
	}
	if s.LongestStreak != 1 || s.LongestSilence != 0 {
		t.Errorf("streak/silence = %d/%d, want 1/0", s.LongestStreak, s.LongestSilence)
	}
}

func TestStreaksEmptyInput(t *testing.T) {
	if s := Streaks(nil); s != (models.StreakSummary{}) {
		t.Errorf("Streaks(nil) = %+v, want zero value", s)
	}
}
