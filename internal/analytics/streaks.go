// SpotifyStats - Extended Streaming History Analytics
// Copyright 2026 Alex Gascón (alexgasconn)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alexgasconn/spotifystats

package analytics

import (
	"time"

	"github.com/alexgasconn/spotifystats/internal/models"
)

// Streaks walks the calendar span from the first to the last listening
// day and measures consistency: how many days had any listening, the
// longest unbroken run of listening days, and the longest silent gap.
// Averages are reported both per active day and per calendar day.
func Streaks(events []models.ListeningEvent) models.StreakSummary {
	var s models.StreakSummary
	if len(events) == 0 {
		return s
	}

	dayMinutes := make(map[string]float64)
	first, last := events[0].Date, events[0].Date
	for i := range events {
		e := &events[i]
		dayMinutes[e.Date] += e.DurationMinutes
		if e.Date < first {
			first = e.Date
		}
		if e.Date > last {
			last = e.Date
		}
	}

	start, err := time.Parse("2006-01-02", first)
	if err != nil {
		return s
	}
	end, err := time.Parse("2006-01-02", last)
	if err != nil {
		return s
	}

	var streak, silence int
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		s.DaysInRange++
		if _, active := dayMinutes[d.Format("2006-01-02")]; active {
			s.ActiveDays++
			streak++
			silence = 0
			if streak > s.LongestStreak {
				s.LongestStreak = streak
			}
		} else {
			s.SilentDays++
			silence++
			streak = 0
			if silence > s.LongestSilence {
				s.LongestSilence = silence
			}
		}
	}

	total := sumMinutes(events)
	if s.ActiveDays > 0 {
		s.AvgMinutesPerActiveDay = round1(total / float64(s.ActiveDays))
	}
	if s.DaysInRange > 0 {
		s.AvgMinutesPerDay = round1(total / float64(s.DaysInRange))
	}
	return s
}
