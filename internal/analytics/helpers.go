// SpotifyStats - Extended Streaming History Analytics
// Copyright 2026 Alex Gascón (alexgasconn)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alexgasconn/spotifystats

package analytics

import (
	"math"

	"github.com/alexgasconn/spotifystats/internal/models"
)

// roundMinutes converts accumulated fractional minutes to a whole number
// for presentation. Rounding happens only at the output boundary;
// intermediate accumulation is always done in float64 to avoid
// compounding rounding error across thousands of events.
func roundMinutes(m float64) int {
	return int(math.Round(m))
}

// round1 rounds to one decimal place (skip rates).
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// round2 rounds to two decimal places (percentages, diversity index).
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// skipRate returns the share of events, in percent, whose playback ended
// for any reason other than natural track completion. One decimal place.
// Empty input yields 0.
func skipRate(events []models.ListeningEvent) float64 {
	if len(events) == 0 {
		return 0
	}
	skipped := 0
	for i := range events {
		if events[i].IsSkipped() {
			skipped++
		}
	}
	return round1(100 * float64(skipped) / float64(len(events)))
}

// sumMinutes accumulates total listening minutes without rounding.
func sumMinutes(events []models.ListeningEvent) float64 {
	var total float64
	for i := range events {
		total += events[i].DurationMinutes
	}
	return total
}

// uniqueNonEmpty counts the distinct non-empty values produced by key
// across events. Events whose key is empty are not counted as a group.
func uniqueNonEmpty(events []models.ListeningEvent, key func(*models.ListeningEvent) string) int {
	seen := make(map[string]struct{})
	for i := range events {
		if k := key(&events[i]); k != "" {
			seen[k] = struct{}{}
		}
	}
	return len(seen)
}
