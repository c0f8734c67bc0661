// SpotifyStats - Extended Streaming History Analytics
// Copyright 2026 Alex Gascón (alexgasconn)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alexgasconn/spotifystats

package analytics

import (
	"fmt"
	"sort"

	"github.com/alexgasconn/spotifystats/internal/models"
)

// TimelineUnit is the bucket granularity for Timeline.
type TimelineUnit string

const (
	UnitDay   TimelineUnit = "day"
	UnitWeek  TimelineUnit = "week"
	UnitMonth TimelineUnit = "month"
	UnitYear  TimelineUnit = "year"
)

// Timeline buckets total listening minutes by calendar unit. Bucket labels
// are ISO dates identifying the first day of the unit: the day itself, the
// Monday of the week, the first of the month, or January 1st of the year.
// Labels are ISO formatted, so lexicographic order is chronological; the
// result is sorted ascending. Buckets with no listening are omitted rather
// than zero-filled, since history spans can cover years of days.
func Timeline(events []models.ListeningEvent, unit TimelineUnit) []models.TimelineBucket {
	minutes := make(map[string]float64)
	for i := range events {
		e := &events[i]
		minutes[bucketLabel(e, unit)] += e.DurationMinutes
	}

	out := make([]models.TimelineBucket, 0, len(minutes))
	for label, m := range minutes {
		out = append(out, models.TimelineBucket{Bucket: label, Minutes: roundMinutes(m)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Bucket < out[j].Bucket })
	return out
}

func bucketLabel(e *models.ListeningEvent, unit TimelineUnit) string {
	switch unit {
	case UnitWeek:
		monday := e.Timestamp.AddDate(0, 0, -e.Weekday)
		return monday.Format("2006-01-02")
	case UnitMonth:
		return fmt.Sprintf("%04d-%02d-01", e.Year, e.Month+1)
	case UnitYear:
		return fmt.Sprintf("%04d-01-01", e.Year)
	default:
		return e.Date
	}
}

// ParseTimelineUnit maps a user-facing unit name to a TimelineUnit,
// defaulting to weeks for anything unrecognized.
func ParseTimelineUnit(s string) TimelineUnit {
	switch TimelineUnit(s) {
	case UnitDay, UnitMonth, UnitYear:
		return TimelineUnit(s)
	default:
		return UnitWeek
	}
}
