// SpotifyStats - Extended Streaming History Analytics
// Copyright 2026 Alex Gascón (alexgasconn)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alexgasconn/spotifystats

package analytics

import (
	"sort"

	"github.com/alexgasconn/spotifystats/internal/models"
)

// Temporal computes how listening distributes across hours of day,
// weekdays, months, and years. Hour, weekday, and month axes count
// events; the year axis reports minutes, because year-over-year volume
// is more meaningful in time listened than in play counts.
//
// Weekday slot 0 is Monday. Month slot 0 is January.
func Temporal(events []models.ListeningEvent) models.TemporalDistribution {
	var dist models.TemporalDistribution

	yearMin := make(map[int]float64)
	for i := range events {
		e := &events[i]
		dist.HourCounts[e.Hour]++
		dist.WeekdayCounts[e.Weekday]++
		dist.MonthCounts[e.Month]++
		yearMin[e.Year] += e.DurationMinutes
	}

	dist.YearMinutes = make([]models.YearMinutes, 0, len(yearMin))
	for y, m := range yearMin {
		dist.YearMinutes = append(dist.YearMinutes, models.YearMinutes{
			Year:    y,
			Minutes: roundMinutes(m),
		})
	}
	sort.Slice(dist.YearMinutes, func(i, j int) bool {
		return dist.YearMinutes[i].Year < dist.YearMinutes[j].Year
	})
	return dist
}
