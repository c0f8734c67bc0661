// SpotifyStats - Extended Streaming History Analytics
// Copyright 2026 Alex Gascón (alexgasconn)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alexgasconn/spotifystats

package analytics

import (
	"github.com/alexgasconn/spotifystats/internal/models"
)

// GlobalKPIs summarizes a whole event set in headline numbers: total
// volume, distinct catalog reach, listening cadence, skip behavior, and
// an artist-diversity index (distinct artists per thousand events,
// rounded to two decimals).
//
// MinutesPerDay averages over active days only, never calendar span, so
// sparse histories are not diluted by silent stretches.
func GlobalKPIs(events []models.ListeningEvent) models.GlobalKPIs {
	var k models.GlobalKPIs
	if len(events) == 0 {
		return k
	}

	totalMin := sumMinutes(events)
	activeDays := uniqueNonEmpty(events, func(e *models.ListeningEvent) string { return e.Date })

	k.TotalMinutes = roundMinutes(totalMin)
	k.TotalDays = roundMinutes(totalMin / 1440)
	k.UniqueTracks = uniqueNonEmpty(events, func(e *models.ListeningEvent) string { return e.TrackName })
	k.UniqueArtists = uniqueNonEmpty(events, func(e *models.ListeningEvent) string { return e.ArtistName })
	k.ActiveDays = activeDays
	if activeDays > 0 {
		k.MinutesPerDay = roundMinutes(totalMin / float64(activeDays))
	}
	k.SkipRate = skipRate(events)
	k.Diversity = round2(1000 * float64(k.UniqueArtists) / float64(len(events)))
	return k
}
