// SpotifyStats - Extended Streaming History Analytics
// Copyright 2026 Alex Gascón (alexgasconn)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alexgasconn/spotifystats

package analytics

import (
	"math"
	"sort"

	"github.com/alexgasconn/spotifystats/internal/models"
)

// wrappedTopN is how many tracks, artists, and albums a wrapped summary
// highlights.
const wrappedTopN = 5

// Wrapped builds the year-in-review summary for one calendar year.
// It takes the full (unfiltered) history because discovery percentages
// compare the year's catalog against everything listened before it.
// Returns nil when the year has no events.
func Wrapped(year int, full []models.ListeningEvent) *models.WrappedSummary {
	var inYear, prior []models.ListeningEvent
	for i := range full {
		switch {
		case full[i].Year == year:
			inYear = append(inYear, full[i])
		case full[i].Year < year:
			prior = append(prior, full[i])
		}
	}
	if len(inYear) == 0 {
		return nil
	}

	s := &models.WrappedSummary{Year: year}

	var totalMin float64
	var monthly [12]float64
	for i := range inYear {
		totalMin += inYear[i].DurationMinutes
		monthly[inYear[i].Month] += inYear[i].DurationMinutes
	}
	s.TotalMinutes = roundMinutes(totalMin)
	for m := range monthly {
		s.MonthlyMinutes[m] = roundMinutes(monthly[m])
	}

	trackKey := func(e *models.ListeningEvent) string { return e.TrackName }
	artistKey := func(e *models.ListeningEvent) string { return e.ArtistName }
	albumKey := func(e *models.ListeningEvent) string {
		if e.AlbumName == "" {
			return ""
		}
		return e.AlbumName + albumKeySep + e.ArtistName
	}

	s.UniqueTracks = uniqueNonEmpty(inYear, trackKey)
	s.UniqueArtists = uniqueNonEmpty(inYear, artistKey)
	s.UniqueAlbums = uniqueNonEmpty(inYear, albumKey)

	s.TrackDiscovery = discoveryPercent(inYear, prior, trackKey)
	s.ArtistDiscovery = discoveryPercent(inYear, prior, artistKey)
	s.AlbumDiscovery = discoveryPercent(inYear, prior, albumKey)

	s.SkipRate = skipRate(inYear)
	s.TopTracks = TopTracks(inYear, wrappedTopN, ByCount)
	s.TopArtists = TopArtists(inYear, wrappedTopN, ByCount)
	s.TopAlbums = TopAlbums(inYear, wrappedTopN, ByMinutes)
	return s
}

// WrappedYears lists every calendar year with at least one event,
// ascending. Convenient for rendering one wrapped summary per year.
func WrappedYears(events []models.ListeningEvent) []int {
	seen := make(map[int]struct{})
	for i := range events {
		seen[events[i].Year] = struct{}{}
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// discoveryPercent measures how much of a year's catalog was heard for
// the first time: the share of the year's distinct values absent from all
// prior listening. A first year of history counts as 100% discovery; a
// year with no usable values counts as 0.
func discoveryPercent(inYear, prior []models.ListeningEvent, key func(*models.ListeningEvent) string) int {
	current := make(map[string]struct{})
	for i := range inYear {
		if k := key(&inYear[i]); k != "" {
			current[k] = struct{}{}
		}
	}
	if len(current) == 0 {
		return 0
	}
	if len(prior) == 0 {
		return 100
	}
	before := make(map[string]struct{})
	for i := range prior {
		if k := key(&prior[i]); k != "" {
			before[k] = struct{}{}
		}
	}
	fresh := 0
	for k := range current {
		if _, ok := before[k]; !ok {
			fresh++
		}
	}
	return int(math.Round(100 * float64(fresh) / float64(len(current))))
}
