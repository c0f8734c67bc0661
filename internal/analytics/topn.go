// SpotifyStats - Extended Streaming History Analytics
// Copyright 2026 Alex Gascón (alexgasconn)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alexgasconn/spotifystats

package analytics

import (
	"sort"
	"strings"

	"github.com/alexgasconn/spotifystats/internal/models"
)

// Metric selects the quantity a ranking is ordered by.
type Metric string

const (
	// ByCount ranks by number of listening events.
	ByCount Metric = "count"
	// ByMinutes ranks by accumulated listening minutes.
	ByMinutes Metric = "minutes"
)

// albumKeySep joins album and artist into a composite grouping key.
// NUL cannot appear in scraped metadata, so the join is unambiguous.
const albumKeySep = "\x00"

// rankedGroup accumulates one grouping bucket during aggregation.
type rankedGroup struct {
	item    models.RankedItem
	minutes float64
	order   int
}

// rankGroups aggregates events into named groups and returns the top n by
// the requested metric. Groups whose key is empty are excluded. Ties are
// broken by first appearance in the input, which is chronological when the
// input comes from the store.
func rankGroups(events []models.ListeningEvent, n int, metric Metric,
	key func(*models.ListeningEvent) string,
	fill func(*models.ListeningEvent, *models.RankedItem)) []models.RankedItem {

	groups := make(map[string]*rankedGroup)
	order := make([]string, 0)

	for i := range events {
		e := &events[i]
		k := key(e)
		if k == "" {
			continue
		}
		g, ok := groups[k]
		if !ok {
			g = &rankedGroup{order: len(order)}
			fill(e, &g.item)
			groups[k] = g
			order = append(order, k)
		}
		g.item.Count++
		g.minutes += e.DurationMinutes
	}

	ranked := make([]*rankedGroup, 0, len(groups))
	for _, k := range order {
		ranked = append(ranked, groups[k])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if metric == ByMinutes {
			return ranked[i].minutes > ranked[j].minutes
		}
		return ranked[i].item.Count > ranked[j].item.Count
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	out := make([]models.RankedItem, len(ranked))
	for i, g := range ranked {
		g.item.Minutes = roundMinutes(g.minutes)
		out[i] = g.item
	}
	return out
}

// TopTracks returns the n most-listened tracks. Tracks sharing a name but
// by different artists are distinct groups only when the composite key
// differs; Spotify exports key tracks by name alone, so plain track name
// is the grouping key here, matching the export's own semantics.
func TopTracks(events []models.ListeningEvent, n int, metric Metric) []models.RankedItem {
	return rankGroups(events, n, metric,
		func(e *models.ListeningEvent) string { return e.TrackName },
		func(e *models.ListeningEvent, item *models.RankedItem) {
			item.Name = e.TrackName
			item.Artist = e.ArtistName
		})
}

// TopArtists returns the n most-listened artists.
func TopArtists(events []models.ListeningEvent, n int, metric Metric) []models.RankedItem {
	return rankGroups(events, n, metric,
		func(e *models.ListeningEvent) string { return e.ArtistName },
		func(e *models.ListeningEvent, item *models.RankedItem) {
			item.Name = e.ArtistName
		})
}

// TopAlbums returns the n most-listened albums. Albums are grouped by the
// album name and artist together, so identically titled albums by
// different artists stay separate.
func TopAlbums(events []models.ListeningEvent, n int, metric Metric) []models.RankedItem {
	return rankGroups(events, n, metric,
		func(e *models.ListeningEvent) string {
			if e.AlbumName == "" {
				return ""
			}
			return e.AlbumName + albumKeySep + e.ArtistName
		},
		func(e *models.ListeningEvent, item *models.RankedItem) {
			item.Name = e.AlbumName
			item.Artist = e.ArtistName
		})
}

// TopShows returns the n most-listened podcast shows.
func TopShows(events []models.ListeningEvent, n int, metric Metric) []models.RankedItem {
	return rankGroups(events, n, metric,
		func(e *models.ListeningEvent) string {
			if e.Kind != models.KindPodcast {
				return ""
			}
			return e.ShowName
		},
		func(e *models.ListeningEvent, item *models.RankedItem) {
			item.Name = e.ShowName
		})
}

// TopEpisodes returns the n most-listened podcast episodes, keyed by
// episode and show together.
func TopEpisodes(events []models.ListeningEvent, n int, metric Metric) []models.RankedItem {
	return rankGroups(events, n, metric,
		func(e *models.ListeningEvent) string {
			if e.Kind != models.KindPodcast || e.EpisodeName == "" {
				return ""
			}
			return e.EpisodeName + albumKeySep + e.ShowName
		},
		func(e *models.ListeningEvent, item *models.RankedItem) {
			item.Name = e.EpisodeName
			item.Show = e.ShowName
		})
}

// ParseMetric maps a user-facing metric name to a Metric, defaulting to
// ByCount for anything unrecognized.
func ParseMetric(s string) Metric {
	if strings.EqualFold(s, string(ByMinutes)) {
		return ByMinutes
	}
	return ByCount
}
