// SpotifyStats - Extended Streaming History Analytics
// Copyright 2026 Alex Gascón (alexgasconn)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alexgasconn/spotifystats

// Package report assembles the complete analytics dashboard over an
// event store and serializes it as JSON.
package report

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"github.com/alexgasconn/spotifystats/internal/analytics"
	"github.com/alexgasconn/spotifystats/internal/logging"
	"github.com/alexgasconn/spotifystats/internal/models"
	"github.com/alexgasconn/spotifystats/internal/store"
)

// Options controls the shape of the generated dashboard.
type Options struct {
	// TopN is the ranking length for tracks, artists, albums, shows, and
	// episodes.
	TopN int

	// Metric orders the track and artist rankings. Albums are always
	// ranked by minutes, like the wrapped summaries.
	Metric analytics.Metric

	// TimelineUnit buckets the listening timeline by day, week, month, or
	// year.
	TimelineUnit analytics.TimelineUnit

	// WrappedYear limits wrapped summaries to one year when non-zero.
	WrappedYear int
}

// DefaultOptions is the dashboard shape when nothing is configured.
var DefaultOptions = Options{
	TopN:         5,
	Metric:       analytics.ByCount,
	TimelineUnit: analytics.UnitWeek,
}

// Dashboard is the full analytics report. Filtered sections reflect the
// store's active filter; wrapped summaries always cover the complete
// history, since discovery compares against everything heard before.
type Dashboard struct {
	KPIs models.GlobalKPIs `json:"kpis"`

	TopTracks  []models.RankedItem `json:"top_tracks"`
	TopArtists []models.RankedItem `json:"top_artists"`
	TopAlbums  []models.RankedItem `json:"top_albums"`

	Timeline []models.TimelineBucket     `json:"timeline"`
	Temporal models.TemporalDistribution `json:"temporal"`

	Platforms    []models.CategoryShare `json:"platforms"`
	Countries    []models.CategoryShare `json:"countries"`
	StartReasons []models.CategoryShare `json:"start_reasons"`
	EndReasons   []models.CategoryShare `json:"end_reasons"`

	Streaks  models.StreakSummary  `json:"streaks"`
	Podcasts models.PodcastSummary `json:"podcasts"`
	Weekly   models.WeeklyRanking  `json:"weekly_ranking"`

	Wrapped []*models.WrappedSummary `json:"wrapped"`
}

// Build computes every dashboard section from the store. Filtered views
// feed all sections except the wrapped summaries, which need unfiltered
// history for discovery comparisons.
func Build(st *store.Store, opts Options) *Dashboard {
	if opts.TopN <= 0 {
		opts.TopN = DefaultOptions.TopN
	}
	if opts.Metric == "" {
		opts.Metric = DefaultOptions.Metric
	}
	if opts.TimelineUnit == "" {
		opts.TimelineUnit = DefaultOptions.TimelineUnit
	}

	events := st.Filtered()
	full := st.Full()

	d := &Dashboard{
		KPIs:         analytics.GlobalKPIs(events),
		TopTracks:    analytics.TopTracks(events, opts.TopN, opts.Metric),
		TopArtists:   analytics.TopArtists(events, opts.TopN, opts.Metric),
		TopAlbums:    analytics.TopAlbums(events, opts.TopN, analytics.ByMinutes),
		Timeline:     analytics.Timeline(events, opts.TimelineUnit),
		Temporal:     analytics.Temporal(events),
		Platforms:    analytics.Distribution(events, analytics.DimPlatform),
		Countries:    analytics.Distribution(events, analytics.DimCountry),
		StartReasons: analytics.Distribution(events, analytics.DimReasonStart),
		EndReasons:   analytics.Distribution(events, analytics.DimReasonEnd),
		Streaks:      analytics.Streaks(events),
		Podcasts:     analytics.Podcasts(events, opts.TopN),
		Weekly:       analytics.WeeklyRanking(events),
	}

	if opts.WrappedYear != 0 {
		if s := analytics.Wrapped(opts.WrappedYear, full); s != nil {
			d.Wrapped = append(d.Wrapped, s)
		}
	} else {
		for _, year := range analytics.WrappedYears(full) {
			if s := analytics.Wrapped(year, full); s != nil {
				d.Wrapped = append(d.Wrapped, s)
			}
		}
	}

	logging.Debug().
		Int("events", len(events)).
		Int("wrapped_years", len(d.Wrapped)).
		Msg("Dashboard built")
	return d
}

// WriteJSON writes the dashboard as indented JSON.
func (d *Dashboard) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
