// SpotifyStats - Extended Streaming History Analytics
// Copyright 2026 Alex Gascón (alexgasconn)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alexgasconn/spotifystats

// Package main is the entry point for the spotifystats command line tool.
//
// SpotifyStats turns a Spotify "Extended streaming history" export archive
// into an analytics dashboard: top tracks, artists, and albums, listening
// timelines and temporal distributions, platform and country breakdowns,
// wrapped year summaries with discovery percentages, streaks, podcast
// statistics, and a championship-style weekly track ranking.
//
// # Pipeline
//
// The tool runs the following stages on each invocation:
//
//  1. Configuration: defaults, optional YAML file, environment variables (Koanf v2)
//  2. Extraction: locate streaming history JSON documents inside the zip or tar.gz
//  3. Normalization: map raw export records to canonical listening events
//  4. Filtering: optional date range, artist, album, and track criteria (AND)
//  5. Aggregation: compute every dashboard section in memory
//  6. Output: indented JSON to stdout or a file
//
// # Configuration
//
// Settings come from spotifystats.yaml (or the file named by
// SPOTIFYSTATS_CONFIG) and SPOTIFYSTATS_* environment variables:
//
//	SPOTIFYSTATS_LOG_LEVEL=debug
//	SPOTIFYSTATS_FILTER_FROM=2023-01-01
//	SPOTIFYSTATS_FILTER_ARTIST="Taylor Swift"
//	SPOTIFYSTATS_TOP_N=10
//	spotifystats my_spotify_data.zip
//
// Command line flags override both:
//
//	spotifystats -top 10 -unit month -year 2023 -o report.json my_spotify_data.zip
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexgasconn/spotifystats/internal/analytics"
	"github.com/alexgasconn/spotifystats/internal/config"
	"github.com/alexgasconn/spotifystats/internal/ingest"
	"github.com/alexgasconn/spotifystats/internal/logging"
	"github.com/alexgasconn/spotifystats/internal/report"
	"github.com/alexgasconn/spotifystats/internal/store"
)

func main() {
	flags := flag.NewFlagSet("spotifystats", flag.ExitOnError)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: spotifystats [flags] <archive.zip|archive.tar.gz>\n\nFlags:\n")
		flags.PrintDefaults()
	}
	var (
		topN   = flags.Int("top", 0, "ranking length for top tracks/artists/albums")
		metric = flags.String("metric", "", "ranking metric for tracks and artists: count or minutes")
		unit   = flags.String("unit", "", "timeline bucket unit: day, week, month, year")
		year   = flags.Int("year", 0, "limit wrapped summaries to one year")
		from   = flags.String("from", "", "only include listening on or after this date (YYYY-MM-DD)")
		to     = flags.String("to", "", "only include listening on or before this date (YYYY-MM-DD)")
		artist = flags.String("artist", "", "only include listening of this artist (exact match)")
		album  = flags.String("album", "", "only include listening of this album (exact match)")
		track  = flags.String("track", "", "only include listening of this track (exact match)")
		output = flags.String("o", "", "report output path, \"-\" for stdout")
	)
	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	if flags.NArg() != 1 {
		flags.Usage()
		os.Exit(2)
	}
	archivePath := flags.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	// Flags override file and environment settings.
	if *topN > 0 {
		cfg.Report.TopN = *topN
	}
	if *metric != "" {
		cfg.Report.Metric = *metric
	}
	if *unit != "" {
		cfg.Report.TimelineUnit = *unit
	}
	if *year > 0 {
		cfg.Report.WrappedYear = *year
	}
	if *from != "" {
		cfg.Filter.From = *from
	}
	if *to != "" {
		cfg.Filter.To = *to
	}
	if *artist != "" {
		cfg.Filter.Artist = *artist
	}
	if *album != "" {
		cfg.Filter.Album = *album
	}
	if *track != "" {
		cfg.Filter.Track = *track
	}
	if *output != "" {
		cfg.Report.Output = *output
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, archivePath); err != nil {
		logging.Fatal().Err(err).Msg("spotifystats failed")
	}
}

func run(ctx context.Context, cfg *config.Config, archivePath string) error {
	st := store.New()
	loader := ingest.NewWithFloor(cfg.Ingest.MinPlayMs)
	if _, err := loader.LoadArchive(ctx, archivePath, st); err != nil {
		return err
	}

	st.SetFilter(store.Filter{
		From:   cfg.Filter.From,
		To:     cfg.Filter.To,
		Artist: cfg.Filter.Artist,
		Album:  cfg.Filter.Album,
		Track:  cfg.Filter.Track,
	})

	dashboard := report.Build(st, report.Options{
		TopN:         cfg.Report.TopN,
		Metric:       analytics.ParseMetric(cfg.Report.Metric),
		TimelineUnit: analytics.ParseTimelineUnit(cfg.Report.TimelineUnit),
		WrappedYear:  cfg.Report.WrappedYear,
	})

	out := os.Stdout
	if cfg.Report.Output != "" && cfg.Report.Output != "-" {
		f, err := os.Create(cfg.Report.Output)
		if err != nil {
			return fmt.Errorf("create report file: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing report file")
			}
		}()
		out = f
	}
	if err := dashboard.WriteJSON(out); err != nil {
		return err
	}

	logging.Info().Str("output", cfg.Report.Output).Msg("Report written")
	return nil
}
