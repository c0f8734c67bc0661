// SpotifyStats - Extended Streaming History Analytics
// Copyright 2026 Alex Gascón (alexgasconn)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alexgasconn/spotifystats

// Package ingest wires the pipeline front half together: it extracts the
// history documents from an export archive, normalizes every raw record
// into canonical listening events, and loads the result into an event
// store, reporting counts for each stage.
package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/alexgasconn/spotifystats/internal/archive"
	"github.com/alexgasconn/spotifystats/internal/logging"
	"github.com/alexgasconn/spotifystats/internal/normalize"
	"github.com/alexgasconn/spotifystats/internal/store"
)

// LoadStats reports what one archive load did.
type LoadStats struct {
	Documents int           `json:"documents"`
	Processed int           `json:"processed"`
	Retained  int           `json:"retained"`
	Dropped   int           `json:"dropped"`
	Duration  time.Duration `json:"duration"`
}

// Loader runs extract, normalize, and store-load as one operation.
type Loader struct {
	normalizer *normalize.Normalizer
}

// New returns a Loader with the default sub-30-second play floor.
func New() *Loader {
	return &Loader{normalizer: normalize.New()}
}

// NewWithFloor returns a Loader dropping plays shorter than minPlayMs.
func NewWithFloor(minPlayMs int64) *Loader {
	return &Loader{normalizer: normalize.NewWithFloor(minPlayMs)}
}

// LoadArchive reads the export archive at path and fills st with its
// normalized events. The store must be empty; a second load returns the
// store's already-loaded error. Context cancellation is checked between
// stages, not mid-document, since individual documents parse quickly.
func (l *Loader) LoadArchive(ctx context.Context, path string, st *store.Store) (LoadStats, error) {
	start := time.Now()
	var stats LoadStats

	logging.Info().Str("path", path).Msg("Loading streaming history archive")

	docs, err := archive.ExtractFile(path)
	if err != nil {
		return stats, fmt.Errorf("extract %s: %w", path, err)
	}
	stats.Documents = len(docs)

	if err := ctx.Err(); err != nil {
		return stats, err
	}

	for i := range docs {
		stats.Processed += len(docs[i].Records)
	}

	events, dropped := l.normalizer.NormalizeAll(docs)
	stats.Retained = len(events)
	stats.Dropped = dropped

	if err := ctx.Err(); err != nil {
		return stats, err
	}

	if err := st.Load(events); err != nil {
		return stats, err
	}

	stats.Duration = time.Since(start)
	logging.Info().
		Int("documents", stats.Documents).
		Int("processed", stats.Processed).
		Int("retained", stats.Retained).
		Int("dropped", stats.Dropped).
		Dur("duration", stats.Duration).
		Msg("Archive load complete")
	return stats, nil
}
