// SpotifyStats - Extended Streaming History Analytics
// Copyright 2026 Alex Gascón (alexgasconn)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alexgasconn/spotifystats

// Package store holds the canonical event collection and its filtered view.
//
// The store owns two sequences: full, written exactly once after a
// successful load and immutable afterwards, and filtered, a derived
// subsequence that is replaced wholesale (never patched in place) each time
// the filter changes. Consumers treat both as read-only.
package store

import (
	"fmt"
	"sort"
	"sync"

	"github.com/alexgasconn/spotifystats/internal/logging"
	"github.com/alexgasconn/spotifystats/internal/models"
)

// Filter selects a subsequence of the canonical events. All criteria
// combine with AND semantics; zero values leave the corresponding
// dimension unbounded.
type Filter struct {
	// From and To bound the event date, inclusive, as ISO dates
	// (2006-01-02). Empty means unbounded on that side. From > To simply
	// matches nothing.
	From string
	To   string

	// Exact-match criteria, applied when non-empty.
	Artist string
	Album  string
	Track  string
}

// IsZero reports whether the filter matches everything.
func (f Filter) IsZero() bool {
	return f == Filter{}
}

// Matches reports whether the event satisfies every criterion. Date
// comparisons are lexicographic, which is correct for zero-padded ISO
// dates.
func (f Filter) Matches(e *models.ListeningEvent) bool {
	if f.From != "" && e.Date < f.From {
		return false
	}
	if f.To != "" && e.Date > f.To {
		return false
	}
	if f.Artist != "" && e.ArtistName != f.Artist {
		return false
	}
	if f.Album != "" && e.AlbumName != f.Album {
		return false
	}
	if f.Track != "" && e.TrackName != f.Track {
		return false
	}
	return true
}

// Store holds the canonical event sequence and the active filtered view.
type Store struct {
	mu       sync.RWMutex
	full     []models.ListeningEvent
	filtered []models.ListeningEvent
	filter   Filter
	loaded   bool
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// Load installs the canonical event set, sorting it ascending by timestamp
// (stable, so equal timestamps keep input order). The store is write-once:
// a second Load fails and leaves the existing data untouched.
func (s *Store) Load(events []models.ListeningEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return fmt.Errorf("store already loaded with %d events", len(s.full))
	}

	sorted := make([]models.ListeningEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	s.full = sorted
	s.filtered = sorted
	s.filter = Filter{}
	s.loaded = true

	logging.Debug().Int("events", len(sorted)).Msg("Event store loaded")
	return nil
}

// SetFilter recomputes the filtered view as a fresh subsequence of full,
// preserving relative order, and replaces it wholesale.
func (s *Store) SetFilter(f Filter) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filter = f
	if f.IsZero() {
		s.filtered = s.full
		return
	}

	filtered := make([]models.ListeningEvent, 0, len(s.full))
	for i := range s.full {
		if f.Matches(&s.full[i]) {
			filtered = append(filtered, s.full[i])
		}
	}
	s.filtered = filtered
}

// Full returns the canonical event sequence. Callers must not mutate it.
func (s *Store) Full() []models.ListeningEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.full
}

// Filtered returns the active filtered view. Callers must not mutate it.
func (s *Store) Filtered() []models.ListeningEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filtered
}

// ActiveFilter returns the filter backing the current filtered view.
func (s *Store) ActiveFilter() Filter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

// Loaded reports whether a canonical set has been installed.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}
