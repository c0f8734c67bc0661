// SpotifyStats - Extended Streaming History Analytics
// Copyright 2026 Alex Gascón (alexgasconn)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alexgasconn/spotifystats

// Package models defines the canonical data types shared across the
// SpotifyStats pipeline: the normalized ListeningEvent and the aggregate
// result types produced by the analytics package.
//
// A ListeningEvent is immutable once created. All derived temporal fields
// (Year, Month, Hour, Weekday, Date) are computed once at normalization time
// in UTC and never recomputed downstream.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Kind classifies a listening event as music or podcast playback.
// The two are mutually exclusive: an event is KindPodcast iff the raw record
// carries both a non-empty episode name and a non-empty show name.
type Kind string

const (
	// KindMusic is a music track playback.
	KindMusic Kind = "music"

	// KindPodcast is a podcast episode playback.
	KindPodcast Kind = "podcast"
)

// ReasonTrackDone is the reason_end value Spotify reports when playback
// finished naturally. Any other value counts as a skip.
const ReasonTrackDone = "trackdone"

// ListeningEvent is the canonical, normalized form of one raw export record.
//
// Every retained event satisfies DurationMinutes >= 0.5 (the 30,000 ms floor
// applied at normalization) and carries a parseable timestamp; records
// failing either condition never enter the canonical set.
type ListeningEvent struct {
	// ID is a deterministic UUID derived from the event's timestamp, primary
	// name, and played milliseconds. Re-normalizing identical input yields
	// identical IDs.
	ID uuid.UUID `json:"id"`

	// Timestamp is the instant the play ended, in UTC. Source of truth for
	// ordering.
	Timestamp time.Time `json:"ts"`

	// Date is the UTC calendar date in ISO form (2006-01-02), used for
	// day-granularity bucketing. Keys sort lexicographically.
	Date string `json:"date"`

	// Derived temporal fields, all UTC.
	Year    int `json:"year"`
	Month   int `json:"month"`   // 0-11
	Hour    int `json:"hour"`    // 0-23
	Weekday int `json:"weekday"` // 0=Monday .. 6=Sunday

	// MsPlayed is the raw played duration in milliseconds.
	MsPlayed int64 `json:"ms_played"`

	// DurationMinutes is MsPlayed / 60000.
	DurationMinutes float64 `json:"duration_minutes"`

	Kind Kind `json:"kind"`

	// Music metadata (Kind == KindMusic).
	TrackName  string `json:"track_name,omitempty"`
	ArtistName string `json:"artist_name,omitempty"`
	AlbumName  string `json:"album_name,omitempty"`

	// Podcast metadata (Kind == KindPodcast).
	EpisodeName string `json:"episode_name,omitempty"`
	ShowName    string `json:"show_name,omitempty"`

	// ReasonEnd is the playback termination cause ("trackdone" when the
	// track finished naturally). Used for skip-rate computation.
	ReasonEnd string `json:"reason_end,omitempty"`

	// Optional contextual metadata, may be absent.
	ReasonStart string `json:"reason_start,omitempty"`
	Platform    string `json:"platform,omitempty"`
	Country     string `json:"country,omitempty"`
}

// IsSkipped reports whether playback ended for any reason other than
// natural completion.
func (e *ListeningEvent) IsSkipped() bool {
	return e.ReasonEnd != ReasonTrackDone
}
