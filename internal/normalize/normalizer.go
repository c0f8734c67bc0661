// SpotifyStats - Extended Streaming History Analytics
// Copyright 2026 Alex Gascón (alexgasconn)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alexgasconn/spotifystats

// Package normalize maps raw export records to canonical listening events.
//
// Export field names are inconsistent across format revisions (the extended
// export uses snake_case, the older account-data export camelCase), so each
// canonical field resolves through an explicit alias table rather than
// blanket case-insensitive matching, which risks accidental collisions.
//
// Two classes of record are dropped silently, by contract:
//   - plays under the 30,000 ms floor (accidental taps and instant skips);
//   - records without a parseable timestamp, since every aggregation
//     depends on the derived temporal fields.
//
// All derived temporal fields use UTC uniformly.
package normalize

import (
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexgasconn/spotifystats/internal/archive"
	"github.com/alexgasconn/spotifystats/internal/models"
)

// DefaultMinPlayMs is the minimum played duration for a record to be
// retained. Records with ms_played strictly below this floor are noise.
const DefaultMinPlayMs = 30000

// Alias tables per canonical field, in resolution order: canonical
// snake_case export name first, then known variants.
var (
	tsKeys      = []string{"ts", "endTime", "timestamp"}
	msKeys      = []string{"ms_played", "msPlayed"}
	trackKeys   = []string{"master_metadata_track_name", "trackName"}
	artistKeys  = []string{"master_metadata_album_artist_name", "artistName"}
	albumKeys   = []string{"master_metadata_album_album_name", "albumName"}
	episodeKeys = []string{"episode_name"}
	showKeys    = []string{"episode_show_name"}
)

// tsLayouts are the accepted timestamp formats: RFC3339 for the extended
// export, minute-precision local form for the old account-data export.
var tsLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
}

// Normalizer converts raw export records to canonical ListeningEvents.
type Normalizer struct {
	minPlayMs int64
}

// New creates a Normalizer with the default 30,000 ms play floor.
func New() *Normalizer {
	return &Normalizer{minPlayMs: DefaultMinPlayMs}
}

// NewWithFloor creates a Normalizer with a custom play floor in
// milliseconds. Used by tests and the min-play-ms config override.
func NewWithFloor(minPlayMs int64) *Normalizer {
	return &Normalizer{minPlayMs: minPlayMs}
}

// Normalize maps one raw record to a canonical event, or nil when the
// record is dropped (below the play floor, or unparseable timestamp).
func (n *Normalizer) Normalize(rec archive.RawRecord) *models.ListeningEvent {
	ms, ok := int64Field(rec, msKeys...)
	if !ok || ms < n.minPlayMs {
		return nil
	}

	ts, ok := parseTimestamp(stringField(rec, tsKeys...))
	if !ok {
		return nil
	}

	event := &models.ListeningEvent{
		Timestamp:       ts,
		Date:            ts.Format("2006-01-02"),
		Year:            ts.Year(),
		Month:           int(ts.Month()) - 1,
		Hour:            ts.Hour(),
		Weekday:         mondayWeekday(ts),
		MsPlayed:        ms,
		DurationMinutes: float64(ms) / 60000,
		ReasonEnd:       stringField(rec, "reason_end"),
		ReasonStart:     stringField(rec, "reason_start"),
		Platform:        stringField(rec, "platform"),
		Country:         stringField(rec, "conn_country"),
	}

	episode := stringField(rec, episodeKeys...)
	show := stringField(rec, showKeys...)
	if episode != "" && show != "" {
		event.Kind = models.KindPodcast
		event.EpisodeName = episode
		event.ShowName = show
	} else {
		event.Kind = models.KindMusic
		event.TrackName = stringField(rec, trackKeys...)
		event.ArtistName = stringField(rec, artistKeys...)
		event.AlbumName = stringField(rec, albumKeys...)
	}

	event.ID = deterministicID(event)
	return event
}

// NormalizeAll maps every record of every document, dropping records per
// the Normalize contract. Returns retained events plus the dropped count.
func (n *Normalizer) NormalizeAll(docs []archive.Document) (events []models.ListeningEvent, dropped int) {
	for _, doc := range docs {
		for _, rec := range doc.Records {
			if event := n.Normalize(rec); event != nil {
				events = append(events, *event)
			} else {
				dropped++
			}
		}
	}
	return events, dropped
}

// deterministicID derives the event UUID from the fields that identify a
// play, so re-normalizing the same export yields identical IDs.
func deterministicID(e *models.ListeningEvent) uuid.UUID {
	name := e.TrackName
	if e.Kind == models.KindPodcast {
		name = e.EpisodeName
	}
	input := fmt.Sprintf("spotify-export:%d:%s:%d", e.Timestamp.Unix(), name, e.MsPlayed)

	hash := sha256.Sum256([]byte(input))

	// 16 bytes of input cannot fail conversion
	id, err := uuid.FromBytes(hash[:16])
	if err != nil {
		return uuid.New()
	}

	id[6] = (id[6] & 0x0f) | 0x50 // Version 5
	id[8] = (id[8] & 0x3f) | 0x80 // Variant 10

	return id
}

// parseTimestamp resolves the record timestamp to UTC.
func parseTimestamp(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range tsLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts.UTC(), true
		}
	}
	return time.Time{}, false
}

// mondayWeekday maps time.Weekday (0=Sunday) to the 0=Monday convention
// used throughout the aggregations.
func mondayWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// stringField resolves the first non-empty string value among the given
// keys. Non-string values (including JSON null) are skipped.
func stringField(rec archive.RawRecord, keys ...string) string {
	for _, key := range keys {
		if v, ok := rec[key]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

// int64Field resolves the first numeric value among the given keys. JSON
// numbers decode as float64; integer types are accepted for callers that
// build records programmatically.
func int64Field(rec archive.RawRecord, keys ...string) (int64, bool) {
	for _, key := range keys {
		v, ok := rec[key]
		if !ok {
			continue
		}
		switch num := v.(type) {
		case float64:
			return int64(num), true
		case int64:
			return num, true
		case int:
			return int64(num), true
		}
	}
	return 0, false
}
