// SpotifyStats - Extended Streaming History Analytics
// Copyright 2026 Alex Gascón (alexgasconn)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alexgasconn/spotifystats

package analytics

import (
	"time"

	"github.com/alexgasconn/spotifystats/internal/models"
)

// play builds a music event at the given RFC3339 instant. All temporal
// fields are derived the same way the normalizer derives them.
func play(ts string, minutes float64, track, artist, album string) models.ListeningEvent {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		panic(err)
	}
	t = t.UTC()
	return models.ListeningEvent{
		Timestamp:       t,
		Date:            t.Format("2006-01-02"),
		Year:            t.Year(),
		Month:           int(t.Month()) - 1,
		Hour:            t.Hour(),
		Weekday:         (int(t.Weekday()) + 6) % 7,
		MsPlayed:        int64(minutes * 60000),
		DurationMinutes: minutes,
		Kind:            models.KindMusic,
		TrackName:       track,
		ArtistName:      artist,
		AlbumName:       album,
		ReasonEnd:       models.ReasonTrackDone,
	}
}

// podcastPlay builds a podcast event at the given RFC3339 instant.
func podcastPlay(ts string, minutes float64, episode, show string) models.ListeningEvent {
	e := play(ts, minutes, "", "", "")
	e.Kind = models.KindPodcast
	e.EpisodeName = episode
	e.ShowName = show
	return e
}
