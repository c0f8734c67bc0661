// SpotifyStats - Extended Streaming History Analytics
// Copyright 2026 Alex Gascón (alexgasconn)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alexgasconn/spotifystats

package analytics

import (
	"testing"

	"github.com/alexgasconn/spotifystats/internal/models"
)

func TestPodcastsIgnoresMusic(t *testing.T) {
	events := []models.ListeningEvent{
		play("2023-01-01T10:00:00Z", 500, "Song", "Artist", ""),
		podcastPlay("2023-01-01T08:00:00Z", 40, "Ep 1", "Serial"),
		podcastPlay("2023-01-02T08:00:00Z", 35, "Ep 2", "Serial"),
	}

	s := Podcasts(events, 5)
	if len(s.TopShows) != 1 || s.TopShows[0].Name != "Serial" || s.TopShows[0].Minutes != 75 {
		t.Errorf("TopShows = %v, want Serial with 75 minutes", s.TopShows)
	}
	if len(s.TopEpisodes) != 2 || s.TopEpisodes[0].Name != "Ep 1" {
		t.Errorf("TopEpisodes = %v, want Ep 1 first by minutes", s.TopEpisodes)
	}
	if len(s.Daily) != 2 {
		t.Errorf("Daily has %d buckets, want 2", len(s.Daily))
	}
	var total int
	for _, b := range s.Daily {
		total += b.Minutes
	}
	if total != 75 {
		t.Errorf("daily podcast minutes sum = %d, want 75 (music excluded)", total)
	}
}

func TestPodcastsEpisodesDrawnFromTopShows(t *testing.T) {
	events := []models.ListeningEvent{
		podcastPlay("2023-01-01T08:00:00Z", 100, "Big Ep", "Big Show"),
		podcastPlay("2023-01-02T08:00:00Z", 1, "Small Ep", "Small Show"),
	}

	s := Podcasts(events, 1)
	if len(s.TopShows) != 1 || s.TopShows[0].Name != "Big Show" {
		t.Fatalf("TopShows = %v, want only Big Show", s.TopShows)
	}
	if len(s.TopEpisodes) != 1 || s.TopEpisodes[0].Show != "Big Show" {
		t.Errorf("TopEpisodes = %v, want episodes of Big Show only", s.TopEpisodes)
	}
}

func TestPodcastsEmptyInput(t *testing.T) {
	s := Podcasts(nil, 5)
	if len(s.TopShows) != 0 || len(s.TopEpisodes) != 0 || len(s.Daily) != 0 {
		t.Errorf("Podcasts(nil) = %+v, want empty sections", s)
	}
}
