// SpotifyStats - Extended Streaming History Analytics
// Copyright 2026 Alex Gascón (alexgasconn)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alexgasconn/spotifystats

package analytics

import (
	"github.com/alexgasconn/spotifystats/internal/models"
)

// Podcasts summarizes podcast listening: top shows by minutes, top
// episodes drawn from those shows, and a daily minutes timeline covering
// podcast events only.
func Podcasts(events []models.ListeningEvent, topN int) models.PodcastSummary {
	podcasts := make([]models.ListeningEvent, 0)
	for i := range events {
		if events[i].Kind == models.KindPodcast {
			podcasts = append(podcasts, events[i])
		}
	}

	topShows := TopShows(podcasts, topN, ByMinutes)

	shows := make(map[string]struct{}, len(topShows))
	for _, s := range topShows {
		shows[s.Name] = struct{}{}
	}
	inTop := make([]models.ListeningEvent, 0, len(podcasts))
	for i := range podcasts {
		if _, ok := shows[podcasts[i].ShowName]; ok {
			inTop = append(inTop, podcasts[i])
		}
	}

	return models.PodcastSummary{
		TopShows:    topShows,
		TopEpisodes: TopEpisodes(inTop, topN, ByMinutes),
		Daily:       Timeline(podcasts, UnitDay),
	}
}
