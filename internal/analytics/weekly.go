// SpotifyStats - Extended Streaming History Analytics
// Copyright 2026 Alex Gascón (alexgasconn)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alexgasconn/spotifystats

package analytics

import (
	"fmt"
	"sort"

	"github.com/alexgasconn/spotifystats/internal/models"
)

// weeklyPoints awards championship-style points to each week's ten
// most-listened tracks, first place to tenth.
var weeklyPoints = [...]int{25, 18, 15, 12, 10, 8, 6, 4, 2, 1}

// WeeklyRanking runs a season-long championship over the music history:
// every ISO week, the top ten tracks by minutes score points on a
// motorsport scale, and the leaderboard accumulates points across all
// weeks. Podcast events are ignored. Tracks are identified by name and
// artist together, each entry carrying its own chronological week history;
// the leaderboard is sorted by total points, minutes breaking ties.
func WeeklyRanking(events []models.ListeningEvent) models.WeeklyRanking {
	type trackWeek struct {
		track   string
		artist  string
		minutes float64
	}
	weeks := make(map[string]map[string]*trackWeek)
	for i := range events {
		e := &events[i]
		if e.Kind != models.KindMusic || e.TrackName == "" {
			continue
		}
		year, week := e.Timestamp.ISOWeek()
		weekID := fmt.Sprintf("%d-W%02d", year, week)
		tracks, ok := weeks[weekID]
		if !ok {
			tracks = make(map[string]*trackWeek)
			weeks[weekID] = tracks
		}
		key := e.TrackName + albumKeySep + e.ArtistName
		tw, ok := tracks[key]
		if !ok {
			tw = &trackWeek{track: e.TrackName, artist: e.ArtistName}
			tracks[key] = tw
		}
		tw.minutes += e.DurationMinutes
	}

	weekIDs := make([]string, 0, len(weeks))
	for id := range weeks {
		weekIDs = append(weekIDs, id)
	}
	sort.Strings(weekIDs)

	type standing struct {
		entry models.LeaderboardEntry
		order int
	}
	standings := make(map[string]*standing)
	keyOrder := make([]string, 0)

	for _, weekID := range weekIDs {
		tracks := weeks[weekID]
		podium := make([]*trackWeek, 0, len(tracks))
		keys := make([]string, 0, len(tracks))
		for k := range tracks {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			podium = append(podium, tracks[k])
		}
		sort.SliceStable(podium, func(i, j int) bool {
			return podium[i].minutes > podium[j].minutes
		})
		if len(podium) > len(weeklyPoints) {
			podium = podium[:len(weeklyPoints)]
		}

		for rank, tw := range podium {
			key := tw.track + albumKeySep + tw.artist
			st, ok := standings[key]
			if !ok {
				st = &standing{
					entry: models.LeaderboardEntry{
						Track:    tw.track,
						Artist:   tw.artist,
						BestRank: rank + 1,
					},
					order: len(keyOrder),
				}
				standings[key] = st
				keyOrder = append(keyOrder, key)
			}
			points := weeklyPoints[rank]
			st.entry.TotalPoints += points
			st.entry.TotalWeeks++
			st.entry.Minutes += tw.minutes
			if rank+1 < st.entry.BestRank {
				st.entry.BestRank = rank + 1
			}
			st.entry.History = append(st.entry.History, models.WeekEntry{
				Week:    weekID,
				Rank:    rank + 1,
				Minutes: round1(tw.minutes),
				Points:  points,
			})
		}
	}

	ordered := make([]*standing, 0, len(standings))
	for _, k := range keyOrder {
		ordered = append(ordered, standings[k])
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].entry.TotalPoints != ordered[j].entry.TotalPoints {
			return ordered[i].entry.TotalPoints > ordered[j].entry.TotalPoints
		}
		return ordered[i].entry.Minutes > ordered[j].entry.Minutes
	})

	result := models.WeeklyRanking{
		Leaderboard: make([]models.LeaderboardEntry, 0, len(ordered)),
	}
	for _, st := range ordered {
		st.entry.Minutes = round1(st.entry.Minutes)
		result.Leaderboard = append(result.Leaderboard, st.entry)
	}
	return result
}
