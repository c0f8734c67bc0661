// SpotifyStats - Extended Streaming History Analytics
// Copyright 2026 Alex Gascón (alexgasconn)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alexgasconn/spotifystats

package models

// RankedItem is one entry of a top-N ranking: a track, artist, album, show,
// or episode together with its accumulated play count and listening minutes.
type RankedItem struct {
	Name string `json:"name"`

	// Artist is the associated artist for track and album rankings; empty
	// for artist rankings.
	Artist string `json:"artist,omitempty"`

	// Show is the parent show for episode rankings; empty otherwise.
	Show string `json:"show,omitempty"`

	Count int `json:"count"`

	// Minutes is the accumulated listening time rounded to the nearest
	// integer. Accumulation uses unrounded values; rounding happens only in
	// the output.
	Minutes int `json:"minutes"`
}

// YearMinutes is total listening minutes for one calendar year.
type YearMinutes struct {
	Year    int `json:"year"`
	Minutes int `json:"minutes"`
}

// TemporalDistribution holds event-frequency histograms for hour of day,
// weekday, and month, plus minutes-weighted totals per year.
//
// The asymmetry is contractual: hour/weekday/month slots are event counts,
// while years carry summed minutes.
type TemporalDistribution struct {
	HourCounts    [24]int       `json:"hour_counts"`
	WeekdayCounts [7]int        `json:"weekday_counts"` // 0=Monday
	MonthCounts   [12]int       `json:"month_counts"`   // 0=January
	YearMinutes   []YearMinutes `json:"year_minutes"`   // ascending by year
}

// TimelineBucket is total listening minutes within one fixed-granularity
// time interval. Bucket is the interval's start date in ISO form.
type TimelineBucket struct {
	Bucket  string `json:"bucket"`
	Minutes int    `json:"minutes"`
}

// CategoryShare is one value of a categorical distribution with its share
// of the total event count.
type CategoryShare struct {
	Value   string  `json:"value"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"` // 0-100, rounded to 2 decimals
}

// WrappedSummary is the year-in-review aggregate bundle for a single
// calendar year. A year with no events yields no summary at all rather
// than a zero-filled one.
type WrappedSummary struct {
	Year         int `json:"year"`
	TotalMinutes int `json:"total_minutes"`

	// MonthlyMinutes is listening minutes per month, index 0=January.
	MonthlyMinutes [12]int `json:"monthly_minutes"`

	UniqueTracks  int `json:"unique_tracks"`
	UniqueArtists int `json:"unique_artists"`
	UniqueAlbums  int `json:"unique_albums"`

	// Discovery percentages: the share of this year's distinct entities
	// never seen in any prior year, rounded to a whole percent. 100 when
	// no prior data exists at all.
	TrackDiscovery  int `json:"track_discovery_percent"`
	ArtistDiscovery int `json:"artist_discovery_percent"`
	AlbumDiscovery  int `json:"album_discovery_percent"`

	// SkipRate is the percentage of events not ending with "trackdone",
	// one decimal place.
	SkipRate float64 `json:"skip_rate"`

	TopTracks  []RankedItem `json:"top_tracks"`  // top 5 by play count
	TopArtists []RankedItem `json:"top_artists"` // top 5 by play count
	TopAlbums  []RankedItem `json:"top_albums"`  // top 5 by minutes
}

// GlobalKPIs is the headline statistics block for an event collection.
type GlobalKPIs struct {
	TotalMinutes int `json:"total_minutes"`

	// TotalDays is TotalMinutes expressed in whole days of listening.
	TotalDays int `json:"total_days"`

	UniqueTracks  int `json:"unique_tracks"`
	UniqueArtists int `json:"unique_artists"`

	// ActiveDays is the number of distinct calendar dates with at least one
	// event; MinutesPerDay averages over those days only (0 when none).
	ActiveDays    int `json:"active_days"`
	MinutesPerDay int `json:"minutes_per_day"`

	// SkipRate is the percentage of events not ending with "trackdone",
	// one decimal place.
	SkipRate float64 `json:"skip_rate"`

	// Diversity is 1000 * UniqueArtists / event count, rounded to 2
	// decimals. The scaling constant is part of the output contract.
	Diversity float64 `json:"diversity"`
}

// PodcastSummary aggregates podcast-kind events: top shows and episodes by
// listening minutes plus a daily minutes timeline.
type PodcastSummary struct {
	TopShows    []RankedItem     `json:"top_shows"`    // ranked by minutes
	TopEpisodes []RankedItem     `json:"top_episodes"` // ranked by minutes
	Daily       []TimelineBucket `json:"daily"`
}

// WeekEntry is one track's placement in a single ISO week's ranking.
type WeekEntry struct {
	Week    string  `json:"week"` // ISO week id, e.g. "2024-W07"
	Rank    int     `json:"rank"` // 1-10
	Minutes float64 `json:"minutes"`
	Points  int     `json:"points"`
}

// LeaderboardEntry is a track's all-time standing in the weekly ranking
// leaderboard, together with its full week-by-week history. The history
// lives on the entry rather than in a shared map so that same-titled
// tracks by different artists keep separate histories.
type LeaderboardEntry struct {
	Track       string      `json:"track"`
	Artist      string      `json:"artist,omitempty"`
	TotalPoints int         `json:"total_points"`
	TotalWeeks  int         `json:"total_weeks"`
	BestRank    int         `json:"best_rank"`
	Minutes     float64     `json:"minutes"`
	History     []WeekEntry `json:"history"` // ascending by week
}

// WeeklyRanking is the complete weekly-ranking output: the all-time points
// leaderboard, each entry carrying its per-week history.
type WeeklyRanking struct {
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
}

// StreakSummary describes listening regularity over the span between the
// first and last event dates of a collection.
type StreakSummary struct {
	DaysInRange    int `json:"days_in_range"`
	ActiveDays     int `json:"active_days"`
	SilentDays     int `json:"silent_days"`
	LongestStreak  int `json:"longest_streak"`  // consecutive days with listening
	LongestSilence int `json:"longest_silence"` // consecutive days without

	AvgMinutesPerActiveDay float64 `json:"avg_minutes_per_active_day"`
	AvgMinutesPerDay       float64 `json:"avg_minutes_per_day"`
}
