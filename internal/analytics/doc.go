// SpotifyStats - Extended Streaming History Analytics
// Copyright 2026 Alex Gascón (alexgasconn)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alexgasconn/spotifystats

// Package analytics computes aggregate views over listening-event
// collections: top-N rankings, temporal distributions, time-bucketed
// timelines, categorical distributions, wrapped year summaries, weekly
// ranking leaderboards, streaks, and global KPIs.
//
// Every function here is pure: none mutates its input, none keeps state
// between calls, and all are safe to call repeatedly and independently.
// Datasets are bounded to a single user's lifetime history (typically well
// under 10^5 events), so there is no caching or incremental aggregation;
// every call recomputes from scratch.
//
// Empty input never fails: the functions return empty or zero-valued
// results, except Wrapped which returns nil for a year with no events.
package analytics
