// SpotifyStats - Extended Streaming History Analytics
// Copyright 2026 Alex Gascón (alexgasconn)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alexgasconn/spotifystats

package analytics

import (
	"sort"

	"github.com/alexgasconn/spotifystats/internal/models"
)

// Dimension names a categorical event attribute a distribution can be
// computed over.
type Dimension string

const (
	DimPlatform    Dimension = "platform"
	DimCountry     Dimension = "country"
	DimReasonStart Dimension = "reason_start"
	DimReasonEnd   Dimension = "reason_end"
)

// unknownValue labels events whose attribute is absent, so the shares of
// a distribution always sum to 100%.
const unknownValue = "Unknown"

// Distribution computes the share of events per distinct value of the
// given dimension. Percentages are rounded to two decimals and the result
// is sorted by count descending, ties broken by first appearance.
// An unrecognized dimension or empty input yields an empty slice.
func Distribution(events []models.ListeningEvent, dim Dimension) []models.CategoryShare {
	key := dimensionKey(dim)
	if key == nil || len(events) == 0 {
		return []models.CategoryShare{}
	}

	counts := make(map[string]int)
	order := make([]string, 0)
	for i := range events {
		v := key(&events[i])
		if v == "" {
			v = unknownValue
		}
		if _, ok := counts[v]; !ok {
			order = append(order, v)
		}
		counts[v]++
	}

	total := float64(len(events))
	out := make([]models.CategoryShare, 0, len(counts))
	for _, v := range order {
		out = append(out, models.CategoryShare{
			Value:   v,
			Count:   counts[v],
			Percent: round2(100 * float64(counts[v]) / total),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

func dimensionKey(dim Dimension) func(*models.ListeningEvent) string {
	switch dim {
	case DimPlatform:
		return func(e *models.ListeningEvent) string { return e.Platform }
	case DimCountry:
		return func(e *models.ListeningEvent) string { return e.Country }
	case DimReasonStart:
		return func(e *models.ListeningEvent) string { return e.ReasonStart }
	case DimReasonEnd:
		return func(e *models.ListeningEvent) string { return e.ReasonEnd }
	default:
		return nil
	}
}
