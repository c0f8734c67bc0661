// SpotifyStats - Extended Streaming History Analytics
// Copyright 2026 Alex Gascón (alexgasconn)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alexgasconn/spotifystats

package analytics

import (
	"testing"

	"github.com/alexgasconn/spotifystats/internal/models"
)

func TestDistributionPlatform(t *testing.T) {
	events := []models.ListeningEvent{
		play("2023-01-01T10:00:00Z", 5, "A", "X", ""),
		play("2023-01-02T10:00:00Z", 5, "B", "X", ""),
		play("2023-01-03T10:00:00Z", 5, "C", "X", ""),
		play("2023-01-04T10:00:00Z", 5, "D", "X", ""),
	}
	events[0].Platform = "android"
	events[1].Platform = "android"
	events[2].Platform = "android"
	events[3].Platform = "ios"

	shares := Distribution(events, DimPlatform)
	if len(shares) != 2 {
		t.Fatalf("Distribution() returned %d shares, want 2", len(shares))
	}
	if shares[0].Value != "android" || shares[0].Count != 3 || shares[0].Percent != 75 {
		t.Errorf("shares[0] = %+v, want android 3 (75%%)", shares[0])
	}
	if shares[1].Value != "ios" || shares[1].Percent != 25 {
		t.Errorf("shares[1] = %+v, want ios (25%%)", shares[1])
	}
}

func TestDistributionPercentsRounded(t *testing.T) {
	events := []models.ListeningEvent{
		play("2023-01-01T10:00:00Z", 5, "A", "X", ""),
		play("2023-01-02T10:00:00Z", 5, "B", "X", ""),
		play("2023-01-03T10:00:00Z", 5, "C", "X", ""),
	}
	events[0].Country = "ES"
	events[1].Country = "ES"
	events[2].Country = "FR"

	shares := Distribution(events, DimCountry)
	if shares[0].Percent != 66.67 {
		t.Errorf("shares[0].Percent = %v, want 66.67", shares[0].Percent)
	}
	if shares[1].Percent != 33.33 {
		t.Errorf("shares[1].Percent = %v, want 33.33", shares[1].Percent)
	}
}

func TestDistributionLabelsMissingValues(t *testing.T) {
	events := []models.ListeningEvent{
		play("2023-01-01T10:00:00Z", 5, "A", "X", ""),
	}

	shares := Distribution(events, DimCountry)
	if len(shares) != 1 || shares[0].Value != "Unknown" {
		t.Errorf("Distribution() = %v, want single Unknown bucket", shares)
	}
	if shares[0].Percent != 100 {
		t.Errorf("Percent = %v, want 100", shares[0].Percent)
	}
}

func TestDistributionReasonDimensions(t *testing.T) {
	events := []models.ListeningEvent{
		play("2023-01-01T10:00:00Z", 5, "A", "X", ""),
		play("2023-01-02T10:00:00Z", 5, "B", "X", ""),
	}
	events[0].ReasonStart = "clickrow"
	events[1].ReasonStart = "trackdone"
	events[1].ReasonEnd = "fwdbtn"

	starts := Distribution(events, DimReasonStart)
	if len(starts) != 2 {
		t.Errorf("reason_start shares = %v, want 2 buckets", starts)
	}
	ends := Distribution(events, DimReasonEnd)
	if len(ends) != 2 {
		t.Errorf("reason_end shares = %v, want 2 buckets", ends)
	}
}

func TestDistributionUnknownDimension(t *testing.T) {
	events := []models.ListeningEvent{
		play("2023-01-01T10:00:00Z", 5, "A", "X", ""),
	}
	if shares := Distribution(events, Dimension("genre")); len(shares) != 0 {
		t.Errorf("unknown dimension returned %v, want empty", shares)
	}
}
