// SpotifyStats - Extended Streaming History Analytics
// Copyright 2026 Alex Gascón (alexgasconn)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alexgasconn/spotifystats

package models

import "testing"

func TestIsSkipped(t *testing.T) {
	tests := []struct {
		name      string
		reasonEnd string
		want      bool
	}{
		{"track played to completion", ReasonTrackDone, false},
		{"skipped forward", "fwdbtn", true},
		{"logout", "logout", true},
		{"missing reason counts as skip", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := ListeningEvent{ReasonEnd: tt.reasonEnd}
			if got := e.IsSkipped(); got != tt.want {
				t.Errorf("IsSkipped() with reason %q = %v, want %v", tt.reasonEnd, got, tt.want)
			}
		})
	}
}
