// SpotifyStats - Extended Streaming History Analytics
// Copyright 2026 Alex Gascón (alexgasconn)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alexgasconn/spotifystats

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Log.Level != "info" || cfg.Log.Format != "console" {
		t.Errorf("log defaults = %s/%s, want info/console", cfg.Log.Level, cfg.Log.Format)
	}
	if cfg.Ingest.MinPlayMs != 30000 {
		t.Errorf("MinPlayMs = %d, want 30000", cfg.Ingest.MinPlayMs)
	}
	if cfg.Report.TopN != 5 || cfg.Report.TimelineUnit != "week" {
		t.Errorf("report defaults = %d/%s, want 5/week", cfg.Report.TopN, cfg.Report.TimelineUnit)
	}
	if cfg.Report.Metric != "count" {
		t.Errorf("Report.Metric = %s, want count", cfg.Report.Metric)
	}
	if cfg.Filter != (FilterConfig{}) {
		t.Errorf("default filter not empty: %+v", cfg.Filter)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SPOTIFYSTATS_LOG_LEVEL", "debug")
	t.Setenv("SPOTIFYSTATS_TOP_N", "10")
	t.Setenv("SPOTIFYSTATS_FILTER_ARTIST", "Taylor Swift")
	t.Setenv("SPOTIFYSTATS_TIMELINE_UNIT", "month")
	t.Setenv("SPOTIFYSTATS_METRIC", "minutes")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %s, want debug", cfg.Log.Level)
	}
	if cfg.Report.TopN != 10 {
		t.Errorf("Report.TopN = %d, want 10", cfg.Report.TopN)
	}
	if cfg.Filter.Artist != "Taylor Swift" {
		t.Errorf("Filter.Artist = %q, want Taylor Swift", cfg.Filter.Artist)
	}
	if cfg.Report.TimelineUnit != "month" {
		t.Errorf("Report.TimelineUnit = %s, want month", cfg.Report.TimelineUnit)
	}
	if cfg.Report.Metric != "minutes" {
		t.Errorf("Report.Metric = %s, want minutes", cfg.Report.Metric)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spotifystats.yaml")
	content := `log:
  level: warn
report:
  top_n: 20
  timeline_unit: day
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %s, want warn", cfg.Log.Level)
	}
	if cfg.Report.TopN != 20 || cfg.Report.TimelineUnit != "day" {
		t.Errorf("report = %d/%s, want 20/day", cfg.Report.TopN, cfg.Report.TimelineUnit)
	}
	// Unset sections keep their defaults.
	if cfg.Ingest.MinPlayMs != 30000 {
		t.Errorf("MinPlayMs = %d, want default 30000", cfg.Ingest.MinPlayMs)
	}
}

func TestEnvOverridesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spotifystats.yaml")
	if err := os.WriteFile(path, []byte("log:\n  level: warn\n"), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("SPOTIFYSTATS_LOG_LEVEL", "error")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("Log.Level = %s, want error (env wins over file)", cfg.Log.Level)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{
			"bad log level",
			func(c *Config) { c.Log.Level = "verbose" },
			"Log.Level",
		},
		{
			"bad ranking metric",
			func(c *Config) { c.Report.Metric = "plays" },
			"Metric",
		},
		{
			"bad timeline unit",
			func(c *Config) { c.Report.TimelineUnit = "fortnight" },
			"TimelineUnit",
		},
		{
			"top_n too large",
			func(c *Config) { c.Report.TopN = 1000 },
			"TopN",
		},
		{
			"bad filter date",
			func(c *Config) { c.Filter.From = "15/06/2023" },
			"Filter.From",
		},
		{
			"negative play floor",
			func(c *Config) { c.Ingest.MinPlayMs = -1 },
			"MinPlayMs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() passed, want error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Validate() error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	if err := defaultConfig().Validate(); err != nil {
		t.Errorf("default config fails validation: %v", err)
	}
}

func TestEnvTransformIgnoresUnknownKeys(t *testing.T) {
	if got := envTransformFunc("SPOTIFYSTATS_BOGUS_KEY"); got != "" {
		t.Errorf("envTransformFunc(bogus) = %q, want empty", got)
	}
	if got := envTransformFunc("SPOTIFYSTATS_MIN_PLAY_MS"); got != "ingest.min_play_ms" {
		t.Errorf("envTransformFunc(min_play_ms) = %q, want ingest.min_play_ms", got)
	}
}
