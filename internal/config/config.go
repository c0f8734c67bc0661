// SpotifyStats - Extended Streaming History Analytics
// Copyright 2026 Alex Gascón (alexgasconn)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/alexgasconn/spotifystats

// Package config loads SpotifyStats configuration using Koanf v2 with
// layered sources (highest priority wins):
//
//  1. Built-in defaults
//  2. Optional YAML config file (spotifystats.yaml, or SPOTIFYSTATS_CONFIG)
//  3. Environment variables (SPOTIFYSTATS_* prefix)
//
// The loaded struct is validated with go-playground/validator before use.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in
// order of priority. The first file found wins.
var DefaultConfigPaths = []string{
	"spotifystats.yaml",
	"spotifystats.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "SPOTIFYSTATS_CONFIG"

// envPrefix is the prefix for configuration environment variables.
const envPrefix = "SPOTIFYSTATS_"

// Config is the complete application configuration.
type Config struct {
	Log    LogConfig    `koanf:"log"`
	Ingest IngestConfig `koanf:"ingest"`
	Filter FilterConfig `koanf:"filter"`
	Report ReportConfig `koanf:"report"`
}

// LogConfig configures the global logger.
type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error fatal disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

// IngestConfig configures archive loading and normalization.
type IngestConfig struct {
	// MinPlayMs is the retention floor in played milliseconds. Records
	// strictly below it are dropped as noise.
	MinPlayMs int64 `koanf:"min_play_ms" validate:"gte=0"`
}

// FilterConfig is the initial filter applied to the loaded collection.
// All criteria combine with AND; empty values are unbounded.
type FilterConfig struct {
	From   string `koanf:"from" validate:"omitempty,datetime=2006-01-02"`
	To     string `koanf:"to" validate:"omitempty,datetime=2006-01-02"`
	Artist string `koanf:"artist"`
	Album  string `koanf:"album"`
	Track  string `koanf:"track"`
}

// ReportConfig shapes the generated dashboard report.
type ReportConfig struct {
	// TopN is the length of the top-tracks/artists/albums rankings.
	TopN int `koanf:"top_n" validate:"gte=1,lte=100"`

	// Metric orders the track and artist rankings: play count or minutes.
	Metric string `koanf:"metric" validate:"oneof=count minutes"`

	// TimelineUnit is the bucket granularity of the listening timeline.
	TimelineUnit string `koanf:"timeline_unit" validate:"oneof=day week month year"`

	// WrappedYear limits the wrapped summaries to one year; 0 generates a
	// summary for every year present in the data.
	WrappedYear int `koanf:"wrapped_year" validate:"gte=0"`

	// Output is the report destination path; "-" or empty means stdout.
	Output string `koanf:"output"`
}

// validate is the shared validator instance; it caches struct metadata and
// is safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Ingest: IngestConfig{
			MinPlayMs: 30000,
		},
		Filter: FilterConfig{},
		Report: ReportConfig{
			TopN:         5,
			Metric:       "count",
			TimelineUnit: "week",
			WrappedYear:  0,
			Output:       "-",
		},
	}
}

// Load builds the configuration from defaults, optional config file, and
// environment variables, then validates it.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	envProvider := env.Provider(envPrefix, ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration against its validation tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return friendlyValidationError(verrs)
		}
		return err
	}
	return nil
}

// friendlyValidationError rewrites validator errors into messages that name
// the offending field and constraint without validator internals.
func friendlyValidationError(verrs validator.ValidationErrors) error {
	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "oneof":
			messages = append(messages, fmt.Sprintf("%s must be one of: %s", fe.Namespace(), strings.ReplaceAll(fe.Param(), " ", ", ")))
		case "datetime":
			messages = append(messages, fmt.Sprintf("%s must be a date in the form %s", fe.Namespace(), fe.Param()))
		case "gte":
			messages = append(messages, fmt.Sprintf("%s must be >= %s", fe.Namespace(), fe.Param()))
		case "lte":
			messages = append(messages, fmt.Sprintf("%s must be <= %s", fe.Namespace(), fe.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s failed %s validation", fe.Namespace(), fe.Tag()))
		}
	}
	return fmt.Errorf("%s", strings.Join(messages, "; "))
}

// findConfigFile searches for a config file, env override first.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// envTransformFunc maps environment variable names to koanf paths.
// SPOTIFYSTATS_LOG_LEVEL -> log.level, SPOTIFYSTATS_TOP_N -> report.top_n.
// Keys with underscores inside a section need explicit entries, so the
// whole mapping is an enumerated table rather than string surgery.
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))

	envMappings := map[string]string{
		"log_level":  "log.level",
		"log_format": "log.format",

		"min_play_ms": "ingest.min_play_ms",

		"filter_from":   "filter.from",
		"filter_to":     "filter.to",
		"filter_artist": "filter.artist",
		"filter_album":  "filter.album",
		"filter_track":  "filter.track",

		"top_n":         "report.top_n",
		"metric":        "report.metric",
		"timeline_unit": "report.timeline_unit",
		"wrapped_year":  "report.wrapped_year",
		"output":        "report.output",
	}

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}
	// Unknown variables are ignored rather than guessed at.
	return ""
}
