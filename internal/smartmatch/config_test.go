// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package smartmatch

import (
	"strings"
	"testing"
)

func TestDefaultConfig_Valid(t *testing.T) {
	t.Parallel()
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"negative weight", func(c *Config) { c.Scoring.SingleGenre.Mood = -1 }, "single_genre weights must be non-negative"},
		{"zero profile", func(c *Config) { c.Scoring.Default = Weights{} }, "default weights must sum"},
		{"boost below one", func(c *Config) { c.Scoring.GenreBoost = 0.9 }, "genre_boost"},
		{"importance", func(c *Config) { c.Scoring.StrongMatchImportance = 1.5 }, "strong_match_importance"},
		{"normal bounds", func(c *Config) { c.Scoring.NormalMinMinutes = 200 }, "normal_min_minutes"},
		{"max score", func(c *Config) { c.Scoring.MaxScore = 101 }, "max_score"},
		{"high percentile", func(c *Config) { c.Thresholds.HighPercentile = 1 }, "high_percentile"},
		{"low below high", func(c *Config) { c.Thresholds.LowPercentile = 0.1 }, "low_percentile"},
		{"fallbacks", func(c *Config) { c.Thresholds.FallbackLow = 200000 }, "fallback_low"},
		{"top n", func(c *Config) { c.Limits.TopN = 0 }, "top_n"},
		{"workers", func(c *Config) { c.Limits.ScoringWorkers = 0 }, "scoring_workers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Clone(t *testing.T) {
	t.Parallel()

	orig := DefaultConfig()
	clone := orig.Clone()
	clone.Scoring.MaxScore = 50
	clone.Limits.TopN = 10

	if orig.Scoring.MaxScore != 98 || orig.Limits.TopN != 3 {
		t.Errorf("Clone() shares state with original: %+v", orig)
	}
}
