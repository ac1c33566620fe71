// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package smartmatch

import "fmt"

// Config contains all configuration for the Smart Match pipeline.
type Config struct {
	// Scoring holds the weight profiles and bonus constants of the scorer.
	Scoring ScoringConfig `json:"scoring" koanf:"scoring"`

	// Thresholds controls popularity bracket computation.
	Thresholds ThresholdConfig `json:"thresholds" koanf:"thresholds"`

	// Limits contains operational limits.
	Limits LimitsConfig `json:"limits" koanf:"limits"`
}

// Weights is one weight profile. The four weights sum to 100.
type Weights struct {
	Mood    float64 `json:"mood" koanf:"mood"`
	Genre   float64 `json:"genre" koanf:"genre"`
	Runtime float64 `json:"runtime" koanf:"runtime"`
	Bonus   float64 `json:"bonus" koanf:"bonus"`
}

// Total returns the maximum possible score under this profile.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w Weights) Total() float64 {
	return w.Mood + w.Genre + w.Runtime + w.Bonus
}

// ScoringConfig holds every tunable constant of the Match Scorer.
type ScoringConfig struct {
	// Default is used for surprise, zero or three genres.
	Default Weights `json:"default" koanf:"default"`

	// SingleGenre is used when exactly one concrete genre is selected.
	SingleGenre Weights `json:"single_genre" koanf:"single_genre"`

	// TwoGenres is used when exactly two concrete genres are selected.
	TwoGenres Weights `json:"two_genres" koanf:"two_genres"`

	// GenreBoost multiplies the genre weight for a strong single-genre match.
	// It is also the cap of the genre contribution.
	// Default: 1.15.
	GenreBoost float64 `json:"genre_boost" koanf:"genre_boost"`

	// StrongMatchImportance is the minimum tag importance that triggers the boost.
	// Default: 0.8.
	StrongMatchImportance float64 `json:"strong_match_importance" koanf:"strong_match_importance"`

	// Runtime bucket bounds in minutes. normal and long overlap on (150, 180].
	ShortMaxMinutes  int `json:"short_max_minutes" koanf:"short_max_minutes"`
	NormalMinMinutes int `json:"normal_min_minutes" koanf:"normal_min_minutes"`
	NormalMaxMinutes int `json:"normal_max_minutes" koanf:"normal_max_minutes"`
	LongMinMinutes   int `json:"long_min_minutes" koanf:"long_min_minutes"`

	// Bonus contains the additive bonus constants.
	Bonus BonusConfig `json:"bonus" koanf:"bonus"`

	// MaxScore caps the reported match score so that 100% is never shown.
	// Default: 98.
	MaxScore int `json:"max_score" koanf:"max_score"`
}

// BonusConfig contains the additive bonus points.
type BonusConfig struct {
	Winner  float64 `json:"winner" koanf:"winner"`
	Nominee float64 `json:"nominee" koanf:"nominee"`

	// Rating tiers, highest matching tier wins.
	RatingExcellent     float64 `json:"rating_excellent" koanf:"rating_excellent"`
	RatingExcellentMin  float64 `json:"rating_excellent_min" koanf:"rating_excellent_min"`
	RatingGreat         float64 `json:"rating_great" koanf:"rating_great"`
	RatingGreatMin      float64 `json:"rating_great_min" koanf:"rating_great_min"`
	RatingGood          float64 `json:"rating_good" koanf:"rating_good"`
	RatingGoodMin       float64 `json:"rating_good_min" koanf:"rating_good_min"`
	PopularityPreferred float64 `json:"popularity_preferred" koanf:"popularity_preferred"`
	DecadePreferred     float64 `json:"decade_preferred" koanf:"decade_preferred"`
}

// ThresholdConfig controls the Population Threshold Calculator.
type ThresholdConfig struct {
	// HighPercentile is the rank fraction (from the top) of the blockbuster bound.
	// Default: 0.25.
	HighPercentile float64 `json:"high_percentile" koanf:"high_percentile"`

	// LowPercentile is the rank fraction (from the top) of the hidden-gem bound.
	// Default: 0.75.
	LowPercentile float64 `json:"low_percentile" koanf:"low_percentile"`

	// FallbackHigh and FallbackLow are used when the pool has no vote counts.
	FallbackHigh int `json:"fallback_high" koanf:"fallback_high"`
	FallbackLow  int `json:"fallback_low" koanf:"fallback_low"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// TopN is the number of recommendations returned.
	// Default: 3.
	TopN int `json:"top_n" koanf:"top_n"`

	// ScoringWorkers bounds the goroutines used to score candidates.
	// Default: 4.
	ScoringWorkers int `json:"scoring_workers" koanf:"scoring_workers"`
}

// DefaultScoringConfig returns the production scoring constants.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		Default:               Weights{Mood: 35, Genre: 30, Runtime: 10, Bonus: 25},
		SingleGenre:           Weights{Mood: 25, Genre: 45, Runtime: 10, Bonus: 20},
		TwoGenres:             Weights{Mood: 30, Genre: 38, Runtime: 10, Bonus: 22},
		GenreBoost:            1.15,
		StrongMatchImportance: 0.8,
		ShortMaxMinutes:       120,
		NormalMinMinutes:      90,
		NormalMaxMinutes:      180,
		LongMinMinutes:        150,
		Bonus: BonusConfig{
			Winner:              8,
			Nominee:             4,
			RatingExcellent:     6,
			RatingExcellentMin:  8.5,
			RatingGreat:         4,
			RatingGreatMin:      8.0,
			RatingGood:          2,
			RatingGoodMin:       7.5,
			PopularityPreferred: 3,
			DecadePreferred:     2,
		},
		MaxScore: 98,
	}
}

// DefaultConfig returns a Config with production defaults.
func DefaultConfig() *Config {
	return &Config{
		Scoring: DefaultScoringConfig(),
		Thresholds: ThresholdConfig{
			HighPercentile: 0.25,
			LowPercentile:  0.75,
			FallbackHigh:   100000,
			FallbackLow:    10000,
		},
		Limits: LimitsConfig{
			TopN:           3,
			ScoringWorkers: 4,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if err := c.Scoring.Validate(); err != nil {
		return err
	}

	if c.Thresholds.HighPercentile < 0 || c.Thresholds.HighPercentile >= 1 {
		return fmt.Errorf("thresholds.high_percentile must be in [0, 1), got %f", c.Thresholds.HighPercentile)
	}
	if c.Thresholds.LowPercentile < c.Thresholds.HighPercentile || c.Thresholds.LowPercentile >= 1 {
		return fmt.Errorf("thresholds.low_percentile must be in [high_percentile, 1), got %f", c.Thresholds.LowPercentile)
	}
	if c.Thresholds.FallbackLow > c.Thresholds.FallbackHigh {
		return fmt.Errorf("thresholds.fallback_low must be <= fallback_high, got %d > %d",
			c.Thresholds.FallbackLow, c.Thresholds.FallbackHigh)
	}

	if c.Limits.TopN < 1 {
		return fmt.Errorf("limits.top_n must be positive, got %d", c.Limits.TopN)
	}
	if c.Limits.ScoringWorkers < 1 {
		return fmt.Errorf("limits.scoring_workers must be positive, got %d", c.Limits.ScoringWorkers)
	}

	return nil
}

// Validate checks the scoring constants.
//
//nolint:gocritic // value receiver keeps the config immutable
func (s ScoringConfig) Validate() error {
	profiles := map[string]Weights{
		"default":      s.Default,
		"single_genre": s.SingleGenre,
		"two_genres":   s.TwoGenres,
	}
	for name, w := range profiles {
		if w.Mood < 0 || w.Genre < 0 || w.Runtime < 0 || w.Bonus < 0 {
			return fmt.Errorf("scoring.%s weights must be non-negative", name)
		}
		if w.Total() <= 0 {
			return fmt.Errorf("scoring.%s weights must sum to a positive value", name)
		}
	}

	if s.GenreBoost < 1 {
		return fmt.Errorf("scoring.genre_boost must be >= 1, got %f", s.GenreBoost)
	}
	if s.StrongMatchImportance <= 0 || s.StrongMatchImportance > 1 {
		return fmt.Errorf("scoring.strong_match_importance must be in (0, 1], got %f", s.StrongMatchImportance)
	}
	if s.NormalMinMinutes >= s.NormalMaxMinutes {
		return fmt.Errorf("scoring.normal_min_minutes must be < normal_max_minutes")
	}
	if s.MaxScore < 1 || s.MaxScore > 100 {
		return fmt.Errorf("scoring.max_score must be in [1, 100], got %d", s.MaxScore)
	}

	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	// All nested structs are value types.
	clone := *c
	return &clone
}
