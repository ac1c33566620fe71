// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package smartmatch

import (
	"math"
	"sort"

	"github.com/tomtom215/oscarmatch/internal/models"
)

// Thresholds are the vote-count bounds of the popularity brackets.
//
//	blockbuster: vote_count >= High
//	classic:     Low <= vote_count < High
//	hidden-gem:  vote_count < Low
type Thresholds struct {
	High int `json:"high"`
	Low  int `json:"low"`

	// PoolSize is the number of vote counts the bounds were computed from.
	// Zero means the fallback constants are in use.
	PoolSize int `json:"pool_size"`
}

// ComputeThresholds derives bracket bounds from the vote counts of the pool
// using the default percentiles.
func ComputeThresholds(voteCounts []*int) Thresholds {
	cfg := DefaultConfig().Thresholds
	return cfg.Compute(voteCounts)
}

// Compute derives bracket bounds from the vote counts of the pool.
// Nil and zero counts are ignored. The bound at percentile p is the value at
// index floor(N*p) of the counts sorted descending.
//
//nolint:gocritic // value receiver keeps the config immutable
func (c ThresholdConfig) Compute(voteCounts []*int) Thresholds {
	counts := make([]int, 0, len(voteCounts))
	for _, vc := range voteCounts {
		if vc != nil && *vc > 0 {
			counts = append(counts, *vc)
		}
	}

	if len(counts) == 0 {
		return Thresholds{High: c.FallbackHigh, Low: c.FallbackLow}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(counts)))

	n := len(counts)
	return Thresholds{
		High:     counts[percentileIndex(n, c.HighPercentile)],
		Low:      counts[percentileIndex(n, c.LowPercentile)],
		PoolSize: n,
	}
}

func percentileIndex(n int, p float64) int {
	idx := int(math.Floor(float64(n) * p))
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// Bracket classifies a vote count.
func (t Thresholds) Bracket(voteCount int) string {
	switch {
	case voteCount >= t.High:
		return models.PopularityBlockbuster
	case voteCount >= t.Low:
		return models.PopularityClassic
	default:
		return models.PopularityHiddenGem
	}
}

// Contains reports whether the movie belongs to the requested bracket.
// Movies without a vote count belong to no bracket.
func (t Thresholds) Contains(bracket string, m *models.Movie) bool {
	if m.VoteCount == nil {
		return false
	}
	return t.Bracket(*m.VoteCount) == bracket
}
