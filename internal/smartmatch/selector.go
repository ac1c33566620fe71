// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package smartmatch

import (
	"sort"

	"github.com/tomtom215/oscarmatch/internal/models"
)

// ScoredCandidate is a movie with its match score.
type ScoredCandidate struct {
	Movie      models.Movie
	MatchScore int
}

// RankedCandidate is a selected candidate with its 1-based rank.
type RankedCandidate struct {
	ScoredCandidate
	Rank int
}

// SelectTop returns the n best candidates by score. Ties keep input order.
// Fewer than n candidates yield a shorter result.
func SelectTop(scored []ScoredCandidate, n int) []RankedCandidate {
	if n <= 0 || len(scored) == 0 {
		return nil
	}

	sorted := make([]ScoredCandidate, len(scored))
	copy(sorted, scored)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MatchScore > sorted[j].MatchScore
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}

	ranked := make([]RankedCandidate, len(sorted))
	for i := range sorted {
		ranked[i] = RankedCandidate{ScoredCandidate: sorted[i], Rank: i + 1}
	}
	return ranked
}
