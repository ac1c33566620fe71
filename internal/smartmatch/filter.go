// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package smartmatch

import "github.com/tomtom215/oscarmatch/internal/models"

// FilterResult is the outcome of candidate filtering.
type FilterResult struct {
	Candidates []models.Movie

	// Thresholds is set only when a popularity bracket was requested.
	Thresholds *Thresholds
}

// FilterCandidates applies the hard filters with the default threshold
// configuration. It returns ErrNoCandidates when nothing survives.
func FilterCandidates(movies []models.Movie, decade, popularity string) ([]models.Movie, error) {
	res, err := DefaultConfig().Thresholds.Filter(movies, decade, popularity)
	if err != nil {
		return nil, err
	}
	return res.Candidates, nil
}

// Filter applies, in order: tagged Best Picture nominees only, the decade
// range, and the popularity bracket computed over the decade-filtered pool.
// Unknown decade or popularity values apply no restriction.
//
// Input order is preserved so that the selector can break ties by catalog order.
//
//nolint:gocritic // value receiver keeps the config immutable
func (c ThresholdConfig) Filter(movies []models.Movie, decade, popularity string) (*FilterResult, error) {
	from, to, hasDecade := models.DecadeRange(decade)

	pool := make([]models.Movie, 0, len(movies))
	for i := range movies {
		m := &movies[i]
		if !m.IsBestPictureNominee || !m.HasTags() {
			continue
		}
		if hasDecade && (m.OscarYear == nil || *m.OscarYear < from || *m.OscarYear > to) {
			continue
		}
		pool = append(pool, *m)
	}

	res := &FilterResult{Candidates: pool}

	if isBracket(popularity) {
		voteCounts := make([]*int, len(pool))
		for i := range pool {
			voteCounts[i] = pool[i].VoteCount
		}
		th := c.Compute(voteCounts)
		res.Thresholds = &th

		kept := pool[:0]
		for i := range pool {
			if th.Contains(popularity, &pool[i]) {
				kept = append(kept, pool[i])
			}
		}
		res.Candidates = kept
	}

	if len(res.Candidates) == 0 {
		return res, ErrNoCandidates
	}
	return res, nil
}

func isBracket(popularity string) bool {
	switch popularity {
	case models.PopularityBlockbuster, models.PopularityClassic, models.PopularityHiddenGem:
		return true
	default:
		return false
	}
}
