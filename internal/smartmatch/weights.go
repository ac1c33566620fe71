// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package smartmatch

// WeightsFor returns the weight profile for the number of concrete genres the
// user selected. Surprise is reported by callers as zero genres.
//
// A narrower genre request shifts weight from mood and bonus to genre.
// Runtime weight never changes.
//
//nolint:gocritic // value receiver keeps the config immutable
func (s ScoringConfig) WeightsFor(genreCount int) Weights {
	switch genreCount {
	case 1:
		return s.SingleGenre
	case 2:
		return s.TwoGenres
	default:
		return s.Default
	}
}

// WeightsFor returns the default weight profile for a genre count.
func WeightsFor(genreCount int) Weights {
	return DefaultScoringConfig().WeightsFor(genreCount)
}
