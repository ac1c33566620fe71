// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package smartmatch

import (
	"math"

	"github.com/tomtom215/oscarmatch/internal/models"
)

// ScoreBreakdown holds the per-component contributions of one score.
type ScoreBreakdown struct {
	Weights Weights `json:"weights"`

	Mood    float64 `json:"mood"`
	Genre   float64 `json:"genre"`
	Runtime float64 `json:"runtime"`
	Bonus   float64 `json:"bonus"`

	// GenreBoosted is true when the strong single-genre override applied.
	GenreBoosted bool `json:"genre_boosted"`

	// Raw is the uncapped percentage before rounding.
	Raw float64 `json:"raw"`

	// Score is the final match score in [0, MaxScore].
	Score int `json:"score"`
}

// Total returns the sum of all contributions.
func (b *ScoreBreakdown) Total() float64 {
	return b.Mood + b.Genre + b.Runtime + b.Bonus
}

// Scorer computes match scores. It is stateless and safe for concurrent use.
type Scorer struct {
	cfg ScoringConfig
}

// NewScorer creates a scorer with the given constants.
//
//nolint:gocritic // config copied once at construction
func NewScorer(cfg ScoringConfig) *Scorer {
	return &Scorer{cfg: cfg}
}

// Score returns the match score of movie for prefs.
func (s *Scorer) Score(movie *models.Movie, prefs *models.Preferences) int {
	return s.Breakdown(movie, prefs).Score
}

// Breakdown scores movie for prefs and reports every component.
// Missing movie data and unknown preference values contribute nothing.
func (s *Scorer) Breakdown(movie *models.Movie, prefs *models.Preferences) ScoreBreakdown {
	genres := prefs.ConcreteGenres()
	w := s.cfg.WeightsFor(len(genres))

	b := ScoreBreakdown{Weights: w}
	b.Mood = s.moodScore(movie, prefs, w)
	b.Genre, b.GenreBoosted = s.genreScore(movie, prefs, genres, w)
	b.Runtime = s.runtimeScore(movie, prefs, w)
	b.Bonus = s.bonusScore(movie, prefs, w)

	maxPossible := w.Total()
	if maxPossible > 0 {
		b.Raw = b.Total() / maxPossible * 100
	}
	b.Score = int(math.Round(math.Max(0, math.Min(float64(s.cfg.MaxScore), b.Raw))))
	return b
}

//nolint:gocritic // Weights is small
func (s *Scorer) moodScore(movie *models.Movie, prefs *models.Preferences, w Weights) float64 {
	label, ok := models.MoodLabel(prefs.Mood)
	if !ok || !movie.HasMood(label) {
		return 0
	}
	return w.Mood
}

//nolint:gocritic // Weights is small
func (s *Scorer) genreScore(movie *models.Movie, prefs *models.Preferences, genres []string, w Weights) (float64, bool) {
	if prefs.IsSurprise() {
		return w.Genre, false
	}
	if len(genres) == 0 {
		return 0, false
	}

	var total float64
	for _, g := range genres {
		if importance, ok := movie.TagImportance(g); ok {
			total += importance
		}
	}
	pct := math.Min(1.0, total/float64(len(genres)))
	score := pct * w.Genre

	boosted := false
	if len(genres) == 1 {
		if importance, ok := movie.TagImportance(genres[0]); ok && importance >= s.cfg.StrongMatchImportance {
			score = w.Genre * s.cfg.GenreBoost
			boosted = true
		}
	}

	return math.Min(score, w.Genre*s.cfg.GenreBoost), boosted
}

//nolint:gocritic // Weights is small
func (s *Scorer) runtimeScore(movie *models.Movie, prefs *models.Preferences, w Weights) float64 {
	if movie.Runtime == nil {
		return 0
	}
	if s.RuntimeFits(*movie.Runtime, prefs.Time) {
		return w.Runtime
	}
	return 0
}

// RuntimeFits reports whether runtime minutes satisfy the time bucket.
// The normal and long buckets overlap, so a 160 minute film fits both.
func (s *Scorer) RuntimeFits(runtime int, bucket string) bool {
	switch bucket {
	case models.TimeShort:
		return runtime <= s.cfg.ShortMaxMinutes
	case models.TimeNormal:
		return runtime > s.cfg.NormalMinMinutes && runtime <= s.cfg.NormalMaxMinutes
	case models.TimeLong:
		return runtime > s.cfg.LongMinMinutes
	case models.TimeAny:
		return true
	default:
		return false
	}
}

//nolint:gocritic // Weights is small
func (s *Scorer) bonusScore(movie *models.Movie, prefs *models.Preferences, w Weights) float64 {
	bc := s.cfg.Bonus
	var bonus float64

	switch {
	case movie.IsBestPictureWinner:
		bonus += bc.Winner
	case movie.IsBestPictureNominee:
		bonus += bc.Nominee
	}

	if rating, ok := movie.Rating(); ok {
		switch {
		case rating >= bc.RatingExcellentMin:
			bonus += bc.RatingExcellent
		case rating >= bc.RatingGreatMin:
			bonus += bc.RatingGreat
		case rating >= bc.RatingGoodMin:
			bonus += bc.RatingGood
		}
	}

	if isBracket(prefs.PopularityOrDefault()) && movie.VoteCount != nil {
		bonus += bc.PopularityPreferred
	}

	if from, to, ok := models.DecadeRange(prefs.DecadeOrDefault()); ok && movie.OscarYear != nil {
		if y := *movie.OscarYear; y >= from && y <= to {
			bonus += bc.DecadePreferred
		}
	}

	return math.Min(bonus, w.Bonus)
}
