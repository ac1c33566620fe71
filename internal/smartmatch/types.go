// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package smartmatch

import (
	"context"

	"github.com/tomtom215/oscarmatch/internal/catalog"
	"github.com/tomtom215/oscarmatch/internal/models"
)

// Result is the outcome of one Smart Match request.
type Result struct {
	Recommendations []models.MovieRecommendation `json:"recommendations"`

	// TotalAnalyzed is the number of candidates that survived filtering.
	TotalAnalyzed int `json:"totalAnalyzed"`

	Success bool `json:"success"`

	// PreferencesHash identifies the normalized preference set.
	PreferencesHash string `json:"preferencesHash,omitempty"`
}

// Explanation is the score breakdown of one movie.
type Explanation struct {
	Movie     models.Movie   `json:"movie"`
	Breakdown ScoreBreakdown `json:"breakdown"`

	// Eligible is false for movies Smart Match never recommends, such as
	// untagged movies or non-nominees. They are still scored.
	Eligible bool `json:"eligible"`
}

// MovieSource is the part of the catalog used by the pipeline.
type MovieSource interface {
	ListNominees(ctx context.Context, filter catalog.Filter) ([]models.Movie, error)
	Get(ctx context.Context, id string) (*models.Movie, error)
}

// ReasonResolver returns the reason text of one recommendation. It never fails.
type ReasonResolver interface {
	Resolve(ctx context.Context, movie *models.Movie, prefs *models.Preferences, score int) (string, models.ReasonSource)
}

// Publisher receives an event after every successful request.
type Publisher interface {
	PublishRecommendationServed(ctx context.Context, event *models.RecommendationServed) error
}
