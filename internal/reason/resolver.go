// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package reason

import (
	"context"

	"github.com/tomtom215/oscarmatch/internal/metrics"
	"github.com/tomtom215/oscarmatch/internal/models"
)

// Cache is the reason cache as seen by the resolver.
type Cache interface {
	Lookup(ctx context.Context, movieID string, prefs *models.Preferences) (string, bool)
	Save(ctx context.Context, movieID string, prefs *models.Preferences, reason string, score int)
}

// Resolver returns cached reasons and generates missing ones.
type Resolver struct {
	cache Cache
	gen   *Generator
}

// NewResolver creates a resolver. A nil cache disables caching.
func NewResolver(cache Cache, gen *Generator) *Resolver {
	return &Resolver{cache: cache, gen: gen}
}

// Resolve returns the reason for movie under prefs.
//
// On a miss the generated reason is saved whatever its source, so a fallback
// reason is served from the cache on later calls too.
func (r *Resolver) Resolve(ctx context.Context, movie *models.Movie, prefs *models.Preferences, score int) (string, models.ReasonSource) {
	if r.cache != nil {
		if text, ok := r.cache.Lookup(ctx, movie.ID, prefs); ok {
			metrics.RecordReasonGenerated(string(models.ReasonFromCache))
			return text, models.ReasonFromCache
		}
	}

	res := r.gen.Generate(ctx, movie, prefs, score)
	metrics.RecordReasonGenerated(string(res.Source))

	if r.cache != nil {
		r.cache.Save(ctx, movie.ID, prefs, res.Text, score)
	}
	return res.Text, res.Source
}
