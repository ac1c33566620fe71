// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package api

import (
	"context"
	"time"

	"github.com/tomtom215/oscarmatch/internal/catalog"
	"github.com/tomtom215/oscarmatch/internal/models"
	"github.com/tomtom215/oscarmatch/internal/smartmatch"
)

// SmartMatcher is the recommendation service used by the handlers.
type SmartMatcher interface {
	ScoreAndRecommend(ctx context.Context, prefs *models.Preferences) (*smartmatch.Result, error)
	Explain(ctx context.Context, movieID string, prefs *models.Preferences) (*smartmatch.Explanation, error)
}

// Handler holds the dependencies of every HTTP handler.
type Handler struct {
	matcher   SmartMatcher
	catalog   catalog.Catalog
	version   string
	startTime time.Time

	// readyTimeout bounds the catalog ping of the readiness probe.
	readyTimeout time.Duration
}

// NewHandler creates the API handler set.
func NewHandler(matcher SmartMatcher, cat catalog.Catalog, version string) *Handler {
	return &Handler{
		matcher:      matcher,
		catalog:      cat,
		version:      version,
		startTime:    time.Now(),
		readyTimeout: 2 * time.Second,
	}
}
