// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package reasoncache

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/tomtom215/oscarmatch/internal/logging"
	"github.com/tomtom215/oscarmatch/internal/metrics"
	"github.com/tomtom215/oscarmatch/internal/models"
)

// Cache fronts a Store with metrics and degradation: store failures are
// logged and behave like misses on read and no-ops on write.
type Cache struct {
	store  Store
	logger zerolog.Logger
}

// New creates a cache over store.
func New(store Store) *Cache {
	return &Cache{
		store:  store,
		logger: logging.WithComponent("reasoncache"),
	}
}

// Lookup returns the cached reason for movieID under prefs.
func (c *Cache) Lookup(ctx context.Context, movieID string, prefs *models.Preferences) (string, bool) {
	key := KeyFor(movieID, prefs)

	entry, err := c.store.Get(ctx, key)
	switch {
	case entry != nil && errors.Is(err, ErrTouch):
		metrics.RecordReasonCacheError("touch")
		metrics.RecordReasonCacheLookup(true)
		logger := logging.Annotate(ctx, c.logger.With()).Logger()
		logger.Warn().
			Err(err).
			Str("movie_id", key.MovieID).
			Str("preferences_hash", key.PreferencesHash).
			Msg("Failed to refresh reason cache entry, serving cached reason")
		return entry.CachedReason, true
	case err == nil:
		metrics.RecordReasonCacheLookup(true)
		return entry.CachedReason, true
	case errors.Is(err, ErrNotFound):
		metrics.RecordReasonCacheLookup(false)
		return "", false
	default:
		metrics.RecordReasonCacheError("get")
		metrics.RecordReasonCacheLookup(false)
		logger := logging.Annotate(ctx, c.logger.With()).Logger()
		logger.Warn().
			Err(err).
			Str("movie_id", key.MovieID).
			Str("preferences_hash", key.PreferencesHash).
			Msg("Reason cache lookup failed, treating as miss")
		return "", false
	}
}

// Save stores reason for movieID under prefs.
func (c *Cache) Save(ctx context.Context, movieID string, prefs *models.Preferences, reason string, score int) {
	key := KeyFor(movieID, prefs)
	if err := c.store.Put(ctx, key, reason, score); err != nil {
		metrics.RecordReasonCacheError("put")
		logger := logging.Annotate(ctx, c.logger.With()).Logger()
		logger.Warn().
			Err(err).
			Str("movie_id", key.MovieID).
			Str("preferences_hash", key.PreferencesHash).
			Msg("Failed to save reason to cache")
	}
}

// Close closes the underlying store.
func (c *Cache) Close() error {
	return c.store.Close()
}
