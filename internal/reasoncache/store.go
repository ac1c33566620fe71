// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package reasoncache

import (
	"context"
	"errors"
	"time"

	"github.com/tomtom215/oscarmatch/internal/models"
)

// ErrNotFound is returned by Store.Get on a cache miss.
var ErrNotFound = errors.New("reason not cached")

// ErrTouch is wrapped by the error Store.Get returns together with an entry
// when the read succeeded but refreshing LastUsed did not.
var ErrTouch = errors.New("refresh last_used")

// Key identifies one cached reason: a movie under one preference combination.
type Key struct {
	MovieID         string
	PreferencesHash string
}

// KeyFor builds the cache key of movieID for prefs.
func KeyFor(movieID string, prefs *models.Preferences) Key {
	return Key{MovieID: movieID, PreferencesHash: prefs.Hash()}
}

// String renders the key as "movie_id:hash".
func (k Key) String() string {
	return k.MovieID + ":" + k.PreferencesHash
}

// Entry is a cached reason.
type Entry struct {
	MovieID         string    `json:"movie_id"`
	PreferencesHash string    `json:"preferences_hash"`
	CachedReason    string    `json:"cached_reason"`
	MatchScore      int       `json:"match_score"`
	CreatedAt       time.Time `json:"created_at"`
	LastUsed        time.Time `json:"last_used"`
}

// Store persists reasons keyed by movie and preference hash.
//
// Implementations must be safe for concurrent use. Put is an upsert where
// the last writer wins and CreatedAt of an existing entry is preserved.
type Store interface {
	// Get returns the entry and refreshes its LastUsed, or ErrNotFound.
	// A failed refresh returns the entry with an error wrapping ErrTouch.
	Get(ctx context.Context, key Key) (*Entry, error)

	// Put stores reason and score under key.
	Put(ctx context.Context, key Key, reason string, score int) error

	Close() error
}

// clock returns the current time in UTC. Tests replace it.
type clock func() time.Time

func utcNow() time.Time { return time.Now().UTC() }
