// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package reasoncache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const cacheSchema = `CREATE TABLE IF NOT EXISTS ai_recommendations_cache (
	movie_id TEXT NOT NULL,
	preferences_hash TEXT NOT NULL,
	cached_reason TEXT NOT NULL,
	match_score INTEGER NOT NULL,
	created_at TIMESTAMP NOT NULL,
	last_used TIMESTAMP NOT NULL,
	PRIMARY KEY (movie_id, preferences_hash)
)`

// SQLStore keeps entries in the ai_recommendations_cache table of the
// application database.
type SQLStore struct {
	conn *sql.DB
	now  clock
}

// NewSQLStore wraps an open connection. Call EnsureSchema before first use.
func NewSQLStore(conn *sql.DB) *SQLStore {
	return &SQLStore{conn: conn, now: utcNow}
}

// EnsureSchema creates the cache table when missing.
func (s *SQLStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.conn.ExecContext(ctx, cacheSchema); err != nil {
		return fmt.Errorf("failed to create ai_recommendations_cache table: %w", err)
	}
	return nil
}

// Get implements Store. A failed last_used update still returns the entry.
func (s *SQLStore) Get(ctx context.Context, key Key) (*Entry, error) {
	e := Entry{MovieID: key.MovieID, PreferencesHash: key.PreferencesHash}

	err := s.conn.QueryRowContext(ctx, `SELECT cached_reason, match_score, created_at
		FROM ai_recommendations_cache
		WHERE movie_id = ? AND preferences_hash = ?`,
		key.MovieID, key.PreferencesHash,
	).Scan(&e.CachedReason, &e.MatchScore, &e.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached reason: %w", err)
	}

	e.CreatedAt = e.CreatedAt.UTC()
	e.LastUsed = s.now()
	if _, err := s.conn.ExecContext(ctx, `UPDATE ai_recommendations_cache SET last_used = ?
		WHERE movie_id = ? AND preferences_hash = ?`,
		e.LastUsed, key.MovieID, key.PreferencesHash,
	); err != nil {
		return &e, fmt.Errorf("%w: %w", ErrTouch, err)
	}
	return &e, nil
}

// Put implements Store.
func (s *SQLStore) Put(ctx context.Context, key Key, reason string, score int) error {
	now := s.now()
	_, err := s.conn.ExecContext(ctx, `INSERT INTO ai_recommendations_cache
		(movie_id, preferences_hash, cached_reason, match_score, created_at, last_used)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (movie_id, preferences_hash) DO UPDATE SET
			cached_reason = EXCLUDED.cached_reason,
			match_score = EXCLUDED.match_score,
			last_used = EXCLUDED.last_used`,
		key.MovieID, key.PreferencesHash, reason, score, now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to save cached reason: %w", err)
	}
	return nil
}

// Close is a no-op. The connection belongs to the database package.
func (s *SQLStore) Close() error { return nil }
