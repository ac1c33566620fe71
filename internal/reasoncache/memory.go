// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package reasoncache

import (
	"context"
	"sync"
)

// MemoryStore keeps entries in a map. Contents are lost on restart.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[Key]Entry
	now     clock
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[Key]Entry), now: utcNow}
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, key Key) (*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, ErrNotFound
	}
	e.LastUsed = s.now()
	s.entries[key] = e
	return &e, nil
}

// Put implements Store.
func (s *MemoryStore) Put(_ context.Context, key Key, reason string, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e, ok := s.entries[key]
	if !ok {
		e = Entry{MovieID: key.MovieID, PreferencesHash: key.PreferencesHash, CreatedAt: now}
	}
	e.CachedReason = reason
	e.MatchScore = score
	e.LastUsed = now
	s.entries[key] = e
	return nil
}

// Len returns the number of cached entries.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Close implements Store.
func (s *MemoryStore) Close() error { return nil }
