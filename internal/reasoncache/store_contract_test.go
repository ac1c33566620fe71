// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package reasoncache

import (
	"errors"
	"sync"
	"testing"
	"time"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// useClock points a store's clock at fc.
func useClock(t *testing.T, s Store, fc *fakeClock) {
	t.Helper()
	switch st := s.(type) {
	case *MemoryStore:
		st.now = fc.Now
	case *BadgerStore:
		st.now = fc.Now
	case *RedisStore:
		st.now = fc.Now
	case *SQLStore:
		st.now = fc.Now
	default:
		t.Fatalf("unknown store type %T", s)
	}
}

// runStoreContract checks the behavior every Store must share.
func runStoreContract(t *testing.T, newStore func(t *testing.T) Store) {
	t.Helper()

	key := Key{MovieID: "parasite-2019", PreferencesHash: "abc123"}
	other := Key{MovieID: "parasite-2019", PreferencesHash: "def456"}

	t.Run("miss", func(t *testing.T) {
		s := newStore(t)
		if _, err := s.Get(t.Context(), key); !errors.Is(err, ErrNotFound) {
			t.Errorf("Get() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("put then get", func(t *testing.T) {
		s := newStore(t)
		fc := newFakeClock()
		useClock(t, s, fc)

		if err := s.Put(t.Context(), key, "Świetny wybór na wieczór.", 87); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
		e, err := s.Get(t.Context(), key)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if e.CachedReason != "Świetny wybór na wieczór." || e.MatchScore != 87 {
			t.Errorf("Get() = %+v", e)
		}
		if e.MovieID != key.MovieID || e.PreferencesHash != key.PreferencesHash {
			t.Errorf("Get() key fields = %s/%s", e.MovieID, e.PreferencesHash)
		}
		if !e.CreatedAt.Equal(fc.Now()) {
			t.Errorf("CreatedAt = %v, want %v", e.CreatedAt, fc.Now())
		}
	})

	t.Run("get refreshes last_used", func(t *testing.T) {
		s := newStore(t)
		fc := newFakeClock()
		useClock(t, s, fc)

		if err := s.Put(t.Context(), key, "reason", 50); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
		fc.Advance(time.Hour)

		e, err := s.Get(t.Context(), key)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if !e.LastUsed.Equal(fc.Now()) {
			t.Errorf("LastUsed = %v, want %v", e.LastUsed, fc.Now())
		}
	})

	t.Run("overwrite keeps created_at", func(t *testing.T) {
		s := newStore(t)
		fc := newFakeClock()
		useClock(t, s, fc)
		created := fc.Now()

		if err := s.Put(t.Context(), key, "first", 60); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
		fc.Advance(time.Minute)
		if err := s.Put(t.Context(), key, "second", 70); err != nil {
			t.Fatalf("Put() error = %v", err)
		}

		e, err := s.Get(t.Context(), key)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if e.CachedReason != "second" || e.MatchScore != 70 {
			t.Errorf("Get() = %q/%d, want second/70", e.CachedReason, e.MatchScore)
		}
		if !e.CreatedAt.Equal(created) {
			t.Errorf("CreatedAt = %v, want %v", e.CreatedAt, created)
		}
	})

	t.Run("keys are independent", func(t *testing.T) {
		s := newStore(t)
		if err := s.Put(t.Context(), key, "one", 10); err != nil {
			t.Fatalf("Put() error = %v", err)
		}
		if _, err := s.Get(t.Context(), other); !errors.Is(err, ErrNotFound) {
			t.Errorf("Get(other) error = %v, want ErrNotFound", err)
		}
	})
}
