// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package reasoncache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

const reasonKeyPrefix = "reason:"

// maxConflictRetries bounds retries of the read-touch transaction.
const maxConflictRetries = 3

// BadgerOptions configures the embedded store.
type BadgerOptions struct {
	// Path is the data directory. Empty opens an in-memory database.
	Path string

	// TTL expires entries after this long. Zero keeps them forever.
	TTL time.Duration
}

// BadgerStore implements Store using BadgerDB for durable local storage.
type BadgerStore struct {
	db    *badger.DB
	ttl   time.Duration
	owned bool
	now   clock
}

// OpenBadgerStore opens a BadgerDB at opts.Path and owns it.
func OpenBadgerStore(opts BadgerOptions) (*BadgerStore, error) {
	bopts := badger.DefaultOptions(opts.Path).WithLogger(nil)
	if opts.Path == "" {
		bopts = bopts.WithInMemory(true)
	}
	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	s := NewBadgerStore(db, opts.TTL)
	s.owned = true
	return s, nil
}

// NewBadgerStore wraps an open database. The caller keeps ownership.
func NewBadgerStore(db *badger.DB, ttl time.Duration) *BadgerStore {
	return &BadgerStore{db: db, ttl: ttl, now: utcNow}
}

func badgerKey(key Key) []byte {
	return []byte(reasonKeyPrefix + key.String())
}

func (s *BadgerStore) setEntry(txn *badger.Txn, key []byte, e *Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal entry: %w", err)
	}
	be := badger.NewEntry(key, data)
	if s.ttl > 0 {
		be = be.WithTTL(s.ttl)
	}
	return txn.SetEntry(be)
}

func readEntry(txn *badger.Txn, key []byte) (*Entry, error) {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}

	var e Entry
	if err := item.Value(func(val []byte) error {
		return json.Unmarshal(val, &e)
	}); err != nil {
		return nil, fmt.Errorf("decode entry: %w", err)
	}
	return &e, nil
}

// update runs fn in a read-write transaction, retrying on conflicts.
func (s *BadgerStore) update(ctx context.Context, fn func(txn *badger.Txn) error) error {
	var err error
	for range maxConflictRetries {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		err = s.db.Update(fn)
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
	}
	return err
}

// Get implements Store. The read and the LastUsed touch share one transaction.
func (s *BadgerStore) Get(ctx context.Context, key Key) (*Entry, error) {
	k := badgerKey(key)
	var out *Entry

	err := s.update(ctx, func(txn *badger.Txn) error {
		e, err := readEntry(txn, k)
		if err != nil {
			return err
		}
		e.LastUsed = s.now()
		if err := s.setEntry(txn, k, e); err != nil {
			return fmt.Errorf("touch entry: %w", err)
		}
		out = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Put implements Store.
func (s *BadgerStore) Put(ctx context.Context, key Key, reason string, score int) error {
	k := badgerKey(key)

	return s.update(ctx, func(txn *badger.Txn) error {
		now := s.now()
		e, err := readEntry(txn, k)
		switch {
		case errors.Is(err, ErrNotFound):
			e = &Entry{MovieID: key.MovieID, PreferencesHash: key.PreferencesHash, CreatedAt: now}
		case err != nil:
			return err
		}
		e.CachedReason = reason
		e.MatchScore = score
		e.LastUsed = now
		return s.setEntry(txn, k, e)
	})
}

// Close closes the database when the store opened it.
func (s *BadgerStore) Close() error {
	if !s.owned {
		return nil
	}
	return s.db.Close()
}

// gcDiscardRatio is the share of stale data a value log file needs before
// it is rewritten.
const gcDiscardRatio = 0.5

// RunGC reclaims value log space left by expired and overwritten entries.
// It rewrites files until badger reports nothing left to collect or ctx ends.
func (s *BadgerStore) RunGC(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := s.db.RunValueLogGC(gcDiscardRatio)
		switch {
		case err == nil:
			continue
		case errors.Is(err, badger.ErrNoRewrite), errors.Is(err, badger.ErrGCInMemoryMode):
			return nil
		default:
			return fmt.Errorf("badger value log gc: %w", err)
		}
	}
}
