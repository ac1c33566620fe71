// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package reasoncache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Hash fields of a cached entry.
const (
	fieldReason    = "cached_reason"
	fieldScore     = "match_score"
	fieldCreatedAt = "created_at"
	fieldLastUsed  = "last_used"
)

const defaultRedisPrefix = "oscarmatch:reason:"

// RedisOptions configures the shared store.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int

	// Prefix namespaces keys. Defaults to "oscarmatch:reason:".
	Prefix string

	// TTL expires entries after this long. Zero keeps them forever.
	TTL time.Duration

	DialTimeout time.Duration
}

// RedisStore stores each entry as a Redis hash so replicas share reasons.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	owned  bool
	now    clock
}

// OpenRedisStore connects to Redis, pings it and owns the client.
func OpenRedisStore(ctx context.Context, opts RedisOptions) (*RedisStore, error) {
	if opts.DialTimeout <= 0 {
		opts.DialTimeout = 5 * time.Second
	}
	client := redis.NewClient(&redis.Options{
		Addr:        opts.Addr,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: opts.DialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, opts.DialTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close() //nolint:errcheck // ping error is returned
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	s := NewRedisStore(client, opts.Prefix, opts.TTL)
	s.owned = true
	return s, nil
}

// NewRedisStore wraps an existing client. The caller keeps ownership.
func NewRedisStore(client *redis.Client, prefix string, ttl time.Duration) *RedisStore {
	if prefix == "" {
		prefix = defaultRedisPrefix
	}
	return &RedisStore{client: client, prefix: prefix, ttl: ttl, now: utcNow}
}

func (s *RedisStore) key(key Key) string {
	return s.prefix + key.String()
}

// Get implements Store. The read and the last_used touch run under WATCH,
// so an entry that expires or is deleted in between is reported as a miss
// instead of being recreated without a TTL.
func (s *RedisStore) Get(ctx context.Context, key Key) (*Entry, error) {
	rk := s.key(key)
	now := s.now()

	var fields map[string]string
	err := s.client.Watch(ctx, func(tx *redis.Tx) error {
		var err error
		fields, err = tx.HGetAll(ctx, rk).Result()
		if err != nil {
			return fmt.Errorf("hgetall: %w", err)
		}
		if _, ok := fields[fieldReason]; !ok {
			return ErrNotFound
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, rk, fieldLastUsed, now.Format(time.RFC3339Nano))
			if s.ttl > 0 {
				pipe.Expire(ctx, rk, s.ttl)
			}
			return nil
		})
		return err
	}, rk)
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, redis.TxFailedErr):
		return nil, ErrNotFound
	case err != nil:
		return nil, fmt.Errorf("touch entry: %w", err)
	}

	score, err := strconv.Atoi(fields[fieldScore])
	if err != nil {
		return nil, fmt.Errorf("decode match_score: %w", err)
	}
	created, err := time.Parse(time.RFC3339Nano, fields[fieldCreatedAt])
	if err != nil {
		return nil, fmt.Errorf("decode created_at: %w", err)
	}

	return &Entry{
		MovieID:         key.MovieID,
		PreferencesHash: key.PreferencesHash,
		CachedReason:    fields[fieldReason],
		MatchScore:      score,
		CreatedAt:       created,
		LastUsed:        now,
	}, nil
}

// Put implements Store. HSETNX keeps created_at of an existing entry.
func (s *RedisStore) Put(ctx context.Context, key Key, reason string, score int) error {
	rk := s.key(key)
	now := s.now().Format(time.RFC3339Nano)

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSetNX(ctx, rk, fieldCreatedAt, now)
		pipe.HSet(ctx, rk,
			fieldReason, reason,
			fieldScore, strconv.Itoa(score),
			fieldLastUsed, now,
		)
		if s.ttl > 0 {
			pipe.Expire(ctx, rk, s.ttl)
		}
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("store entry: %w", err)
	}
	return nil
}

// Close closes the client when the store opened it.
func (s *RedisStore) Close() error {
	if !s.owned {
		return nil
	}
	return s.client.Close()
}
