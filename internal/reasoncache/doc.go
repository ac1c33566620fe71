// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

/*
Package reasoncache stores generated recommendation reasons keyed by movie
and preference hash, so identical requests reuse earlier text instead of
calling the text generator again.

The preference hash is models.Preferences.Hash: genre order does not matter
and omitted decade or popularity equal their defaults.

# Stores

  - MemoryStore: process-local map
  - BadgerStore: embedded BadgerDB, survives restarts
  - RedisStore: one hash per entry, shared between replicas
  - SQLStore: the ai_recommendations_cache table in DuckDB

Every store refreshes last_used on read and keeps created_at on overwrite.

Cache wraps a Store with Prometheus counters. A failing store never fails
the request: reads become misses and writes are dropped with a warning. A
read whose last_used refresh fails (ErrTouch) is still served as a hit.
*/
package reasoncache
