// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

// Package database opens and tunes the DuckDB connection used by the duckdb
// movie catalog and the sql reason cache. Schema creation belongs to those
// packages (catalog.DuckDB.EnsureSchema, reasoncache.SQLStore.EnsureSchema).
package database
