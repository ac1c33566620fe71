// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

/*
Package services provides suture.Service wrappers for long-running components.

  - HTTPServerService: the API server with graceful shutdown
  - PeriodicService: ticker-driven maintenance (badger GC, DuckDB checkpoint)

The events consumer implements suture.Service itself and is added to the
tree directly.

Every service returns ctx.Err() when the supervisor stops it, so suture
does not count a shutdown as a failure.
*/
package services
