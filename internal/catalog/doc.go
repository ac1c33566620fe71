// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

/*
Package catalog provides read access to the Oscar Best Picture movie catalog.

Three drivers implement the Catalog interface:

  - Memory: in-process map, used for the bundled seed and tests
  - DuckDB: the movies table in the application database
  - Mongo: a MongoDB collection of movie documents

All drivers return nominees ordered by vote_count descending with unknown
counts last. The smartmatch package relies on this order to break score ties.

# Seeding

BuiltinSeed returns about two dozen nominees embedded in the binary. LoadSeed
reads the same JSON format from disk. Writers (DuckDB, Mongo, Memory) accept
the result through UpsertMovies.
*/
package catalog
