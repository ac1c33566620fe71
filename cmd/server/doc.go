// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

/*
Package main is the entry point for the Oscarmatch server.

Oscarmatch answers a short preference questionnaire (mood, time, decade,
popularity, genres) with the three Oscar Best Picture nominees that fit best,
each with a one or two sentence reason. Reasons come from an
OpenAI-compatible text generation service and are cached per movie and
preference combination.

# Application Architecture

	RootSupervisor ("oscarmatch")
	├── DataSupervisor ("data-layer")
	│   ├── badger-gc           (REASON_CACHE_DRIVER=badger)
	│   └── duckdb-checkpoint   (DuckDB file opened)
	├── MessagingSupervisor ("messaging-layer")
	│   └── events-consumer     (EVENTS_ENABLED=true)
	└── APISupervisor ("api-layer")
	    └── http-server

Component initialization order:

 1. Configuration: Koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog with JSON or console output
 3. Database: DuckDB, only when the duckdb catalog or sql reason cache is used
 4. Catalog: memory, duckdb or mongo, seeded from the bundled nominee list
 5. Reason cache: memory, badger, redis or sql
 6. Text generation: HTTP client behind a rate limiter and circuit breaker
 7. Smart Match service and the recommendation event transport
 8. Supervisor tree and the HTTP server

# Configuration

	HTTP_PORT=8080
	LOG_LEVEL=info                 # trace, debug, info, warn, error
	LOG_FORMAT=json                # json or console

	CATALOG_DRIVER=memory          # memory, duckdb, mongo
	DUCKDB_PATH=/data/oscarmatch.duckdb
	MONGO_URI=mongodb://mongo:27017

	REASON_CACHE_DRIVER=memory     # memory, badger, redis, sql
	BADGER_PATH=/data/reasons
	REDIS_ADDR=redis:6379

	TEXTGEN_ENABLED=true
	TEXTGEN_BASE_URL=https://api.openai.com/v1
	TEXTGEN_API_KEY=<key>

	EVENTS_DRIVER=gochannel        # gochannel or nats
	NATS_URL=nats://nats:4222

With TEXTGEN_ENABLED=false every recommendation gets a deterministic
template reason, cached like any other.

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains within
HTTP_SHUTDOWN_TIMEOUT, the events consumer stops, and storage is closed with
a final DuckDB checkpoint.

# Endpoints

	POST /api/v1/smart-match           top three recommendations
	POST /api/v1/smart-match/explain   score breakdown of one movie
	GET  /api/v1/movies                browse nominees
	GET  /api/v1/movies/random         random nominee
	GET  /api/v1/movies/{id}           one movie
	GET  /api/v1/health/live           liveness
	GET  /api/v1/health/ready          catalog reachability
	GET  /metrics                      Prometheus metrics
*/
package main
