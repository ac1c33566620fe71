// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

/*
Package config provides centralized configuration management for Oscarmatch.

Configuration is layered with Koanf v2: built-in defaults, then an optional
YAML file, then environment variables. Only variables listed in the env
mapping table are read, so unrelated variables never leak into the config.

# Configuration Structure

  - ServerConfig: HTTP listener and shutdown
  - SecurityConfig: CORS and rate limiting
  - LoggingConfig: zerolog level and format
  - DatabaseConfig: DuckDB file used by the duckdb catalog and sql reason cache
  - CatalogConfig: movie catalog driver (memory, duckdb, mongo) and seed
  - ReasonCacheConfig: reason cache driver (memory, badger, redis, sql)
  - TextGenConfig: text generation service, rate limit and circuit breaker
  - smartmatch.Config: scoring weights, bonus constants, thresholds, limits
  - EventsConfig: recommendation events over gochannel or NATS

# Environment Variables

Server:
  - HTTP_PORT (default: 8080), HTTP_HOST (default: 0.0.0.0)
  - HTTP_TIMEOUT (default: 30s), HTTP_SHUTDOWN_TIMEOUT (default: 15s)
  - ENVIRONMENT (default: development)

Security:
  - CORS_ORIGINS: comma-separated (default: *)
  - RATE_LIMIT_REQUESTS (default: 60), RATE_LIMIT_WINDOW (default: 1m)
  - DISABLE_RATE_LIMIT (default: false)

Storage:
  - CATALOG_DRIVER (default: memory), CATALOG_SEED_PATH
  - DUCKDB_PATH (default: /data/oscarmatch.duckdb)
  - MONGO_URI, MONGO_DATABASE, MONGO_COLLECTION
  - REASON_CACHE_DRIVER (default: memory), REASON_CACHE_TTL
  - BADGER_PATH, REDIS_ADDR, REDIS_PASSWORD, REDIS_DB

Text generation:
  - TEXTGEN_ENABLED (default: false), TEXTGEN_BASE_URL, TEXTGEN_API_KEY
  - TEXTGEN_MODEL, TEXTGEN_REASON_TIMEOUT (default: 8s)

Events:
  - EVENTS_ENABLED (default: true), EVENTS_DRIVER (default: gochannel)
  - NATS_URL

Example config.yaml:

	catalog:
	  driver: duckdb
	reason_cache:
	  driver: redis
	  ttl: 720h
	  redis:
	    addr: redis:6379
	smartmatch:
	  limits:
	    top_n: 3
*/
package config
