// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package config

import (
	"time"

	"github.com/tomtom215/oscarmatch/internal/smartmatch"
)

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: built-in values for every setting
//  2. Config File: optional YAML file (config.yaml, or CONFIG_PATH)
//  3. Environment Variables: mapped variables override everything
//
// Config is immutable after Load() and safe for concurrent reads.
type Config struct {
	Server      ServerConfig      `koanf:"server"`
	Security    SecurityConfig    `koanf:"security"`
	Logging     LoggingConfig     `koanf:"logging"`
	Database    DatabaseConfig    `koanf:"database"`
	Catalog     CatalogConfig     `koanf:"catalog"`
	ReasonCache ReasonCacheConfig `koanf:"reason_cache"`
	TextGen     TextGenConfig     `koanf:"textgen"`
	SmartMatch  smartmatch.Config `koanf:"smartmatch"`
	Events      EventsConfig      `koanf:"events"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// Environment is "development", "staging" or "production".
	Environment string `koanf:"environment"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	TrustedProxies    []string      `koanf:"trusted_proxies"`
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// DatabaseConfig holds DuckDB settings. The DuckDB file backs the duckdb
// catalog driver and the sql reason cache driver.
type DatabaseConfig struct {
	// Path is the database file. Empty opens an in-memory database.
	Path      string `koanf:"path"`
	MaxMemory string `koanf:"max_memory"`

	// Threads is the number of DuckDB threads (0 = NumCPU).
	Threads int `koanf:"threads"`
}

// Catalog drivers.
const (
	CatalogMemory = "memory"
	CatalogDuckDB = "duckdb"
	CatalogMongo  = "mongo"
)

// CatalogConfig selects and configures the movie catalog.
type CatalogConfig struct {
	// Driver is memory, duckdb or mongo.
	Driver string `koanf:"driver"`

	// SeedPath is a JSON file of movies. Empty uses the built-in nominee list.
	SeedPath string `koanf:"seed_path"`

	// SeedOnStartup imports the seed into duckdb or mongo at startup.
	// The memory driver always loads the seed.
	SeedOnStartup bool `koanf:"seed_on_startup"`

	QueryTimeout time.Duration `koanf:"query_timeout"`

	Mongo MongoConfig `koanf:"mongo"`
}

// MongoConfig holds MongoDB catalog settings.
type MongoConfig struct {
	URI            string        `koanf:"uri"`
	Database       string        `koanf:"database"`
	Collection     string        `koanf:"collection"`
	ConnectTimeout time.Duration `koanf:"connect_timeout"`
}

// Reason cache drivers.
const (
	ReasonCacheMemory = "memory"
	ReasonCacheBadger = "badger"
	ReasonCacheRedis  = "redis"
	ReasonCacheSQL    = "sql"
)

// ReasonCacheConfig selects and configures the reason cache store.
type ReasonCacheConfig struct {
	// Driver is memory, badger, redis or sql.
	Driver string `koanf:"driver"`

	// TTL expires entries in badger and redis. Zero keeps them forever.
	TTL time.Duration `koanf:"ttl"`

	// BadgerPath is the badger directory. Empty runs badger in memory.
	BadgerPath string `koanf:"badger_path"`

	Redis RedisConfig `koanf:"redis"`
}

// RedisConfig holds Redis reason cache settings.
type RedisConfig struct {
	Addr        string        `koanf:"addr"`
	Password    string        `koanf:"password"`
	DB          int           `koanf:"db"`
	Prefix      string        `koanf:"prefix"`
	DialTimeout time.Duration `koanf:"dial_timeout"`
}

// TextGenConfig configures the external text generation service used for
// recommendation reasons.
type TextGenConfig struct {
	// Enabled turns on LLM reasons. When false every reason is the fallback.
	Enabled bool `koanf:"enabled"`

	BaseURL string `koanf:"base_url"`
	APIKey  string `koanf:"api_key"`
	Model   string `koanf:"model"`

	// Timeout bounds one HTTP request.
	Timeout time.Duration `koanf:"timeout"`

	// ReasonTimeout bounds one reason generation including rate limiting.
	ReasonTimeout time.Duration `koanf:"reason_timeout"`

	MaxOutputTokens int     `koanf:"max_output_tokens"`
	Temperature     float64 `koanf:"temperature"`

	RequestsPerSecond float64 `koanf:"requests_per_second"`
	Burst             int     `koanf:"burst"`

	Breaker BreakerConfig `koanf:"breaker"`
}

// BreakerConfig holds circuit breaker settings.
type BreakerConfig struct {
	MaxRequests  uint32        `koanf:"max_requests"`
	Interval     time.Duration `koanf:"interval"`
	Timeout      time.Duration `koanf:"timeout"`
	MinRequests  uint32        `koanf:"min_requests"`
	FailureRatio float64       `koanf:"failure_ratio"`
}

// Event transport drivers.
const (
	EventsGoChannel = "gochannel"
	EventsNATS      = "nats"
)

// EventsConfig configures recommendation event delivery.
type EventsConfig struct {
	Enabled bool `koanf:"enabled"`

	// Driver is gochannel or nats.
	Driver     string `koanf:"driver"`
	NATSURL    string `koanf:"nats_url"`
	QueueGroup string `koanf:"queue_group"`

	RetryMaxRetries int           `koanf:"retry_max_retries"`
	CloseTimeout    time.Duration `koanf:"close_timeout"`
}

// Load reads configuration from defaults, the optional config file and the
// environment, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
