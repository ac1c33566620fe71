// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/oscarmatch/internal/smartmatch"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/oscarmatch/config.yaml",
	"/etc/oscarmatch/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config with every default applied. Defaults are
// loaded first, then overridden by the config file and the environment.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			Environment:     "development",
		},
		Security: SecurityConfig{
			RateLimitReqs:   60,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
			TrustedProxies:  []string{},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Database: DatabaseConfig{
			Path:      "/data/oscarmatch.duckdb",
			MaxMemory: "512MB",
		},
		Catalog: CatalogConfig{
			Driver:        CatalogMemory,
			SeedOnStartup: true,
			QueryTimeout:  5 * time.Second,
			Mongo: MongoConfig{
				Database:       "oscarmatch",
				Collection:     "movies",
				ConnectTimeout: 10 * time.Second,
			},
		},
		ReasonCache: ReasonCacheConfig{
			Driver: ReasonCacheMemory,
			Redis: RedisConfig{
				Addr:        "localhost:6379",
				Prefix:      "oscarmatch:reason:",
				DialTimeout: 5 * time.Second,
			},
		},
		TextGen: TextGenConfig{
			Enabled:           false,
			BaseURL:           "https://api.openai.com/v1",
			Model:             "gpt-4o-mini",
			Timeout:           10 * time.Second,
			ReasonTimeout:     8 * time.Second,
			MaxOutputTokens:   100,
			Temperature:       0.7,
			RequestsPerSecond: 5,
			Burst:             5,
			Breaker: BreakerConfig{
				MaxRequests:  2,
				Interval:     time.Minute,
				Timeout:      30 * time.Second,
				MinRequests:  5,
				FailureRatio: 0.6,
			},
		},
		SmartMatch: *smartmatch.DefaultConfig(),
		Events: EventsConfig{
			Enabled:         true,
			Driver:          EventsGoChannel,
			NATSURL:         "nats://127.0.0.1:4222",
			QueueGroup:      "oscarmatch",
			RetryMaxRetries: 3,
			CloseTimeout:    10 * time.Second,
		},
	}
}

// LoadWithKoanf loads configuration with Koanf v2.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns CONFIG_PATH if it exists, else the first existing
// default path, else "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths are split on commas when set from the environment.
var sliceConfigPaths = []string{
	"security.cors_origins",
	"security.trusted_proxies",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps lower-cased environment variable names to config keys.
// Unmapped variables are ignored.
var envMappings = map[string]string{
	"http_port":             "server.port",
	"http_host":             "server.host",
	"http_timeout":          "server.timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"environment":           "server.environment",

	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",
	"trusted_proxies":     "security.trusted_proxies",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	"duckdb_path":       "database.path",
	"duckdb_max_memory": "database.max_memory",
	"duckdb_threads":    "database.threads",

	"catalog_driver":          "catalog.driver",
	"catalog_seed_path":       "catalog.seed_path",
	"catalog_seed_on_startup": "catalog.seed_on_startup",
	"catalog_query_timeout":   "catalog.query_timeout",
	"mongo_uri":               "catalog.mongo.uri",
	"mongo_database":          "catalog.mongo.database",
	"mongo_collection":        "catalog.mongo.collection",
	"mongo_connect_timeout":   "catalog.mongo.connect_timeout",

	"reason_cache_driver": "reason_cache.driver",
	"reason_cache_ttl":    "reason_cache.ttl",
	"badger_path":         "reason_cache.badger_path",
	"redis_addr":          "reason_cache.redis.addr",
	"redis_password":      "reason_cache.redis.password",
	"redis_db":            "reason_cache.redis.db",
	"redis_prefix":        "reason_cache.redis.prefix",

	"textgen_enabled":             "textgen.enabled",
	"textgen_base_url":            "textgen.base_url",
	"textgen_api_key":             "textgen.api_key",
	"textgen_model":               "textgen.model",
	"textgen_timeout":             "textgen.timeout",
	"textgen_reason_timeout":      "textgen.reason_timeout",
	"textgen_max_output_tokens":   "textgen.max_output_tokens",
	"textgen_temperature":         "textgen.temperature",
	"textgen_requests_per_second": "textgen.requests_per_second",
	"textgen_burst":               "textgen.burst",

	"smartmatch_top_n":           "smartmatch.limits.top_n",
	"smartmatch_scoring_workers": "smartmatch.limits.scoring_workers",
	"smartmatch_max_score":       "smartmatch.scoring.max_score",
	"smartmatch_genre_boost":     "smartmatch.scoring.genre_boost",

	"events_enabled":     "events.enabled",
	"events_driver":      "events.driver",
	"nats_url":           "events.nats_url",
	"nats_queue_group":   "events.queue_group",
	"events_max_retries": "events.retry_max_retries",
}

func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	return ""
}
