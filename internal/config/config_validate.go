// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks that required configuration is present and valid.
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateSecurity,
		c.validateLogging,
		c.validateCatalog,
		c.validateReasonCache,
		c.validateTextGen,
		c.validateEvents,
	}
	for _, v := range validators {
		if err := v(); err != nil {
			return err
		}
	}

	if err := c.SmartMatch.Validate(); err != nil {
		return fmt.Errorf("smartmatch: %w", err)
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

// validateSecurity validates CORS and rate limiting.
func (c *Config) validateSecurity() error {
	if c.hasWildcardCORS() && len(c.Security.CORSOrigins) > 1 {
		return fmt.Errorf("CORS_ORIGINS cannot mix * with explicit origins")
	}
	return c.validateRateLimits()
}

// hasWildcardCORS checks if CORS is configured with wildcard origins
func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// ShouldWarnAboutCORS reports whether wildcard CORS is in use in production.
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.hasWildcardCORS() && c.IsProduction()
}

// Rate limit constants
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Environment, "production")
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

func (c *Config) validateCatalog() error {
	switch c.Catalog.Driver {
	case CatalogMemory, CatalogDuckDB:
	case CatalogMongo:
		if c.Catalog.Mongo.URI == "" {
			return fmt.Errorf("MONGO_URI is required when CATALOG_DRIVER=mongo")
		}
		if err := validateMongoURI(c.Catalog.Mongo.URI); err != nil {
			return fmt.Errorf("MONGO_URI is invalid: %w", err)
		}
	default:
		return fmt.Errorf("CATALOG_DRIVER must be one of: memory, duckdb, mongo")
	}
	if c.Catalog.QueryTimeout < 0 {
		return fmt.Errorf("CATALOG_QUERY_TIMEOUT must not be negative")
	}
	return nil
}

func (c *Config) validateReasonCache() error {
	switch c.ReasonCache.Driver {
	case ReasonCacheMemory, ReasonCacheBadger, ReasonCacheSQL:
	case ReasonCacheRedis:
		if c.ReasonCache.Redis.Addr == "" {
			return fmt.Errorf("REDIS_ADDR is required when REASON_CACHE_DRIVER=redis")
		}
	default:
		return fmt.Errorf("REASON_CACHE_DRIVER must be one of: memory, badger, redis, sql")
	}
	if c.ReasonCache.TTL < 0 {
		return fmt.Errorf("REASON_CACHE_TTL must not be negative")
	}
	return nil
}

func (c *Config) validateTextGen() error {
	if c.TextGen.ReasonTimeout <= 0 {
		return fmt.Errorf("TEXTGEN_REASON_TIMEOUT must be positive")
	}
	if !c.TextGen.Enabled {
		return nil
	}

	if err := validateHTTPURL(c.TextGen.BaseURL, "TEXTGEN_BASE_URL"); err != nil {
		return err
	}
	if c.TextGen.APIKey == "" {
		return fmt.Errorf("TEXTGEN_API_KEY is required when TEXTGEN_ENABLED=true")
	}
	if containsPlaceholder(c.TextGen.APIKey) {
		return fmt.Errorf("TEXTGEN_API_KEY contains a placeholder value")
	}
	if c.TextGen.Model == "" {
		return fmt.Errorf("TEXTGEN_MODEL is required when TEXTGEN_ENABLED=true")
	}
	if c.TextGen.RequestsPerSecond < 0 {
		return fmt.Errorf("TEXTGEN_REQUESTS_PER_SECOND must not be negative")
	}
	if r := c.TextGen.Breaker.FailureRatio; r <= 0 || r > 1 {
		return fmt.Errorf("textgen.breaker.failure_ratio must be in (0, 1], got %f", r)
	}
	return nil
}

func (c *Config) validateEvents() error {
	if !c.Events.Enabled {
		return nil
	}
	switch c.Events.Driver {
	case EventsGoChannel:
	case EventsNATS:
		if err := validateNATSURL(c.Events.NATSURL); err != nil {
			return fmt.Errorf("NATS_URL is invalid: %w", err)
		}
	default:
		return fmt.Errorf("EVENTS_DRIVER must be one of: gochannel, nats")
	}
	return nil
}

// placeholderPatterns indicate a value copied from an example file.
var placeholderPatterns = []string{
	"REPLACE",
	"CHANGEME",
	"CHANGE_ME",
	"YOUR_API_KEY",
	"PLACEHOLDER",
	"EXAMPLE",
}

func containsPlaceholder(value string) bool {
	upper := strings.ToUpper(value)
	for _, pattern := range placeholderPatterns {
		if strings.Contains(upper, pattern) {
			return true
		}
	}
	return false
}
