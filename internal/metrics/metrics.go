// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Smart Match outcomes.
const (
	OutcomeSuccess     = "success"
	OutcomeNoMatches   = "no_matches"
	OutcomeUnavailable = "catalog_unavailable"
)

var (
	// Smart Match pipeline
	SmartMatchRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smartmatch_requests_total",
			Help: "Total number of Smart Match requests by outcome",
		},
		[]string{"outcome"}, // success, no_matches, catalog_unavailable
	)

	SmartMatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "smartmatch_request_duration_seconds",
			Help:    "End-to-end Smart Match duration in seconds, reasons included",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 4, 8, 16},
		},
	)

	SmartMatchCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "smartmatch_candidates",
			Help:    "Number of candidates scored per Smart Match request",
			Buckets: []float64{0, 1, 3, 5, 10, 25, 50, 100, 250, 600},
		},
	)

	SmartMatchRecommendedMovies = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smartmatch_recommended_movies_total",
			Help: "Number of times a movie was served as a Smart Match recommendation",
		},
		[]string{"movie_id"},
	)

	// Reason cache
	ReasonCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reason_cache_hits_total",
			Help: "Total number of reason cache hits",
		},
	)

	ReasonCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reason_cache_misses_total",
			Help: "Total number of reason cache misses",
		},
	)

	ReasonCacheErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reason_cache_errors_total",
			Help: "Total number of reason cache store failures",
		},
		[]string{"op"}, // get, put, touch
	)

	// Reason generation
	ReasonGenerations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reason_generation_total",
			Help: "Total number of generated reasons by source",
		},
		[]string{"source"}, // llm, fallback
	)

	TextGenDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "textgen_request_duration_seconds",
			Help:    "Duration of text generation calls in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 4, 8, 16},
		},
		[]string{"result"}, // success, error
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // success, failure, rejected
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Catalog
	CatalogQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_query_duration_seconds",
			Help:    "Duration of movie catalog queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"driver", "operation"},
	)

	CatalogQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_query_errors_total",
			Help: "Total number of movie catalog query errors",
		},
		[]string{"driver", "operation"},
	)

	// Events
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_published_total",
			Help: "Total number of published domain events",
		},
		[]string{"topic", "result"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordSmartMatch records one Smart Match request.
func RecordSmartMatch(outcome string, candidates int, duration time.Duration) {
	SmartMatchRequests.WithLabelValues(outcome).Inc()
	SmartMatchDuration.Observe(duration.Seconds())
	if outcome == OutcomeSuccess {
		SmartMatchCandidates.Observe(float64(candidates))
	}
}

// RecordRecommendedMovie counts one served recommendation of a movie.
func RecordRecommendedMovie(movieID string) {
	SmartMatchRecommendedMovies.WithLabelValues(movieID).Inc()
}

// RecordReasonCacheLookup records a reason cache hit or miss.
func RecordReasonCacheLookup(hit bool) {
	if hit {
		ReasonCacheHits.Inc()
	} else {
		ReasonCacheMisses.Inc()
	}
}

// RecordReasonCacheError records a failed store operation ("get" or "put").
func RecordReasonCacheError(op string) {
	ReasonCacheErrors.WithLabelValues(op).Inc()
}

// RecordReasonGenerated records the source of a resolved reason.
func RecordReasonGenerated(source string) {
	ReasonGenerations.WithLabelValues(source).Inc()
}

// RecordTextGen records one call to the text generation service.
func RecordTextGen(duration time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	TextGenDuration.WithLabelValues(result).Observe(duration.Seconds())
}

// RecordCatalogQuery records a catalog query and its error, if any.
func RecordCatalogQuery(driver, operation string, duration time.Duration, err error) {
	CatalogQueryDuration.WithLabelValues(driver, operation).Observe(duration.Seconds())
	if err != nil {
		CatalogQueryErrors.WithLabelValues(driver, operation).Inc()
	}
}

// RecordEventPublish records a publish attempt.
func RecordEventPublish(topic string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	EventsPublished.WithLabelValues(topic, result).Inc()
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// SetAppInfo publishes the build version.
func SetAppInfo(version string) {
	AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
}

// RecordRateLimitHit counts a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}
