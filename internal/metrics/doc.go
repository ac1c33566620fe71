// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

// Package metrics defines the Prometheus collectors of the service.
//
// Collectors are registered on the default registry through promauto and
// exposed by the API at /metrics. Components record through the Record*
// helpers rather than touching collectors directly:
//
//	metrics.RecordSmartMatch(metrics.OutcomeSuccess, len(candidates), time.Since(start))
//	metrics.RecordReasonCacheLookup(hit)
//
// Metric families:
//
//	smartmatch_*            pipeline outcomes, latency, candidate counts, served movies
//	reason_cache_*          hit/miss/error counters of the reason cache
//	reason_generation_total generated reasons by source (llm, fallback)
//	textgen_*               latency of text generation calls
//	circuit_breaker_*       state of outbound circuit breakers
//	catalog_*               movie catalog query latency and errors
//	events_published_total  domain event publishing
//	api_*                   HTTP request metrics
package metrics
