// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

/*
Package api exposes Smart Match and the movie catalog over HTTP.

Routes:

	GET  /api/v1/health/live          liveness probe
	GET  /api/v1/health/ready         readiness probe (catalog ping)
	POST /api/v1/smart-match          ranked recommendations for a quiz answer set
	POST /api/v1/smart-match/explain  score breakdown of one movie
	GET  /api/v1/movies               decade and mood browse (decade, mood, winners, limit, offset)
	GET  /api/v1/movies/random        random nominee (decade)
	GET  /api/v1/movies/{id}          one movie
	GET  /metrics                     Prometheus metrics

Every response uses the envelope

	{"success": true, "data": {...}, "meta": {"request_id": "...", "timestamp": "..."}}
	{"success": false, "error": {"code": "NO_MATCHES", "message": "..."}, "meta": {...}}

Error codes specific to Smart Match:

	NO_MATCHES           404  no movie survived the decade and popularity filters
	CATALOG_UNAVAILABLE  503  the movie catalog failed; retryable
	VALIDATION_ERROR     400  the request body failed validation
*/
package api
