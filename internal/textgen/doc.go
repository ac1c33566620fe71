// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

// Package textgen is the client for the external text generation service
// that writes recommendation reasons. Client speaks the OpenAI-compatible
// chat completions protocol with an optional outbound rate limit, and
// BreakerClient adds a gobreaker circuit breaker in front of it.
package textgen
