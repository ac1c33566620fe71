// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

/*
Package reason writes the "why this movie" sentence shown with each Smart
Match recommendation.

Generator asks the text generation service for one or two Polish sentences.
Responses of ten characters or fewer, errors and timeouts all produce the
deterministic Fallback sentence instead, so a reason is always returned.

Resolver puts the reason cache in front of the generator: hits are returned
as-is, misses are generated and successful generations are stored.
*/
package reason
