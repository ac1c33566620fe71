// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

/*
Package events carries RecommendationServed events from the Smart Match
pipeline to background consumers over Watermill.

Two transports are supported:

  - gochannel: in-process pub/sub, the default for a single instance
  - nats: core NATS through watermill-nats, for several instances sharing
    one consumer group

Publisher implements smartmatch.Publisher. Consumer runs a Watermill router
as a supervised service and turns every event into the
smartmatch_recommended_movies_total counter.

Topic: smartmatch.recommended
*/
package events
