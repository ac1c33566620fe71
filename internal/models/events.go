// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package models

import "time"

// RecommendationServed is emitted after every successful Smart Match request.
type RecommendationServed struct {
	EventID         string              `json:"event_id"`
	RequestID       string              `json:"request_id,omitempty"`
	PreferencesHash string              `json:"preferences_hash"`
	TotalAnalyzed   int                 `json:"total_analyzed"`
	Movies          []ServedRecommended `json:"movies"`
	ServedAt        time.Time           `json:"served_at"`
}

// ServedRecommended is one movie inside a RecommendationServed event.
type ServedRecommended struct {
	MovieID      string       `json:"movie_id"`
	Rank         int          `json:"rank"`
	MatchScore   int          `json:"match_score"`
	ReasonSource ReasonSource `json:"reason_source"`
}
