// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package models

// ReasonSource tells where a recommendation reason came from.
type ReasonSource string

const (
	ReasonFromCache    ReasonSource = "cache"
	ReasonFromLLM      ReasonSource = "llm"
	ReasonFromFallback ReasonSource = "fallback"
)

// MovieRecommendation is one ranked Smart Match result.
type MovieRecommendation struct {
	Movie        Movie        `json:"movie"`
	MatchScore   int          `json:"matchScore"`
	Reason       string       `json:"reason"`
	Rank         int          `json:"rank"`
	ReasonSource ReasonSource `json:"reasonSource,omitempty"`
}

