// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

/*
Package models defines the data structures shared by the catalog, the Smart
Match pipeline, the reason cache and the HTTP API.

Key Components:

  - Movie: catalog record of a Best Picture nominee with thematic and mood tags
  - Preferences: the five quiz answers, with Normalize, Signature and Hash
  - MovieRecommendation: one ranked result with its reason and reason source
  - RecommendationServed: event published after each successful request

Nullable TMDB metrics (vote_count, vote_average, popularity, runtime,
oscar_year) are pointers. A nil value means unknown and never adds to a
match score.

Preference hashing:

	prefs := models.Preferences{Mood: "humor", Time: "any", Genres: []string{"Komedia", "Dramat"}}
	key := prefs.Hash() // same for Genres in any order, decade "" or "both"

Quiz identifiers map to the Polish display strings stored in the catalog
through MoodLabel, TimeLabel, DecadeLabel and PopularityLabel.
*/
package models
