// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package models

import "strings"

// ThematicTag is a genre label weighted by how central it is to the film.
type ThematicTag struct {
	// Tag is the genre label (e.g. "Dramat", "Biografia").
	Tag string `json:"tag" bson:"tag"`

	// Importance is in [0.1, 1.0]; 1.0 means the genre defines the film.
	Importance float64 `json:"importance" bson:"importance"`
}

// Movie is a catalog record of an Academy Award Best Picture nominee.
//
// Nullable TMDB metrics are pointers. A nil value means "no information" and
// must never contribute to a match score.
type Movie struct {
	ID            string `json:"id" bson:"_id"`
	TMDBID        int    `json:"tmdb_id,omitempty" bson:"tmdb_id,omitempty"`
	Title         string `json:"title" bson:"title"`
	OriginalTitle string `json:"original_title,omitempty" bson:"original_title,omitempty"`
	Year          int    `json:"year,omitempty" bson:"year,omitempty"`
	Overview      string `json:"overview,omitempty" bson:"overview,omitempty"`
	PosterPath    string `json:"poster_path,omitempty" bson:"poster_path,omitempty"`

	ThematicTags []ThematicTag `json:"thematic_tags,omitempty" bson:"thematic_tags,omitempty"`
	MoodTags     []string      `json:"mood_tags,omitempty" bson:"mood_tags,omitempty"`

	VoteCount   *int     `json:"vote_count,omitempty" bson:"vote_count,omitempty"`
	VoteAverage *float64 `json:"vote_average,omitempty" bson:"vote_average,omitempty"`
	Popularity  *float64 `json:"popularity,omitempty" bson:"popularity,omitempty"`
	Runtime     *int     `json:"runtime,omitempty" bson:"runtime,omitempty"`

	IsBestPictureWinner  bool `json:"is_best_picture_winner" bson:"is_best_picture_winner"`
	IsBestPictureNominee bool `json:"is_best_picture_nominee" bson:"is_best_picture_nominee"`
	OscarYear            *int `json:"oscar_year,omitempty" bson:"oscar_year,omitempty"`
}

// HasTags reports whether the movie carries both thematic and mood tags.
// Movies without either cannot be scored meaningfully.
func (m *Movie) HasTags() bool {
	return len(m.ThematicTags) > 0 && len(m.MoodTags) > 0
}

// TagImportance returns the importance of the given thematic tag.
// The comparison ignores case and surrounding whitespace.
func (m *Movie) TagImportance(tag string) (float64, bool) {
	want := strings.TrimSpace(tag)
	for _, t := range m.ThematicTags {
		if strings.EqualFold(strings.TrimSpace(t.Tag), want) {
			return t.Importance, true
		}
	}
	return 0, false
}

// HasMood reports whether the movie is tagged with the given mood display string.
func (m *Movie) HasMood(mood string) bool {
	for _, tag := range m.MoodTags {
		if tag == mood {
			return true
		}
	}
	return false
}

// VoteCountValue returns the vote count, or zero when unknown.
func (m *Movie) VoteCountValue() int {
	if m.VoteCount == nil {
		return 0
	}
	return *m.VoteCount
}

// Rating returns vote_average and whether it is known.
func (m *Movie) Rating() (float64, bool) {
	if m.VoteAverage == nil {
		return 0, false
	}
	return *m.VoteAverage, true
}

// IntPtr returns a pointer to v. Used when building fixtures and seed data.
func IntPtr(v int) *int { return &v }

// Float64Ptr returns a pointer to v.
func Float64Ptr(v float64) *float64 { return &v }
