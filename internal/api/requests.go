// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package api

import (
	"net/http"
	"strconv"

	"github.com/tomtom215/oscarmatch/internal/catalog"
	"github.com/tomtom215/oscarmatch/internal/models"
)

// ExplainRequest asks for the score breakdown of one movie.
type ExplainRequest struct {
	MovieID     string             `json:"movieId" validate:"required,max=128"`
	Preferences models.Preferences `json:"preferences"`
}

// BrowseRequest holds the query parameters of GET /api/v1/movies.
type BrowseRequest struct {
	Decade  string `json:"decade" validate:"omitempty,oneof=2000s 2010s both"`
	Mood    string `json:"mood" validate:"omitempty,oneof=inspiration adrenaline deep-emotion humor ambitious romantic"`
	Winners bool   `json:"winners"`
	Limit   int    `json:"limit" validate:"min=0,max=100"`
	Offset  int    `json:"offset" validate:"min=0,max=100000"`
}

// RandomRequest holds the query parameters of GET /api/v1/movies/random.
type RandomRequest struct {
	Decade string `json:"decade" validate:"omitempty,oneof=2000s 2010s both"`
}

func parseBrowseRequest(r *http.Request) BrowseRequest {
	q := r.URL.Query()
	winners, _ := strconv.ParseBool(q.Get("winners"))
	return BrowseRequest{
		Decade:  q.Get("decade"),
		Mood:    q.Get("mood"),
		Winners: winners,
		Limit:   getIntParam(r, "limit", catalog.DefaultBrowseLimit),
		Offset:  getIntParam(r, "offset", 0),
	}
}

// Filter converts the request into a catalog browse filter.
func (b *BrowseRequest) Filter() catalog.BrowseFilter {
	f := catalog.BrowseFilter{
		Filter:      catalog.FilterForDecade(b.Decade),
		WinnersOnly: b.Winners,
		Limit:       b.Limit,
		Offset:      b.Offset,
	}
	if label, ok := models.MoodLabel(b.Mood); ok {
		f.Mood = label
	}
	return f.Normalize()
}
