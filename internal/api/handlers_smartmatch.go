// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package api

import (
	"net/http"

	"github.com/tomtom215/oscarmatch/internal/logging"
	"github.com/tomtom215/oscarmatch/internal/models"
)

// SmartMatch handles POST /api/v1/smart-match.
//
// The body is the quiz answer set. The response carries up to three ranked
// recommendations with a match score and a short reason each.
func (h *Handler) SmartMatch(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var prefs models.Preferences
	if err := decodeJSON(w, r, &prefs); err != nil {
		rw.BadRequest(err.Error())
		return
	}
	if !validateRequest(rw, &prefs) {
		return
	}

	result, err := h.matcher.ScoreAndRecommend(r.Context(), &prefs)
	if err != nil {
		logging.Ctx(r.Context()).Info().
			Err(err).
			Str("mood", sanitizeLogValue(prefs.Mood)).
			Str("decade", sanitizeLogValue(prefs.Decade)).
			Str("popularity", sanitizeLogValue(prefs.Popularity)).
			Msg("Smart Match request failed")
		writeServiceError(rw, r, err)
		return
	}

	rw.Success(result)
}

// Explain handles POST /api/v1/smart-match/explain and returns the score
// breakdown of one movie for a preference set.
func (h *Handler) Explain(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req ExplainRequest
	if err := decodeJSON(w, r, &req); err != nil {
		rw.BadRequest(err.Error())
		return
	}
	if !validateRequest(rw, &req) {
		return
	}

	explanation, err := h.matcher.Explain(r.Context(), req.MovieID, &req.Preferences)
	if err != nil {
		writeServiceError(rw, r, err)
		return
	}

	rw.Success(explanation)
}
