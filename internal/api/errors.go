// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/oscarmatch/internal/catalog"
	"github.com/tomtom215/oscarmatch/internal/logging"
	"github.com/tomtom215/oscarmatch/internal/smartmatch"
)

// writeServiceError maps Smart Match and catalog errors onto the envelope.
func writeServiceError(rw *ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, smartmatch.ErrNoCandidates):
		rw.Error(http.StatusNotFound, ErrCodeNoMatches,
			"No movies match the selected decade and popularity. Try relaxing your choices.")
	case errors.Is(err, catalog.ErrNotFound):
		rw.NotFound("Movie not found")
	case errors.Is(err, smartmatch.ErrCatalogUnavailable):
		logging.Ctx(r.Context()).Error().Err(err).Msg("Movie catalog unavailable")
		rw.Error(http.StatusServiceUnavailable, ErrCodeCatalogUnavailable,
			"The movie catalog is temporarily unavailable. Please try again.")
	case errors.Is(err, context.Canceled):
		logging.Ctx(r.Context()).Debug().Msg("Client canceled request")
	default:
		logging.Ctx(r.Context()).Error().Err(err).Msg("Unhandled service error")
		rw.InternalError("An unexpected error occurred")
	}
}
