// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/oscarmatch/internal/catalog"
	"github.com/tomtom215/oscarmatch/internal/smartmatch"
)

// catalogError marks non-lookup catalog failures as unavailable so that
// writeServiceError maps them to CATALOG_UNAVAILABLE.
func catalogError(err error) error {
	if errors.Is(err, catalog.ErrNotFound) {
		return err
	}
	return fmt.Errorf("%w: %w", smartmatch.ErrCatalogUnavailable, err)
}

// RandomMovie handles GET /api/v1/movies/random?decade=.
func (h *Handler) RandomMovie(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req := RandomRequest{Decade: r.URL.Query().Get("decade")}
	if !validateRequest(rw, &req) {
		return
	}

	movie, err := h.catalog.Random(r.Context(), catalog.FilterForDecade(req.Decade))
	if err != nil {
		writeServiceError(rw, r, catalogError(err))
		return
	}

	rw.Success(movie)
}

// BrowseMovies handles GET /api/v1/movies for the decade and mood views.
func (h *Handler) BrowseMovies(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req := parseBrowseRequest(r)
	if !validateRequest(rw, &req) {
		return
	}

	filter := req.Filter()
	movies, err := h.catalog.Browse(r.Context(), filter)
	if err != nil {
		writeServiceError(rw, r, catalogError(err))
		return
	}

	rw.SuccessWithPagination(movies, &PaginationMeta{
		Count:   len(movies),
		Offset:  filter.Offset,
		Limit:   filter.Limit,
		HasMore: len(movies) == filter.Limit,
	})
}

// GetMovie handles GET /api/v1/movies/{id}.
func (h *Handler) GetMovie(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id := chi.URLParam(r, "id")
	if id == "" || len(id) > 128 {
		rw.BadRequest("invalid movie id")
		return
	}

	movie, err := h.catalog.Get(r.Context(), id)
	if err != nil {
		writeServiceError(rw, r, catalogError(err))
		return
	}

	rw.Success(movie)
}
