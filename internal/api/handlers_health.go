// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/oscarmatch/internal/logging"
)

// HealthLive handles the liveness probe. It reports 200 while the process
// runs, regardless of dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":   true,
		"version": h.version,
		"uptime":  time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles the readiness probe. It returns 503 until the movie
// catalog answers a ping.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	ctx, cancel := context.WithTimeout(r.Context(), h.readyTimeout)
	defer cancel()

	if err := h.catalog.Ping(ctx); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Readiness check failed: catalog unreachable")
		rw.ErrorWithDetails(http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Service not ready",
			map[string]interface{}{"catalog": "unreachable"})
		return
	}

	rw.Success(map[string]interface{}{
		"ready":   true,
		"catalog": "ok",
	})
}
