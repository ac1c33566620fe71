// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordSmartMatch(t *testing.T) {
	before := testutil.ToFloat64(SmartMatchRequests.WithLabelValues(OutcomeNoMatches))

	RecordSmartMatch(OutcomeNoMatches, 0, 5*time.Millisecond)

	after := testutil.ToFloat64(SmartMatchRequests.WithLabelValues(OutcomeNoMatches))
	if after != before+1 {
		t.Errorf("smartmatch_requests_total{no_matches} = %v, want %v", after, before+1)
	}
}

func TestRecordReasonCacheLookup(t *testing.T) {
	hits := testutil.ToFloat64(ReasonCacheHits)
	misses := testutil.ToFloat64(ReasonCacheMisses)

	RecordReasonCacheLookup(true)
	RecordReasonCacheLookup(false)
	RecordReasonCacheLookup(false)

	if got := testutil.ToFloat64(ReasonCacheHits); got != hits+1 {
		t.Errorf("hits = %v, want %v", got, hits+1)
	}
	if got := testutil.ToFloat64(ReasonCacheMisses); got != misses+2 {
		t.Errorf("misses = %v, want %v", got, misses+2)
	}
}

func TestRecordCatalogQuery(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantDelta float64
	}{
		{"success does not count an error", nil, 0},
		{"failure counts an error", errors.New("connection refused"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := CatalogQueryErrors.WithLabelValues("memory", "list_nominees")
			before := testutil.ToFloat64(counter)

			RecordCatalogQuery("memory", "list_nominees", time.Millisecond, tt.err)

			if got := testutil.ToFloat64(counter) - before; got != tt.wantDelta {
				t.Errorf("error delta = %v, want %v", got, tt.wantDelta)
			}
		})
	}
}

func TestRecordEventPublish(t *testing.T) {
	ok := EventsPublished.WithLabelValues("smartmatch.recommended", "success")
	failed := EventsPublished.WithLabelValues("smartmatch.recommended", "error")
	okBefore, failedBefore := testutil.ToFloat64(ok), testutil.ToFloat64(failed)

	RecordEventPublish("smartmatch.recommended", nil)
	RecordEventPublish("smartmatch.recommended", errors.New("closed"))

	if testutil.ToFloat64(ok) != okBefore+1 || testutil.ToFloat64(failed) != failedBefore+1 {
		t.Error("expected one success and one error to be recorded")
	}
}

func TestRecordRecommendedMovie(t *testing.T) {
	c := SmartMatchRecommendedMovies.WithLabelValues("movie-1")
	before := testutil.ToFloat64(c)

	RecordRecommendedMovie("movie-1")

	if got := testutil.ToFloat64(c); got != before+1 {
		t.Errorf("recommended movies = %v, want %v", got, before+1)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("active requests = %v, want %v", got, before)
	}
}
