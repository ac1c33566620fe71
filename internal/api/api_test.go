// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package api

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/oscarmatch/internal/catalog"
	"github.com/tomtom215/oscarmatch/internal/models"
	"github.com/tomtom215/oscarmatch/internal/smartmatch"
)

type fakeMatcher struct {
	result      *smartmatch.Result
	explanation *smartmatch.Explanation
	err         error

	gotPrefs  *models.Preferences
	gotMovies []string
}

func (f *fakeMatcher) ScoreAndRecommend(_ context.Context, prefs *models.Preferences) (*smartmatch.Result, error) {
	f.gotPrefs = prefs
	return f.result, f.err
}

func (f *fakeMatcher) Explain(_ context.Context, movieID string, prefs *models.Preferences) (*smartmatch.Explanation, error) {
	f.gotPrefs = prefs
	f.gotMovies = append(f.gotMovies, movieID)
	return f.explanation, f.err
}

type brokenCatalog struct{ catalog.Catalog }

var errStoreDown = errors.New("connection refused")

func (brokenCatalog) Get(context.Context, string) (*models.Movie, error) { return nil, errStoreDown }
func (brokenCatalog) Random(context.Context, catalog.Filter) (*models.Movie, error) {
	return nil, errStoreDown
}
func (brokenCatalog) Browse(context.Context, catalog.BrowseFilter) ([]models.Movie, error) {
	return nil, errStoreDown
}
func (brokenCatalog) Ping(context.Context) error { return errStoreDown }

func movie(id string, oscarYear int, winner bool, mood string) models.Movie {
	return models.Movie{
		ID:                   id,
		Title:                "Movie " + id,
		OscarYear:            models.IntPtr(oscarYear),
		VoteCount:            models.IntPtr(10000),
		IsBestPictureNominee: true,
		IsBestPictureWinner:  winner,
		ThematicTags:         []models.ThematicTag{{Tag: "Dramat", Importance: 0.8}},
		MoodTags:             []string{mood},
	}
}

func testCatalog() *catalog.Memory {
	return catalog.NewMemory([]models.Movie{
		movie("m2003", 2003, true, "Inspiracja"),
		movie("m2008", 2008, false, "Humor"),
		movie("m2012", 2012, false, "Humor"),
		movie("m2019", 2019, true, "Adrenalina"),
	})
}

func newTestServer(m SmartMatcher, cat catalog.Catalog, mw *ChiMiddlewareConfig) http.Handler {
	if mw == nil {
		mw = DefaultChiMiddlewareConfig()
		mw.RateLimitDisabled = true
	}
	return NewRouter(NewHandler(m, cat, "test"), mw).SetupChi()
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
	Meta    *APIMeta        `json:"meta"`
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode envelope: %v (body %q)", err, rec.Body.String())
		}
	}
	return rec, env
}

func TestSmartMatch_Success(t *testing.T) {
	t.Parallel()

	matcher := &fakeMatcher{result: &smartmatch.Result{
		Success:       true,
		TotalAnalyzed: 7,
		Recommendations: []models.MovieRecommendation{
			{Movie: movie("m2012", 2012, false, "Humor"), MatchScore: 91, Rank: 1, Reason: "Świetny wybór."},
		},
	}}
	h := newTestServer(matcher, testCatalog(), nil)

	rec, env := do(t, h, http.MethodPost, "/api/v1/smart-match",
		`{"mood":"humor","time":"normal","genres":["Komedia"],"decade":"2010s"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if !env.Success || env.Meta == nil || env.Meta.RequestID == "" {
		t.Errorf("envelope = %+v", env)
	}
	if rec.Header().Get("X-Request-ID") != env.Meta.RequestID {
		t.Error("X-Request-ID header does not match meta.request_id")
	}

	var result smartmatch.Result
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if result.TotalAnalyzed != 7 || len(result.Recommendations) != 1 || result.Recommendations[0].MatchScore != 91 {
		t.Errorf("result = %+v", result)
	}
	if matcher.gotPrefs == nil || matcher.gotPrefs.Decade != models.Decade2010s {
		t.Errorf("matcher got %+v", matcher.gotPrefs)
	}
}

func TestSmartMatch_Errors(t *testing.T) {
	t.Parallel()

	valid := `{"mood":"humor","time":"normal","genres":["surprise"]}`

	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "empty body", body: "", wantStatus: http.StatusBadRequest, wantCode: ErrCodeBadRequest},
		{name: "malformed json", body: `{"mood":`, wantStatus: http.StatusBadRequest, wantCode: ErrCodeBadRequest},
		{name: "unknown field", body: `{"mood":"humor","time":"any","colour":"red"}`, wantStatus: http.StatusBadRequest, wantCode: ErrCodeBadRequest},
		{name: "unknown mood", body: `{"mood":"sleepy","time":"any"}`, wantStatus: http.StatusBadRequest, wantCode: ErrCodeValidationFailed},
		{name: "too many genres", body: `{"mood":"humor","time":"any","genres":["a","b","c","d"]}`, wantStatus: http.StatusBadRequest, wantCode: ErrCodeValidationFailed},
		{name: "surprise not alone", body: `{"mood":"humor","time":"any","genres":["surprise","Dramat"]}`, wantStatus: http.StatusBadRequest, wantCode: ErrCodeValidationFailed},
		{name: "no candidates", body: valid, err: smartmatch.ErrNoCandidates, wantStatus: http.StatusNotFound, wantCode: ErrCodeNoMatches},
		{name: "catalog down", body: valid, err: errors.Join(smartmatch.ErrCatalogUnavailable, errStoreDown), wantStatus: http.StatusServiceUnavailable, wantCode: ErrCodeCatalogUnavailable},
		{name: "unexpected", body: valid, err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newTestServer(&fakeMatcher{err: tt.err}, testCatalog(), nil)
			rec, env := do(t, h, http.MethodPost, "/api/v1/smart-match", tt.body)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if env.Success || env.Error == nil || env.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want code %s", env.Error, tt.wantCode)
			}
		})
	}
}

func TestSmartMatch_EndToEnd(t *testing.T) {
	t.Parallel()

	cat := testCatalog()
	svc, err := smartmatch.NewService(nil, cat, staticResolver{}, zerologNop())
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	h := newTestServer(svc, cat, nil)

	rec, env := do(t, h, http.MethodPost, "/api/v1/smart-match",
		`{"mood":"humor","time":"any","genres":["Dramat"],"decade":"2010s"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var result smartmatch.Result
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if result.TotalAnalyzed != 2 || len(result.Recommendations) != 2 {
		t.Fatalf("result = %+v", result)
	}
	if result.Recommendations[0].Movie.ID != "m2012" || result.Recommendations[0].Rank != 1 {
		t.Errorf("first = %s rank %d, want m2012 rank 1", result.Recommendations[0].Movie.ID, result.Recommendations[0].Rank)
	}
}

func TestExplain(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		matcher := &fakeMatcher{explanation: &smartmatch.Explanation{Eligible: true}}
		h := newTestServer(matcher, testCatalog(), nil)

		rec, env := do(t, h, http.MethodPost, "/api/v1/smart-match/explain",
			`{"movieId":"m2012","preferences":{"mood":"humor","time":"any"}}`)
		if rec.Code != http.StatusOK || !env.Success {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
		if len(matcher.gotMovies) != 1 || matcher.gotMovies[0] != "m2012" {
			t.Errorf("Explain called with %v", matcher.gotMovies)
		}
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		h := newTestServer(&fakeMatcher{err: catalog.ErrNotFound}, testCatalog(), nil)
		rec, env := do(t, h, http.MethodPost, "/api/v1/smart-match/explain",
			`{"movieId":"nope","preferences":{"mood":"humor","time":"any"}}`)
		if rec.Code != http.StatusNotFound || env.Error.Code != ErrCodeNotFound {
			t.Errorf("status = %d, error = %+v", rec.Code, env.Error)
		}
	})

	t.Run("missing movie id", func(t *testing.T) {
		t.Parallel()
		h := newTestServer(&fakeMatcher{}, testCatalog(), nil)
		rec, env := do(t, h, http.MethodPost, "/api/v1/smart-match/explain",
			`{"preferences":{"mood":"humor","time":"any"}}`)
		if rec.Code != http.StatusBadRequest || env.Error.Code != ErrCodeValidationFailed {
			t.Errorf("status = %d, error = %+v", rec.Code, env.Error)
		}
	})

	t.Run("nested preferences validated", func(t *testing.T) {
		t.Parallel()
		h := newTestServer(&fakeMatcher{}, testCatalog(), nil)
		rec, _ := do(t, h, http.MethodPost, "/api/v1/smart-match/explain",
			`{"movieId":"m2012","preferences":{"mood":"humor","time":"eternity"}}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}

func TestMovies(t *testing.T) {
	t.Parallel()

	h := newTestServer(&fakeMatcher{}, testCatalog(), nil)

	t.Run("get", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, http.MethodGet, "/api/v1/movies/m2008", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		var m models.Movie
		if err := json.Unmarshal(env.Data, &m); err != nil || m.ID != "m2008" {
			t.Errorf("movie = %+v, err = %v", m, err)
		}
	})

	t.Run("get missing", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, http.MethodGet, "/api/v1/movies/unknown", "")
		if rec.Code != http.StatusNotFound || env.Error.Code != ErrCodeNotFound {
			t.Errorf("status = %d, error = %+v", rec.Code, env.Error)
		}
	})

	t.Run("browse by decade and mood", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, http.MethodGet, "/api/v1/movies?decade=2000s&mood=humor", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		var movies []models.Movie
		if err := json.Unmarshal(env.Data, &movies); err != nil {
			t.Fatal(err)
		}
		if len(movies) != 1 || movies[0].ID != "m2008" {
			t.Errorf("movies = %v", movies)
		}
		if p := env.Meta.Pagination; p == nil || p.Count != 1 || p.Limit != catalog.DefaultBrowseLimit || p.HasMore {
			t.Errorf("pagination = %+v", env.Meta.Pagination)
		}
	})

	t.Run("browse winners newest first", func(t *testing.T) {
		t.Parallel()
		_, env := do(t, h, http.MethodGet, "/api/v1/movies?winners=true&limit=1", "")
		var movies []models.Movie
		if err := json.Unmarshal(env.Data, &movies); err != nil {
			t.Fatal(err)
		}
		if len(movies) != 1 || movies[0].ID != "m2019" {
			t.Errorf("movies = %v", movies)
		}
		if !env.Meta.Pagination.HasMore {
			t.Error("HasMore = false, want true")
		}
	})

	t.Run("browse invalid mood", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, http.MethodGet, "/api/v1/movies?mood=grumpy", "")
		if rec.Code != http.StatusBadRequest || env.Error.Code != ErrCodeValidationFailed {
			t.Errorf("status = %d, error = %+v", rec.Code, env.Error)
		}
	})

	t.Run("random in decade", func(t *testing.T) {
		t.Parallel()
		for i := 0; i < 10; i++ {
			_, env := do(t, h, http.MethodGet, "/api/v1/movies/random?decade=2010s", "")
			var m models.Movie
			if err := json.Unmarshal(env.Data, &m); err != nil {
				t.Fatal(err)
			}
			if m.ID != "m2012" && m.ID != "m2019" {
				t.Fatalf("random picked %s outside 2010s", m.ID)
			}
		}
	})

	t.Run("random invalid decade", func(t *testing.T) {
		t.Parallel()
		rec, _ := do(t, h, http.MethodGet, "/api/v1/movies/random?decade=1990s", "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}

func TestMovies_CatalogUnavailable(t *testing.T) {
	t.Parallel()

	h := newTestServer(&fakeMatcher{}, brokenCatalog{}, nil)
	for _, path := range []string{"/api/v1/movies", "/api/v1/movies/random", "/api/v1/movies/m1"} {
		rec, env := do(t, h, http.MethodGet, path, "")
		if rec.Code != http.StatusServiceUnavailable || env.Error.Code != ErrCodeCatalogUnavailable {
			t.Errorf("%s: status = %d, error = %+v", path, rec.Code, env.Error)
		}
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	healthy := newTestServer(&fakeMatcher{}, testCatalog(), nil)
	broken := newTestServer(&fakeMatcher{}, brokenCatalog{}, nil)

	tests := []struct {
		name       string
		h          http.Handler
		path       string
		wantStatus int
	}{
		{"live", healthy, "/api/v1/health/live", http.StatusOK},
		{"live with broken catalog", broken, "/api/v1/health/live", http.StatusOK},
		{"ready", healthy, "/api/v1/health/ready", http.StatusOK},
		{"not ready", broken, "/api/v1/health/ready", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec, _ := do(t, tt.h, http.MethodGet, tt.path, "")
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestRouter_Fallbacks(t *testing.T) {
	t.Parallel()

	h := newTestServer(&fakeMatcher{}, testCatalog(), nil)

	rec, env := do(t, h, http.MethodGet, "/api/v2/nothing", "")
	if rec.Code != http.StatusNotFound || env.Error == nil || env.Error.Code != ErrCodeNotFound {
		t.Errorf("unknown route: status = %d, error = %+v", rec.Code, env.Error)
	}

	rec, _ = do(t, h, http.MethodGet, "/api/v1/smart-match", "")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET smart-match: status = %d, want 405", rec.Code)
	}

	rec, _ = do(t, h, http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "api_requests_total") {
		t.Errorf("/metrics: status = %d", rec.Code)
	}
}

func TestRouter_SecurityHeaders(t *testing.T) {
	t.Parallel()

	h := newTestServer(&fakeMatcher{}, testCatalog(), nil)
	rec, _ := do(t, h, http.MethodGet, "/api/v1/movies", "")

	for header, want := range map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Cache-Control":          "no-store",
	} {
		if got := rec.Header().Get(header); got != want {
			t.Errorf("%s = %q, want %q", header, got, want)
		}
	}
}

func TestRouter_RateLimit(t *testing.T) {
	t.Parallel()

	mw := DefaultChiMiddlewareConfig()
	mw.RateLimitRequests = 2
	h := newTestServer(&fakeMatcher{}, testCatalog(), mw)

	for i := 0; i < 2; i++ {
		if rec, _ := do(t, h, http.MethodGet, "/api/v1/movies", ""); rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d", i, rec.Code)
		}
	}

	rec, env := do(t, h, http.MethodGet, "/api/v1/movies", "")
	if rec.Code != http.StatusTooManyRequests || env.Error == nil || env.Error.Code != ErrCodeTooManyRequests {
		t.Errorf("status = %d, error = %+v", rec.Code, env.Error)
	}

	// Health probes use their own budget.
	if rec, _ := do(t, h, http.MethodGet, "/api/v1/health/live", ""); rec.Code != http.StatusOK {
		t.Errorf("health status = %d", rec.Code)
	}
}

func TestRouter_CORS(t *testing.T) {
	t.Parallel()

	mw := DefaultChiMiddlewareConfig()
	mw.CORSAllowedOrigins = []string{"https://oscary.example"}
	mw.RateLimitDisabled = true
	h := newTestServer(&fakeMatcher{}, testCatalog(), mw)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/smart-match", nil)
	req.Header.Set("Origin", "https://oscary.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://oscary.example" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}
