// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package main

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/oscarmatch/internal/catalog"
	"github.com/tomtom215/oscarmatch/internal/config"
	"github.com/tomtom215/oscarmatch/internal/events"
	"github.com/tomtom215/oscarmatch/internal/models"
	"github.com/tomtom215/oscarmatch/internal/smartmatch"
	"github.com/tomtom215/oscarmatch/internal/supervisor"
)

func testConfig() *config.Config {
	return &config.Config{
		Server:      config.ServerConfig{Host: "127.0.0.1", Port: 0, Timeout: 5 * time.Second, ShutdownTimeout: time.Second},
		Security:    config.SecurityConfig{RateLimitReqs: 100, RateLimitWindow: time.Minute, CORSOrigins: []string{"*"}},
		Catalog:     config.CatalogConfig{Driver: config.CatalogMemory, QueryTimeout: time.Second},
		ReasonCache: config.ReasonCacheConfig{Driver: config.ReasonCacheMemory},
		SmartMatch:  *smartmatch.DefaultConfig(),
		Events:      config.EventsConfig{Driver: config.EventsGoChannel},
	}
}

func testPrefs() *models.Preferences {
	return &models.Preferences{
		Mood:   models.MoodHumor,
		Time:   models.TimeAny,
		Genres: []string{models.GenreSurprise},
	}
}

func TestNeedsDatabase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		catalog string
		cache   string
		want    bool
	}{
		{config.CatalogMemory, config.ReasonCacheMemory, false},
		{config.CatalogMongo, config.ReasonCacheRedis, false},
		{config.CatalogDuckDB, config.ReasonCacheMemory, true},
		{config.CatalogMemory, config.ReasonCacheSQL, true},
	}

	for _, tt := range tests {
		cfg := testConfig()
		cfg.Catalog.Driver = tt.catalog
		cfg.ReasonCache.Driver = tt.cache
		if got := needsDatabase(cfg); got != tt.want {
			t.Errorf("needsDatabase(%s, %s) = %v, want %v", tt.catalog, tt.cache, got, tt.want)
		}
	}
}

func TestGeneratorConfig(t *testing.T) {
	t.Parallel()

	gc := generatorConfig(&config.TextGenConfig{})
	if gc.Timeout != 8*time.Second || gc.MaxOutputTokens != 100 {
		t.Errorf("zero config should keep defaults, got %+v", gc)
	}

	gc = generatorConfig(&config.TextGenConfig{ReasonTimeout: 2 * time.Second, MaxOutputTokens: 60, Temperature: 0.2})
	if gc.Timeout != 2*time.Second || gc.MaxOutputTokens != 60 || gc.Temperature != 0.2 {
		t.Errorf("overrides not applied: %+v", gc)
	}
}

func TestEventOptions(t *testing.T) {
	t.Parallel()

	opts := eventOptions(&config.EventsConfig{
		Driver:          config.EventsNATS,
		NATSURL:         "nats://nats:4222",
		RetryMaxRetries: 7,
	})
	if opts.Driver != events.DriverNATS || opts.NATSURL != "nats://nats:4222" {
		t.Errorf("transport not applied: %+v", opts)
	}
	if opts.RetryMaxRetries != 7 {
		t.Errorf("RetryMaxRetries = %d, want 7", opts.RetryMaxRetries)
	}
	if opts.QueueGroup != "oscarmatch" || opts.CloseTimeout != 10*time.Second {
		t.Errorf("defaults lost: %+v", opts)
	}
}

func TestBuildComponents_Memory(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	comps, err := buildComponents(context.Background(), cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("buildComponents() error = %v", err)
	}
	defer comps.Close()

	if comps.db != nil {
		t.Error("memory drivers should not open DuckDB")
	}
	if comps.consumer != nil {
		t.Error("consumer should be nil when events are disabled")
	}

	res, err := comps.service.ScoreAndRecommend(context.Background(), testPrefs())
	if err != nil {
		t.Fatalf("ScoreAndRecommend() error = %v", err)
	}
	if len(res.Recommendations) != cfg.SmartMatch.Limits.TopN {
		t.Fatalf("got %d recommendations, want %d", len(res.Recommendations), cfg.SmartMatch.Limits.TopN)
	}
	for _, rec := range res.Recommendations {
		if rec.ReasonSource != models.ReasonFromFallback {
			t.Errorf("%s: reason source = %q, want fallback with text generation disabled", rec.Movie.ID, rec.ReasonSource)
		}
		if rec.Reason == "" {
			t.Errorf("%s: empty reason", rec.Movie.ID)
		}
	}
}

func TestBuildComponents_DuckDBAndEvents(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Catalog.Driver = config.CatalogDuckDB
	cfg.Catalog.SeedOnStartup = true
	cfg.ReasonCache.Driver = config.ReasonCacheSQL
	cfg.Events.Enabled = true

	comps, err := buildComponents(context.Background(), cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("buildComponents() error = %v", err)
	}
	defer comps.Close()

	if comps.db == nil || comps.consumer == nil || comps.publisher == nil {
		t.Fatalf("expected database and events to be wired: %+v", comps)
	}

	movies, err := comps.catalog.ListNominees(context.Background(), catalog.Filter{})
	if err != nil {
		t.Fatalf("ListNominees() error = %v", err)
	}
	if len(movies) == 0 {
		t.Fatal("seeded catalog is empty")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- comps.consumer.Serve(ctx) }()

	select {
	case <-comps.consumer.Ready():
	case <-time.After(5 * time.Second):
		t.Fatal("consumer not ready")
	}

	if _, err := comps.service.ScoreAndRecommend(ctx, testPrefs()); err != nil {
		t.Fatalf("ScoreAndRecommend() error = %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for comps.consumer.Stats().Processed == 0 {
		if time.Now().After(deadline) {
			t.Fatal("recommendation event was not consumed")
		}
		time.Sleep(10 * time.Millisecond)
	}

	cancel()
	<-done
}

func TestAddServices(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Events.Enabled = true
	comps, err := buildComponents(context.Background(), cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("buildComponents() error = %v", err)
	}
	defer comps.Close()

	tree, err := supervisor.NewSupervisorTree(slog.New(slog.NewTextHandler(io.Discard, nil)), supervisor.TreeConfig{ShutdownTimeout: time.Second})
	if err != nil {
		t.Fatalf("NewSupervisorTree() error = %v", err)
	}
	server := newHTTPServer(cfg, comps)
	if server.Addr != "127.0.0.1:0" {
		t.Errorf("Addr = %q", server.Addr)
	}
	comps.addServices(tree, cfg, server)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	select {
	case <-comps.consumer.Ready():
	case <-time.After(5 * time.Second):
		t.Fatal("consumer was not started by the tree")
	}

	cancel()
	select {
	case <-errCh:
	case <-time.After(5 * time.Second):
		t.Fatal("tree did not stop")
	}
}
