// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/tomtom215/oscarmatch/internal/api"
	"github.com/tomtom215/oscarmatch/internal/config"
	"github.com/tomtom215/oscarmatch/internal/logging"
	"github.com/tomtom215/oscarmatch/internal/metrics"
	"github.com/tomtom215/oscarmatch/internal/supervisor"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Version:   version,
	})
	metrics.SetAppInfo(version)

	logging.Info().
		Str("version", version).
		Str("catalog", cfg.Catalog.Driver).
		Str("reason_cache", cfg.ReasonCache.Driver).
		Bool("textgen", cfg.TextGen.Enabled).
		Bool("events", cfg.Events.Enabled).
		Msg("Starting Oscarmatch")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		stop()
		logging.Fatal().Err(err).Msg("Server failed")
	}
	logging.Info().Msg("Application stopped gracefully")
}

// run builds the components, serves until ctx is canceled and releases
// everything on the way out.
func run(ctx context.Context, cfg *config.Config) error {
	comps, err := buildComponents(ctx, cfg, logging.Logger())
	if err != nil {
		return err
	}
	defer func() {
		if err := comps.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing components")
		}
	}()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	server := newHTTPServer(cfg, comps)
	comps.addServices(tree, cfg, server)
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}
	return nil
}

func newHTTPServer(cfg *config.Config, comps *components) *http.Server {
	handler := api.NewHandler(comps.service, comps.catalog, version)
	router := api.NewRouter(handler, api.ChiMiddlewareConfigFromSecurity(&cfg.Security))

	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: cfg.Server.Timeout,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       idleTimeout,
	}
}
