// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package main

import (
	"net/http"
	"time"

	"github.com/tomtom215/oscarmatch/internal/config"
	"github.com/tomtom215/oscarmatch/internal/logging"
	"github.com/tomtom215/oscarmatch/internal/supervisor"
	"github.com/tomtom215/oscarmatch/internal/supervisor/services"
)

const (
	badgerGCInterval   = 10 * time.Minute
	checkpointInterval = 15 * time.Minute
	idleTimeout        = 60 * time.Second
)

// addServices registers the long-running services on the tree.
func (c *components) addServices(tree *supervisor.SupervisorTree, cfg *config.Config, server *http.Server) {
	if c.badger != nil {
		tree.AddDataService(services.NewPeriodicService(c.badger.RunGC, services.PeriodicConfig{
			Name:     "badger-gc",
			Interval: badgerGCInterval,
		}, logging.WithComponent("badger-gc")))
	}

	if c.db != nil && cfg.Database.Path != "" {
		tree.AddDataService(services.NewPeriodicService(c.db.Checkpoint, services.PeriodicConfig{
			Name:     "duckdb-checkpoint",
			Interval: checkpointInterval,
		}, logging.WithComponent("duckdb-checkpoint")))
	}

	if c.consumer != nil {
		tree.AddMessagingService(c.consumer)
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
}
