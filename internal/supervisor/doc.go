// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

/*
Package supervisor runs the server's long-lived services under suture v4.

The tree isolates failures by layer:

	RootSupervisor ("oscarmatch")
	├── DataSupervisor ("data-layer")
	│   ├── badger-gc          (reason_cache.driver=badger)
	│   └── duckdb-checkpoint  (DuckDB opened)
	├── MessagingSupervisor ("messaging-layer")
	│   └── events-consumer    (events.enabled)
	└── APISupervisor ("api-layer")
	    └── http-server

Supervisor events (restarts, backoff, timeouts) are logged through
sutureslog into the application's zerolog logger.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	tree.AddMessagingService(consumer)
	return tree.Serve(ctx)

Services must return ctx.Err() when ctx is canceled. Any other return
counts as a failure and triggers a restart.
*/
package supervisor
