// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

/*
Package supervisor runs the long-lived parts of the server under a suture v4
supervisor tree.

	wanderwise
	├── data-layer
	│   ├── cache-gc   (PeriodicService, only with the badger cache)
	│   └── uptime     (PeriodicService)
	└── api-layer
	    └── http-server (HTTPServerService)

Crashed services are restarted with suture's decaying failure counter and
backoff. Cancelling the context passed to Serve stops every service, each
bounded by TreeConfig.ShutdownTimeout.

Usage in cmd/server:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)

Supervisor events are logged through the sutureslog adapter on the slog
bridge of the logging package, so they share the zerolog output.
*/
package supervisor
