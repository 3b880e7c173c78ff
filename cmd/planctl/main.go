// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

// Command planctl runs recommendations and itineraries against a local
// catalog without starting the HTTP server.
//
//	planctl plan --lat 23.03 --lng 72.58 --mood Relaxing --budget-tier Moderate --hours 6
//	planctl recommend --place "Kankaria Lake" --hours 3
//	planctl catalog stats
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
