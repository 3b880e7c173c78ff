// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

// Package app wires the catalog, vectorizer, geocoder, inference provider,
// ranker and itinerary builder into a planner.Service from a loaded
// config.Config. Both cmd/server and cmd/planctl start here:
//
//	a, err := app.New(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer a.Close()
//	plan, err := a.Planner.Plan(ctx, req)
//
// The server additionally calls Server and Supervise to run the HTTP API
// and background services under the supervisor tree.
package app
