// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

// Package logging provides the zerolog-based structured logger used across WanderWise.
//
// A single global logger is configured once from main via Init. Packages log
// through the level helpers or, inside request handling, through Ctx so that
// the request ID assigned by the HTTP middleware is attached to every line.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Int("locations", n).Msg("Catalog loaded")
//	logging.Ctx(ctx).Warn().Err(err).Msg("Geocoder unavailable")
//
// # Components
//
// Long-lived components take a child logger tagged with their name:
//
//	logger := logging.WithComponent("geocoder")
//
// # Supervisor Integration
//
// The suture supervisor tree expects an *slog.Logger. NewSlogLogger returns
// one that writes through zerolog, so supervisor events share the same sink
// and format as the rest of the application.
//
// # Configuration
//
// Environment variables (mapped by the config package):
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: include caller file:line (default: false)
package logging
