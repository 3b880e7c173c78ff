// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

// Package itinerary turns ranked attractions and food into a timed,
// single-day schedule using a greedy nearest-next walk from the origin,
// with one optional meal break around lunchtime.
package itinerary
