// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

/*
Package middleware provides the HTTP middleware used by the API router.

  - RequestID: propagates or generates X-Request-ID and stores it for logging
  - PrometheusMetrics: request counters, latency histograms, in-flight gauge
  - Compression: gzip for clients that accept it
  - PerformanceMonitor: sliding window of request latencies per route

RequestID, PrometheusMetrics and Compression are http.HandlerFunc wrappers;
the router adapts them to chi's func(http.Handler) http.Handler form.
PerformanceMonitor.Middleware is already in chi form.

Metrics and performance samples are labeled by chi route pattern, e.g.
"/api/v1/itinerary", never by raw path, so label cardinality is fixed by
the route table.
*/
package middleware
