// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

/*
Package api exposes the planner over HTTP using the chi router.

Routes:

	GET  /api/v1/health             liveness, version, catalog size, breaker states
	GET  /api/v1/options            moods, budget tiers, hour bounds
	GET  /api/v1/catalog/stats      entries per category
	GET  /api/v1/geocode?q=         resolve a place name
	POST /api/v1/recommendations    ranked attractions and food
	POST /api/v1/itinerary          ranked sets plus a timed schedule
	GET  /api/v1/debug/performance  latency percentiles per route
	GET  /metrics                   Prometheus

Every response uses the same envelope:

	{
	  "success": true,
	  "data": {...},
	  "error": {"code": "LOCATION_NOT_FOUND", "message": "..."},
	  "meta": {"request_id": "...", "timestamp": "...", "query_time_ms": 3}
	}

Service errors are classified in one place (errors.go):

	planner.ErrInvalidRequest, validation failures  400 VALIDATION_ERROR
	geocode.ErrLocationNotFound                     404 LOCATION_NOT_FOUND
	geocoder or inference failure                   502 UPSTREAM_ERROR
	open circuit breaker                            503 SERVICE_UNAVAILABLE
	request deadline                                504 TIMEOUT
	anything else                                   500 INTERNAL_ERROR

Middleware order: request ID, real IP, recoverer, CORS, then per API
route Prometheus metrics, the optional performance monitor, and on all
routes except health the per-IP rate limit, gzip and request timeout.
*/
package api
