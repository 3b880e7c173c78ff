// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

/*
Package metrics provides Prometheus metrics collection and export.

All collectors are registered on the default registry through promauto and
are exposed at /metrics:

	curl http://localhost:8080/metrics

# Available Metrics

HTTP Metrics:
  - api_requests_total: requests by method, endpoint and status_code
  - api_request_duration_seconds: latency histogram by method and endpoint
  - api_active_requests: in-flight requests
  - api_rate_limit_hits_total: rejections by endpoint

Planning Metrics:
  - recommend_duration_seconds: filter and rank time
  - recommend_candidates: ranked candidates per request by category
  - recommend_empty_total: requests where nothing fit the time budget
  - itinerary_build_duration_seconds, itinerary_stops
  - itinerary_meal_breaks_total

Upstream Metrics:
  - geocode_requests_total: lookups by result (cache_hit, found, not_found, error)
  - geocode_api_call_duration_seconds
  - inference_requests_total: by provider, kind (mood, budget) and result

Catalog Metrics:
  - catalog_entries: entries by category
  - catalog_skipped_rows, catalog_load_duration_seconds

Cache Metrics:
  - cache_hits_total, cache_misses_total: by cache name
  - cache_gc_runs_total: badger value log GC runs by result

Circuit Breaker Metrics:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total: by name and result (success, failure, rejected)
  - circuit_breaker_consecutive_failures
  - circuit_breaker_state_transitions_total

System Metrics:
  - app_info: version and go_version labels
  - app_uptime_seconds

# Usage

Record helpers keep label values consistent:

	start := time.Now()
	result := ranker.Recommend(query)
	metrics.RecordRecommendation(time.Since(start), len(result.Attractions), len(result.Food))
*/
package metrics
