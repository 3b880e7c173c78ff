// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for:
// - API endpoint latency and throughput
// - Ranking and itinerary building
// - Geocoding and inference upstreams
// - Circuit breakers and caches

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Ranking Metrics
	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_duration_seconds",
			Help:    "Time spent filtering and ranking candidates",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		},
	)

	RecommendCandidates = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_candidates",
			Help:    "Number of ranked candidates returned per request",
			Buckets: []float64{0, 1, 2, 5, 10, 15, 20},
		},
		[]string{"category"},
	)

	RecommendEmpty = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_empty_total",
			Help: "Requests where no catalog entry fit the time budget",
		},
	)

	// Itinerary Metrics
	ItineraryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "itinerary_build_duration_seconds",
			Help:    "Time spent building itineraries",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		},
	)

	ItineraryStops = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "itinerary_stops",
			Help:    "Number of stops per built itinerary",
			Buckets: []float64{0, 1, 2, 3, 4, 6, 8, 10, 12},
		},
	)

	ItineraryMeals = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "itinerary_meal_breaks_total",
			Help: "Itineraries that received a meal break",
		},
	)

	// Geocoding Metrics
	GeocodeRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geocode_requests_total",
			Help: "Geocoding lookups by outcome",
		},
		[]string{"result"}, // "cache_hit", "found", "not_found", "error"
	)

	GeocodeAPICallDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "geocode_api_call_duration_seconds",
			Help:    "Duration of upstream geocoding calls",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	// Inference Metrics
	InferenceRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inference_requests_total",
			Help: "Mood and budget inference calls",
		},
		[]string{"provider", "kind", "result"},
	)

	// Catalog Metrics
	CatalogEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_entries",
			Help: "Number of catalog entries by category",
		},
		[]string{"category"},
	)

	CatalogSkippedRows = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_skipped_rows",
			Help: "Rows skipped during the last catalog load",
		},
	)

	CatalogLoadDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_load_duration_seconds",
			Help: "Duration of the last catalog load",
		},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache"},
	)

	CacheGCRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_gc_runs_total",
			Help: "Value log garbage collection runs",
		},
		[]string{"result"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records one ranking pass.
func RecordRecommendation(duration time.Duration, attractions, food int) {
	RecommendDuration.Observe(duration.Seconds())
	RecommendCandidates.WithLabelValues("attraction").Observe(float64(attractions))
	RecommendCandidates.WithLabelValues("food").Observe(float64(food))
	if attractions == 0 && food == 0 {
		RecommendEmpty.Inc()
	}
}

// RecordItinerary records one built itinerary.
func RecordItinerary(duration time.Duration, stops int, meal bool) {
	ItineraryDuration.Observe(duration.Seconds())
	ItineraryStops.Observe(float64(stops))
	if meal {
		ItineraryMeals.Inc()
	}
}

// RecordGeocode records a geocoding outcome. A zero duration means no
// upstream call was made.
func RecordGeocode(result string, duration time.Duration) {
	GeocodeRequests.WithLabelValues(result).Inc()
	if duration > 0 {
		GeocodeAPICallDuration.Observe(duration.Seconds())
	}
}

// RecordInference records a mood or budget inference call.
func RecordInference(provider, kind string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	InferenceRequests.WithLabelValues(provider, kind, result).Inc()
}

// RecordCacheLookup records a hit or miss for the named cache.
func RecordCacheLookup(cache string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cache).Inc()
	} else {
		CacheMisses.WithLabelValues(cache).Inc()
	}
}

// RecordCacheGC records a cache garbage collection run.
func RecordCacheGC(err error) {
	if err != nil {
		CacheGCRuns.WithLabelValues("error").Inc()
		return
	}
	CacheGCRuns.WithLabelValues("success").Inc()
}

// SetCatalogStats publishes the result of a catalog load.
func SetCatalogStats(attractions, food, skipped int, loadDuration time.Duration) {
	CatalogEntries.WithLabelValues("attraction").Set(float64(attractions))
	CatalogEntries.WithLabelValues("food").Set(float64(food))
	CatalogSkippedRows.Set(float64(skipped))
	CatalogLoadDuration.Set(loadDuration.Seconds())
}

// RecordRateLimitHit counts a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// SetAppInfo publishes the running version.
func SetAppInfo(version, goVersion string) {
	AppInfo.WithLabelValues(version, goVersion).Set(1)
}

// SetUptime publishes the time since start.
func SetUptime(started time.Time) {
	AppUptime.Set(time.Since(started).Seconds())
}
