// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

package config

import (
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in values for every setting
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any mapped setting
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	store, report, err := catalog.Load(ctx, catalog.Options{Path: cfg.Catalog.Path})
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Logging    LoggingConfig    `koanf:"logging"`
	Security   SecurityConfig   `koanf:"security"`
	Catalog    CatalogConfig    `koanf:"catalog"`
	Geocoder   GeocoderConfig   `koanf:"geocoder"`
	Cache      CacheConfig      `koanf:"cache"`
	Inference  InferenceConfig  `koanf:"inference"`
	Ranking    RankingConfig    `koanf:"ranking"`
	Itinerary  ItineraryConfig  `koanf:"itinerary"`
	Planner    PlannerConfig    `koanf:"planner"`
	Supervisor SupervisorConfig `koanf:"supervisor"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`          // Per-request handler timeout
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"` // Graceful shutdown budget
	Environment     string        `koanf:"environment"`      // development, staging or production
}

// LoggingConfig holds logging configuration.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// SecurityConfig holds CORS and rate limiting settings. The API is
// anonymous, so there is no authentication section.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// CatalogConfig describes the location catalog file.
//
// Environment Variables:
//   - CATALOG_PATH: CSV or Parquet file (default: data/places.csv)
//   - CATALOG_LOADER: auto, csv, duckdb (default: auto)
//   - CATALOG_ATTRACTION_ROWS: legacy attraction/food row boundary for files
//     without a category column (default: 523)
//   - CATALOG_CELL_SIZE_KM: spatial index cell size (default: 10)
//   - CATALOG_VECTORIZER_PATH: saved TF-IDF model; fitted on the catalog
//     descriptions at startup when empty
type CatalogConfig struct {
	Path           string  `koanf:"path"`
	Loader         string  `koanf:"loader"`
	AttractionRows int     `koanf:"attraction_rows"`
	CellSizeKm     float64 `koanf:"cell_size_km"`
	VectorizerPath string  `koanf:"vectorizer_path"`
}

// BreakerConfig holds circuit breaker settings shared by outbound clients.
type BreakerConfig struct {
	MaxRequests  uint32        `koanf:"max_requests"`
	Interval     time.Duration `koanf:"interval"`
	Timeout      time.Duration `koanf:"timeout"`
	MinRequests  uint32        `koanf:"min_requests"`
	FailureRatio float64       `koanf:"failure_ratio"`
}

// GeocoderConfig holds Nominatim client settings.
//
// The public Nominatim instance requires an identifying User-Agent and
// allows at most one request per second.
type GeocoderConfig struct {
	BaseURL      string        `koanf:"base_url"`
	UserAgent    string        `koanf:"user_agent"`
	Timeout      time.Duration `koanf:"timeout"`
	RateLimit    float64       `koanf:"rate_limit"`
	CountryCodes string        `koanf:"country_codes"`
	Breaker      BreakerConfig `koanf:"breaker"`
}

// CacheConfig holds geocode cache settings.
type CacheConfig struct {
	// Backend is memory or badger.
	Backend  string        `koanf:"backend"`
	TTL      time.Duration `koanf:"ttl"`
	Capacity int           `koanf:"capacity"`

	// Path is the Badger directory. Empty keeps Badger in memory.
	Path string `koanf:"path"`

	// GCInterval is how often the Badger value log is compacted.
	GCInterval time.Duration `koanf:"gc_interval"`
}

// InferenceConfig selects the mood/budget predictor used when a request
// leaves them out.
type InferenceConfig struct {
	// Provider is none, lexicon or remote.
	Provider      string        `koanf:"provider"`
	DefaultMood   string        `koanf:"default_mood"`
	DefaultTier   string        `koanf:"default_tier"`
	RemoteURL     string        `koanf:"remote_url"`
	RemoteTimeout time.Duration `koanf:"remote_timeout"`
	Breaker       BreakerConfig `koanf:"breaker"`
}

// RankingConfig holds ranker limits and the budget heuristic.
type RankingConfig struct {
	MaxAttractions   int     `koanf:"max_attractions"`
	MaxFood          int     `koanf:"max_food"`
	DwellHr          float64 `koanf:"dwell_hr"`
	SpeedKmh         float64 `koanf:"speed_kmh"`
	RatingCostFactor float64 `koanf:"rating_cost_factor"`
	BudgetSlack      float64 `koanf:"budget_slack"`
}

// ItineraryConfig holds schedule parameters.
type ItineraryConfig struct {
	StartTime           string  `koanf:"start_time"`
	DwellHr             float64 `koanf:"dwell_hr"`
	SpeedKmh            float64 `koanf:"speed_kmh"`
	MealMinSessionHr    float64 `koanf:"meal_min_session_hr"`
	MealWindowStartHour int     `koanf:"meal_window_start_hour"`
	MealWindowEndHour   int     `koanf:"meal_window_end_hour"`
	MealStops           int     `koanf:"meal_stops"`
}

// PlannerConfig holds request defaults.
type PlannerConfig struct {
	DefaultHours float64 `koanf:"default_hours"`
	MinHours     float64 `koanf:"min_hours"`
	MaxHours     float64 `koanf:"max_hours"`
}

// SupervisorConfig mirrors supervisor.TreeConfig.
type SupervisorConfig struct {
	FailureThreshold float64       `koanf:"failure_threshold"`
	FailureDecay     float64       `koanf:"failure_decay"`
	FailureBackoff   time.Duration `koanf:"failure_backoff"`
	ShutdownTimeout  time.Duration `koanf:"shutdown_timeout"`
}

// Load loads configuration with LoadWithKoanf.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
