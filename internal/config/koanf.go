// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/wanderwise/config.yaml",
	"/etc/wanderwise/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8501,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Security: SecurityConfig{
			RateLimitReqs:     60,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Catalog: CatalogConfig{
			Path:           "data/places.csv",
			Loader:         "auto",
			AttractionRows: 523,
			CellSizeKm:     10,
		},
		Geocoder: GeocoderConfig{
			BaseURL:   "https://nominatim.openstreetmap.org",
			UserAgent: "wanderwise/1.0 (+https://github.com/tomtom215/wanderwise)",
			Timeout:   10 * time.Second,
			RateLimit: 1,
			Breaker:   defaultBreaker(),
		},
		Cache: CacheConfig{
			Backend:    "memory",
			TTL:        24 * time.Hour,
			Capacity:   10000,
			GCInterval: 10 * time.Minute,
		},
		Inference: InferenceConfig{
			Provider:      "lexicon",
			DefaultMood:   "Relaxing",
			DefaultTier:   "Regular",
			RemoteTimeout: 5 * time.Second,
			Breaker:       defaultBreaker(),
		},
		Ranking: RankingConfig{
			MaxAttractions:   20,
			MaxFood:          10,
			DwellHr:          1,
			SpeedKmh:         30,
			RatingCostFactor: 100,
			BudgetSlack:      200,
		},
		Itinerary: ItineraryConfig{
			StartTime:           "10:00",
			DwellHr:             1,
			SpeedKmh:            30,
			MealMinSessionHr:    4,
			MealWindowStartHour: 12,
			MealWindowEndHour:   14,
			MealStops:           2,
		},
		Planner: PlannerConfig{
			DefaultHours: 4,
			MinHours:     1,
			MaxHours:     12,
		},
		Supervisor: SupervisorConfig{
			FailureThreshold: 5,
			FailureDecay:     30,
			FailureBackoff:   15 * time.Second,
			ShutdownTimeout:  10 * time.Second,
		},
	}
}

func defaultBreaker() BreakerConfig {
	return BreakerConfig{
		MaxRequests:  3,
		Interval:     time.Minute,
		Timeout:      2 * time.Minute,
		MinRequests:  10,
		FailureRatio: 0.6,
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any mapped setting
func LoadWithKoanf() (*Config, error) {
	return loadFrom(findConfigFile())
}

// LoadFile loads configuration from an explicit YAML file plus environment
// overrides. An empty path behaves like LoadWithKoanf.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return LoadWithKoanf()
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return loadFrom(path)
}

func loadFrom(configPath string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Environment variables (highest priority)
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars arrive as strings, but the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to koanf paths.
var envMappings = map[string]string{
	// Server
	"http_port":             "server.port",
	"http_host":             "server.host",
	"http_timeout":          "server.timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"environment":           "server.environment",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Security
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",

	// Catalog
	"catalog_path":            "catalog.path",
	"catalog_loader":          "catalog.loader",
	"catalog_attraction_rows": "catalog.attraction_rows",
	"catalog_cell_size_km":    "catalog.cell_size_km",
	"catalog_vectorizer_path": "catalog.vectorizer_path",

	// Geocoder
	"geocoder_url":             "geocoder.base_url",
	"geocoder_user_agent":      "geocoder.user_agent",
	"geocoder_timeout":         "geocoder.timeout",
	"geocoder_rate_limit":      "geocoder.rate_limit",
	"geocoder_country_codes":   "geocoder.country_codes",
	"geocoder_breaker_timeout": "geocoder.breaker.timeout",

	// Cache
	"cache_backend":     "cache.backend",
	"cache_ttl":         "cache.ttl",
	"cache_capacity":    "cache.capacity",
	"cache_path":        "cache.path",
	"cache_gc_interval": "cache.gc_interval",

	// Inference
	"inference_provider":        "inference.provider",
	"inference_default_mood":    "inference.default_mood",
	"inference_default_tier":    "inference.default_tier",
	"inference_url":             "inference.remote_url",
	"inference_timeout":         "inference.remote_timeout",
	"inference_breaker_timeout": "inference.breaker.timeout",

	// Ranking
	"ranking_max_attractions": "ranking.max_attractions",
	"ranking_max_food":        "ranking.max_food",
	"ranking_budget_slack":    "ranking.budget_slack",

	// Itinerary
	"itinerary_start_time": "itinerary.start_time",
	"itinerary_meal_stops": "itinerary.meal_stops",

	// Planner
	"planner_default_hours": "planner.default_hours",
	"planner_max_hours":     "planner.max_hours",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - CATALOG_PATH -> catalog.path
//   - GEOCODER_URL -> geocoder.base_url
//   - CACHE_BACKEND -> cache.backend
func envTransformFunc(key string) string {
	// Unmapped keys return "" so unrelated variables never reach the config.
	return envMappings[strings.ToLower(key)]
}
