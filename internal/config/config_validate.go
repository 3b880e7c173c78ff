// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateLogging,
		c.validateSecurity,
		c.validateCatalog,
		c.validateGeocoder,
		c.validateCache,
		c.validateInference,
		c.validateRanking,
		c.validateItinerary,
		c.validatePlanner,
	}
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

// validEnvironments defines the allowed deployment environments
var validEnvironments = map[string]bool{
	"development": true,
	"staging":     true,
	"production":  true,
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if !validEnvironments[c.Server.Environment] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, staging, production")
	}
	return nil
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// Rate limit constants
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// ShouldWarnAboutCORS reports a wildcard origin in production.
func (c *Config) ShouldWarnAboutCORS() bool {
	if !c.IsProduction() {
		return false
	}
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

var validLoaders = map[string]bool{"auto": true, "csv": true, "duckdb": true}

func (c *Config) validateCatalog() error {
	if c.Catalog.Path == "" {
		return fmt.Errorf("CATALOG_PATH is required")
	}
	if !validLoaders[strings.ToLower(c.Catalog.Loader)] {
		return fmt.Errorf("CATALOG_LOADER must be one of: auto, csv, duckdb")
	}
	if c.Catalog.AttractionRows < 0 {
		return fmt.Errorf("CATALOG_ATTRACTION_ROWS must be non-negative")
	}
	if c.Catalog.CellSizeKm < 0 {
		return fmt.Errorf("CATALOG_CELL_SIZE_KM must be non-negative")
	}
	return nil
}

func (c *Config) validateGeocoder() error {
	if err := validateBaseURL(c.Geocoder.BaseURL, "GEOCODER_URL"); err != nil {
		return err
	}
	if strings.TrimSpace(c.Geocoder.UserAgent) == "" {
		return fmt.Errorf("GEOCODER_USER_AGENT is required by the Nominatim usage policy")
	}
	if c.Geocoder.Timeout <= 0 {
		return fmt.Errorf("GEOCODER_TIMEOUT must be positive")
	}
	if c.Geocoder.RateLimit <= 0 {
		return fmt.Errorf("GEOCODER_RATE_LIMIT must be positive")
	}
	return validateBreaker(c.Geocoder.Breaker, "geocoder")
}

func (c *Config) validateCache() error {
	switch c.Cache.Backend {
	case "memory":
		if c.Cache.Capacity <= 0 {
			return fmt.Errorf("CACHE_CAPACITY must be positive")
		}
	case "badger":
		if c.Cache.GCInterval <= 0 {
			return fmt.Errorf("CACHE_GC_INTERVAL must be positive for the badger backend")
		}
	default:
		return fmt.Errorf("CACHE_BACKEND must be one of: memory, badger")
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}
	return nil
}

var validProviders = map[string]bool{"none": true, "lexicon": true, "remote": true}

func (c *Config) validateInference() error {
	if !validProviders[c.Inference.Provider] {
		return fmt.Errorf("INFERENCE_PROVIDER must be one of: none, lexicon, remote")
	}
	if c.Inference.Provider != "remote" {
		return nil
	}
	if c.Inference.RemoteURL == "" {
		return fmt.Errorf("INFERENCE_URL is required when INFERENCE_PROVIDER=remote")
	}
	if err := validateBaseURL(c.Inference.RemoteURL, "INFERENCE_URL"); err != nil {
		return err
	}
	return validateBreaker(c.Inference.Breaker, "inference")
}

func (c *Config) validateRanking() error {
	r := c.Ranking
	if r.MaxAttractions < 0 || r.MaxFood < 0 {
		return fmt.Errorf("ranking limits must be non-negative")
	}
	if r.SpeedKmh <= 0 {
		return fmt.Errorf("ranking.speed_kmh must be positive")
	}
	if r.DwellHr < 0 {
		return fmt.Errorf("ranking.dwell_hr must be non-negative")
	}
	return nil
}

func (c *Config) validateItinerary() error {
	it := c.Itinerary
	if _, err := time.Parse("15:04", it.StartTime); err != nil {
		return fmt.Errorf("ITINERARY_START_TIME must be HH:MM, got %q", it.StartTime)
	}
	if it.DwellHr <= 0 || it.SpeedKmh <= 0 {
		return fmt.Errorf("itinerary dwell_hr and speed_kmh must be positive")
	}
	if it.MealWindowStartHour < 0 || it.MealWindowEndHour > 23 || it.MealWindowStartHour > it.MealWindowEndHour {
		return fmt.Errorf("itinerary meal window [%d,%d] is invalid", it.MealWindowStartHour, it.MealWindowEndHour)
	}
	if it.MealStops < 0 {
		return fmt.Errorf("ITINERARY_MEAL_STOPS must be non-negative")
	}
	return nil
}

func (c *Config) validatePlanner() error {
	p := c.Planner
	if p.MinHours <= 0 || p.MaxHours < p.MinHours {
		return fmt.Errorf("planner hours bounds [%g,%g] are invalid", p.MinHours, p.MaxHours)
	}
	if p.DefaultHours < p.MinHours || p.DefaultHours > p.MaxHours {
		return fmt.Errorf("PLANNER_DEFAULT_HOURS must be between %g and %g", p.MinHours, p.MaxHours)
	}
	return nil
}

func validateBreaker(b BreakerConfig, name string) error {
	if b.Timeout <= 0 {
		return fmt.Errorf("%s breaker timeout must be positive", name)
	}
	if b.FailureRatio <= 0 || b.FailureRatio > 1 {
		return fmt.Errorf("%s breaker failure_ratio must be in (0,1]", name)
	}
	return nil
}
