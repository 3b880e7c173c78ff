// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

package config

import (
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, true},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, true},
		{"unknown environment", func(c *Config) { c.Server.Environment = "prod" }, true},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, true},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, true},
		{"empty log format", func(c *Config) { c.Logging.Format = "" }, false},
		{"rate limit zero", func(c *Config) { c.Security.RateLimitReqs = 0 }, true},
		{"rate limit zero but disabled", func(c *Config) {
			c.Security.RateLimitReqs = 0
			c.Security.RateLimitDisabled = true
		}, false},
		{"missing catalog", func(c *Config) { c.Catalog.Path = "" }, true},
		{"unknown loader", func(c *Config) { c.Catalog.Loader = "sqlite" }, true},
		{"geocoder url with trailing slash", func(c *Config) { c.Geocoder.BaseURL = "https://nominatim.example/" }, true},
		{"geocoder ftp url", func(c *Config) { c.Geocoder.BaseURL = "ftp://nominatim.example" }, true},
		{"blank user agent", func(c *Config) { c.Geocoder.UserAgent = "  " }, true},
		{"zero geocoder rate", func(c *Config) { c.Geocoder.RateLimit = 0 }, true},
		{"breaker ratio above one", func(c *Config) { c.Geocoder.Breaker.FailureRatio = 1.5 }, true},
		{"badger backend", func(c *Config) { c.Cache.Backend = "badger" }, false},
		{"badger without gc interval", func(c *Config) {
			c.Cache.Backend = "badger"
			c.Cache.GCInterval = 0
		}, true},
		{"zero cache ttl", func(c *Config) { c.Cache.TTL = 0 }, true},
		{"unknown provider", func(c *Config) { c.Inference.Provider = "openai" }, true},
		{"remote without url", func(c *Config) { c.Inference.Provider = "remote" }, true},
		{"remote with url", func(c *Config) {
			c.Inference.Provider = "remote"
			c.Inference.RemoteURL = "http://predictor:8000"
		}, false},
		{"zero ranking speed", func(c *Config) { c.Ranking.SpeedKmh = 0 }, true},
		{"bad start time", func(c *Config) { c.Itinerary.StartTime = "10" }, true},
		{"inverted meal window", func(c *Config) { c.Itinerary.MealWindowStartHour = 15 }, true},
		{"default hours out of range", func(c *Config) { c.Planner.DefaultHours = 20 }, true},
		{"max below min", func(c *Config) { c.Planner.MaxHours = 0.5 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestShouldWarnAboutCORS(t *testing.T) {
	cfg := defaultConfig()
	if cfg.ShouldWarnAboutCORS() {
		t.Error("development should not warn")
	}
	cfg.Server.Environment = "production"
	if !cfg.ShouldWarnAboutCORS() {
		t.Error("wildcard in production should warn")
	}
	cfg.Security.CORSOrigins = []string{"https://wanderwise.example"}
	if cfg.ShouldWarnAboutCORS() {
		t.Error("explicit origins should not warn")
	}
}

func TestValidateBaseURL(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://nominatim.openstreetmap.org", false},
		{"http://localhost:8080", false},
		{"http://predictor:8000/ml", false},
		{"http://localhost:8080/", true},
		{"nominatim.openstreetmap.org", true},
		{"ftp://host", true},
		{"https://", true},
		{"https://host?q=1", true},
		{"https://host#top", true},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if err := validateBaseURL(tt.url, "TEST_URL"); (err != nil) != tt.wantErr {
				t.Errorf("validateBaseURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}
