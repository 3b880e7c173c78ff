// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

/*
Package config loads and validates WanderWise configuration.

# Configuration Sources

Values are layered with Koanf v2, later layers winning:

  - Built-in defaults (defaultConfig)
  - An optional YAML file: $CONFIG_PATH, config.yaml, config.yml,
    /etc/wanderwise/config.yaml
  - Mapped environment variables

Only environment variables listed in the mapping table are read, so
unrelated variables never leak into the configuration.

# Environment Variables

Server:
  - HTTP_HOST, HTTP_PORT (default 0.0.0.0:8501)
  - HTTP_TIMEOUT: per-request timeout (default: 30s)
  - HTTP_SHUTDOWN_TIMEOUT: graceful shutdown budget (default: 10s)
  - ENVIRONMENT: development, staging, production

Catalog:
  - CATALOG_PATH: CSV or Parquet file (default: data/places.csv)
  - CATALOG_LOADER: auto, csv, duckdb
  - CATALOG_ATTRACTION_ROWS: legacy row boundary (default: 523)
  - CATALOG_VECTORIZER_PATH: saved TF-IDF model (optional)

Geocoder:
  - GEOCODER_URL: Nominatim base URL
  - GEOCODER_USER_AGENT: identifying User-Agent (required by Nominatim)
  - GEOCODER_RATE_LIMIT: requests per second (default: 1)
  - GEOCODER_COUNTRY_CODES: optional comma-separated ISO codes

Cache:
  - CACHE_BACKEND: memory or badger
  - CACHE_TTL, CACHE_CAPACITY, CACHE_PATH, CACHE_GC_INTERVAL

Inference:
  - INFERENCE_PROVIDER: none, lexicon, remote (default: lexicon)
  - INFERENCE_URL, INFERENCE_TIMEOUT: remote prediction service

Security:
  - CORS_ORIGINS: comma-separated origins (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Validation

Load returns an error describing the first invalid setting, named by its
environment variable where one exists.
*/
package config
