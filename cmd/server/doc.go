// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

/*
Package main is the entry point for the WanderWise server.

WanderWise recommends nearby attractions and restaurants that match a
traveller's mood, budget and available time, and turns them into a timed
one-day itinerary with an optional meal break.

# Application Architecture

The server runs under a Suture v4 supervisor tree:

	RootSupervisor ("wanderwise")
	├── DataSupervisor ("data-layer")
	│   ├── Uptime gauge
	│   └── Badger cache GC (CACHE_BACKEND=badger only)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog with JSON/console output modes
 3. Catalog: CSV or Parquet file loaded into an immutable spatial index
 4. Vectorizer: TF-IDF fitted on catalog descriptions, or loaded from disk
 5. Geocoder: Nominatim client with cache, rate limit and circuit breaker
 6. Inference: lexicon or remote mood/budget predictor
 7. Supervisor Tree and HTTP Server: Chi router with middleware stack

# Configuration

Priority: Environment variables > Config file > Defaults

	HTTP_PORT=8501               # HTTP server port
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console
	CATALOG_PATH=data/places.csv # CSV or Parquet catalog
	CATALOG_LOADER=auto          # auto, csv, duckdb
	GEOCODER_URL=https://nominatim.openstreetmap.org
	CACHE_BACKEND=memory         # memory or badger
	CACHE_PATH=/var/lib/wanderwise/geocache
	INFERENCE_PROVIDER=lexicon   # none, lexicon, remote
	INFERENCE_URL=http://predictor:8000
	CORS_ORIGINS=https://app.example.com

See internal/config for the full list.

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server stops accepting
connections and drains in-flight requests within HTTP_SHUTDOWN_TIMEOUT, then
the geocode cache is closed.
*/
package main
