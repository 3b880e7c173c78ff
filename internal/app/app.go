// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/wanderwise/internal/api"
	"github.com/tomtom215/wanderwise/internal/breaker"
	"github.com/tomtom215/wanderwise/internal/cache"
	"github.com/tomtom215/wanderwise/internal/catalog"
	"github.com/tomtom215/wanderwise/internal/config"
	"github.com/tomtom215/wanderwise/internal/geocode"
	"github.com/tomtom215/wanderwise/internal/inference"
	"github.com/tomtom215/wanderwise/internal/itinerary"
	"github.com/tomtom215/wanderwise/internal/logging"
	"github.com/tomtom215/wanderwise/internal/metrics"
	"github.com/tomtom215/wanderwise/internal/middleware"
	"github.com/tomtom215/wanderwise/internal/models"
	"github.com/tomtom215/wanderwise/internal/planner"
	"github.com/tomtom215/wanderwise/internal/recommend"
	"github.com/tomtom215/wanderwise/internal/supervisor"
	"github.com/tomtom215/wanderwise/internal/supervisor/services"
	"github.com/tomtom215/wanderwise/internal/textsim"
)

// Performance monitor settings for the debug endpoint.
const (
	perfSamples       = 1000
	perfSlowThreshold = time.Second
	uptimeInterval    = 15 * time.Second
)

// App holds the components built from a Config.
type App struct {
	Config   *config.Config
	Catalog  *catalog.Store
	Report   catalog.Report
	Cache    cache.Store
	Geocoder *geocode.Nominatim
	Planner  *planner.Service

	logger zerolog.Logger
}

// New loads the catalog and builds the planner with its collaborators.
// Close releases the cache when the App is no longer needed.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.WithComponent("app")

	store, report, err := catalog.Load(ctx, catalog.Options{
		Path:           cfg.Catalog.Path,
		Loader:         cfg.Catalog.Loader,
		AttractionRows: cfg.Catalog.AttractionRows,
		CellSizeKm:     cfg.Catalog.CellSizeKm,
	})
	if err != nil {
		return nil, err
	}
	stats := store.Stats()
	metrics.SetCatalogStats(stats.Attractions, stats.Food, report.Skipped, report.Duration)
	logger.Info().
		Str("path", cfg.Catalog.Path).
		Str("loader", report.Loader).
		Int("attractions", stats.Attractions).
		Int("food", stats.Food).
		Int("skipped", report.Skipped).
		Dur("duration", report.Duration).
		Msg("Catalog loaded")

	vec, err := loadVectorizer(cfg.Catalog.VectorizerPath, store)
	if err != nil {
		return nil, err
	}
	logger.Debug().Int("vocabulary", vec.VocabularySize()).Msg("Vectorizer ready")

	ranker, err := recommend.NewRanker(rankerConfig(cfg), store, vec, logging.WithComponent("recommend"))
	if err != nil {
		return nil, fmt.Errorf("create ranker: %w", err)
	}
	builder, err := itinerary.NewBuilder(builderConfig(cfg), logging.WithComponent("itinerary"))
	if err != nil {
		return nil, fmt.Errorf("create itinerary builder: %w", err)
	}

	geoCache, err := cache.New(cache.Config{
		Backend:  cfg.Cache.Backend,
		TTL:      cfg.Cache.TTL,
		Capacity: cfg.Cache.Capacity,
		Path:     cfg.Cache.Path,
	})
	if err != nil {
		return nil, fmt.Errorf("create geocode cache: %w", err)
	}

	geocoder := geocode.NewNominatim(geocode.Config{
		BaseURL:      cfg.Geocoder.BaseURL,
		UserAgent:    cfg.Geocoder.UserAgent,
		Timeout:      cfg.Geocoder.Timeout,
		RateLimit:    cfg.Geocoder.RateLimit,
		CountryCodes: cfg.Geocoder.CountryCodes,
		CacheTTL:     cfg.Cache.TTL,
		Breaker:      breakerConfig(cfg.Geocoder.Breaker),
	}, geoCache)

	resolver, err := newResolver(cfg)
	if err != nil {
		_ = geoCache.Close()
		return nil, err
	}

	svc := planner.New(planner.Config{
		DefaultHours: cfg.Planner.DefaultHours,
		MinHours:     cfg.Planner.MinHours,
		MaxHours:     cfg.Planner.MaxHours,
	}, geocoder, resolver, ranker, builder)

	return &App{
		Config:   cfg,
		Catalog:  store,
		Report:   report,
		Cache:    geoCache,
		Geocoder: geocoder,
		Planner:  svc,
		logger:   logger,
	}, nil
}

// Close releases the geocode cache.
func (a *App) Close() error {
	if a.Cache == nil {
		return nil
	}
	return a.Cache.Close()
}

// Handler builds the HTTP handler tree.
func (a *App) Handler(version string) http.Handler {
	cfg := a.Config

	h := api.NewHandler(a.Planner, a.Catalog, a.Geocoder)
	h.SetVersion(version)
	h.AddDependency("geocoder", a.Geocoder.BreakerState)

	mwCfg := api.DefaultChiMiddlewareConfig()
	mwCfg.CORSAllowedOrigins = cfg.Security.CORSOrigins
	mwCfg.RateLimitRequests = cfg.Security.RateLimitReqs
	mwCfg.RateLimitWindow = cfg.Security.RateLimitWindow
	mwCfg.RateLimitDisabled = cfg.Security.RateLimitDisabled

	router := api.NewRouter(h, api.NewChiMiddleware(mwCfg), cfg.Server.Timeout)
	router.SetPerformanceMonitor(middleware.NewPerformanceMonitor(perfSamples, perfSlowThreshold))
	return router.SetupChi()
}

// Server returns an http.Server for the configured address.
func (a *App) Server(version string) *http.Server {
	cfg := a.Config.Server
	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:           a.Handler(version),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Timeout,
		// Leave room for the handler timeout to write its 504.
		WriteTimeout: cfg.Timeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// Supervise adds the HTTP server and background services to tree.
func (a *App) Supervise(tree *supervisor.SupervisorTree, server *http.Server, started time.Time) {
	tree.AddAPIService(services.NewHTTPServerService(server, a.Config.Server.ShutdownTimeout))
	tree.AddDataService(services.NewUptimeService(started, uptimeInterval))

	if gc, ok := a.Cache.(services.GarbageCollector); ok {
		tree.AddDataService(services.NewCacheGCService(gc, a.Config.Cache.GCInterval))
		a.logger.Info().Dur("interval", a.Config.Cache.GCInterval).Msg("Cache GC service added")
	}
}

// TreeConfig converts the supervisor section.
func TreeConfig(cfg *config.Config) supervisor.TreeConfig {
	return supervisor.TreeConfig{
		FailureThreshold: cfg.Supervisor.FailureThreshold,
		FailureDecay:     cfg.Supervisor.FailureDecay,
		FailureBackoff:   cfg.Supervisor.FailureBackoff,
		ShutdownTimeout:  cfg.Supervisor.ShutdownTimeout,
	}
}

// loadVectorizer reads a saved model, or fits one on the catalog
// descriptions when path is empty.
func loadVectorizer(path string, store *catalog.Store) (*textsim.TFIDF, error) {
	if path == "" {
		return textsim.FitTFIDF(store.Descriptions(), textsim.NewTokenizer()), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vectorizer: %w", err)
	}
	defer f.Close()

	vec, err := textsim.LoadTFIDF(f)
	if err != nil {
		return nil, fmt.Errorf("load vectorizer %s: %w", path, err)
	}
	return vec, nil
}

func newResolver(cfg *config.Config) (*inference.Resolver, error) {
	tier, err := models.ParseBudgetTier(cfg.Inference.DefaultTier)
	if err != nil {
		return nil, fmt.Errorf("inference default tier: %w", err)
	}

	predictor, err := inference.New(inference.Config{
		Provider:    cfg.Inference.Provider,
		DefaultMood: cfg.Inference.DefaultMood,
		DefaultTier: tier,
		Remote: inference.RemoteConfig{
			BaseURL: cfg.Inference.RemoteURL,
			Timeout: cfg.Inference.RemoteTimeout,
			Breaker: breakerConfig(cfg.Inference.Breaker),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create inference provider: %w", err)
	}
	if predictor == nil {
		return nil, nil
	}
	return inference.NewResolverFor(predictor), nil
}

func rankerConfig(cfg *config.Config) *recommend.Config {
	return &recommend.Config{
		MaxAttractions:   cfg.Ranking.MaxAttractions,
		MaxFood:          cfg.Ranking.MaxFood,
		DwellHr:          cfg.Ranking.DwellHr,
		SpeedKmh:         cfg.Ranking.SpeedKmh,
		RatingCostFactor: cfg.Ranking.RatingCostFactor,
		BudgetSlack:      cfg.Ranking.BudgetSlack,
	}
}

func builderConfig(cfg *config.Config) *itinerary.Config {
	return &itinerary.Config{
		StartTime:           cfg.Itinerary.StartTime,
		DwellHr:             cfg.Itinerary.DwellHr,
		SpeedKmh:            cfg.Itinerary.SpeedKmh,
		MealMinSessionHr:    cfg.Itinerary.MealMinSessionHr,
		MealWindowStartHour: cfg.Itinerary.MealWindowStartHour,
		MealWindowEndHour:   cfg.Itinerary.MealWindowEndHour,
		MealStops:           cfg.Itinerary.MealStops,
	}
}

func breakerConfig(c config.BreakerConfig) breaker.Config {
	return breaker.Config{
		MaxRequests:  c.MaxRequests,
		Interval:     c.Interval,
		Timeout:      c.Timeout,
		MinRequests:  c.MinRequests,
		FailureRatio: c.FailureRatio,
	}
}
