// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

package geocode

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/wanderwise/internal/breaker"
	"github.com/tomtom215/wanderwise/internal/cache"
	"github.com/tomtom215/wanderwise/internal/logging"
	"github.com/tomtom215/wanderwise/internal/metrics"
	"github.com/tomtom215/wanderwise/internal/models"
)

const (
	// DefaultBaseURL is the public OpenStreetMap Nominatim instance.
	DefaultBaseURL = "https://nominatim.openstreetmap.org"

	breakerName = "nominatim"
	cacheName   = "geocode"
	cachePrefix = "geocode:"
)

// Config configures the Nominatim client.
type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// RateLimit is the maximum request rate in requests per second.
	// The public instance allows one.
	RateLimit float64

	// CountryCodes optionally restricts matches (comma-separated ISO codes).
	CountryCodes string

	CacheTTL time.Duration
	Breaker  breaker.Config
}

// DefaultConfig returns settings that respect the public usage policy.
func DefaultConfig() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		UserAgent: "wanderwise/1.0",
		Timeout:   10 * time.Second,
		RateLimit: 1,
		CacheTTL:  7 * 24 * time.Hour,
		Breaker:   breaker.DefaultConfig(),
	}
}

// nominatimResult is one element of a jsonv2 search response.
type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Nominatim geocodes through the Nominatim search API with a read-through
// cache, a client-side rate limit and a circuit breaker. Failed lookups are
// never retried.
type Nominatim struct {
	client   *http.Client
	cfg      Config
	limiter  *rate.Limiter
	breaker  *breaker.Breaker[Place]
	store    cache.Store
	cacheTTL time.Duration
}

// NewNominatim creates a client. store may be nil to disable caching.
func NewNominatim(cfg Config, store cache.Store) *Nominatim {
	def := DefaultConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = def.UserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = def.RateLimit
	}
	if cfg.Breaker.MaxRequests == 0 {
		cfg.Breaker = def.Breaker
	}

	return &Nominatim{
		client:  &http.Client{Timeout: cfg.Timeout},
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), 1),
		breaker: breaker.New[Place](breakerName, cfg.Breaker, func(err error) bool {
			return err == nil || errors.Is(err, ErrLocationNotFound)
		}),
		store:    store,
		cacheTTL: cfg.CacheTTL,
	}
}

// Geocode implements Geocoder.
func (n *Nominatim) Geocode(ctx context.Context, text string) (models.Point, error) {
	place, err := n.Lookup(ctx, text)
	if err != nil {
		return models.Point{}, err
	}
	return place.Point, nil
}

// Lookup resolves text to its best match.
func (n *Nominatim) Lookup(ctx context.Context, text string) (Place, error) {
	key := normalizeQuery(text)
	if key == "" {
		return Place{}, ErrLocationNotFound
	}

	if place, ok := n.cached(ctx, key); ok {
		metrics.RecordGeocode("cache_hit", 0)
		return place, nil
	}

	if err := n.limiter.Wait(ctx); err != nil {
		return Place{}, fmt.Errorf("%w: %w", ErrGeocoderUnavailable, err)
	}

	start := time.Now()
	place, err := n.breaker.Execute(func() (Place, error) {
		return n.search(ctx, text)
	})
	elapsed := time.Since(start)

	switch {
	case err == nil:
		metrics.RecordGeocode("found", elapsed)
	case errors.Is(err, ErrLocationNotFound):
		metrics.RecordGeocode("not_found", elapsed)
		return Place{}, err
	case breaker.IsOpen(err):
		metrics.RecordGeocode("error", 0)
		return Place{}, fmt.Errorf("%w: %w", ErrGeocoderUnavailable, err)
	default:
		metrics.RecordGeocode("error", elapsed)
		return Place{}, err
	}

	n.remember(ctx, key, place)
	return place, nil
}

func (n *Nominatim) search(ctx context.Context, text string) (Place, error) {
	params := url.Values{}
	params.Set("q", text)
	params.Set("format", "jsonv2")
	params.Set("limit", "1")
	if n.cfg.CountryCodes != "" {
		params.Set("countrycodes", n.cfg.CountryCodes)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.cfg.BaseURL+"/search?"+params.Encode(), http.NoBody)
	if err != nil {
		return Place{}, fmt.Errorf("%w: failed to create request: %w", ErrGeocoderUnavailable, err)
	}
	req.Header.Set("User-Agent", n.cfg.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return Place{}, fmt.Errorf("%w: %w", ErrGeocoderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return Place{}, fmt.Errorf("%w: nominatim returned status %d", ErrGeocoderUnavailable, resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return Place{}, fmt.Errorf("%w: failed to decode response: %w", ErrGeocoderUnavailable, err)
	}
	if len(results) == 0 {
		return Place{}, ErrLocationNotFound
	}

	lat, latErr := strconv.ParseFloat(results[0].Lat, 64)
	lng, lngErr := strconv.ParseFloat(results[0].Lon, 64)
	if latErr != nil || lngErr != nil {
		return Place{}, fmt.Errorf("%w: invalid coordinates %q,%q", ErrGeocoderUnavailable, results[0].Lat, results[0].Lon)
	}

	return Place{
		Query:       text,
		DisplayName: results[0].DisplayName,
		Point:       models.Point{Lat: lat, Lng: lng},
	}, nil
}

// cached returns a stored match. Cache failures are logged and treated as
// misses.
func (n *Nominatim) cached(ctx context.Context, key string) (Place, bool) {
	if n.store == nil {
		return Place{}, false
	}
	data, ok, err := n.store.Get(ctx, cachePrefix+key)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("Geocode cache read failed")
		return Place{}, false
	}
	metrics.RecordCacheLookup(cacheName, ok)
	if !ok {
		return Place{}, false
	}

	var place Place
	if err := json.Unmarshal(data, &place); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("Discarding undecodable geocode cache entry")
		return Place{}, false
	}
	return place, true
}

func (n *Nominatim) remember(ctx context.Context, key string, place Place) {
	if n.store == nil {
		return
	}
	data, err := json.Marshal(place)
	if err != nil {
		return
	}
	if err := n.store.Set(ctx, cachePrefix+key, data, n.cacheTTL); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("Geocode cache write failed")
	}
}

// BreakerState exposes the circuit breaker state for health reporting.
func (n *Nominatim) BreakerState() string {
	return n.breaker.State()
}

var _ Geocoder = (*Nominatim)(nil)
