// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/tomtom215/wanderwise/internal/catalog"
	"github.com/tomtom215/wanderwise/internal/geocode"
	"github.com/tomtom215/wanderwise/internal/itinerary"
	"github.com/tomtom215/wanderwise/internal/middleware"
	"github.com/tomtom215/wanderwise/internal/models"
	"github.com/tomtom215/wanderwise/internal/planner"
	"github.com/tomtom215/wanderwise/internal/validation"
)

// Service is the planning service behind the API.
type Service interface {
	Recommend(ctx context.Context, req planner.Request) (*planner.Recommendation, error)
	Plan(ctx context.Context, req planner.Request) (*planner.Plan, error)
	Config() planner.Config
}

// PlaceLookup resolves place text for the geocode endpoint.
type PlaceLookup interface {
	Lookup(ctx context.Context, text string) (geocode.Place, error)
}

// CatalogStats reports catalog counts.
type CatalogStats interface {
	Stats() catalog.Stats
}

// Handler serves the API endpoints.
type Handler struct {
	service  Service
	catalog  CatalogStats
	geocoder PlaceLookup

	perf         *middleware.PerformanceMonitor
	dependencies map[string]func() string
	version      string
	location     *time.Location
	startTime    time.Time
}

// NewHandler creates a handler. geocoder may be nil, in which case the
// geocode endpoint reports the upstream as unavailable.
func NewHandler(service Service, stats CatalogStats, geocoder PlaceLookup) *Handler {
	return &Handler{
		service:      service,
		catalog:      stats,
		geocoder:     geocoder,
		dependencies: make(map[string]func() string),
		version:      "dev",
		location:     time.Local,
		startTime:    time.Now(),
	}
}

// SetVersion sets the version reported by the health endpoint.
func (h *Handler) SetVersion(version string) {
	h.version = version
}

// SetLocation sets the time zone used for request dates.
func (h *Handler) SetLocation(loc *time.Location) {
	if loc != nil {
		h.location = loc
	}
}

// SetPerformanceMonitor enables the performance debug endpoint.
func (h *Handler) SetPerformanceMonitor(pm *middleware.PerformanceMonitor) {
	h.perf = pm
}

// AddDependency registers a circuit breaker state for health reporting.
func (h *Handler) AddDependency(name string, state func() string) {
	h.dependencies[name] = state
}

// HealthStatus is the health endpoint body.
type HealthStatus struct {
	Status        string            `json:"status"`
	Version       string            `json:"version"`
	UptimeSeconds float64           `json:"uptime_seconds"`
	Catalog       catalog.Stats     `json:"catalog"`
	Dependencies  map[string]string `json:"dependencies,omitempty"`
}

// Health handles GET /api/v1/health. It always answers 200 while the
// process is serving; an open upstream breaker marks it degraded.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := HealthStatus{
		Status:        "healthy",
		Version:       h.version,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
		Catalog:       h.catalog.Stats(),
	}
	if len(h.dependencies) > 0 {
		status.Dependencies = make(map[string]string, len(h.dependencies))
		for name, state := range h.dependencies {
			s := state()
			status.Dependencies[name] = s
			if s == "open" {
				status.Status = "degraded"
			}
		}
	}
	WriteSuccess(w, r, status)
}

// BudgetOption is one selectable budget tier.
type BudgetOption struct {
	Name   models.BudgetTier `json:"name"`
	Amount float64           `json:"amount"`
}

// Options is the options endpoint body.
type Options struct {
	Moods            []string       `json:"moods"`
	MoodTags         []string       `json:"mood_tags"`
	BudgetTiers      []BudgetOption `json:"budget_tiers"`
	MinHours         float64        `json:"min_hours"`
	MaxHours         float64        `json:"max_hours"`
	DefaultHours     float64        `json:"default_hours"`
	DefaultStartTime string         `json:"default_start_time"`
}

// Options handles GET /api/v1/options with the values a client form needs.
func (h *Handler) Options(w http.ResponseWriter, r *http.Request) {
	cfg := h.service.Config()
	tiers := make([]BudgetOption, len(models.BudgetTiers))
	for i, t := range models.BudgetTiers {
		tiers[i] = BudgetOption{Name: t, Amount: t.Amount()}
	}

	WriteSuccess(w, r, Options{
		Moods:            models.Moods,
		MoodTags:         models.MoodTags,
		BudgetTiers:      tiers,
		MinHours:         cfg.MinHours,
		MaxHours:         cfg.MaxHours,
		DefaultHours:     cfg.DefaultHours,
		DefaultStartTime: itinerary.DefaultStartTime,
	})
}

// CatalogStats handles GET /api/v1/catalog/stats.
func (h *Handler) CatalogStats(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, h.catalog.Stats())
}

// Geocode handles GET /api/v1/geocode?q=.
func (h *Handler) Geocode(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		NewResponseWriter(w, r).ValidationError("q is required", map[string]string{"field": "q"})
		return
	}
	if len(q) > 200 {
		NewResponseWriter(w, r).ValidationError("q must be at most 200 characters", map[string]string{"field": "q"})
		return
	}
	if h.geocoder == nil {
		respondServiceError(w, r, fmt.Errorf("%w: no geocoder configured", geocode.ErrGeocoderUnavailable))
		return
	}

	place, err := h.geocoder.Lookup(r.Context(), q)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	WriteSuccess(w, r, place)
}

// Recommendations handles POST /api/v1/recommendations.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	req, ok := h.plannerRequest(w, r)
	if !ok {
		return
	}

	rec, err := h.service.Recommend(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	WriteSuccess(w, r, rec)
}

// Itinerary handles POST /api/v1/itinerary.
func (h *Handler) Itinerary(w http.ResponseWriter, r *http.Request) {
	req, ok := h.plannerRequest(w, r)
	if !ok {
		return
	}

	plan, err := h.service.Plan(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	WriteSuccess(w, r, plan)
}

// PerformanceStats handles GET /api/v1/debug/performance.
func (h *Handler) PerformanceStats(w http.ResponseWriter, r *http.Request) {
	if h.perf == nil {
		NewResponseWriter(w, r).NotFound("Performance monitoring is disabled")
		return
	}
	WriteSuccess(w, r, map[string]interface{}{
		"endpoints": h.perf.Stats(),
		"recent":    h.perf.Recent(20),
	})
}

// plannerRequest decodes and validates the body. It writes the error
// response itself and reports false on failure.
func (h *Handler) plannerRequest(w http.ResponseWriter, r *http.Request) (planner.Request, bool) {
	var body PlanRequest
	if err := decodeJSON(r, w, &body); err != nil {
		NewResponseWriter(w, r).BadRequest(err.Error())
		return planner.Request{}, false
	}

	if verr := validation.ValidateStruct(&body); verr != nil {
		apiErr := verr.ToAPIError()
		NewResponseWriter(w, r).ValidationError(apiErr.Message, apiErr.Details)
		return planner.Request{}, false
	}

	req, err := body.toPlannerRequest(h.location)
	if err != nil {
		respondServiceError(w, r, err)
		return planner.Request{}, false
	}
	return req, true
}
