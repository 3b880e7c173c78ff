// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

package planner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/wanderwise/internal/geocode"
	"github.com/tomtom215/wanderwise/internal/inference"
	"github.com/tomtom215/wanderwise/internal/itinerary"
	"github.com/tomtom215/wanderwise/internal/logging"
	"github.com/tomtom215/wanderwise/internal/models"
	"github.com/tomtom215/wanderwise/internal/recommend"
)

// ErrInvalidRequest is returned for requests that fail basic checks.
var ErrInvalidRequest = errors.New("invalid request")

// Origin sources reported in Recommendation.OriginSource.
const (
	OriginCoordinates = "coordinates"
	OriginGeocoder    = "geocoder"
)

// Ranker produces ranked candidates for a query.
type Ranker interface {
	Rank(q models.Query) recommend.Result
}

// Builder schedules ranked candidates.
type Builder interface {
	BuildOn(day time.Time, origin models.Point, attractions, food []models.Candidate, totalHours float64, start string) ([]models.Step, error)
}

// Config holds request defaults and bounds.
type Config struct {
	DefaultHours float64 `json:"default_hours"`
	MinHours     float64 `json:"min_hours"`
	MaxHours     float64 `json:"max_hours"`
}

// DefaultConfig matches the 1 to 12 hour range offered to users.
func DefaultConfig() Config {
	return Config{DefaultHours: 4, MinHours: 1, MaxHours: 12}
}

// Request is one recommendation or planning request.
type Request struct {
	// Place is geocoded when Origin is nil. It is also the text used to
	// infer moods and budget.
	Place  string
	Origin *models.Point

	Moods  []string
	Budget *float64

	// Hours is the time budget. Zero uses Config.DefaultHours.
	Hours float64

	// StartTime ("HH:MM") and Day only affect Plan.
	StartTime string
	Day       time.Time
}

// Recommendation is the ranked output for a request.
type Recommendation struct {
	Place          string             `json:"place,omitempty"`
	Origin         models.Point       `json:"origin"`
	OriginSource   string             `json:"origin_source"`
	Moods          []string           `json:"moods"`
	MoodInferred   bool               `json:"mood_inferred"`
	Budget         float64            `json:"budget"`
	BudgetInferred bool               `json:"budget_inferred"`
	Hours          float64            `json:"hours"`
	Attractions    []models.Candidate `json:"attractions"`
	Food           []models.Candidate `json:"food"`
	Stats          recommend.Stats    `json:"stats"`
}

// Plan is a Recommendation plus the schedule built from it.
type Plan struct {
	*Recommendation
	Start    time.Time     `json:"start"`
	End      time.Time     `json:"end"`
	Steps    []models.Step `json:"itinerary"`
	RouteURL string        `json:"route_url,omitempty"`
	Meal     bool          `json:"meal_included"`
}

// Service runs geocoding, inference, ranking and scheduling for a request.
type Service struct {
	cfg      Config
	geocoder geocode.Geocoder
	resolver *inference.Resolver
	ranker   Ranker
	builder  Builder
	now      func() time.Time
}

// New creates a Service. geocoder may be nil when every request carries
// coordinates; resolver may be nil when every request supplies moods and
// budget.
func New(cfg Config, geocoder geocode.Geocoder, resolver *inference.Resolver, ranker Ranker, builder Builder) *Service {
	if resolver == nil {
		resolver = inference.NewResolver(nil, nil)
	}
	return &Service{
		cfg:      cfg,
		geocoder: geocoder,
		resolver: resolver,
		ranker:   ranker,
		builder:  builder,
		now:      time.Now,
	}
}

// Config returns the service configuration.
func (s *Service) Config() Config {
	return s.cfg
}

// Recommend resolves the origin, moods and budget and ranks candidates.
func (s *Service) Recommend(ctx context.Context, req Request) (*Recommendation, error) {
	hours, err := s.hours(req.Hours)
	if err != nil {
		return nil, err
	}

	origin, source, err := s.origin(ctx, req)
	if err != nil {
		return nil, err
	}

	resolved, err := s.resolver.Resolve(ctx, inference.Input{
		Text:   req.Place,
		Moods:  req.Moods,
		Budget: req.Budget,
	})
	if err != nil {
		return nil, err
	}

	res := s.ranker.Rank(models.Query{
		Origin:       origin,
		Moods:        resolved.Moods,
		Budget:       resolved.Budget,
		TimeBudgetHr: hours,
	})

	logging.Ctx(ctx).Info().
		Str("place", req.Place).
		Str("origin_source", source).
		Strs("moods", resolved.Moods).
		Bool("mood_inferred", resolved.MoodInferred).
		Float64("budget", resolved.Budget).
		Bool("budget_inferred", resolved.BudgetInferred).
		Float64("hours", hours).
		Int("attractions", len(res.Attractions)).
		Int("food", len(res.Food)).
		Msg("Recommendation ready")

	return &Recommendation{
		Place:          req.Place,
		Origin:         origin,
		OriginSource:   source,
		Moods:          resolved.Moods,
		MoodInferred:   resolved.MoodInferred,
		Budget:         resolved.Budget,
		BudgetInferred: resolved.BudgetInferred,
		Hours:          hours,
		Attractions:    res.Attractions,
		Food:           res.Food,
		Stats:          res.Stats,
	}, nil
}

// Plan recommends and then schedules the ranked candidates. An empty
// recommendation yields an empty schedule.
func (s *Service) Plan(ctx context.Context, req Request) (*Plan, error) {
	rec, err := s.Recommend(ctx, req)
	if err != nil {
		return nil, err
	}

	day := req.Day
	if day.IsZero() {
		day = s.now()
	}
	start := req.StartTime
	if start == "" {
		start = itinerary.DefaultStartTime
	}
	startAt, err := itinerary.StartOn(day, start)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	steps, err := s.builder.BuildOn(day, rec.Origin, rec.Attractions, rec.Food, rec.Hours, start)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	plan := &Plan{
		Recommendation: rec,
		Start:          startAt,
		End:            startAt.Add(time.Duration(rec.Hours * float64(time.Hour))),
		Steps:          steps,
		RouteURL:       itinerary.RouteURL(rec.Origin, steps),
	}
	for i := range steps {
		if steps[i].Type == models.StepFood {
			plan.Meal = true
			break
		}
	}

	logging.Ctx(ctx).Info().
		Int("steps", len(steps)).
		Bool("meal", plan.Meal).
		Time("start", plan.Start).
		Msg("Itinerary ready")

	return plan, nil
}

func (s *Service) hours(h float64) (float64, error) {
	if h == 0 {
		h = s.cfg.DefaultHours
	}
	if h < s.cfg.MinHours || h > s.cfg.MaxHours {
		return 0, fmt.Errorf("%w: hours must be between %g and %g, got %g",
			ErrInvalidRequest, s.cfg.MinHours, s.cfg.MaxHours, h)
	}
	return h, nil
}

// origin prefers caller coordinates over geocoding the place text.
func (s *Service) origin(ctx context.Context, req Request) (models.Point, string, error) {
	if req.Origin != nil {
		if req.Origin.IsZero() {
			return models.Point{}, "", fmt.Errorf("%w: origin coordinates must be non-zero", ErrInvalidRequest)
		}
		return *req.Origin, OriginCoordinates, nil
	}
	if s.geocoder == nil {
		return models.Point{}, "", fmt.Errorf("%w: no geocoder configured", geocode.ErrGeocoderUnavailable)
	}
	p, err := s.geocoder.Geocode(ctx, req.Place)
	if err != nil {
		return models.Point{}, "", err
	}
	return p, OriginGeocoder, nil
}
