// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

package itinerary

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/wanderwise/internal/geo"
	"github.com/tomtom215/wanderwise/internal/metrics"
	"github.com/tomtom215/wanderwise/internal/models"
)

// ErrInvalidStartTime is returned for a start time that is not "HH:MM".
var ErrInvalidStartTime = errors.New("start time must be HH:MM (24-hour)")

// Builder sequences ranked candidates into a single-day schedule.
// It holds no per-call state and is safe for concurrent use.
type Builder struct {
	config *Config
	logger zerolog.Logger
	now    func() time.Time
}

// NewBuilder creates a Builder. A nil cfg uses DefaultConfig.
func NewBuilder(cfg *Config, logger zerolog.Logger) (*Builder, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid itinerary config: %w", err)
	}
	return &Builder{
		config: cfg,
		logger: logger.With().Str("component", "itinerary").Logger(),
		now:    time.Now,
	}, nil
}

// Build schedules today's visits. See BuildOn.
func (b *Builder) Build(origin models.Point, attractions, food []models.Candidate, totalHours float64, start string) ([]models.Step, error) {
	return b.BuildOn(b.now(), origin, attractions, food, totalHours, start)
}

// BuildOn schedules visits on the calendar day of day, starting at start
// ("HH:MM", empty for the configured default) and ending totalHours later.
//
// The next attraction is always the one nearest to the current position.
// The loop stops when the attractions run out or the nearest one can no
// longer be visited before the session ends. Once per session, after a
// visit that ends inside the meal window, the best-scored food entries are
// inserted. Steps are returned in arrival order; an infeasible session
// yields an empty, non-nil slice.
func (b *Builder) BuildOn(day time.Time, origin models.Point, attractions, food []models.Candidate, totalHours float64, start string) ([]models.Step, error) {
	if start == "" {
		start = b.config.StartTime
	}
	startAt, err := StartOn(day, start)
	if err != nil {
		return nil, err
	}

	begin := time.Now()
	s := &session{
		cfg:       b.config,
		origin:    origin,
		cursor:    origin,
		clock:     startAt,
		end:       startAt.Add(geo.Hours(totalHours)),
		places:    newPool(attractions),
		food:      newPool(food),
		mealAllow: totalHours > b.config.MealMinSessionHr,
		steps:     []models.Step{},
	}
	s.run()

	elapsed := time.Since(begin)
	metrics.RecordItinerary(elapsed, len(s.steps), s.mealDone)
	b.logger.Debug().
		Str("origin", origin.String()).
		Time("start", startAt).
		Float64("hours", totalHours).
		Int("attractions", len(attractions)).
		Int("food", len(food)).
		Int("steps", len(s.steps)).
		Bool("meal", s.mealDone).
		Dur("duration", elapsed).
		Msg("Built itinerary")

	return s.steps, nil
}

// session is the cursor state of one Build call.
type session struct {
	cfg    *Config
	origin models.Point
	cursor models.Point
	clock  time.Time
	end    time.Time

	places *pool
	food   *pool

	mealAllow bool
	mealDone  bool

	steps []models.Step
}

func (s *session) run() {
	for s.places.remaining > 0 {
		i := s.places.nearest(s.cursor)
		if !s.visit(s.places, i, models.StepPlace) {
			return
		}
		if s.mealDue() {
			s.insertMeal()
		}
	}
}

// visit schedules entry i of p if it fits before the session end. On
// success the entry is consumed and the cursor moves to it.
func (s *session) visit(p *pool, i int, typ models.StepType) bool {
	c := &p.items[i]
	dest := c.Point()
	travel := geo.TravelHours(geo.HaversineKm(s.cursor, dest), s.cfg.SpeedKmh)
	arrival := s.clock.Add(geo.Hours(travel))
	if arrival.Add(geo.Hours(s.cfg.DwellHr)).After(s.end) {
		return false
	}

	s.steps = append(s.steps, models.Step{
		Type:           typ,
		Name:           c.Name,
		Desc:           c.Description,
		Address:        c.Address,
		Arrival:        arrival,
		StayDurationHr: s.cfg.DwellHr,
		Lat:            c.Lat,
		Lng:            c.Lng,
		Rating:         c.Rating,
		Reviews:        c.Reviews,
		DirectionsURL:  geo.DirectionsURL(s.origin, dest),
	})
	s.cursor = dest
	s.clock = arrival.Add(geo.Hours(s.cfg.DwellHr))
	p.consume(i)
	return true
}

func (s *session) mealDue() bool {
	if !s.mealAllow || s.mealDone || s.food.remaining == 0 {
		return false
	}
	h := s.clock.Hour()
	return h >= s.cfg.MealWindowStartHour && h <= s.cfg.MealWindowEndHour
}

// insertMeal tries the best-scored remaining food entries in order,
// skipping any that no longer fit. It runs once per session whether or
// not anything was inserted.
func (s *session) insertMeal() {
	for _, i := range s.food.best(s.cfg.MealStops) {
		s.visit(s.food, i, models.StepFood)
	}
	s.mealDone = true
}

// StartOn combines the calendar day of day with an "HH:MM" clock time in
// day's location.
func StartOn(day time.Time, clock string) (time.Time, error) {
	t, err := parseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := day.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}

func parseClock(clock string) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidStartTime, clock)
	}
	return t, nil
}

// pool is an arena over ranked candidates with consumed flags.
type pool struct {
	items     []models.Candidate
	consumed  []bool
	remaining int
}

func newPool(items []models.Candidate) *pool {
	return &pool{
		items:     items,
		consumed:  make([]bool, len(items)),
		remaining: len(items),
	}
}

func (p *pool) consume(i int) {
	if !p.consumed[i] {
		p.consumed[i] = true
		p.remaining--
	}
}

// nearest returns the unconsumed entry closest to from. Ties go to the
// earlier, higher ranked entry. The pool must not be exhausted.
func (p *pool) nearest(from models.Point) int {
	best, bestDist := -1, 0.0
	for i := range p.items {
		if p.consumed[i] {
			continue
		}
		d := geo.HaversineKm(from, p.items[i].Point())
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// best returns up to n unconsumed entries by descending score.
func (p *pool) best(n int) []int {
	idx := make([]int, 0, p.remaining)
	for i := range p.items {
		if !p.consumed[i] {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return p.items[idx[a]].Score > p.items[idx[b]].Score
	})
	if len(idx) > n {
		idx = idx[:n]
	}
	return idx
}

// Stops returns the coordinates of steps in order.
func Stops(steps []models.Step) []models.Point {
	out := make([]models.Point, len(steps))
	for i := range steps {
		out[i] = models.Point{Lat: steps[i].Lat, Lng: steps[i].Lng}
	}
	return out
}

// RouteURL links to one route from origin through every step.
func RouteURL(origin models.Point, steps []models.Step) string {
	return geo.RouteURL(origin, Stops(steps))
}
