// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

package itinerary

import (
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/wanderwise/internal/geo"
	"github.com/tomtom215/wanderwise/internal/models"
)

var (
	testDay = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	origin  = models.Point{Lat: 23.02, Lng: 72.57}
)

// north returns the point km kilometres due north of origin.
func north(km float64) models.Point {
	return models.Point{Lat: origin.Lat + km/geo.KmPerDegree, Lng: origin.Lng}
}

func cand(name string, p models.Point, score float64, cat models.Category) models.Candidate {
	return models.Candidate{
		Location: models.Location{Name: name, Description: name + " desc", Lat: p.Lat, Lng: p.Lng, Category: cat},
		Score:    score,
	}
}

func places(n int, p models.Point) []models.Candidate {
	out := make([]models.Candidate, n)
	for i := range out {
		out[i] = cand(fmt.Sprintf("P%d", i+1), p, 1, models.CategoryAttraction)
	}
	return out
}

func newTestBuilder(t *testing.T) *Builder {
	t.Helper()
	b, err := NewBuilder(nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewBuilder() error = %v", err)
	}
	return b
}

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 14, hour, minute, 0, 0, time.UTC)
}

func names(steps []models.Step) []string {
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = s.Name
	}
	return out
}

func TestBuild_EmptyAttractions(t *testing.T) {
	b := newTestBuilder(t)
	steps, err := b.BuildOn(testDay, origin, nil, places(3, origin), 8, "")
	if err != nil {
		t.Fatalf("BuildOn() error = %v", err)
	}
	if steps == nil || len(steps) != 0 {
		t.Errorf("steps = %v, want empty non-nil", steps)
	}
}

func TestBuild_SessionTooShort(t *testing.T) {
	b := newTestBuilder(t)
	// 30 km away: 1h travel + 1h visit does not fit in 1h.
	attractions := []models.Candidate{cand("Far", north(30), 1, models.CategoryAttraction)}

	steps, err := b.BuildOn(testDay, origin, attractions, nil, 1, "10:00")
	if err != nil {
		t.Fatalf("BuildOn() error = %v", err)
	}
	if len(steps) != 0 {
		t.Errorf("steps = %v, want none", names(steps))
	}
}

func TestBuild_MealAfterLunchtimeArrival(t *testing.T) {
	b := newTestBuilder(t)
	fort := north(90) // 3h away, arrival 13:00
	attractions := []models.Candidate{
		cand("Fort", fort, 0.5, models.CategoryAttraction),
		cand("Museum", north(105), 0.4, models.CategoryAttraction),
	}
	food := []models.Candidate{
		cand("Thali House", fort, 0.3, models.CategoryFood),
		cand("Chai Stop", fort, 0.9, models.CategoryFood),
		cand("Dessert Bar", fort, 0.1, models.CategoryFood),
	}

	steps, err := b.BuildOn(testDay, origin, attractions, food, 7, "10:00")
	if err != nil {
		t.Fatalf("BuildOn() error = %v", err)
	}

	want := []string{"Fort", "Chai Stop", "Thali House"}
	if got := names(steps); !reflect.DeepEqual(got, want) {
		t.Fatalf("steps = %v, want %v", got, want)
	}
	if d := steps[0].Arrival.Sub(at(13, 0)); d < -time.Second || d > time.Second {
		t.Errorf("Fort arrival = %v, want 13:00", steps[0].Arrival)
	}
	wantTypes := []models.StepType{models.StepPlace, models.StepFood, models.StepFood}
	for i, s := range steps {
		if s.Type != wantTypes[i] {
			t.Errorf("step %d type = %q, want %q", i, s.Type, wantTypes[i])
		}
		if s.StayDurationHr != 1 {
			t.Errorf("step %d stay = %v, want 1", i, s.StayDurationHr)
		}
	}
}

func TestBuild_NoMealForShortSession(t *testing.T) {
	b := newTestBuilder(t)
	food := places(3, origin)
	for i := range food {
		food[i].Category = models.CategoryFood
		food[i].Name = fmt.Sprintf("F%d", i+1)
	}

	for _, hours := range []float64{2, 3, 4} {
		t.Run(fmt.Sprintf("%vh", hours), func(t *testing.T) {
			steps, err := b.BuildOn(testDay, origin, places(10, origin), food, hours, "10:00")
			if err != nil {
				t.Fatal(err)
			}
			if len(steps) != int(hours) {
				t.Errorf("len(steps) = %d, want %d", len(steps), int(hours))
			}
			for _, s := range steps {
				if s.Type == models.StepFood {
					t.Errorf("unexpected meal stop %s in a %vh session", s.Name, hours)
				}
			}
		})
	}
}

func TestBuild_MealAtMostOnce(t *testing.T) {
	b := newTestBuilder(t)
	var food []models.Candidate
	for i := 0; i < 5; i++ {
		food = append(food, cand(fmt.Sprintf("F%d", i+1), origin, float64(5-i), models.CategoryFood))
	}

	steps, err := b.BuildOn(testDay, origin, places(10, origin), food, 8, "10:00")
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"P1", "P2", "F1", "F2", "P3", "P4", "P5", "P6"}
	if got := names(steps); !reflect.DeepEqual(got, want) {
		t.Errorf("steps = %v, want %v", got, want)
	}
	for i, s := range steps {
		if !s.Arrival.Equal(at(10+i, 0)) {
			t.Errorf("step %d arrival = %v, want %02d:00", i, s.Arrival.Format("15:04"), 10+i)
		}
	}
}

func TestBuild_SkipsInfeasibleFood(t *testing.T) {
	b := newTestBuilder(t)
	food := []models.Candidate{
		cand("Remote Dhaba", north(300), 0.9, models.CategoryFood),
		cand("Corner Cafe", origin, 0.5, models.CategoryFood),
		cand("Late Diner", origin, 0.1, models.CategoryFood),
	}

	steps, err := b.BuildOn(testDay, origin, places(10, origin), food, 6, "10:00")
	if err != nil {
		t.Fatal(err)
	}

	// Only the two best-scored entries are tried; the remote one is skipped.
	want := []string{"P1", "P2", "Corner Cafe", "P3", "P4", "P5"}
	if got := names(steps); !reflect.DeepEqual(got, want) {
		t.Errorf("steps = %v, want %v", got, want)
	}
}

func TestBuild_NearestFromCursor(t *testing.T) {
	b := newTestBuilder(t)
	south := models.Point{Lat: origin.Lat - 12/geo.KmPerDegree, Lng: origin.Lng}
	attractions := []models.Candidate{
		cand("C", south, 0.9, models.CategoryAttraction),
		cand("B", north(20), 0.8, models.CategoryAttraction),
		cand("A", north(10), 0.7, models.CategoryAttraction),
	}

	steps, err := b.BuildOn(testDay, origin, attractions, nil, 10, "08:00")
	if err != nil {
		t.Fatal(err)
	}
	// A sort by distance from the origin alone would give A, C, B.
	want := []string{"A", "B", "C"}
	if got := names(steps); !reflect.DeepEqual(got, want) {
		t.Errorf("steps = %v, want %v", got, want)
	}
}

func TestBuild_TiesKeepRankOrder(t *testing.T) {
	b := newTestBuilder(t)
	steps, err := b.BuildOn(testDay, origin, places(3, north(5)), nil, 6, "")
	if err != nil {
		t.Fatal(err)
	}
	if got := names(steps); !reflect.DeepEqual(got, []string{"P1", "P2", "P3"}) {
		t.Errorf("steps = %v", got)
	}
}

func TestBuild_ScheduleInvariants(t *testing.T) {
	b := newTestBuilder(t)
	rng := rand.New(rand.NewSource(3))

	for run := 0; run < 50; run++ {
		var attractions, food []models.Candidate
		for i := 0; i < 20; i++ {
			p := models.Point{Lat: origin.Lat + rng.Float64()*0.6 - 0.3, Lng: origin.Lng + rng.Float64()*0.6 - 0.3}
			attractions = append(attractions, cand(fmt.Sprintf("A%d", i), p, rng.Float64(), models.CategoryAttraction))
		}
		for i := 0; i < 10; i++ {
			p := models.Point{Lat: origin.Lat + rng.Float64()*0.6 - 0.3, Lng: origin.Lng + rng.Float64()*0.6 - 0.3}
			food = append(food, cand(fmt.Sprintf("F%d", i), p, rng.Float64(), models.CategoryFood))
		}
		hours := float64(1 + rng.Intn(12))
		start := fmt.Sprintf("%02d:%02d", 6+rng.Intn(8), rng.Intn(60))

		steps, err := b.BuildOn(testDay, origin, attractions, food, hours, start)
		if err != nil {
			t.Fatal(err)
		}

		begin, _ := StartOn(testDay, start)
		end := begin.Add(geo.Hours(hours))
		meals := 0
		for i, s := range steps {
			if i > 0 && !s.Arrival.After(steps[i-1].Arrival) {
				t.Errorf("run %d: arrival %d not after %d", run, i, i-1)
			}
			if s.Departure().After(end) {
				t.Errorf("run %d: step %d leaves at %v after end %v", run, i, s.Departure(), end)
			}
			if s.Type == models.StepFood {
				meals++
			}
		}
		if meals > 2 {
			t.Errorf("run %d: %d meal stops", run, meals)
		}
		if hours <= 4 && meals > 0 {
			t.Errorf("run %d: meal in a %vh session", run, hours)
		}
	}
}

func TestBuild_DoesNotMutateInput(t *testing.T) {
	b := newTestBuilder(t)
	attractions := places(4, north(2))
	food := []models.Candidate{cand("F", origin, 1, models.CategoryFood)}
	before := append([]models.Candidate(nil), attractions...)

	if _, err := b.BuildOn(testDay, origin, attractions, food, 8, "11:00"); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(attractions, before) || len(food) != 1 {
		t.Error("BuildOn modified its input")
	}
}

func TestBuild_StartTime(t *testing.T) {
	b := newTestBuilder(t)
	tests := []struct {
		start   string
		want    time.Time
		wantErr bool
	}{
		{"", at(10, 0), false},
		{"09:30", at(9, 30), false},
		{"7:05", at(7, 5), false},
		{"25:00", time.Time{}, true},
		{"10am", time.Time{}, true},
		{"10:00:00", time.Time{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.start, func(t *testing.T) {
			steps, err := b.BuildOn(testDay, origin, places(1, origin), nil, 2, tt.start)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidStartTime) {
					t.Errorf("error = %v, want ErrInvalidStartTime", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if len(steps) != 1 || !steps[0].Arrival.Equal(tt.want) {
				t.Errorf("steps = %+v, want arrival %v", steps, tt.want)
			}
		})
	}
}

func TestBuild_UsesClock(t *testing.T) {
	b := newTestBuilder(t)
	b.now = func() time.Time { return time.Date(2026, 7, 1, 18, 45, 0, 0, time.UTC) }

	steps, err := b.Build(origin, places(1, origin), nil, 2, "10:00")
	if err != nil {
		t.Fatal(err)
	}
	if want := time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC); !steps[0].Arrival.Equal(want) {
		t.Errorf("arrival = %v, want %v", steps[0].Arrival, want)
	}
}

func TestRouteLinks(t *testing.T) {
	b := newTestBuilder(t)
	steps, err := b.BuildOn(testDay, origin, []models.Candidate{
		cand("A", north(1), 1, models.CategoryAttraction),
		cand("B", north(2), 1, models.CategoryAttraction),
	}, nil, 6, "")
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range steps {
		if !strings.Contains(s.DirectionsURL, "destination="+fmt.Sprintf("%g%%2C%g", s.Lat, s.Lng)) {
			t.Errorf("DirectionsURL = %s", s.DirectionsURL)
		}
	}
	route := RouteURL(origin, steps)
	if !strings.Contains(route, "waypoints=") {
		t.Errorf("RouteURL = %s, want waypoints", route)
	}
	if RouteURL(origin, nil) != "" {
		t.Error("RouteURL with no steps should be empty")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"bad start", func(c *Config) { c.StartTime = "noon" }, true},
		{"zero dwell", func(c *Config) { c.DwellHr = 0 }, true},
		{"zero speed", func(c *Config) { c.SpeedKmh = 0 }, true},
		{"inverted window", func(c *Config) { c.MealWindowStartHour, c.MealWindowEndHour = 15, 12 }, true},
		{"window past midnight", func(c *Config) { c.MealWindowEndHour = 24 }, true},
		{"negative meal stops", func(c *Config) { c.MealStops = -1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
