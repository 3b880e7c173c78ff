// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

package geo

import (
	"math"
	"net/url"
	"testing"
	"time"

	"github.com/tomtom215/wanderwise/internal/models"
)

func TestHaversineKm(t *testing.T) {
	tests := []struct {
		name    string
		a, b    models.Point
		want    float64
		epsilon float64
	}{
		{
			name:    "same point",
			a:       models.Point{Lat: 23.02, Lng: 72.57},
			b:       models.Point{Lat: 23.02, Lng: 72.57},
			want:    0,
			epsilon: 1e-9,
		},
		{
			name:    "one degree of latitude",
			a:       models.Point{Lat: 10, Lng: 20},
			b:       models.Point{Lat: 11, Lng: 20},
			want:    111.19,
			epsilon: 0.1,
		},
		{
			name:    "London to Paris",
			a:       models.Point{Lat: 51.5074, Lng: -0.1278},
			b:       models.Point{Lat: 48.8566, Lng: 2.3522},
			want:    343.5,
			epsilon: 1.0,
		},
		{
			name:    "across the antimeridian",
			a:       models.Point{Lat: 1, Lng: 179.9},
			b:       models.Point{Lat: 1, Lng: -179.9},
			want:    22.24,
			epsilon: 0.1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineKm(tt.a, tt.b)
			if math.Abs(got-tt.want) > tt.epsilon {
				t.Errorf("HaversineKm() = %.3f, want %.3f ± %.3f", got, tt.want, tt.epsilon)
			}
			if back := HaversineKm(tt.b, tt.a); math.Abs(back-got) > 1e-9 {
				t.Errorf("HaversineKm() not symmetric: %v vs %v", got, back)
			}
		})
	}
}

func TestTravelHours(t *testing.T) {
	if got := TravelHours(60, 30); got != 2 {
		t.Errorf("TravelHours(60, 30) = %v, want 2", got)
	}
	if got := TravelHours(15, 0); got != 0.5 {
		t.Errorf("TravelHours(15, 0) = %v, want 0.5 (default speed)", got)
	}
}

func TestReachKm(t *testing.T) {
	tests := []struct {
		budget, dwell, speed, want float64
	}{
		{4, 1, 30, 90},
		{1, 1, 30, 0},
		{0.5, 1, 30, 0},
		{2, 1, 0, 30},
	}

	for _, tt := range tests {
		if got := ReachKm(tt.budget, tt.dwell, tt.speed); got != tt.want {
			t.Errorf("ReachKm(%v, %v, %v) = %v, want %v", tt.budget, tt.dwell, tt.speed, got, tt.want)
		}
	}
}

func TestHours(t *testing.T) {
	if got := Hours(1.5); got != 90*time.Minute {
		t.Errorf("Hours(1.5) = %v, want 1h30m", got)
	}
}

func TestRouteURL(t *testing.T) {
	origin := models.Point{Lat: 23.02, Lng: 72.57}

	if got := RouteURL(origin, nil); got != "" {
		t.Errorf("RouteURL() with no stops = %q, want empty", got)
	}

	stops := []models.Point{{Lat: 23.03, Lng: 72.58}, {Lat: 23.04, Lng: 72.59}, {Lat: 23.05, Lng: 72.6}}
	u, err := url.Parse(RouteURL(origin, stops))
	if err != nil {
		t.Fatalf("RouteURL() produced invalid URL: %v", err)
	}

	q := u.Query()
	if got := q.Get("origin"); got != "23.02,72.57" {
		t.Errorf("origin = %q, want 23.02,72.57", got)
	}
	if got := q.Get("destination"); got != "23.05,72.6" {
		t.Errorf("destination = %q, want 23.05,72.6", got)
	}
	if got := q.Get("waypoints"); got != "23.03,72.58|23.04,72.59" {
		t.Errorf("waypoints = %q, want 23.03,72.58|23.04,72.59", got)
	}
}

func TestRouteURL_SingleStopHasNoWaypoints(t *testing.T) {
	u, err := url.Parse(RouteURL(models.Point{Lat: 1, Lng: 2}, []models.Point{{Lat: 3, Lng: 4}}))
	if err != nil {
		t.Fatalf("invalid URL: %v", err)
	}
	if u.Query().Has("waypoints") {
		t.Errorf("single-stop route should not carry waypoints: %s", u)
	}
}

func TestDirectionsURL(t *testing.T) {
	u, err := url.Parse(DirectionsURL(models.Point{Lat: 1.5, Lng: 2.5}, models.Point{Lat: 3.5, Lng: 4.5}))
	if err != nil {
		t.Fatalf("invalid URL: %v", err)
	}
	if u.Host != "www.google.com" {
		t.Errorf("host = %q, want www.google.com", u.Host)
	}
	if got := u.Query().Get("travelmode"); got != "driving" {
		t.Errorf("travelmode = %q, want driving", got)
	}
}
