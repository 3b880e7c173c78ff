// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

// Package geo provides the great-circle math and travel-time model used by
// the ranker and itinerary builder.
//
// Travel time is a straight-line approximation: distance divided by a
// constant average speed. There is no road network or traffic model.
package geo

import (
	"math"
	"time"

	"github.com/tomtom215/wanderwise/internal/models"
)

const (
	// EarthRadiusKm is the mean Earth radius.
	EarthRadiusKm = 6371.0

	// AverageSpeedKmh is the assumed door-to-door travel speed.
	AverageSpeedKmh = 30.0

	// KmPerDegree is the great-circle length of one degree of arc.
	KmPerDegree = EarthRadiusKm * math.Pi / 180
)

// HaversineKm returns the great-circle distance between two points in km.
func HaversineKm(a, b models.Point) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	// Clamp rounding noise so Asin never sees a value above 1.
	h = math.Min(1, math.Max(0, h))

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
}

// TravelHours converts a distance to hours at speedKmh.
// A non-positive speed falls back to AverageSpeedKmh.
func TravelHours(distanceKm, speedKmh float64) float64 {
	if speedKmh <= 0 {
		speedKmh = AverageSpeedKmh
	}
	return distanceKm / speedKmh
}

// Hours converts fractional hours to a time.Duration.
func Hours(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}

// ReachKm is the farthest distance that still leaves dwellHr of a
// timeBudgetHr window for the visit itself. It is never negative.
func ReachKm(timeBudgetHr, dwellHr, speedKmh float64) float64 {
	if speedKmh <= 0 {
		speedKmh = AverageSpeedKmh
	}
	return math.Max(0, (timeBudgetHr-dwellHr)*speedKmh)
}
