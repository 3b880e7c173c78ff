// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

// Package models defines the domain types shared by the catalog, ranker,
// itinerary builder and API layers.
package models

import (
	"fmt"
	"strings"
)

// Category partitions the catalog into sights and places to eat.
type Category string

const (
	CategoryAttraction Category = "attraction"
	CategoryFood       Category = "food"
)

// categoryAliases maps the spellings seen in catalog exports to a Category.
var categoryAliases = map[string]Category{
	"attraction": CategoryAttraction,
	"place":      CategoryAttraction,
	"tourist":    CategoryAttraction,
	"sight":      CategoryAttraction,
	"food":       CategoryFood,
	"restaurant": CategoryFood,
	"dining":     CategoryFood,
	"cafe":       CategoryFood,
}

// ParseCategory parses a category name case-insensitively.
func ParseCategory(s string) (Category, error) {
	if c, ok := categoryAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c, nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return c == CategoryAttraction || c == CategoryFood
}

// Point is a WGS84 coordinate in degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// IsZero reports whether either component is zero, the catalog's
// "no location data" sentinel.
func (p Point) IsZero() bool {
	return p.Lat == 0 || p.Lng == 0
}

// String formats the point as "lat,lng" for URLs and log fields.
func (p Point) String() string {
	return fmt.Sprintf("%g,%g", p.Lat, p.Lng)
}

// Location is a catalog entry. Locations are immutable once the catalog
// is loaded; per-request values live in Candidate.
type Location struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Category    Category `json:"category"`
}

// Point returns the location's coordinates.
func (l *Location) Point() Point {
	return Point{Lat: l.Lat, Lng: l.Lng}
}

// HasCoordinates reports whether the location can be distance-scored.
func (l *Location) HasCoordinates() bool {
	return !l.Point().IsZero()
}
