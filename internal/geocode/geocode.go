// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

// Package geocode resolves free-text place names to coordinates.
package geocode

import (
	"context"
	"errors"
	"strings"

	"github.com/tomtom215/wanderwise/internal/models"
)

var (
	// ErrLocationNotFound is returned for blank queries and queries the
	// upstream service has no match for.
	ErrLocationNotFound = errors.New("location not found")

	// ErrGeocoderUnavailable wraps transport failures, upstream 5xx
	// responses, undecodable bodies and circuit breaker rejections.
	ErrGeocoderUnavailable = errors.New("geocoder unavailable")
)

// Geocoder resolves a place name to a single point.
type Geocoder interface {
	Geocode(ctx context.Context, text string) (models.Point, error)
}

// Place is a resolved geocoding match.
type Place struct {
	Query       string       `json:"query"`
	DisplayName string       `json:"display_name,omitempty"`
	Point       models.Point `json:"point"`
}

// normalizeQuery lowercases text and collapses whitespace so equivalent
// spellings share a cache entry.
func normalizeQuery(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
