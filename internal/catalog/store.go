// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

package catalog

import (
	"github.com/tomtom215/wanderwise/internal/models"
)

// Store is the read-only, in-memory catalog. It is built once at startup and
// shared by every request; nothing in the process mutates it afterwards.
type Store struct {
	locations []models.Location
	index     *gridIndex
	stats     Stats
}

// Stats summarizes catalog contents.
type Stats struct {
	Total              int `json:"total"`
	Attractions        int `json:"attractions"`
	Food               int `json:"food"`
	WithoutCoordinates int `json:"without_coordinates"`
}

// NewStore builds a store over locs. IDs are reassigned to slice positions
// so that Location.ID can be used to address per-location side tables.
func NewStore(locs []models.Location, cellSizeKm float64) *Store {
	owned := make([]models.Location, len(locs))
	copy(owned, locs)

	var stats Stats
	for i := range owned {
		owned[i].ID = i
		stats.Total++
		switch owned[i].Category {
		case models.CategoryAttraction:
			stats.Attractions++
		case models.CategoryFood:
			stats.Food++
		}
		if !owned[i].HasCoordinates() {
			stats.WithoutCoordinates++
		}
	}

	return &Store{
		locations: owned,
		index:     newGridIndex(owned, cellSizeKm),
		stats:     stats,
	}
}

// Len returns the number of catalog entries.
func (s *Store) Len() int {
	return len(s.locations)
}

// Locations returns the catalog entries ordered by ID.
// The slice is shared and must be treated as read-only.
func (s *Store) Locations() []models.Location {
	return s.locations
}

// Get returns the location with the given ID.
func (s *Store) Get(id int) (models.Location, bool) {
	if id < 0 || id >= len(s.locations) {
		return models.Location{}, false
	}
	return s.locations[id], true
}

// Descriptions returns every description ordered by ID.
func (s *Store) Descriptions() []string {
	out := make([]string, len(s.locations))
	for i := range s.locations {
		out[i] = s.locations[i].Description
	}
	return out
}

// Nearby returns the IDs of locations with coordinates within radiusKm of p,
// in ascending ID order. Entries on the boundary are included.
func (s *Store) Nearby(p models.Point, radiusKm float64) []int {
	return s.index.nearby(p, radiusKm)
}

// Stats returns catalog counts.
func (s *Store) Stats() Stats {
	return s.stats
}
