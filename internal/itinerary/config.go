// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

package itinerary

import (
	"fmt"
)

// DefaultStartTime is the start of the day when the caller gives none.
const DefaultStartTime = "10:00"

// Config controls the schedule shape.
type Config struct {
	// StartTime is used when Build is called with an empty start ("HH:MM").
	StartTime string `json:"start_time"`

	// DwellHr is the time spent at every stop.
	DwellHr float64 `json:"dwell_hr"`

	// SpeedKmh is the assumed travel speed between stops.
	SpeedKmh float64 `json:"speed_kmh"`

	// Meal insertion fires only for sessions longer than MealMinSessionHr,
	// when the clock hour after a visit is within
	// [MealWindowStartHour, MealWindowEndHour], and adds at most MealStops
	// food stops.
	MealMinSessionHr    float64 `json:"meal_min_session_hr"`
	MealWindowStartHour int     `json:"meal_window_start_hour"`
	MealWindowEndHour   int     `json:"meal_window_end_hour"`
	MealStops           int     `json:"meal_stops"`
}

// DefaultConfig returns the standard schedule parameters.
func DefaultConfig() *Config {
	return &Config{
		StartTime:           DefaultStartTime,
		DwellHr:             1,
		SpeedKmh:            30,
		MealMinSessionHr:    4,
		MealWindowStartHour: 12,
		MealWindowEndHour:   14,
		MealStops:           2,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if _, err := parseClock(c.StartTime); err != nil {
		return err
	}
	if c.DwellHr <= 0 {
		return fmt.Errorf("dwell_hr must be positive, got %f", c.DwellHr)
	}
	if c.SpeedKmh <= 0 {
		return fmt.Errorf("speed_kmh must be positive, got %f", c.SpeedKmh)
	}
	if c.MealWindowStartHour < 0 || c.MealWindowEndHour > 23 || c.MealWindowStartHour > c.MealWindowEndHour {
		return fmt.Errorf("invalid meal window [%d,%d]", c.MealWindowStartHour, c.MealWindowEndHour)
	}
	if c.MealStops < 0 {
		return fmt.Errorf("meal_stops must be non-negative, got %d", c.MealStops)
	}
	return nil
}
