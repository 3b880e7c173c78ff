// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

package recommend

import (
	"fmt"
)

// Config contains the ranking parameters.
type Config struct {
	// MaxAttractions caps the attraction list.
	// Default: 20.
	MaxAttractions int `json:"max_attractions"`

	// MaxFood caps the food list.
	// Default: 10.
	MaxFood int `json:"max_food"`

	// DwellHr is the time spent at each stop.
	// Default: 1.
	DwellHr float64 `json:"dwell_hr"`

	// SpeedKmh is the assumed travel speed.
	// Default: 30.
	SpeedKmh float64 `json:"speed_kmh"`

	// Budget filter: an entry passes when rating*RatingCostFactor is at most
	// budget+BudgetSlack. Ratings are not prices, so this is only a coarse
	// placeholder until the catalog carries real cost data.
	RatingCostFactor float64 `json:"rating_cost_factor"`
	BudgetSlack      float64 `json:"budget_slack"`
}

// DefaultConfig returns the standard ranking parameters.
func DefaultConfig() *Config {
	return &Config{
		MaxAttractions:   20,
		MaxFood:          10,
		DwellHr:          1,
		SpeedKmh:         30,
		RatingCostFactor: 100,
		BudgetSlack:      200,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.MaxAttractions < 0 {
		return fmt.Errorf("max_attractions must be non-negative, got %d", c.MaxAttractions)
	}
	if c.MaxFood < 0 {
		return fmt.Errorf("max_food must be non-negative, got %d", c.MaxFood)
	}
	if c.DwellHr < 0 {
		return fmt.Errorf("dwell_hr must be non-negative, got %f", c.DwellHr)
	}
	if c.SpeedKmh <= 0 {
		return fmt.Errorf("speed_kmh must be positive, got %f", c.SpeedKmh)
	}
	if c.RatingCostFactor < 0 {
		return fmt.Errorf("rating_cost_factor must be non-negative, got %f", c.RatingCostFactor)
	}
	return nil
}
