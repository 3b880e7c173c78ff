// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

package models

import (
	"fmt"
	"strings"
	"time"
)

// Candidate is a Location enriched with values derived for one query.
// Candidates are built per request and never written back to the catalog.
type Candidate struct {
	Location
	DistanceKm   float64 `json:"distance_km"`
	TravelTimeHr float64 `json:"travel_time_hr"`
	TotalTimeHr  float64 `json:"total_time_hr"`
	Similarity   float64 `json:"similarity_score"`
	Score        float64 `json:"final_score"`
}

// Query is the ranker input. It is passed by value and never mutated.
type Query struct {
	Origin       Point
	Moods        []string
	Budget       float64
	TimeBudgetHr float64
}

// StepType tags an itinerary stop.
type StepType string

const (
	StepPlace StepType = "place"
	StepFood  StepType = "food"
)

// Step is one scheduled stop of an itinerary.
type Step struct {
	Type           StepType  `json:"type"`
	Name           string    `json:"name"`
	Desc           string    `json:"desc"`
	Address        string    `json:"address"`
	Arrival        time.Time `json:"arrival"`
	StayDurationHr float64   `json:"stay_duration_hr"`
	Lat            float64   `json:"lat"`
	Lng            float64   `json:"lng"`
	Rating         float64   `json:"rating"`
	Reviews        int       `json:"reviews"`
	DirectionsURL  string    `json:"directions_url,omitempty"`
}

// Departure is the time the visitor leaves the stop.
func (s *Step) Departure() time.Time {
	return s.Arrival.Add(time.Duration(s.StayDurationHr * float64(time.Hour)))
}

// BudgetTier is one of the spending levels offered to users.
type BudgetTier string

const (
	BudgetFree     BudgetTier = "Free"
	BudgetRegular  BudgetTier = "Regular"
	BudgetModerate BudgetTier = "Moderate"
	BudgetPremium  BudgetTier = "Premium"
)

// BudgetTiers lists the tiers in ascending order of spend.
var BudgetTiers = []BudgetTier{BudgetFree, BudgetRegular, BudgetModerate, BudgetPremium}

var budgetAmounts = map[BudgetTier]float64{
	BudgetFree:     0,
	BudgetRegular:  300,
	BudgetModerate: 500,
	BudgetPremium:  800,
}

// Amount returns the numeric budget ceiling for the tier.
func (t BudgetTier) Amount() float64 {
	return budgetAmounts[t]
}

// ParseBudgetTier parses a tier name case-insensitively.
func ParseBudgetTier(s string) (BudgetTier, error) {
	for _, t := range BudgetTiers {
		if strings.EqualFold(string(t), strings.TrimSpace(s)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown budget tier %q", s)
}

// Moods are the labels produced by mood inference.
var Moods = []string{"Relaxing", "Adventurous", "Romantic", "Cultural", "Spiritual"}

// MoodTags are the experience tags users may pick directly. Any free text
// is accepted by the ranker; these are offered as suggestions.
var MoodTags = []string{
	"Family", "Relaxing", "Casual", "Romantic", "Cultural", "Spiritual",
	"Nature", "Relaxation", "Adventure", "Shopping", "Educational", "History", "Industrial",
}
