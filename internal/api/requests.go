// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/wanderwise/internal/models"
	"github.com/tomtom215/wanderwise/internal/planner"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 64 << 10

// dateLayout is the format of PlanRequest.Date.
const dateLayout = "2006-01-02"

// PlanRequest is the body of the recommendation and itinerary endpoints.
// Either place or both coordinates are required. Coordinates win when both
// are given; the place text is still used for inference.
type PlanRequest struct {
	Place      string   `json:"place" validate:"required_without_all=Lat Lng,omitempty,max=200"`
	Lat        *float64 `json:"lat" validate:"required_with=Lng,omitempty,latitude"`
	Lng        *float64 `json:"lng" validate:"required_with=Lat,omitempty,longitude"`
	Moods      []string `json:"moods" validate:"max=10,dive,required,max=50"`
	Budget     *float64 `json:"budget" validate:"omitempty,gte=0,excluded_with=BudgetTier"`
	BudgetTier string   `json:"budget_tier" validate:"omitempty,budget_tier"`
	Hours      float64  `json:"hours" validate:"omitempty,gt=0"`
	StartTime  string   `json:"start_time" validate:"omitempty,clock"`
	Date       string   `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// decodeJSON reads a single JSON object from the body into v. Unknown
// fields are rejected.
func decodeJSON(r *http.Request, w http.ResponseWriter, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	if dec.More() {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

// toPlannerRequest converts a validated request. Dates are interpreted in
// loc.
func (p *PlanRequest) toPlannerRequest(loc *time.Location) (planner.Request, error) {
	req := planner.Request{
		Place:     strings.TrimSpace(p.Place),
		Budget:    p.Budget,
		Hours:     p.Hours,
		StartTime: p.StartTime,
	}

	if p.Lat != nil && p.Lng != nil {
		req.Origin = &models.Point{Lat: *p.Lat, Lng: *p.Lng}
	}

	for _, m := range p.Moods {
		if m = strings.TrimSpace(m); m != "" {
			req.Moods = append(req.Moods, m)
		}
	}

	if p.BudgetTier != "" {
		tier, err := models.ParseBudgetTier(p.BudgetTier)
		if err != nil {
			return planner.Request{}, fmt.Errorf("%w: %w", planner.ErrInvalidRequest, err)
		}
		amount := tier.Amount()
		req.Budget = &amount
	}

	if p.Date != "" {
		day, err := time.ParseInLocation(dateLayout, p.Date, loc)
		if err != nil {
			return planner.Request{}, fmt.Errorf("%w: date: %w", planner.ErrInvalidRequest, err)
		}
		req.Day = day
	}

	return req, nil
}
