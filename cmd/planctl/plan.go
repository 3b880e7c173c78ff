// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/wanderwise/internal/models"
	"github.com/tomtom215/wanderwise/internal/planner"
	"github.com/tomtom215/wanderwise/internal/validation"
)

// queryFlags are shared by recommend and plan.
type queryFlags struct {
	Place      string   `json:"place" validate:"required_without_all=Lat Lng,omitempty,max=200"`
	Lat        *float64 `json:"lat" validate:"required_with=Lng,omitempty,latitude"`
	Lng        *float64 `json:"lng" validate:"required_with=Lat,omitempty,longitude"`
	Moods      []string `json:"mood" validate:"max=10,dive,required,max=50"`
	BudgetTier string   `json:"budget_tier" validate:"omitempty,budget_tier"`
	Hours      float64  `json:"hours" validate:"omitempty,gt=0"`
	StartTime  string   `json:"start" validate:"omitempty,clock"`
	Date       string   `json:"date" validate:"omitempty,datetime=2006-01-02"`

	lat, lng float64
}

func (f *queryFlags) register(cmd *cobra.Command, withSchedule bool) {
	fs := cmd.Flags()
	fs.StringVar(&f.Place, "place", "", "place name to geocode and infer preferences from")
	fs.Float64Var(&f.lat, "lat", 0, "origin latitude")
	fs.Float64Var(&f.lng, "lng", 0, "origin longitude")
	fs.StringSliceVar(&f.Moods, "mood", nil, "mood, repeatable (inferred from --place when empty)")
	fs.StringVar(&f.BudgetTier, "budget-tier", "", "Free, Regular, Moderate or Premium (inferred when empty)")
	fs.Float64Var(&f.Hours, "hours", 0, "time budget in hours (server default when zero)")
	if withSchedule {
		fs.StringVar(&f.StartTime, "start", "", "day start time HH:MM")
		fs.StringVar(&f.Date, "date", "", "calendar day YYYY-MM-DD (today when empty)")
	}
}

// request validates the flags and converts them.
func (f *queryFlags) request(cmd *cobra.Command) (planner.Request, error) {
	if cmd.Flags().Changed("lat") {
		f.Lat = &f.lat
	}
	if cmd.Flags().Changed("lng") {
		f.Lng = &f.lng
	}
	if err := validation.ValidateStruct(f); err != nil {
		return planner.Request{}, err
	}

	req := planner.Request{
		Place:     strings.TrimSpace(f.Place),
		Hours:     f.Hours,
		StartTime: f.StartTime,
	}
	for _, m := range f.Moods {
		if m = strings.TrimSpace(m); m != "" {
			req.Moods = append(req.Moods, m)
		}
	}
	if f.Lat != nil && f.Lng != nil {
		req.Origin = &models.Point{Lat: *f.Lat, Lng: *f.Lng}
	}
	if f.BudgetTier != "" {
		tier, err := models.ParseBudgetTier(f.BudgetTier)
		if err != nil {
			return planner.Request{}, err
		}
		amount := tier.Amount()
		req.Budget = &amount
	}
	if f.Date != "" {
		day, err := time.ParseInLocation("2006-01-02", f.Date, time.Local)
		if err != nil {
			return planner.Request{}, fmt.Errorf("invalid date: %w", err)
		}
		req.Day = day
	}
	return req, nil
}

func newRecommendCmd(opts *globalOptions) *cobra.Command {
	flags := &queryFlags{}
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Rank attractions and restaurants for a location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := flags.request(cmd)
			if err != nil {
				return err
			}
			a, err := opts.loadApp(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			rec, err := a.Planner.Recommend(cmd.Context(), req)
			if err != nil {
				return err
			}
			return opts.printJSON(cmd.OutOrStdout(), rec)
		},
	}
	flags.register(cmd, false)
	return cmd
}

func newPlanCmd(opts *globalOptions) *cobra.Command {
	flags := &queryFlags{}
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Build a one-day itinerary for a location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := flags.request(cmd)
			if err != nil {
				return err
			}
			a, err := opts.loadApp(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			plan, err := a.Planner.Plan(cmd.Context(), req)
			if err != nil {
				return err
			}
			return opts.printJSON(cmd.OutOrStdout(), plan)
		},
	}
	flags.register(cmd, true)
	return cmd
}
