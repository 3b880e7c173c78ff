// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

package inference

import (
	"context"
	"fmt"
)

// Input is what the caller supplied. A nil Budget means "not supplied";
// zero is a valid budget (the Free tier).
type Input struct {
	Text   string
	Moods  []string
	Budget *float64
}

// Resolved holds the final moods and budget and records which were inferred.
type Resolved struct {
	Moods          []string `json:"moods"`
	Budget         float64  `json:"budget"`
	MoodInferred   bool     `json:"mood_inferred"`
	BudgetInferred bool     `json:"budget_inferred"`
}

// source is the outcome of one row of the decision table.
type source int

const (
	fromCaller source = iota
	fromInference
	unavailable
)

// decide is the per-field decision table:
//
//	supplied | provider configured | outcome
//	yes      | any                 | caller value
//	no       | yes                 | inference
//	no       | no                  | unavailable
func decide(supplied, configured bool) source {
	switch {
	case supplied:
		return fromCaller
	case configured:
		return fromInference
	default:
		return unavailable
	}
}

// Resolver fills missing moods and budget. Either collaborator may be nil.
type Resolver struct {
	moods  MoodClassifier
	budget BudgetEstimator
}

// NewResolver creates a resolver over the given collaborators.
func NewResolver(moods MoodClassifier, budget BudgetEstimator) *Resolver {
	return &Resolver{moods: moods, budget: budget}
}

// NewResolverFor creates a resolver using p for both fields. A nil p
// disables inference.
func NewResolverFor(p Predictor) *Resolver {
	if p == nil {
		return &Resolver{}
	}
	return &Resolver{moods: p, budget: p}
}

// Resolve applies the decision table to moods and budget independently.
func (r *Resolver) Resolve(ctx context.Context, in Input) (Resolved, error) {
	var out Resolved

	switch decide(len(in.Moods) > 0, r.moods != nil) {
	case fromCaller:
		out.Moods = in.Moods
	case fromInference:
		mood, err := r.moods.PredictMood(ctx, in.Text)
		if err != nil {
			return Resolved{}, fmt.Errorf("%w: mood: %w", ErrInferenceFailed, err)
		}
		out.Moods = []string{mood}
		out.MoodInferred = true
	case unavailable:
		return Resolved{}, fmt.Errorf("%w: no moods supplied", ErrInferenceUnavailable)
	}

	switch decide(in.Budget != nil, r.budget != nil) {
	case fromCaller:
		out.Budget = *in.Budget
	case fromInference:
		budget, err := r.budget.PredictBudget(ctx, in.Text)
		if err != nil {
			return Resolved{}, fmt.Errorf("%w: budget: %w", ErrInferenceFailed, err)
		}
		out.Budget = budget
		out.BudgetInferred = true
	case unavailable:
		return Resolved{}, fmt.Errorf("%w: no budget supplied", ErrInferenceUnavailable)
	}

	return out, nil
}
