// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

// Package inference infers a mood label or a budget from free text when a
// caller does not supply them.
//
// Two providers exist. The lexicon provider is local and deterministic: it
// scores keyword hits per mood label and per budget tier. The remote
// provider calls an HTTP prediction service behind a circuit breaker.
// Resolver combines caller input with a provider using a fixed decision
// table.
package inference

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tomtom215/wanderwise/internal/models"
)

var (
	// ErrInferenceUnavailable means a value was needed but no provider is
	// configured for it.
	ErrInferenceUnavailable = errors.New("inference unavailable")

	// ErrInferenceFailed wraps provider errors.
	ErrInferenceFailed = errors.New("inference failed")
)

// Provider names accepted in configuration.
const (
	ProviderNone    = "none"
	ProviderLexicon = "lexicon"
	ProviderRemote  = "remote"
)

// MoodClassifier predicts a mood label from text.
type MoodClassifier interface {
	PredictMood(ctx context.Context, text string) (string, error)
}

// BudgetEstimator predicts a numeric budget from text.
type BudgetEstimator interface {
	PredictBudget(ctx context.Context, text string) (float64, error)
}

// Predictor provides both predictions.
type Predictor interface {
	MoodClassifier
	BudgetEstimator
}

// Config selects a provider.
type Config struct {
	Provider    string
	DefaultMood string
	DefaultTier models.BudgetTier
	Remote      RemoteConfig
}

// New builds the Predictor named by cfg.Provider. ProviderNone returns a
// nil Predictor, which Resolver treats as "not configured".
func New(cfg Config) (Predictor, error) {
	switch strings.ToLower(cfg.Provider) {
	case ProviderNone:
		return nil, nil
	case "", ProviderLexicon:
		return NewLexicon(cfg.DefaultMood, cfg.DefaultTier), nil
	case ProviderRemote:
		return NewRemote(cfg.Remote)
	default:
		return nil, fmt.Errorf("unknown inference provider %q", cfg.Provider)
	}
}
