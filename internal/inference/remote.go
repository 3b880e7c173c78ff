// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

package inference

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/wanderwise/internal/breaker"
	"github.com/tomtom215/wanderwise/internal/metrics"
)

// RemoteConfig points at an HTTP prediction service exposing
// POST /predict/mood and POST /predict/budget.
type RemoteConfig struct {
	BaseURL string
	Timeout time.Duration
	Breaker breaker.Config
}

type predictRequest struct {
	Text string `json:"text"`
}

type predictResponse struct {
	Label string  `json:"label,omitempty"`
	Value float64 `json:"value,omitempty"`
}

// Remote is a Predictor backed by a prediction service.
type Remote struct {
	client  *http.Client
	baseURL string
	breaker *breaker.Breaker[predictResponse]
}

// NewRemote validates cfg and creates the client.
func NewRemote(cfg RemoteConfig) (*Remote, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("remote inference requires a base URL")
	}
	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid inference base URL: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.Breaker.MaxRequests == 0 {
		cfg.Breaker = breaker.DefaultConfig()
	}

	return &Remote{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		breaker: breaker.New[predictResponse]("inference", cfg.Breaker, nil),
	}, nil
}

// PredictMood implements MoodClassifier.
func (r *Remote) PredictMood(ctx context.Context, text string) (string, error) {
	resp, err := r.breaker.Execute(func() (predictResponse, error) {
		return r.post(ctx, "/predict/mood", text)
	})
	if err == nil && resp.Label == "" {
		err = errors.New("empty mood label")
	}
	metrics.RecordInference(ProviderRemote, "mood", err)
	if err != nil {
		return "", err
	}
	return resp.Label, nil
}

// PredictBudget implements BudgetEstimator.
func (r *Remote) PredictBudget(ctx context.Context, text string) (float64, error) {
	resp, err := r.breaker.Execute(func() (predictResponse, error) {
		return r.post(ctx, "/predict/budget", text)
	})
	metrics.RecordInference(ProviderRemote, "budget", err)
	if err != nil {
		return 0, err
	}
	return resp.Value, nil
}

func (r *Remote) post(ctx context.Context, path, text string) (predictResponse, error) {
	body, err := json.Marshal(predictRequest{Text: text})
	if err != nil {
		return predictResponse{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return predictResponse{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return predictResponse{}, fmt.Errorf("failed to query prediction service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return predictResponse{}, fmt.Errorf("prediction service returned status %d", resp.StatusCode)
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return predictResponse{}, fmt.Errorf("failed to decode prediction: %w", err)
	}
	return out, nil
}

var _ Predictor = (*Remote)(nil)
