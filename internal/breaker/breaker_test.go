// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

package breaker

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/wanderwise/internal/metrics"
)

var (
	errUpstream = errors.New("upstream down")
	errNotFound = errors.New("not found")
)

func testConfig() Config {
	return Config{
		MaxRequests:  1,
		Interval:     time.Minute,
		Timeout:      time.Hour,
		MinRequests:  3,
		FailureRatio: 0.6,
	}
}

func TestBreaker_OpensAfterFailures(t *testing.T) {
	b := New[int]("test-open", testConfig(), nil)

	for i := 0; i < 3; i++ {
		if _, err := b.Execute(func() (int, error) { return 0, errUpstream }); !errors.Is(err, errUpstream) {
			t.Fatalf("call %d error = %v, want errUpstream", i, err)
		}
	}

	if b.State() != "open" {
		t.Fatalf("State() = %s, want open", b.State())
	}

	_, err := b.Execute(func() (int, error) { return 1, nil })
	if !IsOpen(err) {
		t.Errorf("error = %v, want open-state rejection", err)
	}
	if got := testutil.ToFloat64(metrics.CircuitBreakerState.WithLabelValues("test-open")); got != 2 {
		t.Errorf("circuit_breaker_state = %v, want 2", got)
	}
	if got := testutil.ToFloat64(metrics.CircuitBreakerRequests.WithLabelValues("test-open", "rejected")); got != 1 {
		t.Errorf("rejected requests = %v, want 1", got)
	}
}

func TestBreaker_IsSuccessfulExcludesErrors(t *testing.T) {
	b := New[int]("test-notfound", testConfig(), func(err error) bool {
		return err == nil || errors.Is(err, errNotFound)
	})

	for i := 0; i < 10; i++ {
		if _, err := b.Execute(func() (int, error) { return 0, errNotFound }); !errors.Is(err, errNotFound) {
			t.Fatalf("error = %v, want errNotFound", err)
		}
	}
	if b.State() != "closed" {
		t.Errorf("State() = %s, want closed", b.State())
	}
}

func TestBreaker_SuccessPassesValue(t *testing.T) {
	b := New[string]("test-success", DefaultConfig(), nil)
	got, err := b.Execute(func() (string, error) { return "ok", nil })
	if err != nil || got != "ok" {
		t.Errorf("Execute() = %q, %v", got, err)
	}
	if b.Name() != "test-success" {
		t.Errorf("Name() = %s", b.Name())
	}
}

func TestIsOpen(t *testing.T) {
	if IsOpen(errUpstream) {
		t.Error("IsOpen(errUpstream) = true")
	}
	if IsOpen(nil) {
		t.Error("IsOpen(nil) = true")
	}
}
