// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

package api

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/wanderwise/internal/catalog"
	"github.com/tomtom215/wanderwise/internal/inference"
	"github.com/tomtom215/wanderwise/internal/itinerary"
	"github.com/tomtom215/wanderwise/internal/middleware"
	"github.com/tomtom215/wanderwise/internal/models"
	"github.com/tomtom215/wanderwise/internal/planner"
	"github.com/tomtom215/wanderwise/internal/recommend"
	"github.com/tomtom215/wanderwise/internal/textsim"
)

// newTestServer wires the real planner over a small catalog.
func newTestServer(t *testing.T, mwCfg *ChiMiddlewareConfig) *httptest.Server {
	t.Helper()

	store := catalog.NewStore([]models.Location{
		{Name: "Sabarmati Riverfront", Description: "Relaxing riverside promenade", Lat: 23.03, Lng: 72.575, Rating: 2, Category: models.CategoryAttraction},
		{Name: "Calico Museum", Description: "Textile museum with heritage collections", Lat: 23.05, Lng: 72.59, Rating: 2, Category: models.CategoryAttraction},
		{Name: "Agashiye", Description: "Relaxing rooftop thali restaurant", Lat: 23.026, Lng: 72.585, Rating: 2, Category: models.CategoryFood},
	}, 10)
	vec := textsim.FitTFIDF(store.Descriptions(), textsim.NewTokenizer())
	ranker, err := recommend.NewRanker(nil, store, vec, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	builder, err := itinerary.NewBuilder(nil, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	resolver := inference.NewResolverFor(inference.NewLexicon("Relaxing", models.BudgetRegular))
	svc := planner.New(planner.DefaultConfig(), nil, resolver, ranker, builder)

	handler := NewHandler(svc, store, nil)
	router := NewRouter(handler, NewChiMiddleware(mwCfg), 5*time.Second)
	router.SetPerformanceMonitor(middleware.NewPerformanceMonitor(100, 0))

	srv := httptest.NewServer(router.SetupChi())
	t.Cleanup(srv.Close)
	return srv
}

func openConfig() *ChiMiddlewareConfig {
	cfg := DefaultChiMiddlewareConfig()
	cfg.CORSAllowedOrigins = []string{"https://app.example.com"}
	cfg.RateLimitDisabled = true
	return cfg
}

func TestRouter_Itinerary(t *testing.T) {
	srv := newTestServer(t, openConfig())

	body := `{"place":"Ahmedabad","lat":23.02,"lng":72.57,"moods":["Relaxing"],"budget_tier":"Regular","hours":4,"start_time":"10:00","date":"2026-05-02"}`
	resp, err := http.Post(srv.URL+"/api/v1/itinerary", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if resp.Header.Get(middleware.RequestIDHeader) == "" {
		t.Error("X-Request-ID header missing")
	}

	var env struct {
		Success bool         `json:"success"`
		Data    planner.Plan `json:"data"`
		Meta    APIMeta      `json:"meta"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatal(err)
	}
	if !env.Success || env.Meta.RequestID != resp.Header.Get(middleware.RequestIDHeader) {
		t.Errorf("envelope = %+v", env)
	}
	if env.Data.Recommendation == nil || len(env.Data.Attractions) != 2 {
		t.Fatalf("plan = %+v", env.Data)
	}
	if len(env.Data.Steps) == 0 || env.Data.Steps[0].Type != models.StepPlace {
		t.Errorf("steps = %+v", env.Data.Steps)
	}
	if !strings.HasPrefix(env.Data.RouteURL, "https://www.google.com/maps/dir/") {
		t.Errorf("route_url = %q", env.Data.RouteURL)
	}
}

func TestRouter_Gzip(t *testing.T) {
	srv := newTestServer(t, openConfig())

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/options", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	// Setting the header manually disables transparent decompression.
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.Header.Get("Content-Encoding") != "gzip" {
		t.Fatalf("Content-Encoding = %q", resp.Header.Get("Content-Encoding"))
	}
	zr, err := gzip.NewReader(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	var env APIResponse
	if err := json.NewDecoder(zr).Decode(&env); err != nil || !env.Success {
		t.Errorf("decode gzip body: %v, %+v", err, env)
	}
}

func TestRouter_Routes(t *testing.T) {
	srv := newTestServer(t, openConfig())

	tests := []struct {
		name   string
		method string
		path   string
		status int
		code   string
	}{
		{"health", http.MethodGet, "/api/v1/health", http.StatusOK, ""},
		{"options", http.MethodGet, "/api/v1/options", http.StatusOK, ""},
		{"catalog stats", http.MethodGet, "/api/v1/catalog/stats", http.StatusOK, ""},
		{"performance", http.MethodGet, "/api/v1/debug/performance", http.StatusOK, ""},
		{"geocode without geocoder", http.MethodGet, "/api/v1/geocode?q=Paris", http.StatusBadGateway, ErrCodeUpstream},
		{"unknown route", http.MethodGet, "/api/v1/nope", http.StatusNotFound, ErrCodeNotFound},
		{"wrong method", http.MethodGet, "/api/v1/itinerary", http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, srv.URL+tt.path, nil)
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.status {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			var env APIResponse
			if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
				t.Fatal(err)
			}
			if tt.code != "" && (env.Error == nil || env.Error.Code != tt.code) {
				t.Errorf("error = %+v, want %s", env.Error, tt.code)
			}
		})
	}
}

func TestRouter_Metrics(t *testing.T) {
	srv := newTestServer(t, openConfig())

	if resp, err := http.Get(srv.URL + "/api/v1/health"); err == nil {
		resp.Body.Close()
	}
	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	buf := new(strings.Builder)
	if _, err := io.Copy(buf, resp.Body); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `api_requests_total{endpoint="/api/v1/health",method="GET",status_code="200"}`) {
		t.Error("/metrics missing health request counter")
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	srv := newTestServer(t, openConfig())

	tests := []struct {
		origin  string
		allowed bool
	}{
		{"https://app.example.com", true},
		{"https://evil.example.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodOptions, srv.URL+"/api/v1/itinerary", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatal(err)
			}
			resp.Body.Close()

			got := resp.Header.Get("Access-Control-Allow-Origin")
			if tt.allowed && got != tt.origin {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.origin)
			}
			if !tt.allowed && got != "" {
				t.Errorf("Access-Control-Allow-Origin = %q, want empty", got)
			}
		})
	}
}

func TestRouter_RateLimit(t *testing.T) {
	cfg := openConfig()
	cfg.RateLimitDisabled = false
	cfg.RateLimitRequests = 2
	cfg.RateLimitWindow = time.Minute
	srv := newTestServer(t, cfg)

	var last *http.Response
	for i := 0; i < 3; i++ {
		resp, err := http.Get(srv.URL + "/api/v1/options")
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		last = resp
	}
	if last.StatusCode != http.StatusTooManyRequests {
		t.Errorf("third request status = %d, want 429", last.StatusCode)
	}

	// Health is exempt.
	resp, err := http.Get(srv.URL + "/api/v1/health")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("health status = %d, want 200", resp.StatusCode)
	}
}
