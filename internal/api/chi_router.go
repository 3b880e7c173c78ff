// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/wanderwise/internal/middleware"
)

// chiMiddleware adapts http.HandlerFunc middleware to chi's form.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// Router assembles the HTTP routes.
type Router struct {
	handler        *Handler
	chiMiddleware  *ChiMiddleware
	perf           *middleware.PerformanceMonitor
	requestTimeout time.Duration
}

// NewRouter creates a router. A zero requestTimeout disables the
// per-request deadline.
func NewRouter(handler *Handler, mw *ChiMiddleware, requestTimeout time.Duration) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{
		handler:        handler,
		chiMiddleware:  mw,
		requestTimeout: requestTimeout,
	}
}

// SetPerformanceMonitor records API requests into pm and exposes its
// statistics.
func (router *Router) SetPerformanceMonitor(pm *middleware.PerformanceMonitor) {
	router.perf = pm
	router.handler.SetPerformanceMonitor(pm)
}

// SetupChi builds the handler tree.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).NotFound("Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed")
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		if router.perf != nil {
			r.Use(router.perf.Middleware)
		}

		r.Get("/health", router.handler.Health)

		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimit())
			r.Use(chiMiddleware(middleware.Compression))
			if router.requestTimeout > 0 {
				r.Use(chimiddleware.Timeout(router.requestTimeout))
			}

			r.Get("/options", router.handler.Options)
			r.Get("/catalog/stats", router.handler.CatalogStats)
			r.Get("/geocode", router.handler.Geocode)
			r.Post("/recommendations", router.handler.Recommendations)
			r.Post("/itinerary", router.handler.Itinerary)
			r.Get("/debug/performance", router.handler.PerformanceStats)
		})
	})

	return r
}
