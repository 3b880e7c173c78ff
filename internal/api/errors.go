// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/wanderwise/internal/breaker"
	"github.com/tomtom215/wanderwise/internal/geocode"
	"github.com/tomtom215/wanderwise/internal/inference"
	"github.com/tomtom215/wanderwise/internal/itinerary"
	"github.com/tomtom215/wanderwise/internal/logging"
	"github.com/tomtom215/wanderwise/internal/planner"
)

// errorStatus classifies a service error. Breaker rejections are checked
// before the upstream sentinels because they arrive wrapped in them.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, planner.ErrInvalidRequest),
		errors.Is(err, itinerary.ErrInvalidStartTime):
		return http.StatusBadRequest, ErrCodeValidation
	case errors.Is(err, geocode.ErrLocationNotFound):
		return http.StatusNotFound, ErrCodeLocationNotFound
	case breaker.IsOpen(err):
		return http.StatusServiceUnavailable, ErrCodeServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, ErrCodeTimeout
	case errors.Is(err, geocode.ErrGeocoderUnavailable),
		errors.Is(err, inference.ErrInferenceFailed):
		return http.StatusBadGateway, ErrCodeUpstream
	case errors.Is(err, inference.ErrInferenceUnavailable):
		// Moods or budget were omitted and nothing can infer them.
		return http.StatusBadRequest, ErrCodeValidation
	default:
		return http.StatusInternalServerError, ErrCodeInternalError
	}
}

// respondServiceError maps err to a status and writes it. Server errors
// are logged; their messages are not sent to the client.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := errorStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "Internal server error"
	}

	event := logging.Ctx(r.Context()).Warn()
	if status >= http.StatusInternalServerError {
		event = logging.Ctx(r.Context()).Error()
	}
	event.Err(err).Int("status", status).Str("code", code).Msg("Request failed")

	WriteError(w, r, status, code, message)
}
