// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

/*
Package planner orchestrates one request end to end.

	place text ──► geocoder ──► origin
	moods/budget ─► resolver ─► (inferred from the place text when missing)
	origin, moods, budget, hours ──► ranker ──► attractions, food
	attractions, food ──► itinerary builder ──► steps + route link

Errors from collaborators are returned unchanged so callers can classify
them with errors.Is: geocode.ErrLocationNotFound,
geocode.ErrGeocoderUnavailable, inference.ErrInferenceUnavailable,
inference.ErrInferenceFailed and ErrInvalidRequest.
*/
package planner
