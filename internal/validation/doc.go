// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

/*
Package validation wraps go-playground/validator with a shared instance and
messages that use the JSON field names clients send.

Request structs declare their rules in tags:

	type PlanRequest struct {
	    Place     string   `json:"place" validate:"required_without_all=Lat Lng,omitempty,max=200"`
	    Hours     float64  `json:"hours" validate:"omitempty,gte=1,lte=12"`
	    StartTime string   `json:"start_time" validate:"omitempty,clock"`
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
	    apiErr := verr.ToAPIError()
	    // respond 400 with apiErr.Code and apiErr.Message
	}

Besides the built-in tags the validator knows clock ("HH:MM", 24 hour) and
budget_tier (Free, Regular, Moderate, Premium).
*/
package validation
