// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

package validation

import (
	"strings"
	"testing"
)

type tripRequest struct {
	Place     string   `json:"place" validate:"required,max=20"`
	Lat       *float64 `json:"lat" validate:"omitempty,latitude"`
	Hours     float64  `json:"hours" validate:"omitempty,gte=1,lte=12"`
	Moods     []string `json:"moods" validate:"max=3,dive,min=1"`
	StartTime string   `json:"start_time" validate:"omitempty,clock"`
	Tier      string   `json:"budget_tier" validate:"omitempty,budget_tier"`
	Internal  string   `json:"-" validate:"omitempty,oneof=a b"`
}

func float(v float64) *float64 { return &v }

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()
	if v1 == nil || v1 != v2 {
		t.Error("GetValidator() should return one shared instance")
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		input   tripRequest
		field   string
		tag     string
		message string
	}{
		{
			name:  "valid",
			input: tripRequest{Place: "Ahmedabad", Lat: float(23), Hours: 4, Moods: []string{"Cultural"}, StartTime: "09:30", Tier: "premium"},
		},
		{
			name:    "missing place",
			input:   tripRequest{},
			field:   "place",
			tag:     "required",
			message: "place is required",
		},
		{
			name:    "long place",
			input:   tripRequest{Place: strings.Repeat("x", 21)},
			field:   "place",
			tag:     "max",
			message: "place must be at most 20 characters",
		},
		{
			name:    "latitude out of range",
			input:   tripRequest{Place: "x", Lat: float(91)},
			field:   "lat",
			tag:     "latitude",
			message: "lat must be a valid latitude (-90 to 90)",
		},
		{
			name:    "hours too high",
			input:   tripRequest{Place: "x", Hours: 13},
			field:   "hours",
			tag:     "lte",
			message: "hours must be less than or equal to 12",
		},
		{
			name:    "too many moods",
			input:   tripRequest{Place: "x", Moods: []string{"a", "b", "c", "d"}},
			field:   "moods",
			tag:     "max",
			message: "moods must be at most 3 items",
		},
		{
			name:    "bad clock",
			input:   tripRequest{Place: "x", StartTime: "25:00"},
			field:   "start_time",
			tag:     "clock",
			message: "start_time must be a time in HH:MM format",
		},
		{
			name:    "unknown tier",
			input:   tripRequest{Place: "x", Tier: "lavish"},
			field:   "budget_tier",
			tag:     "budget_tier",
			message: "budget_tier must be one of: Free, Regular, Moderate, Premium",
		},
		{
			name:    "untagged field keeps Go name",
			input:   tripRequest{Place: "x", Internal: "c"},
			field:   "Internal",
			tag:     "oneof",
			message: "Internal must be one of: a b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(&tt.input)
			if tt.field == "" {
				if verr != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(errs), verr)
			}
			if errs[0].Field() != tt.field {
				t.Errorf("Field() = %q, want %q", errs[0].Field(), tt.field)
			}
			if errs[0].Tag() != tt.tag {
				t.Errorf("Tag() = %q, want %q", errs[0].Tag(), tt.tag)
			}
			if errs[0].Error() != tt.message {
				t.Errorf("Error() = %q, want %q", errs[0].Error(), tt.message)
			}
		})
	}
}

func TestClockValidator(t *testing.T) {
	type req struct {
		Start string `validate:"clock"`
	}
	for _, s := range []string{"00:00", "09:30", "10:00", "23:59", "7:05"} {
		if verr := ValidateStruct(&req{Start: s}); verr != nil {
			t.Errorf("%q rejected: %v", s, verr)
		}
	}
	for _, s := range []string{"", "24:00", "12:60", "10am", "10:00:00", "noon"} {
		if verr := ValidateStruct(&req{Start: s}); verr == nil {
			t.Errorf("%q accepted", s)
		}
	}
}

func TestToAPIError(t *testing.T) {
	t.Run("single", func(t *testing.T) {
		verr := ValidateStruct(&tripRequest{Place: "x", Hours: 0.5})
		if verr == nil {
			t.Fatal("expected error")
		}
		apiErr := verr.ToAPIError()
		if apiErr.Code != "VALIDATION_ERROR" {
			t.Errorf("Code = %q", apiErr.Code)
		}
		if apiErr.Message != "hours must be greater than or equal to 1" {
			t.Errorf("Message = %q", apiErr.Message)
		}
		if apiErr.Details["field"] != "hours" {
			t.Errorf("Details = %v", apiErr.Details)
		}
	})

	t.Run("multiple", func(t *testing.T) {
		verr := ValidateStruct(&tripRequest{Hours: 20, StartTime: "x"})
		if verr == nil {
			t.Fatal("expected error")
		}
		apiErr := verr.ToAPIError()
		for _, want := range []string{"place: place is required", "hours: ", "start_time: "} {
			if !strings.Contains(apiErr.Message, want) {
				t.Errorf("Message %q missing %q", apiErr.Message, want)
			}
		}
		fields, ok := apiErr.Details["fields"].([]map[string]interface{})
		if !ok || len(fields) != 3 {
			t.Errorf("Details[fields] = %v", apiErr.Details["fields"])
		}
		if verr.Error() == "" {
			t.Error("Error() should not be empty")
		}
	})

	t.Run("empty", func(t *testing.T) {
		apiErr := (&RequestValidationError{}).ToAPIError()
		if apiErr.Message != "Validation failed" {
			t.Errorf("Message = %q", apiErr.Message)
		}
	})
}
