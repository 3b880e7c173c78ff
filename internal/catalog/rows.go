// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tomtom215/wanderwise/internal/models"
)

// Sentinel errors returned by the loaders.
var (
	ErrMissingColumn = errors.New("catalog is missing a required column")
	ErrEmptyCatalog  = errors.New("catalog contains no usable rows")
)

// columnAliases maps accepted header spellings to canonical column names.
var columnAliases = map[string]string{
	"name":        "name",
	"title":       "name",
	"description": "description",
	"desc":        "description",
	"address":     "address",
	"lat":         "lat",
	"latitude":    "lat",
	"lng":         "lng",
	"lon":         "lng",
	"long":        "lng",
	"longitude":   "lng",
	"rating":      "rating",
	"reviews":     "reviews",
	"category":    "category",
	"type":        "category",
}

var requiredColumns = []string{"name", "lat", "lng"}

// rowMapper turns raw string records into Locations using a header layout.
type rowMapper struct {
	columns        map[string]int
	attractionRows int
}

// newRowMapper resolves header names. Headers are trimmed and matched
// case-insensitively.
func newRowMapper(header []string, attractionRows int) (*rowMapper, error) {
	m := &rowMapper{columns: make(map[string]int), attractionRows: attractionRows}
	for i, h := range header {
		canonical, ok := columnAliases[strings.ToLower(strings.TrimSpace(h))]
		if !ok {
			continue
		}
		if _, dup := m.columns[canonical]; !dup {
			m.columns[canonical] = i
		}
	}
	for _, col := range requiredColumns {
		if _, ok := m.columns[col]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, col)
		}
	}
	return m, nil
}

// hasCategory reports whether rows carry an explicit category column.
func (m *rowMapper) hasCategory() bool {
	_, ok := m.columns["category"]
	return ok
}

func (m *rowMapper) field(record []string, col string) string {
	i, ok := m.columns[col]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// location maps the rowIdx-th data record. Blank numeric fields become zero.
// When the file has no category column the legacy row boundary decides:
// rows before attractionRows are attractions, the rest are food.
func (m *rowMapper) location(rowIdx int, record []string) (models.Location, error) {
	loc := models.Location{
		Name:        m.field(record, "name"),
		Description: m.field(record, "description"),
		Address:     m.field(record, "address"),
	}
	if loc.Name == "" {
		return loc, errors.New("blank name")
	}

	var err error
	if loc.Lat, err = parseFloat(m.field(record, "lat")); err != nil {
		return loc, fmt.Errorf("lat: %w", err)
	}
	if loc.Lng, err = parseFloat(m.field(record, "lng")); err != nil {
		return loc, fmt.Errorf("lng: %w", err)
	}
	if loc.Rating, err = parseFloat(m.field(record, "rating")); err != nil {
		return loc, fmt.Errorf("rating: %w", err)
	}
	reviews, err := parseFloat(m.field(record, "reviews"))
	if err != nil {
		return loc, fmt.Errorf("reviews: %w", err)
	}
	loc.Reviews = int(reviews)

	if m.hasCategory() {
		if loc.Category, err = models.ParseCategory(m.field(record, "category")); err != nil {
			return loc, err
		}
	} else if rowIdx < m.attractionRows {
		loc.Category = models.CategoryAttraction
	} else {
		loc.Category = models.CategoryFood
	}

	return loc, nil
}

// parseFloat accepts blanks as zero and tolerates thousands separators
// ("1,234") seen in review counts.
func parseFloat(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
}
