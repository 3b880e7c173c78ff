// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2" // registers the "duckdb" driver

	"github.com/tomtom215/wanderwise/internal/logging"
	"github.com/tomtom215/wanderwise/internal/models"
)

// DuckDBLoader reads CSV or Parquet catalogs through an in-memory DuckDB
// instance. Every column is read as text and mapped by the same rules as
// the CSV loader.
type DuckDBLoader struct{}

// Name implements Loader.
func (l *DuckDBLoader) Name() string { return LoaderDuckDB }

// Load implements Loader.
func (l *DuckDBLoader) Load(ctx context.Context, path string, attractionRows int) ([]models.Location, int, error) {
	// Autoload stays off so a missing network never stalls startup.
	db, err := sql.Open("duckdb", ":memory:?autoinstall_known_extensions=false&autoload_known_extensions=false")
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open duckdb: %w", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logging.Warn().Err(cerr).Msg("Failed to close duckdb")
		}
	}()

	rows, err := db.QueryContext(ctx, scanQuery(path))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query catalog: %w", err)
	}
	defer rows.Close()

	header, err := rows.Columns()
	if err != nil {
		return nil, 0, err
	}
	mapper, err := newRowMapper(header, attractionRows)
	if err != nil {
		return nil, 0, err
	}

	logger := logging.WithComponent("catalog")
	values := make([]sql.NullString, len(header))
	dest := make([]any, len(header))
	for i := range values {
		dest[i] = &values[i]
	}
	record := make([]string, len(header))

	var (
		locs    []models.Location
		skipped int
	)
	for row := 0; rows.Next(); row++ {
		if err := rows.Scan(dest...); err != nil {
			return nil, 0, fmt.Errorf("scan row %d: %w", row+1, err)
		}
		for i := range values {
			record[i] = values[i].String
		}

		loc, err := mapper.location(row, record)
		if err != nil {
			skipped++
			logger.Warn().Int("row", row+1).Err(err).Msg("Skipping catalog row")
			continue
		}
		locs = append(locs, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return locs, skipped, nil
}

// scanQuery builds the table function call for path. Table functions do not
// accept bound parameters, so the path is embedded as an escaped literal.
func scanQuery(path string) string {
	literal := "'" + strings.ReplaceAll(path, "'", "''") + "'"
	if strings.EqualFold(filepath.Ext(path), ".parquet") {
		return "SELECT * FROM read_parquet(" + literal + ")"
	}
	return "SELECT * FROM read_csv_auto(" + literal + ", header=true, all_varchar=true)"
}
