// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tomtom215/wanderwise/internal/logging"
	"github.com/tomtom215/wanderwise/internal/models"
)

// Loader names accepted in Options.Loader.
const (
	LoaderAuto   = "auto"
	LoaderCSV    = "csv"
	LoaderDuckDB = "duckdb"
)

// DefaultAttractionRows is the legacy boundary between attraction and food
// rows in exports that have no category column.
const DefaultAttractionRows = 523

// Options controls how the catalog file is read.
type Options struct {
	// Path to a CSV or Parquet file.
	Path string

	// Loader is auto, csv or duckdb. Auto picks duckdb for Parquet files
	// and csv otherwise.
	Loader string

	// AttractionRows applies only when the file has no category column.
	AttractionRows int

	// CellSizeKm is the spatial index cell size.
	CellSizeKm float64
}

// Report describes a completed load.
type Report struct {
	Loader   string        `json:"loader"`
	Rows     int           `json:"rows"`
	Skipped  int           `json:"skipped"`
	Duration time.Duration `json:"duration"`
}

// Loader reads raw location rows from a file.
type Loader interface {
	Load(ctx context.Context, path string, attractionRows int) ([]models.Location, int, error)
	Name() string
}

// Load reads the catalog described by opts and builds a Store.
func Load(ctx context.Context, opts Options) (*Store, Report, error) {
	if opts.AttractionRows <= 0 {
		opts.AttractionRows = DefaultAttractionRows
	}

	loader, err := loaderFor(opts)
	if err != nil {
		return nil, Report{}, err
	}

	start := time.Now()
	locs, skipped, err := loader.Load(ctx, opts.Path, opts.AttractionRows)
	if err != nil {
		return nil, Report{}, fmt.Errorf("load catalog %s: %w", opts.Path, err)
	}
	if len(locs) == 0 {
		return nil, Report{}, fmt.Errorf("load catalog %s: %w", opts.Path, ErrEmptyCatalog)
	}

	report := Report{
		Loader:   loader.Name(),
		Rows:     len(locs),
		Skipped:  skipped,
		Duration: time.Since(start),
	}
	return NewStore(locs, opts.CellSizeKm), report, nil
}

func loaderFor(opts Options) (Loader, error) {
	switch strings.ToLower(opts.Loader) {
	case "", LoaderAuto:
		if strings.EqualFold(filepath.Ext(opts.Path), ".parquet") {
			return &DuckDBLoader{}, nil
		}
		return &CSVLoader{}, nil
	case LoaderCSV:
		return &CSVLoader{}, nil
	case LoaderDuckDB:
		return &DuckDBLoader{}, nil
	default:
		return nil, fmt.Errorf("unknown catalog loader %q", opts.Loader)
	}
}

// CSVLoader reads comma-separated catalogs with a header row.
type CSVLoader struct{}

// Name implements Loader.
func (l *CSVLoader) Name() string { return LoaderCSV }

// Load implements Loader.
func (l *CSVLoader) Load(ctx context.Context, path string, attractionRows int) ([]models.Location, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	return readCSV(ctx, f, attractionRows)
}

// readCSV parses records from r. Rows that cannot be mapped are skipped
// and counted.
func readCSV(ctx context.Context, r io.Reader, attractionRows int) ([]models.Location, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("read header: %w", err)
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	mapper, err := newRowMapper(header, attractionRows)
	if err != nil {
		return nil, 0, err
	}

	logger := logging.WithComponent("catalog")
	var (
		locs    []models.Location
		skipped int
	)
	for row := 0; ; row++ {
		if row%1024 == 0 && ctx.Err() != nil {
			return nil, 0, ctx.Err()
		}
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("read row %d: %w", row+1, err)
		}

		loc, err := mapper.location(row, record)
		if err != nil {
			skipped++
			logger.Warn().Int("row", row+1).Err(err).Msg("Skipping catalog row")
			continue
		}
		locs = append(locs, loc)
	}
	return locs, skipped, nil
}
