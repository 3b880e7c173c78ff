// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

package catalog

import (
	"context"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tomtom215/wanderwise/internal/geo"
	"github.com/tomtom215/wanderwise/internal/models"
)

const sampleCSV = `Name,Description,Address,Lat,Lng,Rating,Reviews,Category
Sabarmati Ashram,Peaceful riverside ashram,Ashram Rd,23.0607,72.5806,4.6,"12,345",attraction
Kankaria Lake,Lakefront promenade,Maninagar,23.0063,72.6011,4.4,9000,place
,Nameless entry,Nowhere,23.0,72.0,4.0,10,food
Manek Chowk,Night street food market,Old City,23.0237,72.5884,4.2,5000,food
Broken Row,Bad latitude,Somewhere,north,72.1,3.0,5,food
Unknown Spot,No coordinates,,,,,,attraction
`

func TestReadCSV_MapsColumns(t *testing.T) {
	locs, skipped, err := readCSV(context.Background(), strings.NewReader(sampleCSV), DefaultAttractionRows)
	if err != nil {
		t.Fatalf("readCSV() error = %v", err)
	}
	if skipped != 2 {
		t.Errorf("skipped = %d, want 2", skipped)
	}
	if len(locs) != 4 {
		t.Fatalf("len(locs) = %d, want 4", len(locs))
	}

	first := locs[0]
	if first.Name != "Sabarmati Ashram" {
		t.Errorf("Name = %q", first.Name)
	}
	if first.Reviews != 12345 {
		t.Errorf("Reviews = %d, want 12345", first.Reviews)
	}
	if first.Rating != 4.6 {
		t.Errorf("Rating = %v, want 4.6", first.Rating)
	}
	if first.Category != models.CategoryAttraction {
		t.Errorf("Category = %q, want attraction", first.Category)
	}
	if locs[1].Category != models.CategoryAttraction {
		t.Errorf("alias 'place' mapped to %q", locs[1].Category)
	}
	if locs[2].Category != models.CategoryFood {
		t.Errorf("Manek Chowk category = %q, want food", locs[2].Category)
	}
	if locs[3].HasCoordinates() {
		t.Error("blank coordinates should load as zero")
	}
}

func TestReadCSV_LegacyBoundary(t *testing.T) {
	data := `name,lat,lng
,1,1
Fort,10,10
Cafe,11,11
Diner,12,12
`
	locs, skipped, err := readCSV(context.Background(), strings.NewReader(data), 2)
	if err != nil {
		t.Fatalf("readCSV() error = %v", err)
	}
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}

	// The boundary counts raw data rows, including the skipped one.
	want := map[string]models.Category{
		"Fort":  models.CategoryAttraction,
		"Cafe":  models.CategoryFood,
		"Diner": models.CategoryFood,
	}
	for _, loc := range locs {
		if loc.Category != want[loc.Name] {
			t.Errorf("%s category = %q, want %q", loc.Name, loc.Category, want[loc.Name])
		}
	}
}

func TestReadCSV_HeaderErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing lat", "name,lng\nA,1\n"},
		{"missing name", "title_x,lat,lng\nA,1,1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := readCSV(context.Background(), strings.NewReader(tt.data), 10)
			if !errors.Is(err, ErrMissingColumn) {
				t.Errorf("error = %v, want ErrMissingColumn", err)
			}
		})
	}
}

func TestReadCSV_BOMHeader(t *testing.T) {
	data := "\ufeffname,lat,lng,category\nA,1,1,food\n"
	locs, _, err := readCSV(context.Background(), strings.NewReader(data), 10)
	if err != nil {
		t.Fatalf("readCSV() error = %v", err)
	}
	if len(locs) != 1 || locs[0].Name != "A" {
		t.Errorf("locs = %+v", locs)
	}
}

func TestLoad_CSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "places.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o600); err != nil {
		t.Fatal(err)
	}

	store, report, err := Load(context.Background(), Options{Path: path})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if report.Loader != LoaderCSV {
		t.Errorf("Loader = %q, want csv", report.Loader)
	}
	if report.Rows != 4 || report.Skipped != 2 {
		t.Errorf("report = %+v", report)
	}

	stats := store.Stats()
	want := Stats{Total: 4, Attractions: 3, Food: 1, WithoutCoordinates: 1}
	if stats != want {
		t.Errorf("Stats() = %+v, want %+v", stats, want)
	}
	for i, loc := range store.Locations() {
		if loc.ID != i {
			t.Errorf("location %d has ID %d", i, loc.ID)
		}
	}
}

func TestLoad_DuckDB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "places.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o600); err != nil {
		t.Fatal(err)
	}

	store, report, err := Load(context.Background(), Options{Path: path, Loader: LoaderDuckDB})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if report.Loader != LoaderDuckDB {
		t.Errorf("Loader = %q, want duckdb", report.Loader)
	}
	if store.Len() != 4 {
		t.Errorf("Len() = %d, want 4", store.Len())
	}
	loc, ok := store.Get(0)
	if !ok || loc.Name != "Sabarmati Ashram" || loc.Reviews != 12345 {
		t.Errorf("Get(0) = %+v, %v", loc, ok)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.csv")
	if err := os.WriteFile(empty, []byte("name,lat,lng\n,1,1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, _, err := Load(context.Background(), Options{Path: empty}); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("empty catalog error = %v, want ErrEmptyCatalog", err)
	}
	if _, _, err := Load(context.Background(), Options{Path: filepath.Join(dir, "missing.csv")}); err == nil {
		t.Error("expected error for missing file")
	}
	if _, _, err := Load(context.Background(), Options{Path: empty, Loader: "xml"}); err == nil {
		t.Error("expected error for unknown loader")
	}
}

func TestLoaderFor(t *testing.T) {
	tests := []struct {
		path   string
		loader string
		want   string
	}{
		{"a.csv", "", LoaderCSV},
		{"a.parquet", "auto", LoaderDuckDB},
		{"a.PARQUET", "", LoaderDuckDB},
		{"a.csv", "duckdb", LoaderDuckDB},
		{"a.parquet", "csv", LoaderCSV},
	}
	for _, tt := range tests {
		l, err := loaderFor(Options{Path: tt.path, Loader: tt.loader})
		if err != nil {
			t.Fatalf("loaderFor(%q, %q) error = %v", tt.path, tt.loader, err)
		}
		if l.Name() != tt.want {
			t.Errorf("loaderFor(%q, %q) = %s, want %s", tt.path, tt.loader, l.Name(), tt.want)
		}
	}
}

func TestScanQuery_EscapesPath(t *testing.T) {
	got := scanQuery("/data/o'brien.csv")
	if !strings.Contains(got, "'/data/o''brien.csv'") {
		t.Errorf("scanQuery() = %s", got)
	}
	if !strings.Contains(scanQuery("x.parquet"), "read_parquet") {
		t.Error("parquet path should use read_parquet")
	}
}

func TestStore_NearbyMatchesFullScan(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	var locs []models.Location
	for i := 0; i < 3000; i++ {
		locs = append(locs, models.Location{
			Name: "p",
			Lat:  rng.Float64()*178 - 89,
			Lng:  rng.Float64()*358 - 179,
		})
	}
	// Clusters near the antimeridian and a pole.
	for i := 0; i < 200; i++ {
		locs = append(locs,
			models.Location{Name: "am", Lat: rng.Float64()*4 - 2, Lng: 179 + rng.Float64()*0.99},
			models.Location{Name: "am", Lat: rng.Float64()*4 - 2, Lng: -179 - rng.Float64()*0.99},
			models.Location{Name: "pole", Lat: 89 + rng.Float64()*0.99, Lng: rng.Float64()*358 - 179},
		)
	}
	locs = append(locs, models.Location{Name: "zero", Lat: 0, Lng: 10})

	store := NewStore(locs, 25)

	queries := []struct {
		p models.Point
		r float64
	}{
		{models.Point{Lat: 23.02, Lng: 72.57}, 90},
		{models.Point{Lat: 0.5, Lng: 179.9}, 150},
		{models.Point{Lat: -0.5, Lng: -179.9}, 300},
		{models.Point{Lat: 89.5, Lng: 10}, 200},
		{models.Point{Lat: -60, Lng: 45}, 1000},
		{models.Point{Lat: 10, Lng: 10}, 0},
		{models.Point{Lat: 45, Lng: -100}, 5000},
	}
	for i := 0; i < 50; i++ {
		queries = append(queries, struct {
			p models.Point
			r float64
		}{models.Point{Lat: rng.Float64()*170 - 85, Lng: rng.Float64()*360 - 180}, rng.Float64() * 2000})
	}

	for _, q := range queries {
		got := make(map[int]bool)
		for _, id := range store.Nearby(q.p, q.r) {
			got[id] = true
			if d := geo.HaversineKm(q.p, locs[id].Point()); d > q.r+nearbySlackKm {
				t.Errorf("Nearby(%v, %v) returned %d at %v km", q.p, q.r, id, d)
			}
		}
		for id := range locs {
			if !locs[id].HasCoordinates() {
				if got[id] {
					t.Errorf("Nearby returned entry %d without coordinates", id)
				}
				continue
			}
			if geo.HaversineKm(q.p, locs[id].Point()) <= q.r && !got[id] {
				t.Errorf("Nearby(%v, %v) missed %d", q.p, q.r, id)
			}
		}
	}
}

func TestStore_NearbySorted(t *testing.T) {
	locs := []models.Location{
		{Name: "c", Lat: 10.02, Lng: 10.02},
		{Name: "a", Lat: 10, Lng: 10},
		{Name: "b", Lat: 10.01, Lng: 10.01},
	}
	store := NewStore(locs, 1)
	ids := store.Nearby(models.Point{Lat: 10, Lng: 10}, 10)
	if len(ids) != 3 {
		t.Fatalf("Nearby() = %v, want 3 ids", ids)
	}
	for i := 1; i < len(ids); i++ {
		if ids[i] <= ids[i-1] {
			t.Errorf("Nearby() not ascending: %v", ids)
		}
	}
}

func TestStore_Get(t *testing.T) {
	store := NewStore([]models.Location{{Name: "x", Lat: 1, Lng: 1}}, 0)
	if _, ok := store.Get(-1); ok {
		t.Error("Get(-1) should fail")
	}
	if _, ok := store.Get(1); ok {
		t.Error("Get(1) should fail")
	}
	if loc, ok := store.Get(0); !ok || loc.Name != "x" {
		t.Errorf("Get(0) = %+v, %v", loc, ok)
	}
	if d := store.Descriptions(); len(d) != 1 {
		t.Errorf("Descriptions() len = %d", len(d))
	}
}
