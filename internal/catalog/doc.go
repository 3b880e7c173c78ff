// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

/*
Package catalog loads the location catalog and serves read-only lookups
over it.

The catalog is a single file of attractions and restaurants. Two loaders are
available:

  - CSVLoader parses the file with encoding/csv.
  - DuckDBLoader reads CSV or Parquet through an in-memory DuckDB instance.

Both map columns by header name (name, description, address, lat, lng,
rating, reviews, category) with a small set of accepted aliases. Files
without a category column fall back to the legacy layout where the first
DefaultAttractionRows data rows are attractions and the rest are food.
Rows with a blank name or an unparseable number are skipped and counted in
the Report.

Once loaded, a Store is immutable. IDs equal slice positions, and a uniform
lat/lng grid answers radius queries:

	store, report, err := catalog.Load(ctx, catalog.Options{Path: "data/places.csv"})
	if err != nil {
	    return err
	}
	ids := store.Nearby(models.Point{Lat: 23.02, Lng: 72.57}, 90)

Nearby returns a superset of the exact radius match within a tiny slack so
callers can apply their own strict predicate.
*/
package catalog
