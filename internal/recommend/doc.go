// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

// Package recommend filters and ranks catalog entries for a traveller.
//
// # Pipeline
//
// For a query (origin, moods, budget, time budget in hours) the ranker:
//
//  1. Drops entries without coordinates.
//  2. Computes the great-circle distance from the origin, travel time at a
//     constant speed and total time including a one hour visit, and keeps
//     entries whose total time fits the time budget.
//  3. Scores each survivor by the cosine similarity between the joined mood
//     words and its description, divided by (1 + total time + distance).
//  4. Applies the rating-based budget filter.
//  5. Splits by category, sorts each list by score (ties by catalog ID) and
//     truncates to 20 attractions and 10 food entries.
//
// Step 2 starts from the catalog's spatial index, queried with the largest
// radius that could still fit the time budget, so only nearby cells are
// visited. The exact time test is still applied to every returned entry.
//
// # Determinism
//
// Ranking depends only on the query, the immutable catalog and the fitted
// vectorizer. Identical queries produce identical results.
//
// # Usage
//
//	ranker, err := recommend.NewRanker(recommend.DefaultConfig(), store, tfidf, logging.Logger())
//	if err != nil {
//	    return err
//	}
//	res := ranker.Rank(models.Query{
//	    Origin:       models.Point{Lat: 23.02, Lng: 72.57},
//	    Moods:        []string{"Relaxing"},
//	    Budget:       300,
//	    TimeBudgetHr: 4,
//	})
package recommend
