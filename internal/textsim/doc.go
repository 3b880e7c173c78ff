// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

// Package textsim turns free text into sparse tf-idf vectors and compares them.
//
// The ranker uses it as its only semantic signal: the user's mood tags are
// joined into one query string and compared by cosine similarity against
// every location description. Matching is purely lexical.
//
// A model is either fitted at startup from the catalog descriptions or
// loaded from a JSON artifact produced by TFIDF.Save:
//
//	model := textsim.FitTFIDF(descriptions, nil)
//	q := model.Transform("relaxing romantic")
//	score := textsim.Cosine(q, model.Transform(desc))
package textsim
