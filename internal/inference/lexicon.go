// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

package inference

import (
	"context"

	"github.com/tomtom215/wanderwise/internal/metrics"
	"github.com/tomtom215/wanderwise/internal/models"
	"github.com/tomtom215/wanderwise/internal/textsim"
)

var moodKeywords = map[string][]string{
	"Relaxing": {
		"relax", "relaxing", "calm", "peaceful", "quiet", "lake", "garden", "park",
		"beach", "spa", "serene", "leisure", "unwind", "stroll", "riverfront",
	},
	"Adventurous": {
		"adventure", "adventurous", "trek", "trekking", "hike", "hiking", "climb",
		"rafting", "safari", "wildlife", "camping", "zipline", "thrill", "sports", "water",
	},
	"Romantic": {
		"romantic", "romance", "couple", "couples", "honeymoon", "sunset", "candlelight",
		"date", "love", "dinner", "view", "rooftop",
	},
	"Cultural": {
		"culture", "cultural", "museum", "heritage", "history", "historic", "historical",
		"art", "architecture", "fort", "palace", "monument", "craft", "festival", "market",
	},
	"Spiritual": {
		"spiritual", "temple", "mosque", "church", "ashram", "shrine", "pilgrimage",
		"meditation", "prayer", "holy", "sacred", "gurudwara", "monastery", "yoga",
	},
}

var tierKeywords = map[models.BudgetTier][]string{
	models.BudgetFree: {
		"free", "budget", "cheap", "backpacking", "backpacker", "student", "walk", "public",
	},
	models.BudgetRegular: {
		"affordable", "casual", "family", "local", "street", "simple",
	},
	models.BudgetModerate: {
		"comfortable", "moderate", "mid", "weekend", "cafe", "boutique",
	},
	models.BudgetPremium: {
		"luxury", "premium", "resort", "fine", "exclusive", "five", "villa", "private", "gourmet",
	},
}

// Lexicon scores keyword hits. Ties go to the label listed first in
// models.Moods or models.BudgetTiers; no hits yield the configured default.
type Lexicon struct {
	tok         *textsim.Tokenizer
	moods       map[string]string
	tiers       map[string]models.BudgetTier
	defaultMood string
	defaultTier models.BudgetTier
}

// NewLexicon builds the keyword index. Blank defaults fall back to
// Relaxing and Regular.
func NewLexicon(defaultMood string, defaultTier models.BudgetTier) *Lexicon {
	if defaultMood == "" {
		defaultMood = "Relaxing"
	}
	if defaultTier == "" {
		defaultTier = models.BudgetRegular
	}

	l := &Lexicon{
		tok:         textsim.NewTokenizer(textsim.WithoutStopWords()),
		moods:       make(map[string]string),
		tiers:       make(map[string]models.BudgetTier),
		defaultMood: defaultMood,
		defaultTier: defaultTier,
	}
	for label, words := range moodKeywords {
		for _, w := range words {
			l.moods[w] = label
		}
	}
	for tier, words := range tierKeywords {
		for _, w := range words {
			l.tiers[w] = tier
		}
	}
	return l
}

// PredictMood implements MoodClassifier.
func (l *Lexicon) PredictMood(_ context.Context, text string) (string, error) {
	hits := make(map[string]int)
	for _, token := range l.tok.Tokens(text) {
		if label, ok := l.moods[token]; ok {
			hits[label]++
		}
	}

	best, bestHits := l.defaultMood, 0
	for _, label := range models.Moods {
		if hits[label] > bestHits {
			best, bestHits = label, hits[label]
		}
	}
	metrics.RecordInference(ProviderLexicon, "mood", nil)
	return best, nil
}

// PredictBudget implements BudgetEstimator.
func (l *Lexicon) PredictBudget(_ context.Context, text string) (float64, error) {
	hits := make(map[models.BudgetTier]int)
	for _, token := range l.tok.Tokens(text) {
		if tier, ok := l.tiers[token]; ok {
			hits[tier]++
		}
	}

	best, bestHits := l.defaultTier, 0
	for _, tier := range models.BudgetTiers {
		if hits[tier] > bestHits {
			best, bestHits = tier, hits[tier]
		}
	}
	metrics.RecordInference(ProviderLexicon, "budget", nil)
	return best.Amount(), nil
}

var _ Predictor = (*Lexicon)(nil)
