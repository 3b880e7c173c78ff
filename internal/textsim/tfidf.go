// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

package textsim

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/goccy/go-json"
)

// ErrEmptyModel is returned when loading a vectorizer without vocabulary.
var ErrEmptyModel = errors.New("tfidf model has no vocabulary")

// Vectorizer maps text into a fixed vector space.
type Vectorizer interface {
	Transform(text string) Vector
}

// TFIDF is a fitted term-frequency / inverse-document-frequency model.
// It is immutable after fitting and safe for concurrent use.
//
// Weights follow the smoothed formulation: idf(t) = ln((1+n)/(1+df(t))) + 1,
// weight = count * idf, and every vector is L2-normalized. Terms that were
// not seen while fitting are ignored by Transform.
type TFIDF struct {
	vocab map[string]int
	idf   []float64
	tok   *Tokenizer
}

// FitTFIDF learns vocabulary and idf weights from docs.
func FitTFIDF(docs []string, tok *Tokenizer) *TFIDF {
	if tok == nil {
		tok = NewTokenizer()
	}

	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, term := range tok.Tokens(doc) {
			if _, dup := seen[term]; dup {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	n := float64(len(docs))
	m := &TFIDF{
		vocab: make(map[string]int, len(terms)),
		idf:   make([]float64, len(terms)),
		tok:   tok,
	}
	for i, term := range terms {
		m.vocab[term] = i
		m.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
	return m
}

// VocabularySize returns the number of distinct terms.
func (m *TFIDF) VocabularySize() int {
	return len(m.idf)
}

// Transform returns the L2-normalized tf-idf vector of text.
func (m *TFIDF) Transform(text string) Vector {
	counts := make(map[int]float64)
	for _, term := range m.tok.Tokens(text) {
		if idx, ok := m.vocab[term]; ok {
			counts[idx]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	v := make(Vector, 0, len(counts))
	for idx, tf := range counts {
		v = append(v, Term{Index: idx, Weight: tf * m.idf[idx]})
	}
	sort.Slice(v, func(i, j int) bool { return v[i].Index < v[j].Index })
	return v.Normalize()
}

// TransformAll transforms every document in order.
func (m *TFIDF) TransformAll(docs []string) []Vector {
	out := make([]Vector, len(docs))
	for i, d := range docs {
		out[i] = m.Transform(d)
	}
	return out
}

// tfidfArtifact is the on-disk form of a fitted model.
type tfidfArtifact struct {
	Version   int       `json:"version"`
	StopWords bool      `json:"stop_words"`
	Terms     []string  `json:"terms"`
	IDF       []float64 `json:"idf"`
}

// Save writes the fitted model as JSON.
func (m *TFIDF) Save(w io.Writer) error {
	terms := make([]string, len(m.idf))
	for term, idx := range m.vocab {
		terms[idx] = term
	}
	art := tfidfArtifact{Version: 1, StopWords: m.tok.stopWords != nil, Terms: terms, IDF: m.idf}
	return json.NewEncoder(w).Encode(&art)
}

// LoadTFIDF reads a model written by Save.
func LoadTFIDF(r io.Reader) (*TFIDF, error) {
	var art tfidfArtifact
	if err := json.NewDecoder(r).Decode(&art); err != nil {
		return nil, fmt.Errorf("decode tfidf model: %w", err)
	}
	if len(art.Terms) == 0 {
		return nil, ErrEmptyModel
	}
	if len(art.Terms) != len(art.IDF) {
		return nil, fmt.Errorf("tfidf model has %d terms but %d idf weights", len(art.Terms), len(art.IDF))
	}

	tok := NewTokenizer()
	if !art.StopWords {
		tok = NewTokenizer(WithoutStopWords())
	}

	m := &TFIDF{vocab: make(map[string]int, len(art.Terms)), idf: art.IDF, tok: tok}
	for i, term := range art.Terms {
		m.vocab[term] = i
	}
	return m, nil
}
