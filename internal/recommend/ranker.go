// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

package recommend

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/wanderwise/internal/geo"
	"github.com/tomtom215/wanderwise/internal/metrics"
	"github.com/tomtom215/wanderwise/internal/models"
	"github.com/tomtom215/wanderwise/internal/textsim"
)

// Catalog is the read-only view of the location catalog the ranker needs.
// Location IDs must equal their index in Locations.
type Catalog interface {
	Locations() []models.Location
	Nearby(p models.Point, radiusKm float64) []int
}

// Result holds the ranked candidates of one query. Both slices are non-nil.
type Result struct {
	Attractions []models.Candidate `json:"attractions"`
	Food        []models.Candidate `json:"food"`
	Stats       Stats              `json:"stats"`
}

// Stats counts how many entries survived each stage.
type Stats struct {
	Scanned      int           `json:"scanned"`
	WithinReach  int           `json:"within_reach"`
	WithinBudget int           `json:"within_budget"`
	Duration     time.Duration `json:"duration"`
}

// Ranker filters the catalog by reach and budget and orders what remains by
// mood similarity discounted by time and distance.
//
// Description vectors are computed once at construction. The ranker never
// mutates shared state, so Rank is safe for concurrent use.
type Ranker struct {
	config  *Config
	catalog Catalog
	vec     textsim.Vectorizer
	docs    []textsim.Vector
	logger  zerolog.Logger
}

// NewRanker precomputes description vectors for every catalog entry.
func NewRanker(cfg *Config, catalog Catalog, vec textsim.Vectorizer, logger zerolog.Logger) (*Ranker, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid ranker config: %w", err)
	}

	locs := catalog.Locations()
	docs := make([]textsim.Vector, len(locs))
	for i := range locs {
		if locs[i].ID != i {
			return nil, fmt.Errorf("catalog entry %d has ID %d", i, locs[i].ID)
		}
		docs[i] = vec.Transform(locs[i].Description)
	}

	return &Ranker{
		config:  cfg,
		catalog: catalog,
		vec:     vec,
		docs:    docs,
		logger:  logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Rank returns the ranked attractions and food for q. An origin with
// nothing in reach yields two empty lists, not an error.
func (r *Ranker) Rank(q models.Query) Result {
	start := time.Now()
	res := Result{
		Attractions: []models.Candidate{},
		Food:        []models.Candidate{},
	}

	reachable := r.reachable(q, &res.Stats)
	if len(reachable) > 0 {
		moodVec := r.vec.Transform(strings.Join(q.Moods, " "))
		for i := range reachable {
			c := &reachable[i]
			c.Similarity = textsim.Cosine(moodVec, r.docs[c.ID])
			c.Score = c.Similarity / (1 + c.TotalTimeHr + c.DistanceKm)
		}

		for i := range reachable {
			c := reachable[i]
			if !r.withinBudget(c.Rating, q.Budget) {
				continue
			}
			res.Stats.WithinBudget++
			switch c.Category {
			case models.CategoryAttraction:
				res.Attractions = append(res.Attractions, c)
			case models.CategoryFood:
				res.Food = append(res.Food, c)
			}
		}

		res.Attractions = topK(res.Attractions, r.config.MaxAttractions)
		res.Food = topK(res.Food, r.config.MaxFood)
	}

	res.Stats.Duration = time.Since(start)
	metrics.RecordRecommendation(res.Stats.Duration, len(res.Attractions), len(res.Food))
	r.logger.Debug().
		Str("origin", q.Origin.String()).
		Strs("moods", q.Moods).
		Float64("budget", q.Budget).
		Float64("time_budget_hr", q.TimeBudgetHr).
		Int("scanned", res.Stats.Scanned).
		Int("within_reach", res.Stats.WithinReach).
		Int("within_budget", res.Stats.WithinBudget).
		Int("attractions", len(res.Attractions)).
		Int("food", len(res.Food)).
		Dur("duration", res.Stats.Duration).
		Msg("Ranked candidates")

	return res
}

// reachable returns candidates whose travel time plus dwell fits the time
// budget. The spatial index supplies a superset; the exact test is applied
// here.
func (r *Ranker) reachable(q models.Query, stats *Stats) []models.Candidate {
	locs := r.catalog.Locations()
	radius := geo.ReachKm(q.TimeBudgetHr, r.config.DwellHr, r.config.SpeedKmh)
	ids := r.catalog.Nearby(q.Origin, radius)
	stats.Scanned = len(ids)

	out := make([]models.Candidate, 0, len(ids))
	for _, id := range ids {
		loc := locs[id]
		if !loc.HasCoordinates() {
			continue
		}
		dist := geo.HaversineKm(q.Origin, loc.Point())
		travel := geo.TravelHours(dist, r.config.SpeedKmh)
		total := travel + r.config.DwellHr
		if total > q.TimeBudgetHr {
			continue
		}
		out = append(out, models.Candidate{
			Location:     loc,
			DistanceKm:   dist,
			TravelTimeHr: travel,
			TotalTimeHr:  total,
		})
	}
	stats.WithinReach = len(out)
	return out
}

func (r *Ranker) withinBudget(rating, budget float64) bool {
	return rating*r.config.RatingCostFactor <= budget+r.config.BudgetSlack
}

// topK sorts by score descending, then ID ascending, and keeps the first k.
func topK(cands []models.Candidate, k int) []models.Candidate {
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].Score != cands[j].Score {
			return cands[i].Score > cands[j].Score
		}
		return cands[i].ID < cands[j].ID
	})
	if len(cands) > k {
		cands = cands[:k]
	}
	return cands
}
