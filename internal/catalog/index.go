// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

package catalog

import (
	"math"
	"sort"

	"github.com/tomtom215/wanderwise/internal/geo"
	"github.com/tomtom215/wanderwise/internal/models"
)

// DefaultCellSizeKm is the grid cell edge used when none is configured.
const DefaultCellSizeKm = 25.0

// nearbySlackKm widens the radius test so that floating point rounding never
// drops an entry sitting exactly on the boundary. Callers apply their own
// exact predicate afterwards.
const nearbySlackKm = 1e-6

// cellKey identifies a grid cell. X wraps around the antimeridian.
type cellKey struct {
	X, Y int
}

// gridIndex buckets catalog positions into fixed-size lat/lng cells so that
// radius queries only visit the cells around the query point instead of the
// whole catalog. It is built once and never modified, so it needs no lock.
type gridIndex struct {
	cellDeg float64
	numX    int
	numY    int
	cells   map[cellKey][]int
	points  []models.Point
}

// newGridIndex indexes every location that has coordinates.
func newGridIndex(locs []models.Location, cellSizeKm float64) *gridIndex {
	if cellSizeKm <= 0 {
		cellSizeKm = DefaultCellSizeKm
	}
	cellDeg := cellSizeKm / geo.KmPerDegree

	g := &gridIndex{
		cellDeg: cellDeg,
		numX:    int(math.Ceil(360 / cellDeg)),
		numY:    int(math.Ceil(180 / cellDeg)),
		cells:   make(map[cellKey][]int),
		points:  make([]models.Point, len(locs)),
	}

	for i := range locs {
		if !locs[i].HasCoordinates() {
			continue
		}
		p := locs[i].Point()
		g.points[i] = p
		key := g.keyFor(p)
		g.cells[key] = append(g.cells[key], i)
	}
	return g
}

func (g *gridIndex) xFor(lng float64) int {
	for lng >= 180 {
		lng -= 360
	}
	for lng < -180 {
		lng += 360
	}
	return int(math.Floor((lng+180)/g.cellDeg)) % g.numX
}

func (g *gridIndex) yFor(lat float64) int {
	y := int(math.Floor((lat + 90) / g.cellDeg))
	return min(max(y, 0), g.numY-1)
}

func (g *gridIndex) keyFor(p models.Point) cellKey {
	return cellKey{X: g.xFor(p.Lng), Y: g.yFor(p.Lat)}
}

// nearby returns the positions within radiusKm of p in ascending order.
func (g *gridIndex) nearby(p models.Point, radiusKm float64) []int {
	radiusKm = math.Max(0, radiusKm) + nearbySlackKm

	// Angular radius and latitude band of the search circle.
	delta := radiusKm / geo.EarthRadiusKm
	deltaDeg := delta * 180 / math.Pi
	minLat, maxLat := p.Lat-deltaDeg, p.Lat+deltaDeg

	// Longitude half-width of the bounding box. When the circle reaches a
	// pole, or is wide enough, every longitude has to be scanned.
	fullLng := minLat <= -90 || maxLat >= 90
	var lngSpanDeg float64
	if !fullLng {
		ratio := math.Sin(delta) / math.Cos(p.Lat*math.Pi/180)
		if ratio >= 1 {
			fullLng = true
		} else {
			lngSpanDeg = math.Asin(ratio) * 180 / math.Pi
		}
	}

	y0, y1 := g.yFor(minLat)-1, g.yFor(maxLat)+1
	y0, y1 = max(y0, 0), min(y1, g.numY-1)

	xs := g.columns(p.Lng, lngSpanDeg, fullLng)

	var out []int
	for y := y0; y <= y1; y++ {
		for _, x := range xs {
			for _, i := range g.cells[cellKey{X: x, Y: y}] {
				if geo.HaversineKm(p, g.points[i]) <= radiusKm {
					out = append(out, i)
				}
			}
		}
	}
	sort.Ints(out)
	return out
}

// columns lists the X cells covering [lng-span, lng+span], wrapping at the
// antimeridian, with one cell of margin on each side.
func (g *gridIndex) columns(lng, spanDeg float64, full bool) []int {
	if !full {
		first := int(math.Floor((lng-spanDeg+180)/g.cellDeg)) - 1
		last := int(math.Floor((lng+spanDeg+180)/g.cellDeg)) + 1
		if last-first+1 < g.numX {
			xs := make([]int, 0, last-first+1)
			for x := first; x <= last; x++ {
				xs = append(xs, ((x%g.numX)+g.numX)%g.numX)
			}
			return xs
		}
	}

	xs := make([]int, g.numX)
	for x := range xs {
		xs[x] = x
	}
	return xs
}
