// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

package geo

import (
	"net/url"
	"strings"

	"github.com/tomtom215/wanderwise/internal/models"
)

const mapsDirectionsURL = "https://www.google.com/maps/dir/"

// DirectionsURL links to driving directions from origin to dest.
func DirectionsURL(origin, dest models.Point) string {
	q := url.Values{}
	q.Set("api", "1")
	q.Set("origin", origin.String())
	q.Set("destination", dest.String())
	q.Set("travelmode", "driving")
	return mapsDirectionsURL + "?" + q.Encode()
}

// RouteURL links to a single route visiting every stop in order. The last
// stop is the destination and the others become waypoints. It returns ""
// when there are no stops.
func RouteURL(origin models.Point, stops []models.Point) string {
	if len(stops) == 0 {
		return ""
	}

	q := url.Values{}
	q.Set("api", "1")
	q.Set("origin", origin.String())
	q.Set("destination", stops[len(stops)-1].String())
	q.Set("travelmode", "driving")

	if len(stops) > 1 {
		waypoints := make([]string, 0, len(stops)-1)
		for _, p := range stops[:len(stops)-1] {
			waypoints = append(waypoints, p.String())
		}
		q.Set("waypoints", strings.Join(waypoints, "|"))
	}

	return mapsDirectionsURL + "?" + q.Encode()
}
