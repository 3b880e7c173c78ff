// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validateBaseURL checks an upstream base URL. Clients append endpoint
// paths such as "/search" directly, so a path prefix is allowed
// ("https://host/nominatim") but a trailing slash, query or fragment is not.
func validateBaseURL(rawURL, envName string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s is not a valid URL: %w", envName, err)
	}

	switch {
	case u.Scheme != "http" && u.Scheme != "https":
		return fmt.Errorf("%s must use http or https, got %q", envName, u.Scheme)
	case u.Host == "":
		return fmt.Errorf("%s must include a host", envName)
	case strings.HasSuffix(u.Path, "/"):
		return fmt.Errorf("%s must not end with a slash: %s", envName, rawURL)
	case u.RawQuery != "" || u.Fragment != "":
		return fmt.Errorf("%s must not contain a query or fragment", envName)
	}
	return nil
}
