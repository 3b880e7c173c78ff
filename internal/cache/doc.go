// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

/*
Package cache provides the key/value caches used in front of slow upstream
lookups such as geocoding.

# Backends

  - MemoryStore: a bounded LRU with per-entry TTL, lost on restart.
  - BadgerStore: a BadgerDB database. Entries carry badger TTLs and survive
    restarts when a directory is configured.

Both implement Store and are selected with New:

	store, err := cache.New(cache.Config{
	    Backend: cache.BackendBadger,
	    Path:    "/data/cache",
	    TTL:     7 * 24 * time.Hour,
	})
	if err != nil {
	    return err
	}
	defer store.Close()

Values are opaque bytes. Callers marshal their own types, usually with
goccy/go-json.

# Garbage Collection

Badger reclaims value log space only when asked. Run BadgerStore.RunGC
periodically; the supervisor tree does this through a dedicated service.

# Generic LRU

LRU is also usable directly for typed values:

	c := cache.NewLRU[models.Point](1000, time.Hour)
	c.Set("ahmedabad", models.Point{Lat: 23.02, Lng: 72.57})
*/
package cache
