// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

/*
Package services adapts long-running components to suture.Service.

  - HTTPServerService: ListenAndServe with graceful Shutdown (api-layer)
  - PeriodicService: interval task runner, used for Badger cache GC and the
    uptime gauge (data-layer)

Each service returns ctx.Err() when stopped by its supervisor and a
wrapped error when it fails, which suture counts toward its restart
backoff.
*/
package services
