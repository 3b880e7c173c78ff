// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

package services

import (
	"context"
	"time"

	"github.com/tomtom215/wanderwise/internal/logging"
	"github.com/tomtom215/wanderwise/internal/metrics"
)

// PeriodicService runs a task on a fixed interval until its context is
// cancelled. Task errors are logged and do not stop the service; a panic
// is left to the supervisor, which restarts the service.
type PeriodicService struct {
	name     string
	interval time.Duration
	task     func(ctx context.Context) error
}

// NewPeriodicService creates a service named name. Non-positive intervals
// use one minute.
func NewPeriodicService(name string, interval time.Duration, task func(ctx context.Context) error) *PeriodicService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &PeriodicService{name: name, interval: interval, task: task}
}

// Serve implements suture.Service.
func (p *PeriodicService) Serve(ctx context.Context) error {
	logger := logging.WithComponent(p.name)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := p.task(ctx); err != nil && ctx.Err() == nil {
				logger.Warn().Err(err).Msg("Periodic task failed")
			}
		}
	}
}

// String names the service in supervisor logs.
func (p *PeriodicService) String() string {
	return p.name
}

// GarbageCollector is satisfied by *cache.BadgerStore.
type GarbageCollector interface {
	RunGC() error
}

// NewCacheGCService reclaims Badger value log space on interval and
// records each run.
func NewCacheGCService(gc GarbageCollector, interval time.Duration) *PeriodicService {
	return NewPeriodicService("cache-gc", interval, func(context.Context) error {
		err := gc.RunGC()
		metrics.RecordCacheGC(err)
		return err
	})
}

// NewUptimeService refreshes the uptime gauge.
func NewUptimeService(started time.Time, interval time.Duration) *PeriodicService {
	return NewPeriodicService("uptime", interval, func(context.Context) error {
		metrics.SetUptime(started)
		return nil
	})
}
