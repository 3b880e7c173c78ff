// WanderWise - Mood-Aware Travel Recommendations and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wanderwise

package cache

import (
	"context"
	"fmt"
	"time"
)

// Stats holds cache counters.
type Stats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
	Size      int   `json:"size"`
}

// HitRate returns hits as a percentage of lookups.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

// Store is a byte-oriented key/value cache with per-entry expiry.
// Both MemoryStore and BadgerStore implement it, so callers can switch
// between a process-local and a persistent cache through configuration.
type Store interface {
	// Get returns the value for key. A missing or expired key returns
	// (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value for ttl. A non-positive ttl uses the store default.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Close releases resources held by the store.
	Close() error
}

// Backend names accepted in Config.Backend.
const (
	BackendMemory = "memory"
	BackendBadger = "badger"
)

// Config selects and sizes a Store.
type Config struct {
	Backend string
	TTL     time.Duration

	// Capacity bounds the memory backend.
	Capacity int

	// Path is the badger directory. Empty runs badger in memory.
	Path string
}

// New creates the Store described by cfg.
func New(cfg Config) (Store, error) {
	switch cfg.Backend {
	case "", BackendMemory:
		return NewMemoryStore(cfg.Capacity, cfg.TTL), nil
	case BackendBadger:
		return OpenBadger(cfg.Path, cfg.TTL)
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}

// MemoryStore is a Store backed by an LRU.
type MemoryStore struct {
	lru *LRU[[]byte]
}

// NewMemoryStore creates a bounded in-process store.
func NewMemoryStore(capacity int, ttl time.Duration) *MemoryStore {
	return &MemoryStore{lru: NewLRU[[]byte](capacity, ttl)}
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := s.lru.Get(key)
	return v, ok, nil
}

// Set implements Store. The value is copied.
func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.lru.SetWithTTL(key, append([]byte(nil), value...), ttl)
	return nil
}

// Close implements Store.
func (s *MemoryStore) Close() error {
	s.lru.Clear()
	return nil
}

// Stats returns the underlying LRU counters.
func (s *MemoryStore) Stats() Stats {
	return s.lru.Stats()
}

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*BadgerStore)(nil)
)
