// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package cache keeps public API responses so repeated reads skip the
// database. Entries are grouped by resource. Every resource has a
// generation that is part of each key; a protected write advances it, so a
// response computed before the write can never be served after it.
package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultTTL is how long a response stays cached.
const DefaultTTL = 5 * time.Minute

// Cache stores opaque response bodies by key. Failures are logged by the
// implementation and reported as misses; a cache never fails a request.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, val []byte)
	// Generation returns the current generation of resource. An error
	// means the generation is unknown and the cache must be bypassed.
	Generation(ctx context.Context, resource string) (uint64, error)
	// Invalidate advances the generation of resource, then drops the
	// entries stored under older generations.
	Invalidate(ctx context.Context, resource string)
}

var lookups = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "contentdesk_response_cache_lookups_total",
		Help: "Response cache lookups by backend and result.",
	},
	[]string{"backend", "result"},
)

func observe(backend string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	lookups.WithLabelValues(backend, result).Inc()
}

// ResourcePrefix is the key prefix shared by every entry of resource.
func ResourcePrefix(resource string) string {
	return resource + ":"
}

// Key returns the cache key of a public request on resource at generation
// gen. uri must include the query string so pages and views get their own
// entries.
func Key(resource string, gen uint64, uri string) string {
	return ResourcePrefix(resource) + strconv.FormatUint(gen, 10) + ":" + uri
}

// Nop is a Cache that stores nothing.
type Nop struct{}

func (Nop) Get(context.Context, string) ([]byte, bool)         { return nil, false }
func (Nop) Set(context.Context, string, []byte)                {}
func (Nop) Generation(context.Context, string) (uint64, error) { return 0, nil }
func (Nop) Invalidate(context.Context, string)                 {}
