// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// LRU is an in-process Cache used when no Valkey server is configured.
type LRU struct {
	entries *expirable.LRU[string, []byte]

	mu          sync.Mutex
	generations map[string]uint64
}

// NewLRU keeps at most size entries for ttl each. A zero ttl means DefaultTTL.
func NewLRU(size int, ttl time.Duration) *LRU {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &LRU{
		entries:     expirable.NewLRU[string, []byte](size, nil, ttl),
		generations: make(map[string]uint64),
	}
}

// Get returns the cached value for key.
func (c *LRU) Get(_ context.Context, key string) ([]byte, bool) {
	val, ok := c.entries.Get(key)
	observe("lru", ok)
	return val, ok
}

// Set stores val under key.
func (c *LRU) Set(_ context.Context, key string, val []byte) {
	c.entries.Add(key, val)
}

// Generation returns the current generation of resource.
func (c *LRU) Generation(_ context.Context, resource string) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[resource], nil
}

// Invalidate advances the generation of resource and removes its entries.
func (c *LRU) Invalidate(_ context.Context, resource string) {
	c.mu.Lock()
	c.generations[resource]++
	c.mu.Unlock()

	prefix := ResourcePrefix(resource)
	for _, key := range c.entries.Keys() {
		if strings.HasPrefix(key, prefix) {
			c.entries.Remove(key)
		}
	}
}

// Len reports the number of live entries.
func (c *LRU) Len() int {
	return c.entries.Len()
}
