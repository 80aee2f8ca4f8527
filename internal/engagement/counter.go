// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package engagement records public interactions with content: views,
// downloads, helpful votes and webinar registrations. Each one is a single
// atomic counter increment that never touches status, slug, tags or
// updated_at.
package engagement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"contentdesk/internal/store"
)

// ErrUnknownAction is returned for an action the resource does not count.
var ErrUnknownAction = errors.New("unknown action")

var incrementsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "contentdesk_engagement_increments_total",
		Help: "Counter increments applied to content records.",
	},
	[]string{"resource", "counter"},
)

// Incrementer is the part of a store the counter layer needs.
type Incrementer interface {
	Increment(ctx context.Context, id uuid.UUID, counter string, amount int64) (bool, error)
}

// Counter increments the counters of one resource.
type Counter struct {
	resource string
	counters map[string]string // action -> column
	inc      Incrementer
}

// New creates a Counter for kind backed by inc.
func New[T any](inc Incrementer, kind *store.Kind[T]) *Counter {
	c := &Counter{resource: kind.Resource, counters: make(map[string]string), inc: inc}
	for _, ctr := range kind.Counters {
		c.counters[ctr.Action] = ctr.Column
	}
	return c
}

// Actions returns how many public actions the resource counts.
func (c *Counter) Actions() int {
	return len(c.counters)
}

// Supports reports whether action is counted for the resource.
func (c *Counter) Supports(action string) bool {
	_, ok := c.counters[action]
	return ok
}

// Increment adds amount to counter on id. It returns false, nil when the
// record does not exist so fire-and-forget callers can ignore the result.
func (c *Counter) Increment(ctx context.Context, id uuid.UUID, counter string, amount int64) (bool, error) {
	if amount <= 0 {
		return false, store.Invalid("amount", "must be positive")
	}
	ok, err := c.inc.Increment(ctx, id, counter, amount)
	if err != nil {
		return false, fmt.Errorf("increment %s.%s: %w", c.resource, counter, err)
	}
	if ok {
		incrementsTotal.WithLabelValues(c.resource, counter).Add(float64(amount))
	} else {
		slog.Debug("increment on missing record", "resource", c.resource, "id", id, "counter", counter)
	}
	return ok, nil
}

// Record applies the public action (view, download, ...) to id by one.
func (c *Counter) Record(ctx context.Context, id uuid.UUID, action string) (bool, error) {
	column, ok := c.counters[action]
	if !ok {
		return false, fmt.Errorf("%s: %w %q", c.resource, ErrUnknownAction, action)
	}
	return c.Increment(ctx, id, column, 1)
}
