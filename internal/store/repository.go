// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store persists content records. One generic implementation per
// backend serves every content type, driven by a Kind descriptor.
package store

import (
	"context"

	"github.com/google/uuid"

	"contentdesk/internal/lifecycle"
)

// Repository is the contract every content store satisfies.
type Repository[T any] interface {
	// Create assigns id, timestamps, initial status and slug, then inserts.
	Create(ctx context.Context, rec *T) (*T, error)
	// Get returns the record with id, whatever its status.
	Get(ctx context.Context, id uuid.UUID) (*T, error)
	// GetBySlug returns the record with slug, whatever its status.
	GetBySlug(ctx context.Context, slug string) (*T, error)
	List(ctx context.Context, q Query) ([]T, error)
	Count(ctx context.Context, q Query) (int, error)
	// Update loads the record, lets apply mutate it and writes the result.
	// Counters, id and created_at are never changed by an update.
	Update(ctx context.Context, id uuid.UUID, apply func(*T) error) (*T, error)
	// Delete removes the record and reports whether a row was removed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	// Increment atomically adds amount to a counter. It reports false when
	// the record does not exist.
	Increment(ctx context.Context, id uuid.UUID, counter string, amount int64) (bool, error)
}

// Op is a comparison used in a Condition.
type Op string

const (
	OpEq  Op = "="
	OpGte Op = ">="
	OpLte Op = "<="
)

// Condition restricts a listing to rows where Column Op Value holds.
type Condition struct {
	Column string
	Op     Op
	Value  any
}

// Query selects and orders records.
type Query struct {
	// Statuses limits results to these statuses. Nil means any status; an
	// empty, non-nil slice matches nothing.
	Statuses   []lifecycle.Status
	Featured   *bool
	Conditions []Condition
	Order      []lifecycle.OrderTerm
	// Limit of zero means no limit.
	Limit  int
	Offset int
}

// matchesNothing reports whether q can be answered without a lookup.
func (q Query) matchesNothing() bool {
	return q.Statuses != nil && len(q.Statuses) == 0
}
