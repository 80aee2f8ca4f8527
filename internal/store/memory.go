// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"bytes"
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"contentdesk/internal/lifecycle"
)

// Memory is an in-process Repository. It follows the same rules as the
// Postgres store and is used for local development and tests.
type Memory[T any] struct {
	mu   sync.RWMutex
	kind *Kind[T]
	rows map[uuid.UUID]*T
}

// NewMemory creates an empty in-memory store for kind.
func NewMemory[T any](kind *Kind[T]) (*Memory[T], error) {
	if err := kind.check(); err != nil {
		return nil, err
	}
	return &Memory[T]{kind: kind, rows: make(map[uuid.UUID]*T)}, nil
}

// clone deep-copies a record so callers never share pointers with stored rows.
func clone[T any](rec *T) *T {
	b, err := json.Marshal(rec)
	if err != nil {
		panic(fmt.Sprintf("clone %T: %v", rec, err))
	}
	out := new(T)
	if err := json.Unmarshal(b, out); err != nil {
		panic(fmt.Sprintf("clone %T: %v", rec, err))
	}
	// Tags are copied as is so validation sees exactly what the caller sent.
	core(out).Tags = lifecycle.NormalizeTags(core(rec).Tags)
	return out
}

// slugTaken reports whether another row already uses slug.
func (s *Memory[T]) slugTaken(slug string, except uuid.UUID) bool {
	for id, rec := range s.rows {
		if id != except && core(rec).Slug == slug {
			return true
		}
	}
	return false
}

// Create stores a new record.
func (s *Memory[T]) Create(_ context.Context, rec *T) (*T, error) {
	rec = clone(rec)
	if err := s.kind.prepareCreate(rec, storageNow()); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.slugTaken(core(rec).Slug, uuid.Nil) {
		return nil, fmt.Errorf("%s create: %w", s.kind.Name, ErrConflict)
	}
	s.rows[core(rec).ID] = rec
	return clone(rec), nil
}

// Get retrieves a record by id.
func (s *Memory[T]) Get(_ context.Context, id uuid.UUID) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(rec), nil
}

// GetBySlug retrieves a record by slug.
func (s *Memory[T]) GetBySlug(_ context.Context, slug string) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.rows {
		if core(rec).Slug == slug {
			return clone(rec), nil
		}
	}
	return nil, ErrNotFound
}

// matching returns the stored rows that satisfy q, unsorted.
func (s *Memory[T]) matching(q Query) ([]*T, error) {
	for _, c := range q.Conditions {
		if !s.kind.hasColumn(c.Column) {
			return nil, fmt.Errorf("%s: unknown column %q", s.kind.Name, c.Column)
		}
	}

	var out []*T
	for _, rec := range s.rows {
		b := core(rec)
		if q.Statuses != nil && !slices.Contains(q.Statuses, b.Status) {
			continue
		}
		if q.Featured != nil && b.Featured != *q.Featured {
			continue
		}
		ok := true
		for _, c := range q.Conditions {
			if !satisfies(s.kind.value(rec, c.Column), c.Op, c.Value) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

// List returns the records matching q in the requested order.
func (s *Memory[T]) List(_ context.Context, q Query) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.matching(q)
	if err != nil {
		return nil, err
	}

	order := q.Order
	if len(order) == 0 {
		order = s.kind.Policy.DefaultOrder(lifecycle.ListAll)
	}
	for _, t := range order {
		if !s.kind.hasColumn(t.Column) {
			return nil, fmt.Errorf("%s: unknown order column %q", s.kind.Name, t.Column)
		}
	}
	slices.SortFunc(rows, func(a, b *T) int {
		for _, t := range order {
			c := compareNullsLast(s.kind.value(a, t.Column), s.kind.value(b, t.Column), t.Desc)
			if c != 0 {
				return c
			}
		}
		return 0
	})

	if q.Offset > 0 {
		rows = rows[min(q.Offset, len(rows)):]
	}
	if q.Limit > 0 && len(rows) > q.Limit {
		rows = rows[:q.Limit]
	}

	items := make([]T, 0, len(rows))
	for _, rec := range rows {
		items = append(items, *clone(rec))
	}
	return items, nil
}

// Count returns how many records match q.
func (s *Memory[T]) Count(_ context.Context, q Query) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.matching(q)
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

// Update applies a mutation under the store lock.
func (s *Memory[T]) Update(_ context.Context, id uuid.UUID, apply func(*T) error) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orig, ok := s.rows[id]
	if !ok {
		return nil, ErrNotFound
	}

	rec := clone(orig)
	if err := apply(rec); err != nil {
		return nil, err
	}
	if err := s.kind.prepareUpdate(orig, rec, storageNow()); err != nil {
		return nil, err
	}
	if s.slugTaken(core(rec).Slug, id) {
		return nil, fmt.Errorf("%s update: %w", s.kind.Name, ErrConflict)
	}

	s.rows[id] = rec
	return clone(rec), nil
}

// Delete removes a record.
func (s *Memory[T]) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[id]; !ok {
		return false, nil
	}
	delete(s.rows, id)
	return true, nil
}

// Increment adds amount to a counter under the store lock.
func (s *Memory[T]) Increment(_ context.Context, id uuid.UUID, counter string, amount int64) (bool, error) {
	if !s.kind.HasCounter(counter) {
		return false, fmt.Errorf("%s: %w %q", s.kind.Name, ErrUnknownCounter, counter)
	}
	if amount <= 0 {
		return false, Invalid("amount", "must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.rows[id]
	if !ok {
		return false, nil
	}
	s.kind.addCounter(rec, counter, amount)
	return true, nil
}

// satisfies evaluates one Condition against a stored value.
func satisfies(have any, op Op, want any) bool {
	if have == nil {
		return false
	}
	c, ok := compareValues(have, want)
	if !ok {
		return false
	}
	switch op {
	case OpEq:
		return c == 0
	case OpGte:
		return c >= 0
	case OpLte:
		return c <= 0
	}
	return false
}

// compareNullsLast orders a and b with nil values after everything else,
// in either direction, matching ORDER BY ... NULLS LAST.
func compareNullsLast(a, b any, desc bool) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	c, _ := compareValues(a, b)
	if desc {
		return -c
	}
	return c
}

// compareValues compares two column values of the same underlying kind.
func compareValues(a, b any) (int, bool) {
	switch av := a.(type) {
	case time.Time:
		bv, ok := b.(time.Time)
		if !ok {
			return 0, false
		}
		return av.Compare(bv), true
	case uuid.UUID:
		bv, ok := b.(uuid.UUID)
		if !ok {
			return 0, false
		}
		return bytes.Compare(av[:], bv[:]), true
	case bool:
		bv, ok := b.(bool)
		if !ok {
			return 0, false
		}
		switch {
		case av == bv:
			return 0, true
		case !av:
			return -1, true
		default:
			return 1, true
		}
	}

	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch {
	case ra.CanInt() && rb.CanInt():
		return cmp.Compare(ra.Int(), rb.Int()), true
	case ra.Kind() == reflect.String && rb.Kind() == reflect.String:
		return cmp.Compare(ra.String(), rb.String()), true
	}
	return 0, false
}
