// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package access splits every content type into a public surface, which
// only ever sees publicly visible records, and a protected surface behind
// an authentication gate.
package access

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"contentdesk/internal/lifecycle"
	"contentdesk/internal/store"
)

// ErrUnauthorized is returned by protected operations when the gate denies
// the caller. The store is not consulted.
var ErrUnauthorized = errors.New("unauthorized")

// Gate decides whether the caller behind ctx may use protected operations.
type Gate interface {
	Authorized(ctx context.Context) bool
}

// GateFunc adapts a function to Gate.
type GateFunc func(ctx context.Context) bool

// Authorized calls f(ctx).
func (f GateFunc) Authorized(ctx context.Context) bool { return f(ctx) }

// Result is one page of a listing plus the number of matching records.
type Result[T any] struct {
	Items []T
	Total int
}

// Router applies visibility and authorization rules on top of a store.
type Router[T any] struct {
	repo   store.Repository[T]
	kind   *store.Kind[T]
	gate   Gate
	limits Limits
}

// New creates a Router for kind backed by repo.
func New[T any](repo store.Repository[T], kind *store.Kind[T], gate Gate, limits Limits) *Router[T] {
	return &Router[T]{repo: repo, kind: kind, gate: gate, limits: limits.normalize()}
}

// Kind returns the descriptor the router serves.
func (r *Router[T]) Kind() *store.Kind[T] {
	return r.kind
}

func (r *Router[T]) authorize(ctx context.Context) error {
	if r.gate == nil || !r.gate.Authorized(ctx) {
		return ErrUnauthorized
	}
	return nil
}

// Authorize returns ErrUnauthorized unless the gate admits the caller.
// Handlers call it before reading a request body.
func (r *Router[T]) Authorize(ctx context.Context) error {
	return r.authorize(ctx)
}

// AuthorizeCreate is Authorize for Create: kinds flagged PublicCreate admit
// every caller.
func (r *Router[T]) AuthorizeCreate(ctx context.Context) error {
	if r.kind.PublicCreate {
		return nil
	}
	return r.authorize(ctx)
}

// list runs q with page applied and counts the full match set.
func (r *Router[T]) list(ctx context.Context, q store.Query, page Page) (Result[T], error) {
	page = r.limits.Clamp(page)
	q.Limit, q.Offset = page.Limit, page.Offset

	items, err := r.repo.List(ctx, q)
	if err != nil {
		return Result[T]{}, err
	}
	total, err := r.repo.Count(ctx, q)
	if err != nil {
		return Result[T]{}, err
	}
	return Result[T]{Items: items, Total: total}, nil
}

// --- Public operations ---

// ListPublished returns publicly visible records.
func (r *Router[T]) ListPublished(ctx context.Context, page Page) (Result[T], error) {
	return r.list(ctx, store.Query{
		Statuses: r.kind.Policy.VisibleSubset(nil),
		Order:    r.kind.Policy.DefaultOrder(lifecycle.ListPublished),
	}, page)
}

// ListFeatured returns publicly visible records flagged as featured.
func (r *Router[T]) ListFeatured(ctx context.Context, page Page) (Result[T], error) {
	featured := true
	return r.list(ctx, store.Query{
		Statuses: r.kind.Policy.VisibleSubset(nil),
		Featured: &featured,
		Order:    r.kind.Policy.DefaultOrder(lifecycle.ListFeatured),
	}, page)
}

// ListView returns a narrowed public listing, such as upcoming webinars or
// news in one category. Unknown views are ErrNotFound.
func (r *Router[T]) ListView(ctx context.Context, name, value string, page Page) (Result[T], error) {
	view, ok := r.kind.View(name)
	if !ok {
		return Result[T]{}, store.ErrNotFound
	}

	q := store.Query{
		Statuses: r.kind.Policy.VisibleSubset(view.Statuses),
		Order:    r.kind.Policy.DefaultOrder(view.Order),
	}
	switch {
	case view.Column != "" && value == "":
		return Result[T]{}, store.Invalid(name, "a value is required")
	case view.Column == "" && value != "":
		return Result[T]{}, store.ErrNotFound
	case view.Column != "":
		q.Conditions = []store.Condition{{Column: view.Column, Op: store.OpEq, Value: value}}
	}
	return r.list(ctx, q, page)
}

// GetBySlug returns a publicly visible record. A hidden record is reported
// exactly like a missing one.
func (r *Router[T]) GetBySlug(ctx context.Context, slug string) (*T, error) {
	rec, err := r.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !r.kind.Policy.IsPubliclyVisible(store.Header(rec).Status) {
		return nil, store.ErrNotFound
	}
	return rec, nil
}

// IsVisible reports whether id names a publicly visible record. Missing
// records are not an error.
func (r *Router[T]) IsVisible(ctx context.Context, id uuid.UUID) (bool, error) {
	rec, err := r.repo.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return r.kind.Policy.IsPubliclyVisible(store.Header(rec).Status), nil
}

// --- Protected operations ---

// ListAll returns records in any status, narrowed by the kind's filters.
// Unknown parameters are ignored.
func (r *Router[T]) ListAll(ctx context.Context, params url.Values, page Page) (Result[T], error) {
	if err := r.authorize(ctx); err != nil {
		return Result[T]{}, err
	}
	conds, err := r.parseFilters(params)
	if err != nil {
		return Result[T]{}, err
	}
	return r.list(ctx, store.Query{
		Conditions: conds,
		Order:      r.kind.Policy.DefaultOrder(lifecycle.ListAll),
	}, page)
}

// parseFilters turns query parameters into conditions using the kind's
// closed filter set.
func (r *Router[T]) parseFilters(params url.Values) ([]store.Condition, error) {
	var (
		conds []store.Condition
		v     store.ValidationError
	)
	for _, f := range r.kind.Filters {
		raw := strings.TrimSpace(params.Get(f.Param))
		if raw == "" {
			continue
		}
		var value any = raw
		if f.Parse != nil {
			parsed, err := f.Parse(raw)
			if err != nil {
				v.Add(f.Param, err.Error())
				continue
			}
			value = parsed
		}
		conds = append(conds, store.Condition{Column: f.Column, Op: f.Op, Value: value})
	}
	if err := v.Err(); err != nil {
		return nil, err
	}
	return conds, nil
}

// Get returns a record in any status.
func (r *Router[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	return r.repo.Get(ctx, id)
}

// Create stores a new record. Kinds flagged PublicCreate accept anonymous
// callers, who may not choose the initial status, the featured flag or
// the slug.
func (r *Router[T]) Create(ctx context.Context, rec *T) (*T, error) {
	if err := r.authorize(ctx); err != nil {
		if !r.kind.PublicCreate {
			return nil, err
		}
		h := store.Header(rec)
		h.Slug = ""
		h.Status = ""
		h.Featured = false
	}
	return r.repo.Create(ctx, rec)
}

// Update applies a mutation to an existing record.
func (r *Router[T]) Update(ctx context.Context, id uuid.UUID, apply func(*T) error) (*T, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	return r.repo.Update(ctx, id, apply)
}

// UpdateStatus moves a record to status. A status outside the kind's
// enumeration is ErrInvalidState and leaves the record unchanged.
func (r *Router[T]) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*T, error) {
	if err := r.authorize(ctx); err != nil {
		return nil, err
	}
	next, err := r.kind.Policy.ParseStatus(status)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", r.kind.Name, id, err)
	}
	return r.repo.Update(ctx, id, func(rec *T) error {
		store.Header(rec).Status = next
		return nil
	})
}

// Delete removes a record and reports whether it existed.
func (r *Router[T]) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if err := r.authorize(ctx); err != nil {
		return false, err
	}
	return r.repo.Delete(ctx, id)
}
