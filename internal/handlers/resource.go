// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers exposes every content type over JSON. One generic
// Resource serves the public and protected routes of a type; access rules
// live in the access package and are never repeated here.
package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"contentdesk/internal/access"
	"contentdesk/internal/auth"
	"contentdesk/internal/cache"
	"contentdesk/internal/engagement"
	"contentdesk/internal/middleware"
	"contentdesk/internal/store"
)

// maxBodyBytes bounds request bodies of write endpoints.
const maxBodyBytes = 1 << 20

// Options carries the collaborators shared by every resource.
type Options struct {
	// Cache holds public responses. Nil disables caching.
	Cache cache.Cache
	// Changes records protected writes. Nil disables the change log.
	Changes store.ChangeLog
	// CounterLimit throttles the public counter endpoint. Nil disables it.
	CounterLimit func(http.Handler) http.Handler
}

// Mountable is a resource ready to be mounted under /api.
type Mountable interface {
	Name() string
	Routes() chi.Router
}

// Resource serves one content type.
type Resource[T any] struct {
	router  *access.Router[T]
	counter *engagement.Counter
	cache   cache.Cache
	changes store.ChangeLog
	limit   func(http.Handler) http.Handler

	// view is listView behind the response cache, reached from /{key}.
	view http.Handler
}

// NewResource creates the handlers for the type served by router.
func NewResource[T any](router *access.Router[T], counter *engagement.Counter, opts Options) *Resource[T] {
	h := &Resource[T]{
		router:  router,
		counter: counter,
		cache:   opts.Cache,
		changes: opts.Changes,
		limit:   opts.CounterLimit,
	}
	if h.cache == nil {
		h.cache = cache.Nop{}
	}
	if h.limit == nil {
		h.limit = func(next http.Handler) http.Handler { return next }
	}
	h.view = cache.Responses(h.cache, h.Name())(http.HandlerFunc(h.listView))
	return h
}

// Name is the resource segment of the URL ("news", "case-studies").
func (h *Resource[T]) Name() string {
	return h.router.Kind().Resource
}

// Routes returns the sub-router of the resource.
//
// GET /{key} is shared by protected reads by id and public views: a key
// that parses as a UUID is an id, anything else names a view.
func (h *Resource[T]) Routes() chi.Router {
	r := chi.NewRouter()
	public := cache.Responses(h.cache, h.Name())

	r.With(public).Get("/", h.listPublished)
	r.With(public).Get("/featured", h.listFeatured)
	r.With(public).Get("/slug/{slug}", h.getBySlug)
	r.With(public).Get("/{key}/{arg}", h.listView)
	r.Get("/{key}", h.getByKey)
	r.With(h.limit).Post("/{key}/{arg}", h.record)

	r.Group(func(r chi.Router) {
		r.Use(middleware.NoStore)
		r.Get("/all", h.listAll)
		r.Post("/", h.create)
		r.Put("/{key}", h.update)
		r.Patch("/{key}/{arg}", h.updateStatus)
		r.Delete("/{key}", h.delete)
	})

	return r
}

// --- Public ---

func (h *Resource[T]) listPublished(w http.ResponseWriter, r *http.Request) {
	res, err := h.router.ListPublished(r.Context(), access.ParsePage(r.URL.Query()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeList(w, r, res)
}

func (h *Resource[T]) listFeatured(w http.ResponseWriter, r *http.Request) {
	res, err := h.router.ListFeatured(r.Context(), access.ParsePage(r.URL.Query()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeList(w, r, res)
}

func (h *Resource[T]) listView(w http.ResponseWriter, r *http.Request) {
	name, value := chi.URLParam(r, "key"), chi.URLParam(r, "arg")
	res, err := h.router.ListView(r.Context(), name, value, access.ParsePage(r.URL.Query()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeList(w, r, res)
}

func (h *Resource[T]) getBySlug(w http.ResponseWriter, r *http.Request) {
	rec, err := h.router.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	render.JSON(w, r, rec)
}

func (h *Resource[T]) getByKey(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "key"))
	if err != nil {
		h.view.ServeHTTP(w, r)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	rec, err := h.router.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	render.JSON(w, r, rec)
}

// record applies a public counter action. Hidden, missing and malformed
// ids all answer counted=false so the endpoint never reveals a record.
func (h *Resource[T]) record(w http.ResponseWriter, r *http.Request) {
	action := chi.URLParam(r, "arg")
	if !h.counter.Supports(action) {
		writeError(w, r, engagement.ErrUnknownAction)
		return
	}

	counted := false
	if id, err := uuid.Parse(chi.URLParam(r, "key")); err == nil {
		visible, err := h.router.IsVisible(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if visible {
			if counted, err = h.counter.Record(r.Context(), id, action); err != nil {
				writeError(w, r, err)
				return
			}
		}
	}
	render.JSON(w, r, map[string]bool{"counted": counted})
}

// --- Protected ---

func (h *Resource[T]) listAll(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res, err := h.router.ListAll(r.Context(), q, access.ParsePage(q))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeList(w, r, res)
}

func (h *Resource[T]) create(w http.ResponseWriter, r *http.Request) {
	if err := h.router.AuthorizeCreate(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}

	rec := new(T)
	if err := render.DecodeJSON(http.MaxBytesReader(w, r.Body, maxBodyBytes), rec); err != nil {
		writeError(w, r, decodeError(err))
		return
	}

	created, err := h.router.Create(r.Context(), rec)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.afterWrite(r.Context(), store.Header(created).ID, store.ActionCreate)

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, created)
}

// update merges the request body onto the stored record: fields absent
// from the body keep their current values.
func (h *Resource[T]) update(w http.ResponseWriter, r *http.Request) {
	if err := h.router.Authorize(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, r, decodeError(err))
		return
	}

	id := pathID(r)
	updated, err := h.router.Update(r.Context(), id, func(rec *T) error {
		if err := json.Unmarshal(body, rec); err != nil {
			return decodeError(err)
		}
		return nil
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.afterWrite(r.Context(), id, store.ActionUpdate)
	render.JSON(w, r, updated)
}

func (h *Resource[T]) updateStatus(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "arg") != "status" {
		writeError(w, r, store.ErrNotFound)
		return
	}
	if err := h.router.Authorize(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := render.DecodeJSON(http.MaxBytesReader(w, r.Body, maxBodyBytes), &req); err != nil {
		writeError(w, r, decodeError(err))
		return
	}

	id := pathID(r)
	updated, err := h.router.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.afterWrite(r.Context(), id, store.ActionStatus)
	render.JSON(w, r, updated)
}

func (h *Resource[T]) delete(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	deleted, err := h.router.Delete(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if deleted {
		h.afterWrite(r.Context(), id, store.ActionDelete)
	}
	render.JSON(w, r, map[string]bool{"deleted": deleted})
}

// afterWrite drops cached public responses of the resource and records
// the change.
func (h *Resource[T]) afterWrite(ctx context.Context, id uuid.UUID, action string) {
	h.cache.Invalidate(ctx, h.Name())
	if h.changes == nil {
		return
	}
	var actor string
	if c := auth.FromContext(ctx); c != nil {
		actor = c.Actor()
	}
	h.changes.Record(ctx, store.Change{Resource: h.Name(), RecordID: id, Action: action, Actor: actor})
}

// pathID parses the {key} segment. A malformed id becomes uuid.Nil, which
// never names a record, so the access gate still runs first.
func pathID(r *http.Request) uuid.UUID {
	id, err := uuid.Parse(chi.URLParam(r, "key"))
	if err != nil {
		return uuid.Nil
	}
	return id
}

// writeList answers with the page items and the unpaged total.
func writeList[T any](w http.ResponseWriter, r *http.Request, res access.Result[T]) {
	items := res.Items
	if items == nil {
		items = []T{}
	}
	w.Header().Set(cache.TotalHeader, strconv.Itoa(res.Total))
	render.JSON(w, r, items)
}
