// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/render"

	"contentdesk/internal/access"
	"contentdesk/internal/store"
)

const (
	defaultChangesLimit = 50
	maxChangesLimit     = 500
)

// Changes serves the change log to authenticated callers.
type Changes struct {
	log  store.ChangeLog
	gate access.Gate
}

// NewChanges creates the change log handler.
func NewChanges(log store.ChangeLog, gate access.Gate) *Changes {
	return &Changes{log: log, gate: gate}
}

// Recent lists the newest changes, ?limit= of them.
func (c *Changes) Recent(w http.ResponseWriter, r *http.Request) {
	if c.gate == nil || !c.gate.Authorized(r.Context()) {
		writeError(w, r, access.ErrUnauthorized)
		return
	}

	limit := defaultChangesLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, r, store.Invalid("limit", "must be a positive integer"))
			return
		}
		limit = min(n, maxChangesLimit)
	}

	changes, err := c.log.Recent(r.Context(), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if changes == nil {
		changes = []store.Change{}
	}
	render.JSON(w, r, changes)
}
