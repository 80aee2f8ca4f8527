// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package content declares the content types served by the API. Each type
// is a store.Kind: its table, columns, lifecycle, filters, public views and
// field validation.
package content

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"contentdesk/internal/lifecycle"
	"contentdesk/internal/store"
)

// Validation limits shared by the content types.
const (
	maxTitleLen   = 300
	maxNameLen    = 200
	maxBodyLen    = 100_000
	maxExcerptLen = 1_000
	maxShortLen   = 200
	maxEmailLen   = 320
)

// Counter actions exposed on the public surface.
const (
	ActionView     = "view"
	ActionDownload = "download"
	ActionHelpful  = "helpful"
	ActionRegister = "register"
)

// editorial is the lifecycle of articles, reports, whitepapers, tutorials
// and case studies.
var editorial = lifecycle.Policy{
	Statuses: []lifecycle.Status{lifecycle.StatusDraft, lifecycle.StatusPublished, lifecycle.StatusArchived},
	Initial:  lifecycle.StatusDraft,
	Visible:  []lifecycle.Status{lifecycle.StatusPublished},
}

// catalog is the lifecycle of products and team members.
var catalog = lifecycle.Policy{
	Statuses: []lifecycle.Status{lifecycle.StatusDraft, lifecycle.StatusActive, lifecycle.StatusArchived},
	Initial:  lifecycle.StatusDraft,
	Visible:  []lifecycle.Status{lifecycle.StatusActive},
	Orders: map[lifecycle.ListKind][]lifecycle.OrderTerm{
		lifecycle.ListPublished: {lifecycle.Desc("featured"), lifecycle.Asc("sort_order"), lifecycle.Asc("name")},
		lifecycle.ListFeatured:  {lifecycle.Asc("sort_order"), lifecycle.Asc("name")},
	},
}

// statusFilter accepts ?status= values valid for p.
func statusFilter(p lifecycle.Policy) store.Filter {
	return store.Filter{
		Param:  "status",
		Column: "status",
		Op:     store.OpEq,
		Parse: func(raw string) (any, error) {
			s, err := p.ParseStatus(raw)
			if err != nil {
				return nil, err
			}
			return string(s), nil
		},
	}
}

// textFilter matches a text column exactly.
func textFilter(param, column string) store.Filter {
	return store.Filter{Param: param, Column: column, Op: store.OpEq}
}

// rangeFilters returns the from/to pair bounding a timestamp column.
func rangeFilters(column string) []store.Filter {
	return []store.Filter{
		{Param: "from", Column: column, Op: store.OpGte, Parse: parseTime},
		{Param: "to", Column: column, Op: store.OpLte, Parse: parseTime},
	}
}

// parseTime accepts RFC 3339 timestamps and plain dates.
func parseTime(raw string) (any, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, fmt.Errorf("expected a date (YYYY-MM-DD) or RFC 3339 timestamp")
	}
	return t, nil
}

func parseUUID(raw string) (any, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("expected a uuid")
	}
	return id, nil
}

// columnView is a public view narrowed by equality on column.
func columnView(name, column string) store.View {
	return store.View{Name: name, Column: column, Order: lifecycle.ListPublished}
}

func checkTitle(v *store.ValidationError, title string) {
	v.Required("title", title)
	v.MaxLen("title", title, maxTitleLen)
}

func checkName(v *store.ValidationError, name string) {
	v.Required("name", name)
	v.MaxLen("name", name, maxNameLen)
}

func checkEmail(v *store.ValidationError, email string) {
	email = strings.TrimSpace(email)
	if email == "" {
		v.Add("email", "is required")
		return
	}
	v.MaxLen("email", email, maxEmailLen)
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		v.Add("email", "must be a valid email address")
	}
}

func checkNonNegative(v *store.ValidationError, field string, n *int) {
	if n != nil && *n < 0 {
		v.Add(field, "must not be negative")
	}
}
