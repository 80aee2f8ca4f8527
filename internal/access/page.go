// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package access

import (
	"net/url"
	"strconv"
)

// Page selects a window of a listing.
type Page struct {
	Limit  int
	Offset int
}

// Limits bounds the page size callers may request.
type Limits struct {
	Default int
	Max     int
}

// DefaultLimits applies when no configuration is given.
var DefaultLimits = Limits{Default: 20, Max: 100}

func (l Limits) normalize() Limits {
	if l.Max <= 0 {
		l.Max = DefaultLimits.Max
	}
	if l.Default <= 0 || l.Default > l.Max {
		l.Default = min(DefaultLimits.Default, l.Max)
	}
	return l
}

// Clamp replaces a missing limit with the default, caps it at the maximum
// and drops negative offsets.
func (l Limits) Clamp(p Page) Page {
	l = l.normalize()
	switch {
	case p.Limit <= 0:
		p.Limit = l.Default
	case p.Limit > l.Max:
		p.Limit = l.Max
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// ParsePage reads limit and offset query parameters. Malformed values are
// treated as absent.
func ParsePage(q url.Values) Page {
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))
	return Page{Limit: limit, Offset: offset}
}
