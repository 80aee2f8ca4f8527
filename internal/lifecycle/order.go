// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package lifecycle

// ListKind names a list query so each one can declare its own ordering.
type ListKind string

const (
	ListAll       ListKind = "all"
	ListPublished ListKind = "published"
	ListFeatured  ListKind = "featured"
)

// OrderTerm is one ORDER BY key. Nulls always sort last.
type OrderTerm struct {
	Column string
	Desc   bool
}

// TieBreakColumn is appended to every ordering so it is total.
const TieBreakColumn = "id"

// DefaultOrdering is used for any list kind without an override:
// featured first, then newest.
var DefaultOrdering = []OrderTerm{
	{Column: "featured", Desc: true},
	{Column: "created_at", Desc: true},
}

// DefaultOrder returns the ordering for a list kind. The result always ends
// with the id tie-break so pagination is stable.
func (p Policy) DefaultOrder(kind ListKind) []OrderTerm {
	terms, ok := p.Orders[kind]
	if !ok {
		terms = DefaultOrdering
	}
	out := make([]OrderTerm, 0, len(terms)+1)
	out = append(out, terms...)
	for _, t := range terms {
		if t.Column == TieBreakColumn {
			return out
		}
	}
	desc := true
	if len(terms) > 0 {
		desc = terms[len(terms)-1].Desc
	}
	return append(out, OrderTerm{Column: TieBreakColumn, Desc: desc})
}

// Asc and Desc are shorthands for building Orders.
func Asc(column string) OrderTerm  { return OrderTerm{Column: column} }
func Desc(column string) OrderTerm { return OrderTerm{Column: column, Desc: true} }
