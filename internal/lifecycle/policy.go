// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package lifecycle holds the rules every content type obeys: the status
// vocabulary, which statuses the public may see, the default ordering of
// listings and the stored form of tags.
package lifecycle

import (
	"errors"
	"fmt"
	"slices"
)

// Status is the publishing state of a content record. Each content type
// picks its own enumeration from this shared vocabulary.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusActive    Status = "active"
	StatusScheduled Status = "scheduled"
	StatusSent      Status = "sent"
	StatusArchived  Status = "archived"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
	StatusUpcoming  Status = "upcoming"
	StatusLive      Status = "live"
	StatusClosed    Status = "closed"

	// Job application pipeline.
	StatusReceived     Status = "received"
	StatusReviewing    Status = "reviewing"
	StatusInterviewing Status = "interviewing"
	StatusHired        Status = "hired"
	StatusRejected     Status = "rejected"
)

// ErrInvalidState is returned when a status is outside a type's enumeration.
var ErrInvalidState = errors.New("invalid state")

// Policy describes the lifecycle of one content type.
type Policy struct {
	// Statuses is the closed set of valid values.
	Statuses []Status
	// Initial is applied on create when the caller sends no status.
	Initial Status
	// Visible is the subset the public surface may return. May be empty.
	Visible []Status
	// Orders overrides DefaultOrdering for specific list kinds.
	Orders map[ListKind][]OrderTerm
}

// Check returns ErrInvalidState if status is not one of p.Statuses.
func (p Policy) Check(status Status) error {
	if slices.Contains(p.Statuses, status) {
		return nil
	}
	return fmt.Errorf("%w: %q is not one of %v", ErrInvalidState, status, p.Statuses)
}

// IsPubliclyVisible reports whether a record with the given status may be
// returned by a public operation.
func (p Policy) IsPubliclyVisible(status Status) bool {
	return slices.Contains(p.Visible, status)
}

// VisibleSubset narrows statuses to the ones the public may see. An empty
// input means "every visible status". The result is never nil, so callers
// can tell "no status filter" (nil) apart from "nothing visible" (empty).
func (p Policy) VisibleSubset(statuses []Status) []Status {
	if len(statuses) == 0 {
		return append([]Status{}, p.Visible...)
	}
	out := []Status{}
	for _, s := range statuses {
		if p.IsPubliclyVisible(s) {
			out = append(out, s)
		}
	}
	return out
}

// ParseStatus converts raw input into a Status valid for this policy.
func (p Policy) ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if err := p.Check(s); err != nil {
		return "", err
	}
	return s, nil
}
