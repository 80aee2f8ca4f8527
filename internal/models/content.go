// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the record types of every content type. Each type
// embeds Base, the header shared by all content, and adds its own fields.
package models

import (
	"time"

	"github.com/google/uuid"

	"contentdesk/internal/lifecycle"
)

// Base is the header every content record carries. ID, CreatedAt and
// UpdatedAt are owned by the store; callers never set them.
type Base struct {
	ID        uuid.UUID        `json:"id"`
	Slug      string           `json:"slug"`
	Status    lifecycle.Status `json:"status"`
	Featured  bool             `json:"featured"`
	Tags      []string         `json:"tags"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// Core returns the shared header. It is promoted to every type embedding Base.
func (b *Base) Core() *Base {
	return b
}

// Record is implemented by every pointer to a content type.
type Record interface {
	Core() *Base
}
