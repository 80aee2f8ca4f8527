// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"unicode/utf8"
)

var (
	// ErrNotFound is returned when no record matches.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a slug is already taken.
	ErrConflict = errors.New("slug already exists")
	// ErrUnknownCounter is returned when a counter name is not declared by the kind.
	ErrUnknownCounter = errors.New("unknown counter")
)

// ValidationError collects field-level problems found before a write.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := slices.Sorted(maps.Keys(e.Fields))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add records a problem for field. The first problem per field wins.
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = msg
	}
}

// Required flags field when value is blank.
func (e *ValidationError) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		e.Add(field, "is required")
	}
}

// MaxLen flags field when value has more than max characters.
func (e *ValidationError) MaxLen(field, value string, max int) {
	if utf8.RuneCountInString(value) > max {
		e.Add(field, fmt.Sprintf("is too long (max %d characters)", max))
	}
}

// MaxLenPtr is MaxLen for optional fields.
func (e *ValidationError) MaxLenPtr(field string, value *string, max int) {
	if value != nil {
		e.MaxLen(field, *value, max)
	}
}

// OneOf flags field when value is not one of allowed.
func (e *ValidationError) OneOf(field, value string, allowed ...string) {
	if !slices.Contains(allowed, value) {
		e.Add(field, "must be one of "+strings.Join(allowed, ", "))
	}
}

// Err returns e if any problem was recorded, nil otherwise.
func (e *ValidationError) Err() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// Invalid builds a ValidationError for a single field.
func Invalid(field, msg string) *ValidationError {
	v := &ValidationError{}
	v.Add(field, msg)
	return v
}

// StorageError wraps a failure of the underlying database. Its message is
// for logs only; callers show a generic failure.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
