// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"

	"contentdesk/internal/lifecycle"
	"contentdesk/internal/models"
	"contentdesk/internal/slug"
)

const maxSlugLen = 300

// baseColumns are the header columns every content table carries, in
// select order.
var baseColumns = []string{"id", "slug", "status", "featured", "tags", "created_at", "updated_at"}

// Field maps a table column to a struct field. Ref returns a pointer to the
// field and is used both as a scan target and, dereferenced, as a value.
type Field[T any] struct {
	Column string
	Ref    func(*T) any
}

// Counter is a Field owned by the engagement layer. Action is the public
// verb that bumps it ("view", "download").
type Counter[T any] struct {
	Field[T]
	Action string
}

// Filter is one query parameter accepted by protected listings.
type Filter struct {
	Param  string
	Column string
	Op     Op
	// Parse converts the raw parameter. Nil keeps the string as is.
	Parse func(string) (any, error)
}

// View is a narrowed public listing such as "upcoming" webinars or
// news in one category.
type View struct {
	Name string
	// Column, when set, is compared for equality with the path value.
	Column string
	// Statuses narrows the visible set. Nil means every visible status.
	Statuses []lifecycle.Status
	// Order selects the list kind whose ordering applies.
	Order lifecycle.ListKind
}

// Kind describes one content type: where it lives, which columns it has and
// which lifecycle it follows. The generic stores are driven entirely by it.
type Kind[T any] struct {
	Name     string
	Resource string
	Table    string
	Policy   lifecycle.Policy

	Fields   []Field[T]
	Counters []Counter[T]
	Filters  []Filter
	Views    []View

	// SlugSource returns the text a slug is derived from on create.
	SlugSource func(*T) string
	// DerivedSlug ignores any slug supplied on create and always uses
	// SlugSource.
	DerivedSlug bool
	// Validate records problems with type-specific fields.
	Validate func(*T, *ValidationError)
	// PublicCreate lets anonymous callers create records (job applications).
	PublicCreate bool
}

// core returns the shared header of a record.
func core[T any](rec *T) *models.Base {
	return any(rec).(models.Record).Core()
}

// Header returns the shared header of rec. T must embed models.Base.
func Header[T any](rec *T) *models.Base {
	return core(rec)
}

// check verifies the descriptor is usable. Stores call it on construction.
func (k *Kind[T]) check() error {
	var zero T
	if _, ok := any(&zero).(models.Record); !ok {
		return fmt.Errorf("kind %s: %T does not embed models.Base", k.Name, zero)
	}
	if k.Table == "" || k.Resource == "" {
		return fmt.Errorf("kind %s: table and resource are required", k.Name)
	}
	if k.DerivedSlug && k.SlugSource == nil {
		return fmt.Errorf("kind %s: derived slug without a slug source", k.Name)
	}
	if len(k.Policy.Statuses) == 0 {
		return fmt.Errorf("kind %s: empty status enumeration", k.Name)
	}
	if err := k.Policy.Check(k.Policy.Initial); err != nil {
		return fmt.Errorf("kind %s: initial status: %w", k.Name, err)
	}
	for _, s := range k.Policy.Visible {
		if err := k.Policy.Check(s); err != nil {
			return fmt.Errorf("kind %s: visible status: %w", k.Name, err)
		}
	}
	for kind, terms := range k.Policy.Orders {
		for _, t := range terms {
			if !k.hasColumn(t.Column) {
				return fmt.Errorf("kind %s: order %s uses unknown column %q", k.Name, kind, t.Column)
			}
		}
	}
	for _, f := range k.Filters {
		if !k.hasColumn(f.Column) {
			return fmt.Errorf("kind %s: filter %s uses unknown column %q", k.Name, f.Param, f.Column)
		}
	}
	for _, v := range k.Views {
		if v.Column != "" && !k.hasColumn(v.Column) {
			return fmt.Errorf("kind %s: view %s uses unknown column %q", k.Name, v.Name, v.Column)
		}
	}
	return nil
}

// columns returns every column in select order: header, fields, counters.
func (k *Kind[T]) columns() []string {
	cols := append([]string{}, baseColumns...)
	for _, f := range k.Fields {
		cols = append(cols, f.Column)
	}
	for _, c := range k.Counters {
		cols = append(cols, c.Column)
	}
	return cols
}

func (k *Kind[T]) hasColumn(col string) bool {
	for _, c := range k.columns() {
		if c == col {
			return true
		}
	}
	return false
}

// HasCounter reports whether name is one of the kind's counter columns.
func (k *Kind[T]) HasCounter(name string) bool {
	for _, c := range k.Counters {
		if c.Column == name {
			return true
		}
	}
	return false
}

// CounterFor maps a public action to its counter column.
func (k *Kind[T]) CounterFor(action string) (string, bool) {
	for _, c := range k.Counters {
		if c.Action == action {
			return c.Column, true
		}
	}
	return "", false
}

// View returns the named view.
func (k *Kind[T]) View(name string) (View, bool) {
	for _, v := range k.Views {
		if v.Name == name {
			return v, true
		}
	}
	return View{}, false
}

// value returns the current value of col on rec, with pointers dereferenced
// (nil for a nil pointer). Used by the memory store for filters and sorting.
func (k *Kind[T]) value(rec *T, col string) any {
	b := core(rec)
	switch col {
	case "id":
		return b.ID
	case "slug":
		return b.Slug
	case "status":
		return string(b.Status)
	case "featured":
		return b.Featured
	case "created_at":
		return b.CreatedAt
	case "updated_at":
		return b.UpdatedAt
	}
	for _, f := range k.Fields {
		if f.Column == col {
			return deref(f.Ref(rec))
		}
	}
	for _, c := range k.Counters {
		if c.Column == col {
			return deref(c.Ref(rec))
		}
	}
	return nil
}

// deref turns a pointer to a struct field into the field's value, following
// one more level for optional (pointer) fields.
func deref(p any) any {
	v := reflect.ValueOf(p).Elem()
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	return v.Interface()
}

// fieldArgs returns the values of the type-specific fields in column order.
func (k *Kind[T]) fieldArgs(rec *T) []any {
	args := make([]any, 0, len(k.Fields))
	for _, f := range k.Fields {
		args = append(args, reflect.ValueOf(f.Ref(rec)).Elem().Interface())
	}
	return args
}

// copyCounters copies every counter value from src into dst.
func (k *Kind[T]) copyCounters(dst, src *T) {
	for _, c := range k.Counters {
		reflect.ValueOf(c.Ref(dst)).Elem().Set(reflect.ValueOf(c.Ref(src)).Elem())
	}
}

// addCounter adds amount to the named counter of rec.
func (k *Kind[T]) addCounter(rec *T, name string, amount int64) {
	for _, c := range k.Counters {
		if c.Column == name {
			v := reflect.ValueOf(c.Ref(rec)).Elem()
			v.SetInt(v.Int() + amount)
			return
		}
	}
}

// normalizeSlug turns caller input into a URL-safe slug, recording a
// validation problem when nothing usable remains.
func normalizeSlug(raw string, v *ValidationError) string {
	s := slug.Generate(raw)
	if s == "" {
		v.Add("slug", "is required and must contain letters or digits")
	}
	if len(s) > maxSlugLen {
		v.Add("slug", fmt.Sprintf("is too long (max %d characters)", maxSlugLen))
	}
	return s
}

// prepareCreate fills the store-owned fields of a new record and validates
// it. now must already be truncated to storage precision.
func (k *Kind[T]) prepareCreate(rec *T, now time.Time) error {
	b := core(rec)
	b.ID = uuid.New()
	if b.Status == "" {
		b.Status = k.Policy.Initial
	}
	if err := k.Policy.Check(b.Status); err != nil {
		return err
	}

	v := &ValidationError{}
	raw := b.Slug
	if (raw == "" || k.DerivedSlug) && k.SlugSource != nil {
		raw = k.SlugSource(rec)
	}
	b.Slug = normalizeSlug(raw, v)
	b.Tags = lifecycle.NormalizeTags(b.Tags)
	if !lifecycle.ValidTags(b.Tags) {
		v.Add("tags", "must be valid UTF-8 text")
	}

	var zero T
	k.copyCounters(rec, &zero)
	if k.Validate != nil {
		k.Validate(rec, v)
	}
	if err := v.Err(); err != nil {
		return err
	}

	b.CreatedAt = now
	b.UpdatedAt = now
	return nil
}

// prepareUpdate restores what an update may not change, validates the result
// and moves updated_at strictly forward.
func (k *Kind[T]) prepareUpdate(orig, rec *T, now time.Time) error {
	b, ob := core(rec), core(orig)
	b.ID = ob.ID
	b.CreatedAt = ob.CreatedAt
	k.copyCounters(rec, orig)

	if err := k.Policy.Check(b.Status); err != nil {
		return err
	}

	v := &ValidationError{}
	if b.Slug != ob.Slug {
		b.Slug = normalizeSlug(b.Slug, v)
	}
	b.Tags = lifecycle.NormalizeTags(b.Tags)
	if !lifecycle.ValidTags(b.Tags) {
		v.Add("tags", "must be valid UTF-8 text")
	}
	if k.Validate != nil {
		k.Validate(rec, v)
	}
	if err := v.Err(); err != nil {
		return err
	}

	b.UpdatedAt = nextUpdatedAt(ob.UpdatedAt, now)
	return nil
}

// storageNow is the current time at the precision Postgres keeps.
func storageNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// nextUpdatedAt returns now, or prev plus one microsecond when the clock has
// not moved past prev, so updated_at always increases.
func nextUpdatedAt(prev, now time.Time) time.Time {
	if now.After(prev) {
		return now
	}
	return prev.Add(time.Microsecond)
}
