// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"contentdesk/internal/lifecycle"
)

// Postgres is a Repository backed by one PostgreSQL table.
type Postgres[T any] struct {
	db   *sql.DB
	kind *Kind[T]

	selectSQL string
	insertSQL string
	updateSQL string
}

// NewPostgres creates a Postgres store for kind. The SQL is built once here
// from the descriptor; column names never come from request input.
func NewPostgres[T any](db *sql.DB, kind *Kind[T]) (*Postgres[T], error) {
	if err := kind.check(); err != nil {
		return nil, err
	}

	cols := kind.columns()
	s := &Postgres[T]{db: db, kind: kind}
	s.selectSQL = fmt.Sprintf("SELECT %s FROM %s", strings.Join(cols, ", "), kind.Table)

	// Insert header and fields; counters take their column default.
	insertCols := append([]string{}, baseColumns...)
	for _, f := range kind.Fields {
		insertCols = append(insertCols, f.Column)
	}
	s.insertSQL = fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		kind.Table, strings.Join(insertCols, ", "), placeholders(1, len(insertCols)), strings.Join(cols, ", "))

	// $1 is the id; the header columns an update may change follow.
	sets := []string{"slug = $2", "status = $3", "featured = $4", "tags = $5", "updated_at = $6"}
	for i, f := range kind.Fields {
		sets = append(sets, fmt.Sprintf("%s = $%d", f.Column, i+7))
	}
	s.updateSQL = fmt.Sprintf("UPDATE %s SET %s WHERE id = $1 RETURNING %s",
		kind.Table, strings.Join(sets, ", "), strings.Join(cols, ", "))

	return s, nil
}

func placeholders(from, n int) string {
	ph := make([]string, n)
	for i := range ph {
		ph[i] = fmt.Sprintf("$%d", from+i)
	}
	return strings.Join(ph, ", ")
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scan reads one row in select order into a new record.
func (s *Postgres[T]) scan(row rowScanner) (*T, error) {
	rec := new(T)
	b := core(rec)
	var tags *string
	dest := []any{&b.ID, &b.Slug, &b.Status, &b.Featured, &tags, &b.CreatedAt, &b.UpdatedAt}
	for _, f := range s.kind.Fields {
		dest = append(dest, f.Ref(rec))
	}
	for _, c := range s.kind.Counters {
		dest = append(dest, c.Ref(rec))
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	var err error
	if b.Tags, err = lifecycle.DeserializeTags(tags); err != nil {
		return nil, err
	}
	b.CreatedAt = b.CreatedAt.UTC()
	b.UpdatedAt = b.UpdatedAt.UTC()
	return rec, nil
}

// handlePostgresError maps driver errors onto the store's error taxonomy.
func (s *Postgres[T]) handlePostgresError(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return fmt.Errorf("%s %s: %w", s.kind.Name, op, ErrConflict)
	}
	return &StorageError{Op: s.kind.Name + " " + op, Err: err}
}

// Create inserts a new record.
func (s *Postgres[T]) Create(ctx context.Context, rec *T) (*T, error) {
	rec = clone(rec)
	if err := s.kind.prepareCreate(rec, storageNow()); err != nil {
		return nil, err
	}

	b := core(rec)
	args := []any{b.ID, b.Slug, string(b.Status), b.Featured, lifecycle.SerializeTags(b.Tags), b.CreatedAt, b.UpdatedAt}
	args = append(args, s.kind.fieldArgs(rec)...)

	created, err := s.scan(s.db.QueryRowContext(ctx, s.insertSQL, args...))
	if err != nil {
		return nil, s.handlePostgresError("create", err)
	}
	return created, nil
}

// Get retrieves a record by id.
func (s *Postgres[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	rec, err := s.scan(s.db.QueryRowContext(ctx, s.selectSQL+" WHERE id = $1", id))
	if err != nil {
		return nil, s.handlePostgresError("get", err)
	}
	return rec, nil
}

// GetBySlug retrieves a record by slug.
func (s *Postgres[T]) GetBySlug(ctx context.Context, slug string) (*T, error) {
	rec, err := s.scan(s.db.QueryRowContext(ctx, s.selectSQL+" WHERE slug = $1", slug))
	if err != nil {
		return nil, s.handlePostgresError("get by slug", err)
	}
	return rec, nil
}

// where renders the WHERE clause of q and its arguments.
func (s *Postgres[T]) where(q Query) (string, []any, error) {
	var (
		clauses []string
		args    []any
	)
	if q.Statuses != nil {
		statuses := make([]string, len(q.Statuses))
		for i, st := range q.Statuses {
			statuses[i] = string(st)
		}
		args = append(args, statuses)
		clauses = append(clauses, fmt.Sprintf("status = ANY($%d)", len(args)))
	}
	if q.Featured != nil {
		args = append(args, *q.Featured)
		clauses = append(clauses, fmt.Sprintf("featured = $%d", len(args)))
	}
	for _, c := range q.Conditions {
		if !s.kind.hasColumn(c.Column) {
			return "", nil, fmt.Errorf("%s: unknown column %q", s.kind.Name, c.Column)
		}
		switch c.Op {
		case OpEq, OpGte, OpLte:
		default:
			return "", nil, fmt.Errorf("%s: unsupported operator %q", s.kind.Name, c.Op)
		}
		args = append(args, c.Value)
		clauses = append(clauses, fmt.Sprintf("%s %s $%d", c.Column, c.Op, len(args)))
	}
	if len(clauses) == 0 {
		return "", args, nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args, nil
}

// orderBy renders terms, falling back to the kind's default ordering.
func (s *Postgres[T]) orderBy(terms []lifecycle.OrderTerm) (string, error) {
	if len(terms) == 0 {
		terms = s.kind.Policy.DefaultOrder(lifecycle.ListAll)
	}
	parts := make([]string, 0, len(terms))
	for _, t := range terms {
		if !s.kind.hasColumn(t.Column) {
			return "", fmt.Errorf("%s: unknown order column %q", s.kind.Name, t.Column)
		}
		dir := "ASC"
		if t.Desc {
			dir = "DESC"
		}
		parts = append(parts, fmt.Sprintf("%s %s NULLS LAST", t.Column, dir))
	}
	return " ORDER BY " + strings.Join(parts, ", "), nil
}

// List returns the records matching q.
func (s *Postgres[T]) List(ctx context.Context, q Query) ([]T, error) {
	if q.matchesNothing() {
		return []T{}, nil
	}

	where, args, err := s.where(q)
	if err != nil {
		return nil, err
	}
	order, err := s.orderBy(q.Order)
	if err != nil {
		return nil, err
	}
	query := s.selectSQL + where + order
	if q.Limit > 0 {
		args = append(args, q.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if q.Offset > 0 {
		args = append(args, q.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, s.handlePostgresError("list", err)
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		rec, err := s.scan(rows)
		if err != nil {
			return nil, s.handlePostgresError("scan", err)
		}
		items = append(items, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, s.handlePostgresError("list", err)
	}
	return items, nil
}

// Count returns how many records match q, ignoring its limit and offset.
func (s *Postgres[T]) Count(ctx context.Context, q Query) (int, error) {
	if q.matchesNothing() {
		return 0, nil
	}

	where, args, err := s.where(q)
	if err != nil {
		return 0, err
	}
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+s.kind.Table+where, args...).Scan(&n); err != nil {
		return 0, s.handlePostgresError("count", err)
	}
	return n, nil
}

// Update locks the row, applies the mutation and writes it back in one
// transaction. Concurrent updates are last-writer-wins.
func (s *Postgres[T]) Update(ctx context.Context, id uuid.UUID, apply func(*T) error) (*T, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, s.handlePostgresError("update", err)
	}
	defer tx.Rollback()

	orig, err := s.scan(tx.QueryRowContext(ctx, s.selectSQL+" WHERE id = $1 FOR UPDATE", id))
	if err != nil {
		return nil, s.handlePostgresError("update", err)
	}

	rec := clone(orig)
	if err := apply(rec); err != nil {
		return nil, err
	}
	if err := s.kind.prepareUpdate(orig, rec, storageNow()); err != nil {
		return nil, err
	}

	b := core(rec)
	args := []any{b.ID, b.Slug, string(b.Status), b.Featured, lifecycle.SerializeTags(b.Tags), b.UpdatedAt}
	args = append(args, s.kind.fieldArgs(rec)...)

	updated, err := s.scan(tx.QueryRowContext(ctx, s.updateSQL, args...))
	if err != nil {
		return nil, s.handlePostgresError("update", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, s.handlePostgresError("update commit", err)
	}
	return updated, nil
}

// Delete removes a record. Deleting a missing record is not an error.
func (s *Postgres[T]) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM "+s.kind.Table+" WHERE id = $1", id)
	if err != nil {
		return false, s.handlePostgresError("delete", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, s.handlePostgresError("delete", err)
	}
	return n > 0, nil
}

// Increment adds amount to a counter in a single statement so concurrent
// increments never lose updates.
func (s *Postgres[T]) Increment(ctx context.Context, id uuid.UUID, counter string, amount int64) (bool, error) {
	if !s.kind.HasCounter(counter) {
		return false, fmt.Errorf("%s: %w %q", s.kind.Name, ErrUnknownCounter, counter)
	}
	if amount <= 0 {
		return false, Invalid("amount", "must be positive")
	}

	query := fmt.Sprintf("UPDATE %s SET %s = %s + $1 WHERE id = $2", s.kind.Table, counter, counter)
	res, err := s.db.ExecContext(ctx, query, amount, id)
	if err != nil {
		return false, s.handlePostgresError("increment", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, s.handlePostgresError("increment", err)
	}
	return n > 0, nil
}
