// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// changelog.go records write events on content for audit and debugging.
// Each entry captures which record changed, how and by whom. Recording is
// best-effort: a failed insert is logged and never fails the write.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Change actions.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionStatus = "status"
	ActionDelete = "delete"
)

// Change is a single write event.
type Change struct {
	ID        int64     `json:"id"`
	Resource  string    `json:"resource"`
	RecordID  uuid.UUID `json:"record_id"`
	Action    string    `json:"action"`
	Actor     string    `json:"actor,omitempty"`
	ChangedAt time.Time `json:"changed_at"`
}

// ChangeLog stores and lists Change entries.
type ChangeLog interface {
	Record(ctx context.Context, c Change)
	Recent(ctx context.Context, limit int) ([]Change, error)
}

// ChangeLogStore keeps the change log in the content_changes table.
type ChangeLogStore struct {
	db *sql.DB
}

// NewChangeLogStore creates a new ChangeLogStore.
func NewChangeLogStore(db *sql.DB) *ChangeLogStore {
	return &ChangeLogStore{db: db}
}

// Record inserts a change event.
func (s *ChangeLogStore) Record(ctx context.Context, c Change) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO content_changes (resource, record_id, action, actor)
		VALUES ($1, $2, $3, $4)
	`, c.Resource, c.RecordID, c.Action, c.Actor)
	if err != nil {
		slog.Warn("failed to record content change",
			"resource", c.Resource,
			"record_id", c.RecordID,
			"action", c.Action,
			"error", err,
		)
		return
	}
	slog.Debug("content change recorded",
		"resource", c.Resource,
		"record_id", c.RecordID,
		"action", c.Action,
	)
}

// Recent returns the newest change events, at most limit of them.
func (s *ChangeLogStore) Recent(ctx context.Context, limit int) ([]Change, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, resource, record_id, action, actor, changed_at
		FROM content_changes
		ORDER BY changed_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query content changes: %w", err)
	}
	defer rows.Close()

	entries := []Change{}
	for rows.Next() {
		var c Change
		if err := rows.Scan(&c.ID, &c.Resource, &c.RecordID, &c.Action, &c.Actor, &c.ChangedAt); err != nil {
			return nil, fmt.Errorf("scan content change: %w", err)
		}
		c.ChangedAt = c.ChangedAt.UTC()
		entries = append(entries, c)
	}
	return entries, rows.Err()
}

// MemoryChangeLog is a bounded in-process change log.
type MemoryChangeLog struct {
	mu      sync.Mutex
	max     int
	nextID  int64
	entries []Change
}

// NewMemoryChangeLog keeps at most max entries, dropping the oldest.
func NewMemoryChangeLog(max int) *MemoryChangeLog {
	return &MemoryChangeLog{max: max}
}

// Record appends a change event.
func (l *MemoryChangeLog) Record(_ context.Context, c Change) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	c.ID = l.nextID
	c.ChangedAt = time.Now().UTC()
	l.entries = append(l.entries, c)
	if l.max > 0 && len(l.entries) > l.max {
		l.entries = l.entries[len(l.entries)-l.max:]
	}
}

// Recent returns the newest change events first.
func (l *MemoryChangeLog) Recent(_ context.Context, limit int) ([]Change, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := []Change{}
	for i := len(l.entries) - 1; i >= 0 && (limit <= 0 || len(out) < limit); i-- {
		out = append(out, l.entries[i])
	}
	return out, nil
}
