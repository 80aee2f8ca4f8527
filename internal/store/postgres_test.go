// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contentdesk/internal/content"
	"contentdesk/internal/database/dbtest"
	"contentdesk/internal/models"
	"contentdesk/internal/store"
)

func TestPostgresRepository(t *testing.T) {
	db := dbtest.Open(t)
	runRepositoryTests(t, func(t *testing.T) store.Repository[models.Report] {
		dbtest.Truncate(t, db, content.Reports.Table)
		s, err := store.NewPostgres(db, content.Reports)
		require.NoError(t, err)
		return s
	})
}

func TestPostgresNullTags(t *testing.T) {
	db := dbtest.Open(t)
	dbtest.Truncate(t, db, content.News.Table)
	s, err := store.NewPostgres(db, content.News)
	require.NoError(t, err)
	ctx := context.Background()

	n, err := s.Create(ctx, &models.NewsArticle{Title: "No tags"})
	require.NoError(t, err)

	var raw *string
	require.NoError(t, db.QueryRow("SELECT tags FROM news_articles WHERE id = $1", n.ID).Scan(&raw))
	assert.Nil(t, raw)
	assert.Equal(t, []string{}, n.Tags)
}

func TestChangeLogStore(t *testing.T) {
	db := dbtest.Open(t)
	dbtest.Truncate(t, db, "content_changes")
	log := store.NewChangeLogStore(db)
	ctx := context.Background()

	id1, id2 := uuid.New(), uuid.New()
	log.Record(ctx, store.Change{Resource: "news", RecordID: id1, Action: store.ActionCreate, Actor: "editor"})
	log.Record(ctx, store.Change{Resource: "jobs", RecordID: id2, Action: store.ActionDelete})

	entries, err := log.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, id2, entries[0].RecordID)
	assert.Equal(t, "editor", entries[1].Actor)

	entries, err = log.Recent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
