// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contentdesk/internal/content"
	"contentdesk/internal/database"
	"contentdesk/internal/database/dbtest"
	"contentdesk/internal/lifecycle"
	"contentdesk/internal/models"
	"contentdesk/internal/store"
)

func seedTwice(t *testing.T, news store.Repository[models.NewsArticle], tutorials store.Repository[models.Tutorial]) {
	t.Helper()
	ctx := context.Background()

	// Seed must be callable on every start.
	require.NoError(t, database.Seed(ctx, news, tutorials))
	require.NoError(t, database.Seed(ctx, news, tutorials))

	n, err := news.Count(ctx, store.Query{Statuses: []lifecycle.Status{lifecycle.StatusPublished}})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	tut, err := tutorials.GetBySlug(ctx, "getting-started-with-the-content-api")
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StatusPublished, tut.Status)
	assert.Equal(t, models.DifficultyBeginner, tut.Difficulty)
}

func TestSeedMemory(t *testing.T) {
	news, err := store.NewMemory(content.News)
	require.NoError(t, err)
	tutorials, err := store.NewMemory(content.Tutorials)
	require.NoError(t, err)

	seedTwice(t, news, tutorials)

	got, err := news.GetBySlug(context.Background(), "welcome-to-contentdesk")
	require.NoError(t, err)
	assert.True(t, got.Featured)
	assert.Equal(t, []string{"welcome"}, got.Tags)
}

func TestSeedSkipsNonEmptyStore(t *testing.T) {
	ctx := context.Background()
	news, err := store.NewMemory(content.News)
	require.NoError(t, err)
	tutorials, err := store.NewMemory(content.Tutorials)
	require.NoError(t, err)

	_, err = news.Create(ctx, &models.NewsArticle{Title: "Existing"})
	require.NoError(t, err)

	require.NoError(t, database.Seed(ctx, news, tutorials))

	n, err := news.Count(ctx, store.Query{})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	_, err = news.GetBySlug(ctx, "welcome-to-contentdesk")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSeedPostgres(t *testing.T) {
	db := dbtest.Open(t)
	dbtest.Truncate(t, db, content.News.Table, content.Tutorials.Table)

	news, err := store.NewPostgres(db, content.News)
	require.NoError(t, err)
	tutorials, err := store.NewPostgres(db, content.Tutorials)
	require.NoError(t, err)

	seedTwice(t, news, tutorials)
}
