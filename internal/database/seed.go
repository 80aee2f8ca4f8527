// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"contentdesk/internal/lifecycle"
	"contentdesk/internal/models"
	"contentdesk/internal/store"
)

// Seed populates empty stores with development content: one published news
// article and one published tutorial. Stores that already hold records are
// left alone, so Seed is safe to call on every start.
func Seed(ctx context.Context, news store.Repository[models.NewsArticle], tutorials store.Repository[models.Tutorial]) error {
	now := time.Now().UTC()
	author := "ContentDesk Team"
	category := "announcements"

	created, err := seedOne(ctx, news, &models.NewsArticle{
		Base:        models.Base{Status: lifecycle.StatusPublished, Featured: true, Tags: []string{"welcome"}},
		Title:       "Welcome to ContentDesk",
		Body:        "This article was created by the development seed. Edit or delete it through the protected API.",
		Author:      &author,
		Category:    &category,
		PublishedAt: &now,
	})
	if err != nil {
		return fmt.Errorf("seed news: %w", err)
	}

	minutes := 10
	tutCreated, err := seedOne(ctx, tutorials, &models.Tutorial{
		Base:            models.Base{Status: lifecycle.StatusPublished, Tags: []string{"api", "getting-started"}},
		Title:           "Getting started with the content API",
		Body:            "List published records with GET /api/{resource} and fetch one with GET /api/{resource}/slug/{slug}.",
		Difficulty:      models.DifficultyBeginner,
		Author:          &author,
		DurationMinutes: &minutes,
	})
	if err != nil {
		return fmt.Errorf("seed tutorials: %w", err)
	}

	if created || tutCreated {
		slog.Info("database seeded with development content")
	} else {
		slog.Info("database already seeded, skipping")
	}
	return nil
}

// seedOne creates rec when repo is empty and reports whether it did.
func seedOne[T any](ctx context.Context, repo store.Repository[T], rec *T) (bool, error) {
	n, err := repo.Count(ctx, store.Query{})
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	if _, err := repo.Create(ctx, rec); err != nil {
		return false, err
	}
	return true, nil
}
