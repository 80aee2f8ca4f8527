// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contentdesk/internal/lifecycle"
	"contentdesk/internal/models"
	"contentdesk/internal/store"
)

func ptr[T any](v T) *T { return &v }

func TestKindsAreValid(t *testing.T) {
	tests := []struct {
		name string
		new  func() error
	}{
		{"news", func() error { _, err := store.NewMemory(News); return err }},
		{"newsletters", func() error { _, err := store.NewMemory(Newsletters); return err }},
		{"webinars", func() error { _, err := store.NewMemory(Webinars); return err }},
		{"reports", func() error { _, err := store.NewMemory(Reports); return err }},
		{"whitepapers", func() error { _, err := store.NewMemory(Whitepapers); return err }},
		{"tutorials", func() error { _, err := store.NewMemory(Tutorials); return err }},
		{"case-studies", func() error { _, err := store.NewMemory(CaseStudies); return err }},
		{"jobs", func() error { _, err := store.NewMemory(Jobs); return err }},
		{"applications", func() error { _, err := store.NewMemory(Applications); return err }},
		{"products", func() error { _, err := store.NewMemory(Products); return err }},
		{"team", func() error { _, err := store.NewMemory(Team); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, tt.new())
		})
	}
}

func TestApplicationsHaveNoPublicSet(t *testing.T) {
	assert.Empty(t, Applications.Policy.Visible)
	assert.True(t, Applications.PublicCreate)
	assert.Equal(t, []lifecycle.Status{}, Applications.Policy.VisibleSubset(nil))
}

func TestApplicationSlugsDoNotCollide(t *testing.T) {
	s, err := store.NewMemory(Applications)
	require.NoError(t, err)
	ctx := context.Background()

	job := uuid.New()
	a, err := s.Create(ctx, &models.JobApplication{JobID: job, Name: "Ana Pop", Email: "ana@example.com"})
	require.NoError(t, err)
	b, err := s.Create(ctx, &models.JobApplication{JobID: job, Name: "Ana Pop", Email: "ana.pop@example.com"})
	require.NoError(t, err)

	assert.NotEqual(t, a.Slug, b.Slug)
	assert.True(t, strings.HasPrefix(a.Slug, "ana-pop-"))
	assert.True(t, strings.HasSuffix(a.Slug, a.ID.String()[:8]))
	assert.Equal(t, lifecycle.StatusReceived, a.Status)
}

func TestApplicationValidation(t *testing.T) {
	s, err := store.NewMemory(Applications)
	require.NoError(t, err)

	_, err = s.Create(context.Background(), &models.JobApplication{Name: "X", Email: "not an email"})
	var ve *store.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Fields, "email")
	assert.Contains(t, ve.Fields, "job_id")
}

func TestTutorialDifficulty(t *testing.T) {
	s, err := store.NewMemory(Tutorials)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = s.Create(ctx, &models.Tutorial{Title: "Go basics", Difficulty: "expert"})
	var ve *store.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Fields, "difficulty")

	tut, err := s.Create(ctx, &models.Tutorial{Title: "Go basics", Difficulty: models.DifficultyBeginner})
	require.NoError(t, err)
	assert.Equal(t, "go-basics", tut.Slug)
	assert.Equal(t, lifecycle.StatusDraft, tut.Status)
}

func TestJobEmploymentType(t *testing.T) {
	s, err := store.NewMemory(Jobs)
	require.NoError(t, err)

	_, err = s.Create(context.Background(), &models.JobPosting{Title: "Engineer", EmploymentType: "gig"})
	var ve *store.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Fields, "employment_type")
}

func TestTitleRequired(t *testing.T) {
	s, err := store.NewMemory(News)
	require.NoError(t, err)

	_, err = s.Create(context.Background(), &models.NewsArticle{Title: "   "})
	var ve *store.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Fields, "title")
}

func TestStatusFilterParse(t *testing.T) {
	f := statusFilter(jobLifecycle)

	v, err := f.Parse("active")
	require.NoError(t, err)
	assert.Equal(t, "active", v)

	_, err = f.Parse("published")
	assert.ErrorIs(t, err, lifecycle.ErrInvalidState)
}

func TestParseTime(t *testing.T) {
	v, err := parseTime("2026-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), v)

	v, err = parseTime("2026-03-01T10:00:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC), v)

	_, err = parseTime("yesterday")
	assert.Error(t, err)
}

func TestWebinarViews(t *testing.T) {
	s, err := store.NewMemory(Webinars)
	require.NoError(t, err)
	ctx := context.Background()

	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	for i, st := range []lifecycle.Status{lifecycle.StatusUpcoming, lifecycle.StatusUpcoming, lifecycle.StatusCompleted} {
		_, err := s.Create(ctx, &models.Webinar{
			Title:    "Session " + string(rune('A'+i)),
			Base:     models.Base{Status: st},
			StartsAt: ptr(base.AddDate(0, 0, 2-i)),
		})
		require.NoError(t, err)
	}

	view, ok := Webinars.View("upcoming")
	require.True(t, ok)
	items, err := s.List(ctx, store.Query{
		Statuses: Webinars.Policy.VisibleSubset(view.Statuses),
		Order:    Webinars.Policy.DefaultOrder(view.Order),
	})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Session B", items[0].Title)
	assert.Equal(t, "Session A", items[1].Title)
}
