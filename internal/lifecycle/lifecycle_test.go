// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package lifecycle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var articlePolicy = Policy{
	Statuses: []Status{StatusDraft, StatusPublished, StatusArchived},
	Initial:  StatusDraft,
	Visible:  []Status{StatusPublished},
}

func TestTagsRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		tags []string
	}{
		{"empty", []string{}},
		{"nil", nil},
		{"single", []string{"ai"}},
		{"ordered", []string{"demo", "ai", "demo"}},
		{"unicode and quotes", []string{"café", `say "hi"`, ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DeserializeTags(SerializeTags(tt.tags))
			require.NoError(t, err)
			require.NotNil(t, got)
			if len(tt.tags) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.tags, got)
		})
	}
}

func TestSerializeTagsEmptyIsNull(t *testing.T) {
	assert.Nil(t, SerializeTags(nil))
	assert.Nil(t, SerializeTags([]string{}))

	stored := SerializeTags([]string{"ai", "demo"})
	require.NotNil(t, stored)
	assert.Equal(t, `["ai","demo"]`, *stored)
}

func TestDeserializeTags(t *testing.T) {
	empty := ""
	null := "null"
	bad := "{not json"

	got, err := DeserializeTags(&empty)
	require.NoError(t, err)
	assert.Equal(t, []string{}, got)

	got, err = DeserializeTags(&null)
	require.NoError(t, err)
	assert.Equal(t, []string{}, got)

	_, err = DeserializeTags(&bad)
	assert.Error(t, err)
}

func TestPolicyCheck(t *testing.T) {
	assert.NoError(t, articlePolicy.Check(StatusPublished))

	err := articlePolicy.Check(StatusLive)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidState))

	assert.ErrorIs(t, articlePolicy.Check(""), ErrInvalidState)
}

func TestParseStatus(t *testing.T) {
	s, err := articlePolicy.ParseStatus("archived")
	require.NoError(t, err)
	assert.Equal(t, StatusArchived, s)

	_, err = articlePolicy.ParseStatus("Published")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestVisibility(t *testing.T) {
	assert.True(t, articlePolicy.IsPubliclyVisible(StatusPublished))
	assert.False(t, articlePolicy.IsPubliclyVisible(StatusDraft))
	assert.False(t, articlePolicy.IsPubliclyVisible(StatusArchived))

	hidden := Policy{Statuses: []Status{StatusReceived}, Initial: StatusReceived}
	assert.False(t, hidden.IsPubliclyVisible(StatusReceived))
	assert.NotNil(t, hidden.VisibleSubset(nil))
	assert.Empty(t, hidden.VisibleSubset(nil))
}

func TestVisibleSubset(t *testing.T) {
	webinars := Policy{
		Statuses: []Status{StatusDraft, StatusUpcoming, StatusLive, StatusCompleted, StatusCancelled},
		Visible:  []Status{StatusUpcoming, StatusLive, StatusCompleted},
	}

	assert.Equal(t, webinars.Visible, webinars.VisibleSubset(nil))
	assert.Equal(t, []Status{StatusLive}, webinars.VisibleSubset([]Status{StatusLive, StatusDraft}))
	assert.Equal(t, []Status{}, webinars.VisibleSubset([]Status{StatusCancelled}))
}

func TestDefaultOrder(t *testing.T) {
	t.Run("fallback appends tie-break", func(t *testing.T) {
		got := articlePolicy.DefaultOrder(ListPublished)
		assert.Equal(t, []OrderTerm{Desc("featured"), Desc("created_at"), Desc("id")}, got)
	})

	t.Run("override keeps direction of last key", func(t *testing.T) {
		p := Policy{Orders: map[ListKind][]OrderTerm{"upcoming": {Asc("starts_at")}}}
		assert.Equal(t, []OrderTerm{Asc("starts_at"), Asc("id")}, p.DefaultOrder("upcoming"))
	})

	t.Run("explicit tie-break is not duplicated", func(t *testing.T) {
		p := Policy{Orders: map[ListKind][]OrderTerm{ListAll: {Asc("id")}}}
		assert.Equal(t, []OrderTerm{Asc("id")}, p.DefaultOrder(ListAll))
	})

	t.Run("does not alias the default slice", func(t *testing.T) {
		got := articlePolicy.DefaultOrder(ListAll)
		got[0].Column = "mutated"
		assert.Equal(t, "featured", DefaultOrdering[0].Column)
	})
}

func TestValidTags(t *testing.T) {
	assert.True(t, ValidTags(nil))
	assert.True(t, ValidTags([]string{"ai", "日本語", "emoji 🚀"}))
	assert.False(t, ValidTags([]string{"ok", "bad\xff"}))
}
