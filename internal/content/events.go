// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"contentdesk/internal/lifecycle"
	"contentdesk/internal/models"
	"contentdesk/internal/store"
)

// List kinds of the webinar views.
const (
	listUpcoming lifecycle.ListKind = "upcoming"
	listPast     lifecycle.ListKind = "past"
)

var webinarLifecycle = lifecycle.Policy{
	Statuses: []lifecycle.Status{
		lifecycle.StatusDraft, lifecycle.StatusUpcoming, lifecycle.StatusLive,
		lifecycle.StatusCompleted, lifecycle.StatusCancelled,
	},
	Initial: lifecycle.StatusDraft,
	Visible: []lifecycle.Status{lifecycle.StatusUpcoming, lifecycle.StatusLive, lifecycle.StatusCompleted},
	Orders: map[lifecycle.ListKind][]lifecycle.OrderTerm{
		lifecycle.ListPublished: {lifecycle.Desc("featured"), lifecycle.Desc("starts_at")},
		listUpcoming:            {lifecycle.Asc("starts_at")},
		listPast:                {lifecycle.Desc("starts_at")},
	},
}

// Webinars are online sessions, listed publicly once announced.
var Webinars = &store.Kind[models.Webinar]{
	Name:     "webinar",
	Resource: "webinars",
	Table:    "webinars",
	Policy:   webinarLifecycle,
	Fields: []store.Field[models.Webinar]{
		{Column: "title", Ref: func(w *models.Webinar) any { return &w.Title }},
		{Column: "description", Ref: func(w *models.Webinar) any { return &w.Description }},
		{Column: "presenter", Ref: func(w *models.Webinar) any { return &w.Presenter }},
		{Column: "starts_at", Ref: func(w *models.Webinar) any { return &w.StartsAt }},
		{Column: "duration_minutes", Ref: func(w *models.Webinar) any { return &w.DurationMinutes }},
		{Column: "max_participants", Ref: func(w *models.Webinar) any { return &w.MaxParticipants }},
		{Column: "registration_url", Ref: func(w *models.Webinar) any { return &w.RegistrationURL }},
		{Column: "recording_url", Ref: func(w *models.Webinar) any { return &w.RecordingURL }},
		{Column: "image_url", Ref: func(w *models.Webinar) any { return &w.ImageURL }},
	},
	Counters: []store.Counter[models.Webinar]{
		{Field: store.Field[models.Webinar]{Column: "views", Ref: func(w *models.Webinar) any { return &w.Views }}, Action: ActionView},
		{Field: store.Field[models.Webinar]{Column: "registered_participants", Ref: func(w *models.Webinar) any { return &w.RegisteredParticipants }}, Action: ActionRegister},
	},
	Filters: append([]store.Filter{
		statusFilter(webinarLifecycle),
		textFilter("presenter", "presenter"),
	}, rangeFilters("starts_at")...),
	Views: []store.View{
		{Name: "upcoming", Statuses: []lifecycle.Status{lifecycle.StatusUpcoming}, Order: listUpcoming},
		{Name: "live", Statuses: []lifecycle.Status{lifecycle.StatusLive}, Order: listUpcoming},
		{Name: "past", Statuses: []lifecycle.Status{lifecycle.StatusCompleted}, Order: listPast},
	},
	SlugSource: func(w *models.Webinar) string { return w.Title },
	Validate: func(w *models.Webinar, v *store.ValidationError) {
		checkTitle(v, w.Title)
		v.MaxLenPtr("description", w.Description, maxBodyLen)
		v.MaxLenPtr("presenter", w.Presenter, maxShortLen)
		checkNonNegative(v, "duration_minutes", w.DurationMinutes)
		checkNonNegative(v, "max_participants", w.MaxParticipants)
	},
}
