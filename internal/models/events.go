// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Webinar is a scheduled online session. Upcoming, live and completed
// webinars are each listed publicly through their own view.
type Webinar struct {
	Base
	Title                  string     `json:"title"`
	Description            *string    `json:"description,omitempty"`
	Presenter              *string    `json:"presenter,omitempty"`
	StartsAt               *time.Time `json:"starts_at,omitempty"`
	DurationMinutes        *int       `json:"duration_minutes,omitempty"`
	MaxParticipants        *int       `json:"max_participants,omitempty"`
	RegistrationURL        *string    `json:"registration_url,omitempty"`
	RecordingURL           *string    `json:"recording_url,omitempty"`
	ImageURL               *string    `json:"image_url,omitempty"`
	Views                  int64      `json:"views"`
	RegisteredParticipants int64      `json:"registered_participants"`
}
