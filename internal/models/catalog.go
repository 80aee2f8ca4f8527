// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Product is an entry in the product catalog. Lower SortOrder comes first.
type Product struct {
	Base
	Name        string  `json:"name"`
	Summary     *string `json:"summary,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	PriceCents  *int64  `json:"price_cents,omitempty"`
	Currency    *string `json:"currency,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	SortOrder   int     `json:"sort_order"`
	Views       int64   `json:"views"`
}

// TeamMember is a person shown on the team page.
type TeamMember struct {
	Base
	Name        string  `json:"name"`
	Role        string  `json:"role"`
	Department  *string `json:"department,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	LinkedInURL *string `json:"linkedin_url,omitempty"`
	SortOrder   int     `json:"sort_order"`
}
