// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"contentdesk/internal/models"
	"contentdesk/internal/store"
)

// Products make up the product catalog.
var Products = &store.Kind[models.Product]{
	Name:     "product",
	Resource: "products",
	Table:    "products",
	Policy:   catalog,
	Fields: []store.Field[models.Product]{
		{Column: "name", Ref: func(p *models.Product) any { return &p.Name }},
		{Column: "summary", Ref: func(p *models.Product) any { return &p.Summary }},
		{Column: "description", Ref: func(p *models.Product) any { return &p.Description }},
		{Column: "category", Ref: func(p *models.Product) any { return &p.Category }},
		{Column: "price_cents", Ref: func(p *models.Product) any { return &p.PriceCents }},
		{Column: "currency", Ref: func(p *models.Product) any { return &p.Currency }},
		{Column: "image_url", Ref: func(p *models.Product) any { return &p.ImageURL }},
		{Column: "sort_order", Ref: func(p *models.Product) any { return &p.SortOrder }},
	},
	Counters: []store.Counter[models.Product]{
		{Field: store.Field[models.Product]{Column: "views", Ref: func(p *models.Product) any { return &p.Views }}, Action: ActionView},
	},
	Filters: []store.Filter{
		statusFilter(catalog),
		textFilter("category", "category"),
	},
	Views:      []store.View{columnView("category", "category")},
	SlugSource: func(p *models.Product) string { return p.Name },
	Validate: func(p *models.Product, v *store.ValidationError) {
		checkName(v, p.Name)
		v.MaxLenPtr("summary", p.Summary, maxExcerptLen)
		v.MaxLenPtr("description", p.Description, maxBodyLen)
		v.MaxLenPtr("category", p.Category, maxShortLen)
		if p.PriceCents != nil && *p.PriceCents < 0 {
			v.Add("price_cents", "must not be negative")
		}
		if p.Currency != nil && len(*p.Currency) != 3 {
			v.Add("currency", "must be a three-letter code")
		}
	},
}

// Team members are shown on the team page.
var Team = &store.Kind[models.TeamMember]{
	Name:     "team member",
	Resource: "team",
	Table:    "team_members",
	Policy:   catalog,
	Fields: []store.Field[models.TeamMember]{
		{Column: "name", Ref: func(m *models.TeamMember) any { return &m.Name }},
		{Column: "role", Ref: func(m *models.TeamMember) any { return &m.Role }},
		{Column: "department", Ref: func(m *models.TeamMember) any { return &m.Department }},
		{Column: "bio", Ref: func(m *models.TeamMember) any { return &m.Bio }},
		{Column: "image_url", Ref: func(m *models.TeamMember) any { return &m.ImageURL }},
		{Column: "linkedin_url", Ref: func(m *models.TeamMember) any { return &m.LinkedInURL }},
		{Column: "sort_order", Ref: func(m *models.TeamMember) any { return &m.SortOrder }},
	},
	Filters: []store.Filter{
		statusFilter(catalog),
		textFilter("department", "department"),
	},
	Views:      []store.View{columnView("department", "department")},
	SlugSource: func(m *models.TeamMember) string { return m.Name },
	Validate: func(m *models.TeamMember, v *store.ValidationError) {
		checkName(v, m.Name)
		v.MaxLen("role", m.Role, maxShortLen)
		v.MaxLenPtr("department", m.Department, maxShortLen)
		v.MaxLenPtr("bio", m.Bio, maxBodyLen)
	},
}
