// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"contentdesk/internal/lifecycle"
	"contentdesk/internal/models"
	"contentdesk/internal/store"
)

// newsLifecycle lists published articles by publication date.
var newsLifecycle = lifecycle.Policy{
	Statuses: editorial.Statuses,
	Initial:  editorial.Initial,
	Visible:  editorial.Visible,
	Orders: map[lifecycle.ListKind][]lifecycle.OrderTerm{
		lifecycle.ListPublished: {lifecycle.Desc("featured"), lifecycle.Desc("published_at"), lifecycle.Desc("created_at")},
	},
}

var newsletterLifecycle = lifecycle.Policy{
	Statuses: []lifecycle.Status{lifecycle.StatusDraft, lifecycle.StatusScheduled, lifecycle.StatusSent, lifecycle.StatusArchived},
	Initial:  lifecycle.StatusDraft,
	Visible:  []lifecycle.Status{lifecycle.StatusSent},
	Orders: map[lifecycle.ListKind][]lifecycle.OrderTerm{
		lifecycle.ListPublished: {lifecycle.Desc("sent_at"), lifecycle.Desc("created_at")},
	},
}

// News articles.
var News = &store.Kind[models.NewsArticle]{
	Name:     "news article",
	Resource: "news",
	Table:    "news_articles",
	Policy:   newsLifecycle,
	Fields: []store.Field[models.NewsArticle]{
		{Column: "title", Ref: func(n *models.NewsArticle) any { return &n.Title }},
		{Column: "excerpt", Ref: func(n *models.NewsArticle) any { return &n.Excerpt }},
		{Column: "body", Ref: func(n *models.NewsArticle) any { return &n.Body }},
		{Column: "author", Ref: func(n *models.NewsArticle) any { return &n.Author }},
		{Column: "category", Ref: func(n *models.NewsArticle) any { return &n.Category }},
		{Column: "image_url", Ref: func(n *models.NewsArticle) any { return &n.ImageURL }},
		{Column: "published_at", Ref: func(n *models.NewsArticle) any { return &n.PublishedAt }},
	},
	Counters: []store.Counter[models.NewsArticle]{
		{Field: store.Field[models.NewsArticle]{Column: "views", Ref: func(n *models.NewsArticle) any { return &n.Views }}, Action: ActionView},
	},
	Filters: []store.Filter{
		statusFilter(newsLifecycle),
		textFilter("category", "category"),
		textFilter("author", "author"),
	},
	Views:      []store.View{columnView("category", "category")},
	SlugSource: func(n *models.NewsArticle) string { return n.Title },
	Validate: func(n *models.NewsArticle, v *store.ValidationError) {
		checkTitle(v, n.Title)
		v.MaxLen("body", n.Body, maxBodyLen)
		v.MaxLenPtr("excerpt", n.Excerpt, maxExcerptLen)
		v.MaxLenPtr("author", n.Author, maxShortLen)
		v.MaxLenPtr("category", n.Category, maxShortLen)
	},
}

// Newsletters become public once sent.
var Newsletters = &store.Kind[models.Newsletter]{
	Name:     "newsletter",
	Resource: "newsletters",
	Table:    "newsletters",
	Policy:   newsletterLifecycle,
	Fields: []store.Field[models.Newsletter]{
		{Column: "title", Ref: func(n *models.Newsletter) any { return &n.Title }},
		{Column: "summary", Ref: func(n *models.Newsletter) any { return &n.Summary }},
		{Column: "body", Ref: func(n *models.Newsletter) any { return &n.Body }},
		{Column: "issue_number", Ref: func(n *models.Newsletter) any { return &n.IssueNumber }},
		{Column: "scheduled_at", Ref: func(n *models.Newsletter) any { return &n.ScheduledAt }},
		{Column: "sent_at", Ref: func(n *models.Newsletter) any { return &n.SentAt }},
	},
	Counters: []store.Counter[models.Newsletter]{
		{Field: store.Field[models.Newsletter]{Column: "views", Ref: func(n *models.Newsletter) any { return &n.Views }}, Action: ActionView},
	},
	Filters: append([]store.Filter{statusFilter(newsletterLifecycle)},
		rangeFilters("scheduled_at")...),
	SlugSource: func(n *models.Newsletter) string { return n.Title },
	Validate: func(n *models.Newsletter, v *store.ValidationError) {
		checkTitle(v, n.Title)
		v.MaxLen("body", n.Body, maxBodyLen)
		v.MaxLenPtr("summary", n.Summary, maxExcerptLen)
		checkNonNegative(v, "issue_number", n.IssueNumber)
	},
}

// Reports are downloadable research documents.
var Reports = &store.Kind[models.Report]{
	Name:     "report",
	Resource: "reports",
	Table:    "reports",
	Policy:   editorial,
	Fields: []store.Field[models.Report]{
		{Column: "title", Ref: func(r *models.Report) any { return &r.Title }},
		{Column: "summary", Ref: func(r *models.Report) any { return &r.Summary }},
		{Column: "body", Ref: func(r *models.Report) any { return &r.Body }},
		{Column: "category", Ref: func(r *models.Report) any { return &r.Category }},
		{Column: "pages", Ref: func(r *models.Report) any { return &r.Pages }},
		{Column: "file_url", Ref: func(r *models.Report) any { return &r.FileURL }},
		{Column: "image_url", Ref: func(r *models.Report) any { return &r.ImageURL }},
		{Column: "published_at", Ref: func(r *models.Report) any { return &r.PublishedAt }},
	},
	Counters: []store.Counter[models.Report]{
		{Field: store.Field[models.Report]{Column: "views", Ref: func(r *models.Report) any { return &r.Views }}, Action: ActionView},
		{Field: store.Field[models.Report]{Column: "download_count", Ref: func(r *models.Report) any { return &r.DownloadCount }}, Action: ActionDownload},
	},
	Filters: []store.Filter{
		statusFilter(editorial),
		textFilter("category", "category"),
	},
	Views:      []store.View{columnView("category", "category")},
	SlugSource: func(r *models.Report) string { return r.Title },
	Validate: func(r *models.Report, v *store.ValidationError) {
		checkTitle(v, r.Title)
		v.MaxLen("body", r.Body, maxBodyLen)
		v.MaxLenPtr("summary", r.Summary, maxExcerptLen)
		v.MaxLenPtr("category", r.Category, maxShortLen)
		checkNonNegative(v, "pages", r.Pages)
	},
}

// Whitepapers are gated technical documents.
var Whitepapers = &store.Kind[models.Whitepaper]{
	Name:     "whitepaper",
	Resource: "whitepapers",
	Table:    "whitepapers",
	Policy:   editorial,
	Fields: []store.Field[models.Whitepaper]{
		{Column: "title", Ref: func(w *models.Whitepaper) any { return &w.Title }},
		{Column: "abstract", Ref: func(w *models.Whitepaper) any { return &w.Abstract }},
		{Column: "author", Ref: func(w *models.Whitepaper) any { return &w.Author }},
		{Column: "category", Ref: func(w *models.Whitepaper) any { return &w.Category }},
		{Column: "file_url", Ref: func(w *models.Whitepaper) any { return &w.FileURL }},
		{Column: "image_url", Ref: func(w *models.Whitepaper) any { return &w.ImageURL }},
		{Column: "published_at", Ref: func(w *models.Whitepaper) any { return &w.PublishedAt }},
	},
	Counters: []store.Counter[models.Whitepaper]{
		{Field: store.Field[models.Whitepaper]{Column: "views", Ref: func(w *models.Whitepaper) any { return &w.Views }}, Action: ActionView},
		{Field: store.Field[models.Whitepaper]{Column: "download_count", Ref: func(w *models.Whitepaper) any { return &w.DownloadCount }}, Action: ActionDownload},
	},
	Filters: []store.Filter{
		statusFilter(editorial),
		textFilter("category", "category"),
	},
	Views:      []store.View{columnView("category", "category")},
	SlugSource: func(w *models.Whitepaper) string { return w.Title },
	Validate: func(w *models.Whitepaper, v *store.ValidationError) {
		checkTitle(v, w.Title)
		v.MaxLenPtr("abstract", w.Abstract, maxExcerptLen)
		v.MaxLenPtr("author", w.Author, maxShortLen)
		v.MaxLenPtr("category", w.Category, maxShortLen)
	},
}

// Tutorials are step-by-step guides graded by difficulty.
var Tutorials = &store.Kind[models.Tutorial]{
	Name:     "tutorial",
	Resource: "tutorials",
	Table:    "tutorials",
	Policy:   editorial,
	Fields: []store.Field[models.Tutorial]{
		{Column: "title", Ref: func(t *models.Tutorial) any { return &t.Title }},
		{Column: "description", Ref: func(t *models.Tutorial) any { return &t.Description }},
		{Column: "body", Ref: func(t *models.Tutorial) any { return &t.Body }},
		{Column: "difficulty", Ref: func(t *models.Tutorial) any { return &t.Difficulty }},
		{Column: "category", Ref: func(t *models.Tutorial) any { return &t.Category }},
		{Column: "author", Ref: func(t *models.Tutorial) any { return &t.Author }},
		{Column: "duration_minutes", Ref: func(t *models.Tutorial) any { return &t.DurationMinutes }},
		{Column: "video_url", Ref: func(t *models.Tutorial) any { return &t.VideoURL }},
	},
	Counters: []store.Counter[models.Tutorial]{
		{Field: store.Field[models.Tutorial]{Column: "views", Ref: func(t *models.Tutorial) any { return &t.Views }}, Action: ActionView},
		{Field: store.Field[models.Tutorial]{Column: "helpful_votes", Ref: func(t *models.Tutorial) any { return &t.HelpfulVotes }}, Action: ActionHelpful},
	},
	Filters: []store.Filter{
		statusFilter(editorial),
		textFilter("category", "category"),
		textFilter("difficulty", "difficulty"),
	},
	Views: []store.View{
		columnView("category", "category"),
		columnView("difficulty", "difficulty"),
	},
	SlugSource: func(t *models.Tutorial) string { return t.Title },
	Validate: func(t *models.Tutorial, v *store.ValidationError) {
		checkTitle(v, t.Title)
		v.MaxLen("body", t.Body, maxBodyLen)
		v.MaxLenPtr("description", t.Description, maxExcerptLen)
		v.OneOf("difficulty", t.Difficulty,
			models.DifficultyBeginner, models.DifficultyIntermediate, models.DifficultyAdvanced)
		v.MaxLenPtr("category", t.Category, maxShortLen)
		checkNonNegative(v, "duration_minutes", t.DurationMinutes)
	},
}

// CaseStudies describe customer engagements.
var CaseStudies = &store.Kind[models.CaseStudy]{
	Name:     "case study",
	Resource: "case-studies",
	Table:    "case_studies",
	Policy:   editorial,
	Fields: []store.Field[models.CaseStudy]{
		{Column: "title", Ref: func(c *models.CaseStudy) any { return &c.Title }},
		{Column: "client_name", Ref: func(c *models.CaseStudy) any { return &c.ClientName }},
		{Column: "industry", Ref: func(c *models.CaseStudy) any { return &c.Industry }},
		{Column: "challenge", Ref: func(c *models.CaseStudy) any { return &c.Challenge }},
		{Column: "solution", Ref: func(c *models.CaseStudy) any { return &c.Solution }},
		{Column: "results", Ref: func(c *models.CaseStudy) any { return &c.Results }},
		{Column: "image_url", Ref: func(c *models.CaseStudy) any { return &c.ImageURL }},
	},
	Counters: []store.Counter[models.CaseStudy]{
		{Field: store.Field[models.CaseStudy]{Column: "views", Ref: func(c *models.CaseStudy) any { return &c.Views }}, Action: ActionView},
	},
	Filters: []store.Filter{
		statusFilter(editorial),
		textFilter("industry", "industry"),
	},
	Views:      []store.View{columnView("industry", "industry")},
	SlugSource: func(c *models.CaseStudy) string { return c.Title },
	Validate: func(c *models.CaseStudy, v *store.ValidationError) {
		checkTitle(v, c.Title)
		v.MaxLenPtr("client_name", c.ClientName, maxShortLen)
		v.MaxLenPtr("industry", c.Industry, maxShortLen)
		v.MaxLenPtr("challenge", c.Challenge, maxBodyLen)
		v.MaxLenPtr("solution", c.Solution, maxBodyLen)
		v.MaxLenPtr("results", c.Results, maxBodyLen)
	},
}
