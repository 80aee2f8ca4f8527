// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// NewsArticle is a company news item or blog post.
type NewsArticle struct {
	Base
	Title       string     `json:"title"`
	Excerpt     *string    `json:"excerpt,omitempty"`
	Body        string     `json:"body"`
	Author      *string    `json:"author,omitempty"`
	Category    *string    `json:"category,omitempty"`
	ImageURL    *string    `json:"image_url,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	Views       int64      `json:"views"`
}

// Newsletter is an email issue archived on the site once sent.
type Newsletter struct {
	Base
	Title       string     `json:"title"`
	Summary     *string    `json:"summary,omitempty"`
	Body        string     `json:"body"`
	IssueNumber *int       `json:"issue_number,omitempty"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	SentAt      *time.Time `json:"sent_at,omitempty"`
	Views       int64      `json:"views"`
}

// Report is a downloadable research report.
type Report struct {
	Base
	Title         string     `json:"title"`
	Summary       *string    `json:"summary,omitempty"`
	Body          string     `json:"body"`
	Category      *string    `json:"category,omitempty"`
	Pages         *int       `json:"pages,omitempty"`
	FileURL       *string    `json:"file_url,omitempty"`
	ImageURL      *string    `json:"image_url,omitempty"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	Views         int64      `json:"views"`
	DownloadCount int64      `json:"download_count"`
}

// Whitepaper is a gated long-form technical document.
type Whitepaper struct {
	Base
	Title         string     `json:"title"`
	Abstract      *string    `json:"abstract,omitempty"`
	Author        *string    `json:"author,omitempty"`
	Category      *string    `json:"category,omitempty"`
	FileURL       *string    `json:"file_url,omitempty"`
	ImageURL      *string    `json:"image_url,omitempty"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	Views         int64      `json:"views"`
	DownloadCount int64      `json:"download_count"`
}

// Difficulty levels accepted for tutorials.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Tutorial is a step-by-step guide.
type Tutorial struct {
	Base
	Title           string  `json:"title"`
	Description     *string `json:"description,omitempty"`
	Body            string  `json:"body"`
	Difficulty      string  `json:"difficulty"`
	Category        *string `json:"category,omitempty"`
	Author          *string `json:"author,omitempty"`
	DurationMinutes *int    `json:"duration_minutes,omitempty"`
	VideoURL        *string `json:"video_url,omitempty"`
	Views           int64   `json:"views"`
	HelpfulVotes    int64   `json:"helpful_votes"`
}

// CaseStudy describes a customer engagement.
type CaseStudy struct {
	Base
	Title      string  `json:"title"`
	ClientName *string `json:"client_name,omitempty"`
	Industry   *string `json:"industry,omitempty"`
	Challenge  *string `json:"challenge,omitempty"`
	Solution   *string `json:"solution,omitempty"`
	Results    *string `json:"results,omitempty"`
	ImageURL   *string `json:"image_url,omitempty"`
	Views      int64   `json:"views"`
}
