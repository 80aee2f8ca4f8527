// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Employment types accepted for job postings.
const (
	EmploymentFullTime   = "full-time"
	EmploymentPartTime   = "part-time"
	EmploymentContract   = "contract"
	EmploymentInternship = "internship"
)

// JobPosting is an open position on the careers page.
type JobPosting struct {
	Base
	Title          string     `json:"title"`
	Department     *string    `json:"department,omitempty"`
	Location       *string    `json:"location,omitempty"`
	EmploymentType string     `json:"employment_type"`
	Description    string     `json:"description"`
	Requirements   *string    `json:"requirements,omitempty"`
	SalaryRange    *string    `json:"salary_range,omitempty"`
	ClosesAt       *time.Time `json:"closes_at,omitempty"`
	Views          int64      `json:"views"`
}

// JobApplication is a candidate's submission for a JobPosting. Applications
// reference their posting by id only; removing the posting leaves them alone.
type JobApplication struct {
	Base
	JobID       uuid.UUID `json:"job_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone,omitempty"`
	ResumeURL   *string   `json:"resume_url,omitempty"`
	CoverLetter *string   `json:"cover_letter,omitempty"`
}
