// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"github.com/google/uuid"

	"contentdesk/internal/lifecycle"
	"contentdesk/internal/models"
	"contentdesk/internal/store"
)

var jobLifecycle = lifecycle.Policy{
	Statuses: []lifecycle.Status{lifecycle.StatusDraft, lifecycle.StatusActive, lifecycle.StatusClosed, lifecycle.StatusArchived},
	Initial:  lifecycle.StatusDraft,
	Visible:  []lifecycle.Status{lifecycle.StatusActive},
}

// Applications are never listed publicly.
var applicationLifecycle = lifecycle.Policy{
	Statuses: []lifecycle.Status{
		lifecycle.StatusReceived, lifecycle.StatusReviewing, lifecycle.StatusInterviewing,
		lifecycle.StatusHired, lifecycle.StatusRejected,
	},
	Initial: lifecycle.StatusReceived,
	Orders: map[lifecycle.ListKind][]lifecycle.OrderTerm{
		lifecycle.ListAll: {lifecycle.Desc("created_at")},
	},
}

// Jobs are open positions on the careers page.
var Jobs = &store.Kind[models.JobPosting]{
	Name:     "job posting",
	Resource: "jobs",
	Table:    "job_postings",
	Policy:   jobLifecycle,
	Fields: []store.Field[models.JobPosting]{
		{Column: "title", Ref: func(j *models.JobPosting) any { return &j.Title }},
		{Column: "department", Ref: func(j *models.JobPosting) any { return &j.Department }},
		{Column: "location", Ref: func(j *models.JobPosting) any { return &j.Location }},
		{Column: "employment_type", Ref: func(j *models.JobPosting) any { return &j.EmploymentType }},
		{Column: "description", Ref: func(j *models.JobPosting) any { return &j.Description }},
		{Column: "requirements", Ref: func(j *models.JobPosting) any { return &j.Requirements }},
		{Column: "salary_range", Ref: func(j *models.JobPosting) any { return &j.SalaryRange }},
		{Column: "closes_at", Ref: func(j *models.JobPosting) any { return &j.ClosesAt }},
	},
	Counters: []store.Counter[models.JobPosting]{
		{Field: store.Field[models.JobPosting]{Column: "views", Ref: func(j *models.JobPosting) any { return &j.Views }}, Action: ActionView},
	},
	Filters: []store.Filter{
		statusFilter(jobLifecycle),
		textFilter("department", "department"),
		textFilter("location", "location"),
		textFilter("employment_type", "employment_type"),
	},
	Views:      []store.View{columnView("department", "department")},
	SlugSource: func(j *models.JobPosting) string { return j.Title },
	Validate: func(j *models.JobPosting, v *store.ValidationError) {
		checkTitle(v, j.Title)
		v.OneOf("employment_type", j.EmploymentType,
			models.EmploymentFullTime, models.EmploymentPartTime,
			models.EmploymentContract, models.EmploymentInternship)
		v.MaxLen("description", j.Description, maxBodyLen)
		v.MaxLenPtr("requirements", j.Requirements, maxBodyLen)
		v.MaxLenPtr("department", j.Department, maxShortLen)
		v.MaxLenPtr("location", j.Location, maxShortLen)
		v.MaxLenPtr("salary_range", j.SalaryRange, maxShortLen)
	},
}

// Applications are submitted anonymously; everything else about them
// requires a token. The slug carries part of the id so that applicants
// sharing a name never collide.
var Applications = &store.Kind[models.JobApplication]{
	Name:     "job application",
	Resource: "applications",
	Table:    "job_applications",
	Policy:   applicationLifecycle,
	Fields: []store.Field[models.JobApplication]{
		{Column: "job_id", Ref: func(a *models.JobApplication) any { return &a.JobID }},
		{Column: "name", Ref: func(a *models.JobApplication) any { return &a.Name }},
		{Column: "email", Ref: func(a *models.JobApplication) any { return &a.Email }},
		{Column: "phone", Ref: func(a *models.JobApplication) any { return &a.Phone }},
		{Column: "resume_url", Ref: func(a *models.JobApplication) any { return &a.ResumeURL }},
		{Column: "cover_letter", Ref: func(a *models.JobApplication) any { return &a.CoverLetter }},
	},
	Filters: []store.Filter{
		statusFilter(applicationLifecycle),
		{Param: "job_id", Column: "job_id", Op: store.OpEq, Parse: parseUUID},
	},
	SlugSource: func(a *models.JobApplication) string {
		return a.Name + " " + a.ID.String()[:8]
	},
	DerivedSlug: true,
	Validate: func(a *models.JobApplication, v *store.ValidationError) {
		checkName(v, a.Name)
		checkEmail(v, a.Email)
		if a.JobID == uuid.Nil {
			v.Add("job_id", "is required")
		}
		v.MaxLenPtr("phone", a.Phone, 50)
		v.MaxLenPtr("cover_letter", a.CoverLetter, maxBodyLen)
	},
	PublicCreate: true,
}
