package dtos

import (
	"strings"
	"time"

	"jobtrackr/internal/models"
)

// JobRequest is the raw client payload for creating or updating a job.
// Required fields are plain strings; optional fields are pointers so the
// validation layer can tell "absent" apart from "sent empty".
type JobRequest struct {
	Position string `json:"position" validate:"required,min=2,max=200"`
	Company  string `json:"company" validate:"required,min=2,max=200"`
	Location string `json:"location" validate:"required,min=2,max=200"`
	Status   string `json:"status" validate:"required,oneof=applied screening interview offer rejected"`
	Mode     string `json:"mode" validate:"required,oneof=full-time part-time contract remote hybrid"`

	AppliedDate     time.Time  `json:"applied_date"`
	LastContactDate *time.Time `json:"last_contact_date"`
	FollowUpDate    *time.Time `json:"follow_up_date"`

	SalaryRange    *string `json:"salary_range" validate:"omitempty,max=100"`
	JobURL         *string `json:"job_url" validate:"omitempty,url,max=500"`
	Website        *string `json:"website" validate:"omitempty,url,max=500"`
	ResumeID       *string `json:"resume_id" validate:"omitempty,uuid"`
	CoverLetterURL *string `json:"cover_letter_url" validate:"omitempty,url,max=500"`
	Notes          *string `json:"notes" validate:"omitempty,max=5000"`
}

// Normalize trims all string fields in place. Runs before validation so
// length and format rules apply to the trimmed value.
func (r *JobRequest) Normalize() {
	r.Position = strings.TrimSpace(r.Position)
	r.Company = strings.TrimSpace(r.Company)
	r.Location = strings.TrimSpace(r.Location)
	r.Status = strings.TrimSpace(r.Status)
	r.Mode = strings.TrimSpace(r.Mode)
	for _, p := range []**string{&r.SalaryRange, &r.JobURL, &r.Website, &r.ResumeID, &r.CoverLetterURL, &r.Notes} {
		if *p != nil {
			trimmed := strings.TrimSpace(**p)
			*p = &trimmed
		}
	}
}

// Sanitize converts every optional field that is an empty string into an
// absent value. Runs unconditionally after validation, on both the create
// and the update path: an empty optional is never persisted as "".
func (r *JobRequest) Sanitize() {
	for _, p := range []**string{&r.SalaryRange, &r.JobURL, &r.Website, &r.ResumeID, &r.CoverLetterURL, &r.Notes} {
		if *p != nil && **p == "" {
			*p = nil
		}
	}
}

// JobFilter carries the query parameters of the list endpoint.
type JobFilter struct {
	Search string `form:"search"`
	Status string `form:"jobStatus"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

type JobListResponse struct {
	Jobs       []models.Job `json:"jobs"`
	Count      int64        `json:"count"`
	Page       int          `json:"page"`
	TotalPages int          `json:"totalPages"`
}

// StatusCounts always carries all five statuses, zero-filled.
type StatusCounts struct {
	Applied   int64 `json:"applied"`
	Screening int64 `json:"screening"`
	Interview int64 `json:"interview"`
	Offer     int64 `json:"offer"`
	Rejected  int64 `json:"rejected"`
}

// MonthlyTrendPoint is one month bucket of the trailing-window chart.
// Month is formatted as short month + 2-digit year, e.g. "Mar 26".
type MonthlyTrendPoint struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}
