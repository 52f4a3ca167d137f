package dtos

import (
	"strings"
	"time"
)

// ResumeRequest, InterviewRequest and ContactRequest follow the job payload
// shape: required plain strings, pointer optionals sanitized the same way.

type ResumeRequest struct {
	Title   string  `json:"title" binding:"required,min=2,max=200"`
	FileURL *string `json:"file_url" binding:"omitempty,url,max=500"`
	Notes   *string `json:"notes" binding:"omitempty,max=5000"`
}

type InterviewRequest struct {
	JobID       string    `json:"job_id" binding:"required,uuid"`
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	Round       string    `json:"round" binding:"required,min=2,max=100"`
	Format      string    `json:"format" binding:"required,oneof=phone video onsite"`
	Interviewer *string   `json:"interviewer" binding:"omitempty,max=200"`
	Notes       *string   `json:"notes" binding:"omitempty,max=5000"`
	Outcome     *string   `json:"outcome" binding:"omitempty,max=200"`
}

type ContactRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=200"`
	Company     *string `json:"company" binding:"omitempty,max=200"`
	Role        *string `json:"role" binding:"omitempty,max=200"`
	Email       *string `json:"email" binding:"omitempty,email,max=200"`
	Phone       *string `json:"phone" binding:"omitempty,max=50"`
	LinkedInURL *string `json:"linkedin_url" binding:"omitempty,url,max=500"`
	Notes       *string `json:"notes" binding:"omitempty,max=5000"`
}

// CleanOptionals trims the given optionals and drops the empty ones so they
// are stored as NULL.
func CleanOptionals(fields ...**string) {
	for _, p := range fields {
		if *p == nil {
			continue
		}
		trimmed := strings.TrimSpace(**p)
		if trimmed == "" {
			*p = nil
		} else {
			*p = &trimmed
		}
	}
}
