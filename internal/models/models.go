package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status is the application pipeline stage of a tracked job.
type Status string

const (
	StatusApplied   Status = "applied"
	StatusScreening Status = "screening"
	StatusInterview Status = "interview"
	StatusOffer     Status = "offer"
	StatusRejected  Status = "rejected"
)

// Statuses lists every valid status, in pipeline order.
var Statuses = []Status{StatusApplied, StatusScreening, StatusInterview, StatusOffer, StatusRejected}

func (s Status) Valid() bool {
	switch s {
	case StatusApplied, StatusScreening, StatusInterview, StatusOffer, StatusRejected:
		return true
	}
	return false
}

// Label returns the display form used in exports.
func (s Status) Label() string {
	switch s {
	case StatusApplied:
		return "Applied"
	case StatusScreening:
		return "Screening"
	case StatusInterview:
		return "Interview"
	case StatusOffer:
		return "Offer"
	case StatusRejected:
		return "Rejected"
	}
	return string(s)
}

// Mode is the employment arrangement of a tracked job.
type Mode string

const (
	ModeFullTime Mode = "full-time"
	ModePartTime Mode = "part-time"
	ModeContract Mode = "contract"
	ModeRemote   Mode = "remote"
	ModeHybrid   Mode = "hybrid"
)

var Modes = []Mode{ModeFullTime, ModePartTime, ModeContract, ModeRemote, ModeHybrid}

func (m Mode) Valid() bool {
	switch m {
	case ModeFullTime, ModePartTime, ModeContract, ModeRemote, ModeHybrid:
		return true
	}
	return false
}

func (m Mode) Label() string {
	switch m {
	case ModeFullTime:
		return "Full-Time"
	case ModePartTime:
		return "Part-Time"
	case ModeContract:
		return "Contract"
	case ModeRemote:
		return "Remote"
	case ModeHybrid:
		return "Hybrid"
	}
	return string(m)
}

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Name         string `json:"name"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Job is one tracked job application. Every row belongs to exactly one user;
// UserID is assigned at creation and never changes. Optional fields are
// pointers so an absent value is stored as NULL, never as "".
type Job struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID string `gorm:"index;not null" json:"user_id"`

	Position string `gorm:"not null" json:"position"`
	Company  string `gorm:"not null" json:"company"`
	Location string `gorm:"not null" json:"location"`
	Status   Status `gorm:"type:varchar(20);not null" json:"status"`
	Mode     Mode   `gorm:"type:varchar(20);not null" json:"mode"`

	AppliedDate     time.Time  `gorm:"index;not null" json:"applied_date"`
	LastContactDate *time.Time `json:"last_contact_date,omitempty"`
	FollowUpDate    *time.Time `json:"follow_up_date,omitempty"`

	SalaryRange    *string    `json:"salary_range,omitempty"`
	JobURL         *string    `json:"job_url,omitempty"`
	Website        *string    `json:"website,omitempty"`
	ResumeID       *uuid.UUID `gorm:"type:uuid" json:"resume_id,omitempty"`
	CoverLetterURL *string    `json:"cover_letter_url,omitempty"`
	Notes          *string    `gorm:"type:text" json:"notes,omitempty"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}

type Resume struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID  string  `gorm:"index;not null" json:"user_id"`
	Title   string  `gorm:"not null" json:"title"`
	FileURL *string `json:"file_url,omitempty"`
	Notes   *string `gorm:"type:text" json:"notes,omitempty"`
}

func (r *Resume) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

type Interview struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID      string    `gorm:"index;not null" json:"user_id"`
	JobID       uuid.UUID `gorm:"type:uuid;index;not null" json:"job_id"`
	ScheduledAt time.Time `gorm:"not null" json:"scheduled_at"`
	Round       string    `json:"round"`
	Format      string    `json:"format"`
	Interviewer *string   `json:"interviewer,omitempty"`
	Notes       *string   `gorm:"type:text" json:"notes,omitempty"`
	Outcome     *string   `json:"outcome,omitempty"`
}

func (i *Interview) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

type Contact struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID      string  `gorm:"index;not null" json:"user_id"`
	Name        string  `gorm:"not null" json:"name"`
	Company     *string `json:"company,omitempty"`
	Role        *string `json:"role,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	LinkedInURL *string `json:"linkedin_url,omitempty"`
	Notes       *string `gorm:"type:text" json:"notes,omitempty"`
}

func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
