package services

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobtrackr/internal/dtos"
	"jobtrackr/internal/models"
)

// ErrNotFound is returned when a record does not exist for the calling
// owner. A record owned by someone else reports the same error, so other
// owners can never probe for existence.
var ErrNotFound = errors.New("record not found")

const (
	defaultPage  = 1
	defaultLimit = 10
)

// JobService performs all job reads and writes, scoped to one owner at the
// query boundary. Ownership is never taken from client payloads.
type JobService struct {
	DB  *gorm.DB
	Log *slog.Logger
}

func NewJobService(db *gorm.DB, log *slog.Logger) *JobService {
	return &JobService{DB: db, Log: log}
}

// Create persists a new job for the given owner from an already sanitized
// payload.
func (s *JobService) Create(userID string, req *dtos.JobRequest) (*models.Job, error) {
	job := &models.Job{UserID: userID}
	applyRequest(job, req)
	if err := s.DB.Create(job).Error; err != nil {
		s.Log.Error("create job failed", "user_id", userID, "err", err)
		return nil, err
	}
	return job, nil
}

// List returns one page of the owner's jobs, newest applied first, plus the
// total match count ignoring pagination. A storage failure yields an empty
// page with zero counts, never an error surfaced to the client.
func (s *JobService) List(userID string, filter dtos.JobFilter) *dtos.JobListResponse {
	page := filter.Page
	if page < 1 {
		page = defaultPage
	}
	limit := filter.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	scope := func(db *gorm.DB) *gorm.DB {
		q := db.Where("user_id = ?", userID)
		if filter.Search != "" {
			pattern := "%" + filter.Search + "%"
			q = q.Where("position ILIKE ? OR company ILIKE ?", pattern, pattern)
		}
		if filter.Status != "" && filter.Status != "all" {
			q = q.Where("status = ?", filter.Status)
		}
		return q
	}

	empty := &dtos.JobListResponse{Jobs: []models.Job{}, Count: 0, Page: page, TotalPages: 0}

	var count int64
	if err := s.DB.Model(&models.Job{}).Scopes(scope).Count(&count).Error; err != nil {
		s.Log.Error("count jobs failed", "user_id", userID, "err", err)
		return empty
	}

	jobs := []models.Job{}
	err := s.DB.Scopes(scope).
		Order("applied_date DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&jobs).Error
	if err != nil {
		s.Log.Error("list jobs failed", "user_id", userID, "err", err)
		return empty
	}

	totalPages := int((count + int64(limit) - 1) / int64(limit))
	return &dtos.JobListResponse{Jobs: jobs, Count: count, Page: page, TotalPages: totalPages}
}

// GetOne returns the job matching id and owner, or ErrNotFound. An id that
// is not a UUID cannot match any record, so it reports not-found without
// touching storage (binding it against the uuid column would raise a
// syntax error instead).
func (s *JobService) GetOne(userID string, id string) (*models.Job, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	var job models.Job
	err := s.DB.Where("id = ? AND user_id = ?", id, userID).First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		s.Log.Error("get job failed", "user_id", userID, "err", err)
		return nil, err
	}
	return &job, nil
}

// Update replaces all mutable fields of the owner's job with the sanitized
// payload. The owner and id are immutable.
func (s *JobService) Update(userID string, id string, req *dtos.JobRequest) (*models.Job, error) {
	job, err := s.GetOne(userID, id)
	if err != nil {
		return nil, err
	}
	applyRequest(job, req)
	if err := s.DB.Save(job).Error; err != nil {
		s.Log.Error("update job failed", "user_id", userID, "job_id", id, "err", err)
		return nil, err
	}
	return job, nil
}

// Delete removes the owner's job and returns the removed record.
func (s *JobService) Delete(userID string, id string) (*models.Job, error) {
	job, err := s.GetOne(userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Delete(job).Error; err != nil {
		s.Log.Error("delete job failed", "user_id", userID, "job_id", id, "err", err)
		return nil, err
	}
	return job, nil
}

// ListAllForOwner returns every job of the owner, newest applied first. Used
// by the download endpoint and the export formatter.
func (s *JobService) ListAllForOwner(userID string) []models.Job {
	jobs := []models.Job{}
	err := s.DB.Where("user_id = ?", userID).Order("applied_date DESC").Find(&jobs).Error
	if err != nil {
		s.Log.Error("list all jobs failed", "user_id", userID, "err", err)
		return []models.Job{}
	}
	return jobs
}

// applyRequest copies the mutable fields of a sanitized payload onto the
// model. Owner and id are left alone.
func applyRequest(job *models.Job, req *dtos.JobRequest) {
	job.Position = req.Position
	job.Company = req.Company
	job.Location = req.Location
	job.Status = models.Status(req.Status)
	job.Mode = models.Mode(req.Mode)
	job.AppliedDate = req.AppliedDate
	if job.AppliedDate.IsZero() {
		job.AppliedDate = time.Now().UTC()
	}
	job.LastContactDate = req.LastContactDate
	job.FollowUpDate = req.FollowUpDate
	job.SalaryRange = req.SalaryRange
	job.JobURL = req.JobURL
	job.Website = req.Website
	job.CoverLetterURL = req.CoverLetterURL
	job.Notes = req.Notes
	job.ResumeID = nil
	if req.ResumeID != nil {
		if id, err := uuid.Parse(*req.ResumeID); err == nil {
			job.ResumeID = &id
		}
	}
}
