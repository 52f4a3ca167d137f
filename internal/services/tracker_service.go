package services

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobtrackr/internal/dtos"
	"jobtrackr/internal/models"
)

// ResumeService, InterviewService and ContactService follow the job
// repository pattern: the owner comes from the authenticated identity and
// every query filters on id AND owner.

type ResumeService struct {
	DB  *gorm.DB
	Log *slog.Logger
}

func NewResumeService(db *gorm.DB, log *slog.Logger) *ResumeService {
	return &ResumeService{DB: db, Log: log}
}

func (s *ResumeService) Create(userID string, req *dtos.ResumeRequest) (*models.Resume, error) {
	dtos.CleanOptionals(&req.FileURL, &req.Notes)
	resume := &models.Resume{
		UserID:  userID,
		Title:   req.Title,
		FileURL: req.FileURL,
		Notes:   req.Notes,
	}
	if err := s.DB.Create(resume).Error; err != nil {
		s.Log.Error("create resume failed", "user_id", userID, "err", err)
		return nil, err
	}
	return resume, nil
}

func (s *ResumeService) List(userID string) []models.Resume {
	resumes := []models.Resume{}
	if err := s.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&resumes).Error; err != nil {
		s.Log.Error("list resumes failed", "user_id", userID, "err", err)
		return []models.Resume{}
	}
	return resumes
}

func (s *ResumeService) GetOne(userID string, id string) (*models.Resume, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	var resume models.Resume
	if err := s.DB.Where("id = ? AND user_id = ?", id, userID).First(&resume).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		s.Log.Error("get resume failed", "user_id", userID, "err", err)
		return nil, err
	}
	return &resume, nil
}

func (s *ResumeService) Update(userID string, id string, req *dtos.ResumeRequest) (*models.Resume, error) {
	resume, err := s.GetOne(userID, id)
	if err != nil {
		return nil, err
	}
	dtos.CleanOptionals(&req.FileURL, &req.Notes)
	resume.Title = req.Title
	resume.FileURL = req.FileURL
	resume.Notes = req.Notes
	if err := s.DB.Save(resume).Error; err != nil {
		s.Log.Error("update resume failed", "user_id", userID, "err", err)
		return nil, err
	}
	return resume, nil
}

func (s *ResumeService) Delete(userID string, id string) (*models.Resume, error) {
	resume, err := s.GetOne(userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Delete(resume).Error; err != nil {
		s.Log.Error("delete resume failed", "user_id", userID, "err", err)
		return nil, err
	}
	return resume, nil
}

type InterviewService struct {
	DB   *gorm.DB
	Jobs *JobService
	Log  *slog.Logger
}

func NewInterviewService(db *gorm.DB, jobs *JobService, log *slog.Logger) *InterviewService {
	return &InterviewService{DB: db, Jobs: jobs, Log: log}
}

// Create stores an interview after checking the target job belongs to the
// caller; a foreign job id reports not-found, same as a missing one.
func (s *InterviewService) Create(userID string, req *dtos.InterviewRequest) (*models.Interview, error) {
	job, err := s.Jobs.GetOne(userID, req.JobID)
	if err != nil {
		return nil, err
	}
	dtos.CleanOptionals(&req.Interviewer, &req.Notes, &req.Outcome)
	interview := &models.Interview{
		UserID:      userID,
		JobID:       job.ID,
		ScheduledAt: req.ScheduledAt,
		Round:       req.Round,
		Format:      req.Format,
		Interviewer: req.Interviewer,
		Notes:       req.Notes,
		Outcome:     req.Outcome,
	}
	if err := s.DB.Create(interview).Error; err != nil {
		s.Log.Error("create interview failed", "user_id", userID, "err", err)
		return nil, err
	}
	return interview, nil
}

func (s *InterviewService) List(userID string) []models.Interview {
	interviews := []models.Interview{}
	if err := s.DB.Where("user_id = ?", userID).Order("scheduled_at DESC").Find(&interviews).Error; err != nil {
		s.Log.Error("list interviews failed", "user_id", userID, "err", err)
		return []models.Interview{}
	}
	return interviews
}

func (s *InterviewService) GetOne(userID string, id string) (*models.Interview, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	var interview models.Interview
	if err := s.DB.Where("id = ? AND user_id = ?", id, userID).First(&interview).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		s.Log.Error("get interview failed", "user_id", userID, "err", err)
		return nil, err
	}
	return &interview, nil
}

func (s *InterviewService) Update(userID string, id string, req *dtos.InterviewRequest) (*models.Interview, error) {
	interview, err := s.GetOne(userID, id)
	if err != nil {
		return nil, err
	}
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return nil, ErrNotFound
	}
	if interview.JobID != jobID {
		// interview moved to another job: re-check ownership of the target
		if _, err := s.Jobs.GetOne(userID, req.JobID); err != nil {
			return nil, err
		}
		interview.JobID = jobID
	}
	dtos.CleanOptionals(&req.Interviewer, &req.Notes, &req.Outcome)
	interview.ScheduledAt = req.ScheduledAt
	interview.Round = req.Round
	interview.Format = req.Format
	interview.Interviewer = req.Interviewer
	interview.Notes = req.Notes
	interview.Outcome = req.Outcome
	if err := s.DB.Save(interview).Error; err != nil {
		s.Log.Error("update interview failed", "user_id", userID, "err", err)
		return nil, err
	}
	return interview, nil
}

func (s *InterviewService) Delete(userID string, id string) (*models.Interview, error) {
	interview, err := s.GetOne(userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Delete(interview).Error; err != nil {
		s.Log.Error("delete interview failed", "user_id", userID, "err", err)
		return nil, err
	}
	return interview, nil
}

type ContactService struct {
	DB  *gorm.DB
	Log *slog.Logger
}

func NewContactService(db *gorm.DB, log *slog.Logger) *ContactService {
	return &ContactService{DB: db, Log: log}
}

func (s *ContactService) Create(userID string, req *dtos.ContactRequest) (*models.Contact, error) {
	dtos.CleanOptionals(&req.Company, &req.Role, &req.Email, &req.Phone, &req.LinkedInURL, &req.Notes)
	contact := &models.Contact{
		UserID:      userID,
		Name:        req.Name,
		Company:     req.Company,
		Role:        req.Role,
		Email:       req.Email,
		Phone:       req.Phone,
		LinkedInURL: req.LinkedInURL,
		Notes:       req.Notes,
	}
	if err := s.DB.Create(contact).Error; err != nil {
		s.Log.Error("create contact failed", "user_id", userID, "err", err)
		return nil, err
	}
	return contact, nil
}

func (s *ContactService) List(userID string) []models.Contact {
	contacts := []models.Contact{}
	if err := s.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&contacts).Error; err != nil {
		s.Log.Error("list contacts failed", "user_id", userID, "err", err)
		return []models.Contact{}
	}
	return contacts
}

func (s *ContactService) GetOne(userID string, id string) (*models.Contact, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	var contact models.Contact
	if err := s.DB.Where("id = ? AND user_id = ?", id, userID).First(&contact).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		s.Log.Error("get contact failed", "user_id", userID, "err", err)
		return nil, err
	}
	return &contact, nil
}

func (s *ContactService) Update(userID string, id string, req *dtos.ContactRequest) (*models.Contact, error) {
	contact, err := s.GetOne(userID, id)
	if err != nil {
		return nil, err
	}
	dtos.CleanOptionals(&req.Company, &req.Role, &req.Email, &req.Phone, &req.LinkedInURL, &req.Notes)
	contact.Name = req.Name
	contact.Company = req.Company
	contact.Role = req.Role
	contact.Email = req.Email
	contact.Phone = req.Phone
	contact.LinkedInURL = req.LinkedInURL
	contact.Notes = req.Notes
	if err := s.DB.Save(contact).Error; err != nil {
		s.Log.Error("update contact failed", "user_id", userID, "err", err)
		return nil, err
	}
	return contact, nil
}

func (s *ContactService) Delete(userID string, id string) (*models.Contact, error) {
	contact, err := s.GetOne(userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Delete(contact).Error; err != nil {
		s.Log.Error("delete contact failed", "user_id", userID, "err", err)
		return nil, err
	}
	return contact, nil
}
