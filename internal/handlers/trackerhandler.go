package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobtrackr/internal/dtos"
	"jobtrackr/internal/middleware"
	"jobtrackr/internal/services"
)

// TrackerHandler serves the resume, interview and contact endpoints. They
// all follow the job endpoints' shape: owner from the request context, 404
// for foreign or missing ids, generic 500 for storage failures.
type TrackerHandler struct {
	Resumes    *services.ResumeService
	Interviews *services.InterviewService
	Contacts   *services.ContactService
}

func NewTrackerHandler(resumes *services.ResumeService, interviews *services.InterviewService, contacts *services.ContactService) *TrackerHandler {
	return &TrackerHandler{Resumes: resumes, Interviews: interviews, Contacts: contacts}
}

func (h *TrackerHandler) CreateResume(c *gin.Context) {
	var req dtos.ResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resume payload: " + err.Error()})
		return
	}
	resume, err := h.Resumes.Create(middleware.UserID(c), &req)
	if err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusCreated, resume)
}

func (h *TrackerHandler) ListResumes(c *gin.Context) {
	c.JSON(http.StatusOK, h.Resumes.List(middleware.UserID(c)))
}

func (h *TrackerHandler) GetResume(c *gin.Context) {
	resume, err := h.Resumes.GetOne(middleware.UserID(c), c.Param("id"))
	if err != nil {
		notFoundOrInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, resume)
}

func (h *TrackerHandler) UpdateResume(c *gin.Context) {
	var req dtos.ResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resume payload: " + err.Error()})
		return
	}
	resume, err := h.Resumes.Update(middleware.UserID(c), c.Param("id"), &req)
	if err != nil {
		notFoundOrInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, resume)
}

func (h *TrackerHandler) DeleteResume(c *gin.Context) {
	resume, err := h.Resumes.Delete(middleware.UserID(c), c.Param("id"))
	if err != nil {
		notFoundOrInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, resume)
}

func (h *TrackerHandler) CreateInterview(c *gin.Context) {
	var req dtos.InterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid interview payload: " + err.Error()})
		return
	}
	interview, err := h.Interviews.Create(middleware.UserID(c), &req)
	if err != nil {
		notFoundOrInternal(c, err)
		return
	}
	c.JSON(http.StatusCreated, interview)
}

func (h *TrackerHandler) ListInterviews(c *gin.Context) {
	c.JSON(http.StatusOK, h.Interviews.List(middleware.UserID(c)))
}

func (h *TrackerHandler) GetInterview(c *gin.Context) {
	interview, err := h.Interviews.GetOne(middleware.UserID(c), c.Param("id"))
	if err != nil {
		notFoundOrInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, interview)
}

func (h *TrackerHandler) UpdateInterview(c *gin.Context) {
	var req dtos.InterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid interview payload: " + err.Error()})
		return
	}
	interview, err := h.Interviews.Update(middleware.UserID(c), c.Param("id"), &req)
	if err != nil {
		notFoundOrInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, interview)
}

func (h *TrackerHandler) DeleteInterview(c *gin.Context) {
	interview, err := h.Interviews.Delete(middleware.UserID(c), c.Param("id"))
	if err != nil {
		notFoundOrInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, interview)
}

func (h *TrackerHandler) CreateContact(c *gin.Context) {
	var req dtos.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contact payload: " + err.Error()})
		return
	}
	contact, err := h.Contacts.Create(middleware.UserID(c), &req)
	if err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusCreated, contact)
}

func (h *TrackerHandler) ListContacts(c *gin.Context) {
	c.JSON(http.StatusOK, h.Contacts.List(middleware.UserID(c)))
}

func (h *TrackerHandler) GetContact(c *gin.Context) {
	contact, err := h.Contacts.GetOne(middleware.UserID(c), c.Param("id"))
	if err != nil {
		notFoundOrInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, contact)
}

func (h *TrackerHandler) UpdateContact(c *gin.Context) {
	var req dtos.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contact payload: " + err.Error()})
		return
	}
	contact, err := h.Contacts.Update(middleware.UserID(c), c.Param("id"), &req)
	if err != nil {
		notFoundOrInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, contact)
}

func (h *TrackerHandler) DeleteContact(c *gin.Context) {
	contact, err := h.Contacts.Delete(middleware.UserID(c), c.Param("id"))
	if err != nil {
		notFoundOrInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, contact)
}
