package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"jobtrackr/internal/dtos"
	"jobtrackr/internal/middleware"
	"jobtrackr/internal/services"
	"jobtrackr/internal/validation"
)

// JobHandler wires the job endpoints to the services behind them.
type JobHandler struct {
	Jobs   *services.JobService
	Stats  *services.StatsService
	Export *services.ExportService
}

func NewJobHandler(jobs *services.JobService, stats *services.StatsService, export *services.ExportService) *JobHandler {
	return &JobHandler{Jobs: jobs, Stats: stats, Export: export}
}

// Create is POST /jobs.
func (h *JobHandler) Create(c *gin.Context) {
	var req dtos.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
		return
	}
	if fieldErrs := validation.ValidateJobRequest(&req); fieldErrs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
		return
	}
	job, err := h.Jobs.Create(middleware.UserID(c), &req)
	if err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// List is GET /jobs with search, jobStatus, page and limit query params.
func (h *JobHandler) List(c *gin.Context) {
	var filter dtos.JobFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}
	c.JSON(http.StatusOK, h.Jobs.List(middleware.UserID(c), filter))
}

// Get is GET /jobs/:id.
func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.Jobs.GetOne(middleware.UserID(c), c.Param("id"))
	if err != nil {
		notFoundOrInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// Update is PUT /jobs/:id; the full payload is re-validated.
func (h *JobHandler) Update(c *gin.Context) {
	var req dtos.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
		return
	}
	if fieldErrs := validation.ValidateJobRequest(&req); fieldErrs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": fieldErrs})
		return
	}
	job, err := h.Jobs.Update(middleware.UserID(c), c.Param("id"), &req)
	if err != nil {
		notFoundOrInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// Delete is DELETE /jobs/:id and returns the removed record.
func (h *JobHandler) Delete(c *gin.Context) {
	job, err := h.Jobs.Delete(middleware.UserID(c), c.Param("id"))
	if err != nil {
		notFoundOrInternal(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// Download is GET /jobs/download: the owner's full record set as JSON.
func (h *JobHandler) Download(c *gin.Context) {
	c.JSON(http.StatusOK, h.Jobs.ListAllForOwner(middleware.UserID(c)))
}

// ExportCSV is GET /jobs/export/csv.
func (h *JobHandler) ExportCSV(c *gin.Context) {
	jobs := h.Jobs.ListAllForOwner(middleware.UserID(c))
	out, err := h.Export.CSV(jobs, time.Now().UTC())
	if err != nil {
		internalError(c)
		return
	}
	c.Header("Content-Disposition", attachment("csv"))
	c.Data(http.StatusOK, "text/csv", out)
}

// ExportXLSX is GET /jobs/export/xlsx.
func (h *JobHandler) ExportXLSX(c *gin.Context) {
	jobs := h.Jobs.ListAllForOwner(middleware.UserID(c))
	out, err := h.Export.XLSX(jobs, time.Now().UTC())
	if err != nil {
		internalError(c)
		return
	}
	c.Header("Content-Disposition", attachment("xlsx"))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", out)
}

// StatusCounts is GET /stats.
func (h *JobHandler) StatusCounts(c *gin.Context) {
	c.JSON(http.StatusOK, h.Stats.CountsByStatus(middleware.UserID(c)))
}

// Charts is GET /charts.
func (h *JobHandler) Charts(c *gin.Context) {
	c.JSON(http.StatusOK, h.Stats.MonthlyTrend(middleware.UserID(c)))
}

func attachment(ext string) string {
	name := fmt.Sprintf("jobs-%s.%s", time.Now().UTC().Format("2006-01-02"), ext)
	return fmt.Sprintf("attachment; filename=%q", name)
}

// notFoundOrInternal maps the service error to 404 or a generic 500. The
// underlying storage error is already logged and never sent to the client.
func notFoundOrInternal(c *gin.Context, err error) {
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	internalError(c)
}

func internalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
}
