package handlers

import (
	"net/http"

	"campushire/models"
	"campushire/services/job"
	"campushire/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JobHandler bundles job posting, matching and application endpoints.
type JobHandler struct {
	Service job.JobService
}

// PostJobHandler handles POST /jobs (company auth).
func (h *JobHandler) PostJobHandler(c *gin.Context) {
	logger := utils.GetLogger()
	companyID := c.GetString("companyID")

	var posting models.Job
	if err := c.ShouldBindJSON(&posting); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	posting.CompanyID = companyID

	created, err := h.Service.PostJob(c.Request.Context(), &posting)
	if err != nil {
		logger.Error("Job posting failed", zap.String("companyId", companyID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListJobsHandler handles GET /jobs with optional filters.
func (h *JobHandler) ListJobsHandler(c *gin.Context) {
	var filter models.JobFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter: " + err.Error()})
		return
	}

	jobs, err := h.Service.ListJobs(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJobHandler handles GET /jobs/:id.
func (h *JobHandler) GetJobHandler(c *gin.Context) {
	posting, err := h.Service.GetJobByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, posting)
}

// CompanyJobsHandler handles GET /companies/me/jobs.
func (h *JobHandler) CompanyJobsHandler(c *gin.Context) {
	companyID := c.GetString("companyID")
	jobs, err := h.Service.GetJobsByCompany(companyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// CloseJobHandler handles POST /jobs/:id/close (company auth).
func (h *JobHandler) CloseJobHandler(c *gin.Context) {
	jobID := c.Param("id")
	if !h.companyOwnsJob(c, jobID) {
		return
	}
	if err := h.Service.CloseJob(jobID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job closed"})
}

// DeleteJobHandler handles DELETE /jobs/:id (company auth).
func (h *JobHandler) DeleteJobHandler(c *gin.Context) {
	jobID := c.Param("id")
	if !h.companyOwnsJob(c, jobID) {
		return
	}
	if err := h.Service.DeleteJob(jobID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}

func (h *JobHandler) companyOwnsJob(c *gin.Context, jobID string) bool {
	posting, err := h.Service.GetJobByID(jobID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return false
	}
	if posting.CompanyID != c.GetString("companyID") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Job belongs to another company"})
		return false
	}
	return true
}

// MatchJobsHandler handles GET /students/me/matches.
func (h *JobHandler) MatchJobsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	studentID := c.GetString("studentID")

	matches, err := h.Service.MatchJobsForStudent(studentID)
	if err != nil {
		logger.Error("Job matching failed", zap.String("studentId", studentID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, matches)
}

// ApplyHandler handles POST /jobs/:id/apply (student auth).
func (h *JobHandler) ApplyHandler(c *gin.Context) {
	studentID := c.GetString("studentID")

	var req struct {
		CoverNote string `json:"coverNote"`
	}
	// Body is optional; an empty body means no cover note.
	_ = c.ShouldBindJSON(&req)

	app, err := h.Service.Apply(c.Request.Context(), studentID, c.Param("id"), req.CoverNote)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, app)
}

// WithdrawApplicationHandler handles POST /applications/:id/withdraw (student auth).
func (h *JobHandler) WithdrawApplicationHandler(c *gin.Context) {
	studentID := c.GetString("studentID")
	if err := h.Service.WithdrawApplication(c.Request.Context(), studentID, c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application withdrawn"})
}

// UpdateApplicationStatusHandler handles PATCH /applications/:id/status (company auth).
func (h *JobHandler) UpdateApplicationStatusHandler(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Service.UpdateApplicationStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application updated"})
}

// StudentApplicationsHandler handles GET /students/me/applications.
func (h *JobHandler) StudentApplicationsHandler(c *gin.Context) {
	studentID := c.GetString("studentID")
	apps, err := h.Service.GetApplicationsByStudent(studentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, apps)
}

// JobApplicationsHandler handles GET /jobs/:id/applications (company auth).
func (h *JobHandler) JobApplicationsHandler(c *gin.Context) {
	jobID := c.Param("id")
	if !h.companyOwnsJob(c, jobID) {
		return
	}
	apps, err := h.Service.GetApplicationsByJob(jobID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, apps)
}
