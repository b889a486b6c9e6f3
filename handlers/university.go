package handlers

import (
	"net/http"

	"campushire/models"
	"campushire/services/student"
	"campushire/services/university"
	"campushire/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UniversityHandler bundles the placement-cell endpoints.
type UniversityHandler struct {
	Service  university.UniversityService
	Students student.StudentService
}

// RegisterUniversityHandler handles POST /universities/register.
func (h *UniversityHandler) RegisterUniversityHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var data models.UniversityRegistrationData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.RegisterUniversity(data)
	if err != nil {
		logger.Error("University registration failed", zap.String("email", data.Email), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateUniversityHandler handles POST /universities/auth.
func (h *UniversityHandler) AuthenticateUniversityHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.AuthenticateUniversity(req.Email, req.Password)
	if err != nil {
		logger.Warn("University authentication failed", zap.String("email", req.Email))
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetUniversityHandler handles GET /universities/me.
func (h *UniversityHandler) GetUniversityHandler(c *gin.Context) {
	universityID := c.GetString("universityID")
	rec, err := h.Service.GetUniversityByID(universityID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// ListUniversitiesHandler handles GET /universities.
func (h *UniversityHandler) ListUniversitiesHandler(c *gin.Context) {
	universities, err := h.Service.GetAllUniversities()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, universities)
}

// ListUniversityStudentsHandler handles GET /universities/me/students.
func (h *UniversityHandler) ListUniversityStudentsHandler(c *gin.Context) {
	universityID := c.GetString("universityID")
	students, err := h.Students.GetStudentsByUniversity(universityID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, students)
}

// PlacementDashboardHandler handles GET /universities/me/dashboard.
func (h *UniversityHandler) PlacementDashboardHandler(c *gin.Context) {
	logger := utils.GetLogger()
	universityID := c.GetString("universityID")

	stats, err := h.Service.PlacementDashboard(universityID)
	if err != nil {
		logger.Error("Dashboard aggregation failed", zap.String("universityId", universityID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// AnnounceHandler handles POST /universities/me/announce.
func (h *UniversityHandler) AnnounceHandler(c *gin.Context) {
	universityID := c.GetString("universityID")

	var req struct {
		Title string `json:"title" binding:"required"`
		Body  string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	recipients, err := h.Service.BroadcastAnnouncement(c.Request.Context(), universityID, req.Title, req.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipients": recipients})
}
