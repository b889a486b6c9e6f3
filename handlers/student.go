package handlers

import (
	"net/http"

	"campushire/models"
	"campushire/services/student"
	"campushire/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StudentHandler bundles the student endpoints around the student service.
type StudentHandler struct {
	Service student.StudentService
}

// RegisterStudentHandler handles POST /students/register.
func (h *StudentHandler) RegisterStudentHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var data models.StudentRegistrationData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.RegisterStudent(data)
	if err != nil {
		logger.Error("Student registration failed", zap.String("email", data.Email), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateStudentHandler handles POST /students/auth.
func (h *StudentHandler) AuthenticateStudentHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.AuthenticateStudent(req.Email, req.Password)
	if err != nil {
		logger.Warn("Student authentication failed", zap.String("email", req.Email))
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RevokeStudentTokenHandler handles POST /students/logout.
func (h *StudentHandler) RevokeStudentTokenHandler(c *gin.Context) {
	studentID := c.GetString("studentID")
	if err := h.Service.RevokeAuthToken(studentID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GetStudentHandler handles GET /students/me.
func (h *StudentHandler) GetStudentHandler(c *gin.Context) {
	logger := utils.GetLogger()
	studentID := c.GetString("studentID")

	rec, err := h.Service.GetStudentByID(studentID)
	if err != nil {
		logger.Error("Student not found", zap.String("id", studentID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// UpdateStudentHandler handles PUT /students/me.
func (h *StudentHandler) UpdateStudentHandler(c *gin.Context) {
	logger := utils.GetLogger()
	studentID := c.GetString("studentID")

	var req models.StudentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.ID = studentID

	rec, err := h.Service.UpdateStudent(req)
	if err != nil {
		logger.Error("Student update failed", zap.String("id", studentID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// DeleteStudentHandler handles DELETE /students/me.
func (h *StudentHandler) DeleteStudentHandler(c *gin.Context) {
	studentID := c.GetString("studentID")
	if err := h.Service.DeleteStudent(studentID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Student deleted"})
}

// UpdateStudentSkillsHandler handles PUT /students/me/skills.
func (h *StudentHandler) UpdateStudentSkillsHandler(c *gin.Context) {
	studentID := c.GetString("studentID")

	var req struct {
		Skills []string `json:"skills" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	rec, err := h.Service.UpdateSkills(studentID, req.Skills)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}
