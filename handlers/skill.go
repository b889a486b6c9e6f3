package handlers

import (
	"net/http"

	"campushire/models"
	"campushire/services/skill"

	"github.com/gin-gonic/gin"
)

// SkillHandler serves skill gap analysis and progress tracking.
type SkillHandler struct {
	Service skill.SkillService
}

// AnalyzeGapHandler handles GET /students/me/skill-gap/:jobId.
func (h *SkillHandler) AnalyzeGapHandler(c *gin.Context) {
	studentID := c.GetString("studentID")

	report, err := h.Service.AnalyzeGap(c.Request.Context(), studentID, c.Param("jobId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

// UpdateSkillProgressHandler handles PUT /students/me/skills/progress.
func (h *SkillHandler) UpdateSkillProgressHandler(c *gin.Context) {
	studentID := c.GetString("studentID")

	var progress models.SkillProgress
	if err := c.ShouldBindJSON(&progress); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	rec, err := h.Service.UpdateProgress(studentID, progress)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}
