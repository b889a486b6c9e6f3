package handlers

import (
	"net/http"

	"campushire/services/intelligence"
	"campushire/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AIHandler serves the Gemini-backed career tooling.
type AIHandler struct {
	Service intelligence.IntelligenceService
}

// AnalyzeResumeHandler handles POST /ai/resume (student auth).
func (h *AIHandler) AnalyzeResumeHandler(c *gin.Context) {
	logger := utils.GetLogger()
	studentID := c.GetString("studentID")

	analysis, err := h.Service.AnalyzeResume(c.Request.Context(), studentID)
	if err != nil {
		logger.Error("Resume analysis failed", zap.String("studentId", studentID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// NextQuestionHandler handles POST /ai/interview/question (student auth).
func (h *AIHandler) NextQuestionHandler(c *gin.Context) {
	studentID := c.GetString("studentID")

	var req struct {
		Role string `json:"role"`
	}
	_ = c.ShouldBindJSON(&req)

	q, err := h.Service.NextInterviewQuestion(c.Request.Context(), studentID, req.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, q)
}

// EvaluateAnswerHandler handles POST /ai/interview/answer (student auth).
func (h *AIHandler) EvaluateAnswerHandler(c *gin.Context) {
	studentID := c.GetString("studentID")

	var req struct {
		Question string `json:"question" binding:"required"`
		Answer   string `json:"answer" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	fb, err := h.Service.EvaluateAnswer(c.Request.Context(), studentID, req.Question, req.Answer)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, fb)
}

// EndInterviewHandler handles POST /ai/interview/end (student auth).
func (h *AIHandler) EndInterviewHandler(c *gin.Context) {
	studentID := c.GetString("studentID")
	if err := h.Service.EndInterview(c.Request.Context(), studentID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Interview session cleared"})
}
