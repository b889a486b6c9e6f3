package handlers

import (
	"net/http"
	"strconv"
	"time"

	notificationRepo "campushire/database/repository/notification"
	"campushire/models"
	"campushire/services/tasks"
	"campushire/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NotificationHandler serves notification history and reminder scheduling.
// Live delivery goes over the websocket; these endpoints cover everything else.
type NotificationHandler struct {
	Repo notificationRepo.NotificationRepository
}

// HistoryHandler handles GET /notifications (student auth).
func (h *NotificationHandler) HistoryHandler(c *gin.Context) {
	logger := utils.GetLogger()
	studentID := c.GetString("studentID")

	var limit int64
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	records, err := h.Repo.GetBySubscriber(studentID, limit)
	if err != nil {
		logger.Error("Failed to load notification history", zap.String("subscriberId", studentID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load notifications"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// MarkReadHandler handles PATCH /notifications/:id/read (student auth).
func (h *NotificationHandler) MarkReadHandler(c *gin.Context) {
	if err := h.Repo.MarkRead(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked read"})
}

// ScheduleReminderHandler handles POST /notifications/reminders (student auth).
// The reminder fires through the background worker at the requested time.
func (h *NotificationHandler) ScheduleReminderHandler(c *gin.Context) {
	logger := utils.GetLogger()
	studentID := c.GetString("studentID")

	var req struct {
		Assessment string    `json:"assessment" binding:"required"`
		Title      string    `json:"title" binding:"required"`
		Body       string    `json:"body"`
		FireAt     time.Time `json:"fireAt" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	payload := models.ReminderPayload{
		ReminderID: uuid.New().String(),
		StudentID:  studentID,
		Assessment: req.Assessment,
		Title:      req.Title,
		Body:       req.Body,
		FireDate:   req.FireAt.UTC().Format(time.RFC3339),
	}
	if err := tasks.ScheduleReminder(payload, req.FireAt); err != nil {
		logger.Error("Failed to schedule reminder", zap.String("studentId", studentID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"reminderId": payload.ReminderID})
}
