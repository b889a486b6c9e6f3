package routes

import (
	"net/http"
	"time"

	"campushire/handlers"
	"campushire/middleware"
	"campushire/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterStudentRoutes registers student endpoints.
func RegisterStudentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/students")
	{
		api.POST("/register", hb.RegisterStudentHandler)
		api.POST("/login", hb.AuthenticateStudentHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthStudentMiddleware(hb.StudentRepo))
		api.POST("/logout", hb.RevokeStudentTokenHandler)
		api.GET("/me", hb.GetStudentHandler)
		api.PUT("/me", hb.UpdateStudentHandler)
		api.DELETE("/me", hb.DeleteStudentHandler)
		api.PUT("/me/skills", hb.UpdateStudentSkillsHandler)
		api.PUT("/me/skills/progress", hb.UpdateSkillProgressHandler)
		api.GET("/me/skill-gap/:jobId", hb.AnalyzeGapHandler)
		api.GET("/me/matches", hb.MatchJobsHandler)
		api.GET("/me/applications", hb.StudentApplicationsHandler)
	}
}

// RegisterUniversityRoutes registers placement-cell endpoints.
func RegisterUniversityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/universities")
	{
		api.POST("/register", hb.RegisterUniversityHandler)
		api.POST("/login", hb.AuthenticateUniversityHandler)
		api.GET("", hb.ListUniversitiesHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthUniversityMiddleware(hb.UniversityRepo))
		protected.GET("/me", hb.GetUniversityHandler)
		protected.GET("/me/students", hb.ListUniversityStudentsHandler)
		protected.GET("/me/dashboard", hb.PlacementDashboardHandler)
		protected.POST("/me/announce", hb.AnnounceHandler)
	}
}

// RegisterCompanyRoutes registers recruiter endpoints.
func RegisterCompanyRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/companies")
	{
		api.POST("/register", hb.RegisterCompanyHandler)
		api.POST("/login", hb.AuthenticateCompanyHandler)
		api.GET("", hb.ListCompaniesHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthCompanyMiddleware(hb.CompanyRepo))
		protected.GET("/me", hb.GetCompanyHandler)
		protected.PUT("/me", hb.UpdateCompanyHandler)
		protected.DELETE("/me", hb.DeleteCompanyHandler)
		protected.GET("/me/jobs", hb.CompanyJobsHandler)
	}
}

// RegisterJobRoutes registers posting and application endpoints.
func RegisterJobRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/jobs")
	{
		api.GET("", hb.ListJobsHandler)
		api.GET("/:id", hb.GetJobHandler)

		// Company-side posting management.
		companySide := api.Group("")
		companySide.Use(middleware.JWTAuthCompanyMiddleware(hb.CompanyRepo))
		companySide.POST("", hb.PostJobHandler)
		companySide.POST("/:id/close", hb.CloseJobHandler)
		companySide.DELETE("/:id", hb.DeleteJobHandler)
		companySide.GET("/:id/applications", hb.JobApplicationsHandler)

		// Student-side applications.
		studentSide := api.Group("")
		studentSide.Use(middleware.JWTAuthStudentMiddleware(hb.StudentRepo))
		studentSide.POST("/:id/apply", hb.ApplyHandler)
	}

	apps := r.Group("/api/applications")
	{
		companySide := apps.Group("")
		companySide.Use(middleware.JWTAuthCompanyMiddleware(hb.CompanyRepo))
		companySide.PATCH("/:id/status", hb.UpdateApplicationStatusHandler)

		studentSide := apps.Group("")
		studentSide.Use(middleware.JWTAuthStudentMiddleware(hb.StudentRepo))
		studentSide.POST("/:id/withdraw", hb.WithdrawApplicationHandler)
	}
}

// RegisterNotificationRoutes registers notification history, reminders and the
// live websocket feed.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// The socket authenticates via its subscribe message, not a header.
	r.GET("/ws", hb.WebSocketHandler)

	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthStudentMiddleware(hb.StudentRepo))
		api.GET("", hb.NotificationHistoryHandler)
		api.PATCH("/:id/read", hb.MarkNotificationReadHandler)
		api.POST("/reminders", hb.ScheduleReminderHandler)
	}
}

// RegisterAIRoutes registers AI endpoints.
func RegisterAIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/ai")
	{
		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthStudentMiddleware(hb.StudentRepo))
		api.POST("/resume", hb.AnalyzeResumeHandler)
		api.POST("/interview/question", hb.NextQuestionHandler)
		api.POST("/interview/answer", hb.EvaluateAnswerHandler)
		api.POST("/interview/end", hb.EndInterviewHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterStudentRoutes(r, hb)
	RegisterUniversityRoutes(r, hb)
	RegisterCompanyRoutes(r, hb)
	RegisterJobRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterAIRoutes(r, hb)
	RegisterHealthRoute(r)
}
