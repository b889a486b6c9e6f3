package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campushire/config"
	"campushire/cron"
	"campushire/database"
	applicationRepoPkg "campushire/database/repository/application"
	companyRepoPkg "campushire/database/repository/company"
	jobRepoPkg "campushire/database/repository/job"
	notificationRepoPkg "campushire/database/repository/notification"
	studentRepoPkg "campushire/database/repository/student"
	universityRepoPkg "campushire/database/repository/university"
	"campushire/handlers"
	"campushire/routes"
	"campushire/services/company"
	"campushire/services/intelligence"
	"campushire/services/job"
	"campushire/services/notification"
	"campushire/services/skill"
	"campushire/services/student"
	"campushire/services/university"
	"campushire/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	studentRepo := studentRepoPkg.NewMongoStudentRepo()
	universityRepo := universityRepoPkg.NewMongoUniversityRepo()
	companyRepo := companyRepoPkg.NewMongoCompanyRepo()
	jobRepo := jobRepoPkg.NewMongoJobRepo()
	applicationRepo := applicationRepoPkg.NewMongoApplicationRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()

	// Notification core: registry, persistence hook, dispatcher.
	dispatcher := notification.NewDefaultDispatcher(
		notification.NewRegistry(),
		notification.RepoPersistHook{Repo: notificationRepo},
		logger,
		config.AppConfig.PendingNotificationLimit,
	)

	// services.
	studentService := &student.DefaultStudentService{
		Repo: studentRepo,
	}
	universityService := &university.DefaultUniversityService{
		Repo:         universityRepo,
		Students:     studentRepo,
		Applications: applicationRepo,
		Notifier:     dispatcher,
	}
	companyService := &company.DefaultCompanyService{
		Repo: companyRepo,
	}
	jobService := &job.DefaultJobService{
		Jobs:         jobRepo,
		Students:     studentRepo,
		Applications: applicationRepo,
		Notifier:     dispatcher,
	}
	skillService := &skill.DefaultSkillService{
		Students: studentRepo,
		Jobs:     jobRepo,
		Notifier: dispatcher,
	}

	ctxStore := intelligence.NewRedisContextStore(utils.GetAIContextCacheClient(), 30*time.Minute)
	aiService := intelligence.NewGeminiIntelligenceService(
		intelligence.NewGeminiClient(config.AppConfig.GeminiAPIKey),
		ctxStore,
		studentRepo,
	)

	// handlers.
	studentHandler := &handlers.StudentHandler{Service: studentService}
	universityHandler := &handlers.UniversityHandler{Service: universityService, Students: studentService}
	companyHandler := &handlers.CompanyHandler{Service: companyService}
	jobHandler := &handlers.JobHandler{Service: jobService}
	skillHandler := &handlers.SkillHandler{Service: skillService}
	aiHandler := &handlers.AIHandler{Service: aiService}
	notificationHandler := &handlers.NotificationHandler{Repo: notificationRepo}
	wsHandler := handlers.NewWebSocketHandler(dispatcher)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		StudentRepo:    studentRepo,
		UniversityRepo: universityRepo,
		CompanyRepo:    companyRepo,

		// Student endpoints.
		RegisterStudentHandler:     studentHandler.RegisterStudentHandler,
		AuthenticateStudentHandler: studentHandler.AuthenticateStudentHandler,
		RevokeStudentTokenHandler:  studentHandler.RevokeStudentTokenHandler,
		GetStudentHandler:          studentHandler.GetStudentHandler,
		UpdateStudentHandler:       studentHandler.UpdateStudentHandler,
		DeleteStudentHandler:       studentHandler.DeleteStudentHandler,
		UpdateStudentSkillsHandler: studentHandler.UpdateStudentSkillsHandler,
		UpdateSkillProgressHandler: skillHandler.UpdateSkillProgressHandler,
		AnalyzeGapHandler:          skillHandler.AnalyzeGapHandler,
		MatchJobsHandler:           jobHandler.MatchJobsHandler,
		StudentApplicationsHandler: jobHandler.StudentApplicationsHandler,
		ApplyHandler:               jobHandler.ApplyHandler,
		WithdrawApplicationHandler: jobHandler.WithdrawApplicationHandler,

		// University endpoints.
		RegisterUniversityHandler:     universityHandler.RegisterUniversityHandler,
		AuthenticateUniversityHandler: universityHandler.AuthenticateUniversityHandler,
		GetUniversityHandler:          universityHandler.GetUniversityHandler,
		ListUniversitiesHandler:       universityHandler.ListUniversitiesHandler,
		ListUniversityStudentsHandler: universityHandler.ListUniversityStudentsHandler,
		PlacementDashboardHandler:     universityHandler.PlacementDashboardHandler,
		AnnounceHandler:               universityHandler.AnnounceHandler,

		// Company endpoints.
		RegisterCompanyHandler:     companyHandler.RegisterCompanyHandler,
		AuthenticateCompanyHandler: companyHandler.AuthenticateCompanyHandler,
		GetCompanyHandler:          companyHandler.GetCompanyHandler,
		ListCompaniesHandler:       companyHandler.ListCompaniesHandler,
		UpdateCompanyHandler:       companyHandler.UpdateCompanyHandler,
		DeleteCompanyHandler:       companyHandler.DeleteCompanyHandler,

		// Job and application endpoints.
		PostJobHandler:                 jobHandler.PostJobHandler,
		ListJobsHandler:                jobHandler.ListJobsHandler,
		GetJobHandler:                  jobHandler.GetJobHandler,
		CompanyJobsHandler:             jobHandler.CompanyJobsHandler,
		CloseJobHandler:                jobHandler.CloseJobHandler,
		DeleteJobHandler:               jobHandler.DeleteJobHandler,
		UpdateApplicationStatusHandler: jobHandler.UpdateApplicationStatusHandler,
		JobApplicationsHandler:         jobHandler.JobApplicationsHandler,

		// Notification endpoints.
		NotificationHistoryHandler:  notificationHandler.HistoryHandler,
		MarkNotificationReadHandler: notificationHandler.MarkReadHandler,
		ScheduleReminderHandler:     notificationHandler.ScheduleReminderHandler,
		WebSocketHandler:            wsHandler.ServeWS,

		// AI endpoints.
		AnalyzeResumeHandler:  aiHandler.AnalyzeResumeHandler,
		NextQuestionHandler:   aiHandler.NextQuestionHandler,
		EvaluateAnswerHandler: aiHandler.EvaluateAnswerHandler,
		EndInterviewHandler:   aiHandler.EndInterviewHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background reminder worker and health monitor.
	cron.InitReminderWorker(dispatcher)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient(), utils.GetAIContextCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
