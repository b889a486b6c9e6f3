package handlers

import (
	companyRepoPkg "campushire/database/repository/company"
	studentRepoPkg "campushire/database/repository/student"
	universityRepoPkg "campushire/database/repository/university"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	StudentRepo    studentRepoPkg.StudentRepository
	UniversityRepo universityRepoPkg.UniversityRepository
	CompanyRepo    companyRepoPkg.CompanyRepository

	// Student endpoints
	RegisterStudentHandler     gin.HandlerFunc
	AuthenticateStudentHandler gin.HandlerFunc
	RevokeStudentTokenHandler  gin.HandlerFunc
	GetStudentHandler          gin.HandlerFunc
	UpdateStudentHandler       gin.HandlerFunc
	DeleteStudentHandler       gin.HandlerFunc
	UpdateStudentSkillsHandler gin.HandlerFunc
	UpdateSkillProgressHandler gin.HandlerFunc
	AnalyzeGapHandler          gin.HandlerFunc
	MatchJobsHandler           gin.HandlerFunc
	StudentApplicationsHandler gin.HandlerFunc
	ApplyHandler               gin.HandlerFunc
	WithdrawApplicationHandler gin.HandlerFunc

	// University endpoints
	RegisterUniversityHandler     gin.HandlerFunc
	AuthenticateUniversityHandler gin.HandlerFunc
	GetUniversityHandler          gin.HandlerFunc
	ListUniversitiesHandler       gin.HandlerFunc
	ListUniversityStudentsHandler gin.HandlerFunc
	PlacementDashboardHandler     gin.HandlerFunc
	AnnounceHandler               gin.HandlerFunc

	// Company endpoints
	RegisterCompanyHandler     gin.HandlerFunc
	AuthenticateCompanyHandler gin.HandlerFunc
	GetCompanyHandler          gin.HandlerFunc
	ListCompaniesHandler       gin.HandlerFunc
	UpdateCompanyHandler       gin.HandlerFunc
	DeleteCompanyHandler       gin.HandlerFunc

	// Job and application endpoints
	PostJobHandler                 gin.HandlerFunc
	ListJobsHandler                gin.HandlerFunc
	GetJobHandler                  gin.HandlerFunc
	CompanyJobsHandler             gin.HandlerFunc
	CloseJobHandler                gin.HandlerFunc
	DeleteJobHandler               gin.HandlerFunc
	UpdateApplicationStatusHandler gin.HandlerFunc
	JobApplicationsHandler         gin.HandlerFunc

	// Notification endpoints
	NotificationHistoryHandler  gin.HandlerFunc
	MarkNotificationReadHandler gin.HandlerFunc
	ScheduleReminderHandler     gin.HandlerFunc
	WebSocketHandler            gin.HandlerFunc

	// AI endpoints
	AnalyzeResumeHandler  gin.HandlerFunc
	NextQuestionHandler   gin.HandlerFunc
	EvaluateAnswerHandler gin.HandlerFunc
	EndInterviewHandler   gin.HandlerFunc
}
