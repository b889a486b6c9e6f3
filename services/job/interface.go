package job

import (
	"context"

	applicationRepo "campushire/database/repository/application"
	jobRepo "campushire/database/repository/job"
	studentRepo "campushire/database/repository/student"
	"campushire/models"
	"campushire/services/notification"
)

// JobService covers job postings, matching and the application pipeline.
type JobService interface {
	// Postings
	PostJob(ctx context.Context, job *models.Job) (*models.Job, error)
	UpdateJob(job *models.Job) error
	CloseJob(jobID string) error
	DeleteJob(jobID string) error
	GetJobByID(jobID string) (*models.Job, error)
	ListJobs(filter models.JobFilter) ([]models.Job, error)
	GetJobsByCompany(companyID string) ([]models.Job, error)

	// Matching
	MatchJobsForStudent(studentID string) ([]models.JobMatch, error)

	// Applications
	Apply(ctx context.Context, studentID, jobID, coverNote string) (*models.Application, error)
	WithdrawApplication(ctx context.Context, studentID, applicationID string) error
	UpdateApplicationStatus(ctx context.Context, applicationID, status string) error
	GetApplicationsByStudent(studentID string) ([]models.Application, error)
	GetApplicationsByJob(jobID string) ([]models.Application, error)
}

// DefaultJobService is the production implementation.
type DefaultJobService struct {
	Jobs         jobRepo.JobRepository
	Students     studentRepo.StudentRepository
	Applications applicationRepo.ApplicationRepository
	Notifier     *notification.DefaultDispatcher
}
