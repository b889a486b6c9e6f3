package skill

import (
	"context"

	jobRepo "campushire/database/repository/job"
	studentRepo "campushire/database/repository/student"
	"campushire/models"
	"campushire/services/notification"
)

// SkillService compares student skills against job requirements and tracks
// self-reported skill progress.
type SkillService interface {
	AnalyzeGap(ctx context.Context, studentID, jobID string) (*models.SkillGapReport, error)
	UpdateProgress(studentID string, progress models.SkillProgress) (*models.Student, error)
}

// DefaultSkillService is the production implementation.
type DefaultSkillService struct {
	Students studentRepo.StudentRepository
	Jobs     jobRepo.JobRepository
	Notifier *notification.DefaultDispatcher
}
