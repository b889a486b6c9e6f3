package applicationRepo

import "campushire/models"

// ApplicationRepository defines persistence operations for job applications.
type ApplicationRepository interface {
	Create(app *models.Application) error
	GetByID(id string) (*models.Application, error)
	GetByStudent(studentID string) ([]models.Application, error)
	GetByJob(jobID string) ([]models.Application, error)
	ExistsForStudentAndJob(studentID, jobID string) (bool, error)
	UpdateStatus(id, status string) error
	CountByUniversity(universityID string) (int64, error)
	CountByUniversityGroupedByStatus(universityID string) (map[string]int64, error)
}
