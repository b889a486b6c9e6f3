package jobRepo

import "campushire/models"

// JobRepository defines persistence operations for job postings.
type JobRepository interface {
	Create(job *models.Job) error
	Update(job *models.Job) error
	Delete(id string) error
	GetByID(id string) (*models.Job, error)
	GetByCompany(companyID string) ([]models.Job, error)
	List(filter models.JobFilter) ([]models.Job, error)
	GetOpen() ([]models.Job, error)
}
