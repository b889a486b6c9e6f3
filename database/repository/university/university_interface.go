package universityRepo

import "campushire/models"

// UniversityRepository defines persistence operations for universities.
type UniversityRepository interface {
	Create(university *models.University) error
	Update(university *models.University) error
	Delete(id string) error
	GetByID(id string) (*models.University, error)
	GetByEmail(email string) (*models.University, error)
	GetAll() ([]models.University, error)
}
