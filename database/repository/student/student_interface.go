package studentRepo

import (
	"campushire/models"

	"go.mongodb.org/mongo-driver/bson"
)

// StudentRepository defines persistence operations for students.
type StudentRepository interface {
	Create(student *models.Student) error
	Update(student *models.Student) error
	UpdateSetDocument(id string, updateDoc bson.M) error
	Delete(id string) error
	GetByID(id string) (*models.Student, error)
	GetByIDWithProjection(id string, projection bson.M) (*models.Student, error)
	GetByEmail(email string) (*models.Student, error)
	GetByUniversity(universityID string) ([]models.Student, error)
	GetAll() ([]models.Student, error)
	CountByUniversity(universityID string) (int64, error)
	CountByUniversityAndStatus(universityID, status string) (int64, error)
}
