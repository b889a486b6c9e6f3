package student

import (
	studentRepo "campushire/database/repository/student"
	"campushire/models"
)

// StudentService defines student account and profile operations.
type StudentService interface {
	// Registration & authentication
	RegisterStudent(data models.StudentRegistrationData) (*AuthResponse, error)
	AuthenticateStudent(email, password string) (*AuthResponse, error)
	RevokeAuthToken(studentID string) error

	// Profile management
	GetStudentByID(studentID string) (*models.Student, error)
	GetStudentByEmail(email string) (*models.Student, error)
	UpdateStudent(req models.StudentUpdateRequest) (*models.Student, error)
	DeleteStudent(studentID string) error
	UpdateSkills(studentID string, skills []string) (*models.Student, error)
	SetPlacementStatus(studentID, status string) error

	// University views
	GetStudentsByUniversity(universityID string) ([]models.Student, error)
}

// DefaultStudentService is the production implementation.
type DefaultStudentService struct {
	Repo studentRepo.StudentRepository
}

// AuthResponse contains the student's ID, token, and additional details.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}
