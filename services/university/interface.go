package university

import (
	applicationRepo "campushire/database/repository/application"
	studentRepo "campushire/database/repository/student"
	universityRepo "campushire/database/repository/university"
	"campushire/models"
	"campushire/services/notification"
	"context"
)

// UniversityService defines placement-cell account and dashboard operations.
type UniversityService interface {
	RegisterUniversity(data models.UniversityRegistrationData) (*AuthResponse, error)
	AuthenticateUniversity(email, password string) (*AuthResponse, error)
	GetUniversityByID(id string) (*models.University, error)
	GetAllUniversities() ([]models.University, error)
	UpdateUniversity(university *models.University) error
	DeleteUniversity(id string) error

	PlacementDashboard(universityID string) (*models.PlacementStats, error)
	BroadcastAnnouncement(ctx context.Context, universityID, title, body string) (int, error)
}

// DefaultUniversityService is the production implementation.
type DefaultUniversityService struct {
	Repo         universityRepo.UniversityRepository
	Students     studentRepo.StudentRepository
	Applications applicationRepo.ApplicationRepository
	Notifier     *notification.DefaultDispatcher
}

// AuthResponse contains the university's ID, token, and additional details.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}
