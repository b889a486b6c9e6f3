package company

import (
	companyRepo "campushire/database/repository/company"
	"campushire/models"
)

// CompanyService defines recruiter account operations.
type CompanyService interface {
	RegisterCompany(data models.CompanyRegistrationData) (*AuthResponse, error)
	AuthenticateCompany(email, password string) (*AuthResponse, error)
	GetCompanyByID(id string) (*models.Company, error)
	GetAllCompanies() ([]models.Company, error)
	UpdateCompany(company *models.Company) error
	DeleteCompany(id string) error
}

// DefaultCompanyService is the production implementation.
type DefaultCompanyService struct {
	Repo companyRepo.CompanyRepository
}

// AuthResponse contains the company's ID, token, and additional details.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}
