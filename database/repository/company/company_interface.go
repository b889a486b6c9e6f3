package companyRepo

import "campushire/models"

// CompanyRepository defines persistence operations for companies.
type CompanyRepository interface {
	Create(company *models.Company) error
	Update(company *models.Company) error
	Delete(id string) error
	GetByID(id string) (*models.Company, error)
	GetByEmail(email string) (*models.Company, error)
	GetAll() ([]models.Company, error)
}
