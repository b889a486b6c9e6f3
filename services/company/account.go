package company

import (
	"context"
	"fmt"
	"time"

	"campushire/models"
	"campushire/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RegisterCompany creates a recruiter account and returns a signed token.
func (s *DefaultCompanyService) RegisterCompany(data models.CompanyRegistrationData) (*AuthResponse, error) {
	existing, err := s.Repo.GetByEmail(data.Email)
	if err != nil {
		utils.GetLogger().Error("RegisterCompany: lookup failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("an account with email %s already exists", data.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	company := &models.Company{
		ID:           uuid.New().String(),
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: string(hash),
		Industry:     data.Industry,
		Website:      data.Website,
		About:        data.About,
	}

	token, err := utils.GenerateToken(company.ID, utils.RoleCompany, company.Email, utils.AuthTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	company.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	cacheKey := utils.AuthCachePrefix + utils.RoleCompany + ":" + company.ID
	_ = utils.GetAuthCacheClient().Set(context.Background(), cacheKey, company.TokenHash, time.Hour).Err()

	return &AuthResponse{
		ID:    company.ID,
		Token: token,
		Name:  company.Name,
		Email: company.Email,
	}, nil
}

// AuthenticateCompany verifies credentials and issues a fresh token.
func (s *DefaultCompanyService) AuthenticateCompany(email, password string) (*AuthResponse, error) {
	rec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("AuthenticateCompany: failed to fetch company", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if rec == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(rec.ID, utils.RoleCompany, rec.Email, utils.AuthTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	rec.TokenHash = utils.HashToken(token)

	if err := s.Repo.Update(rec); err != nil {
		return nil, fmt.Errorf("failed to store token hash: %w", err)
	}

	cacheKey := utils.AuthCachePrefix + utils.RoleCompany + ":" + rec.ID
	_ = utils.GetAuthCacheClient().Set(context.Background(), cacheKey, rec.TokenHash, time.Hour).Err()

	return &AuthResponse{
		ID:    rec.ID,
		Token: token,
		Name:  rec.Name,
		Email: rec.Email,
	}, nil
}

// GetCompanyByID retrieves a company account.
func (s *DefaultCompanyService) GetCompanyByID(id string) (*models.Company, error) {
	return s.Repo.GetByID(id)
}

// GetAllCompanies lists every registered company.
func (s *DefaultCompanyService) GetAllCompanies() ([]models.Company, error) {
	return s.Repo.GetAll()
}

// UpdateCompany saves profile changes.
func (s *DefaultCompanyService) UpdateCompany(company *models.Company) error {
	return s.Repo.Update(company)
}

// DeleteCompany removes a company account.
func (s *DefaultCompanyService) DeleteCompany(id string) error {
	return s.Repo.Delete(id)
}
