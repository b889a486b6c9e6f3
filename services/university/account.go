package university

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

// RegisterUniversity creates a placement-cell account and returns a signed token.
func (s *DefaultUniversityService) RegisterUniversity(data models.UniversityRegistrationData) (*AuthResponse, error) {
	existing, err := s.Repo.GetByEmail(data.Email)
	if err != nil {
		utils.GetLogger().Error("RegisterUniversity: lookup failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("an account with email %s already exists", data.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	university := &models.University{
		ID:           uuid.New().String(),
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: string(hash),
		Location:     data.Location,
		Website:      data.Website,
	}

	token, err := utils.GenerateToken(university.ID, utils.RoleUniversity, university.Email, utils.AuthTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	university.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(university); err != nil {
		return nil, fmt.Errorf("failed to create university: %w", err)
	}

	cacheKey := utils.AuthCachePrefix + utils.RoleUniversity + ":" + university.ID
	_ = utils.GetAuthCacheClient().Set(context.Background(), cacheKey, university.TokenHash, time.Hour).Err()

	return &AuthResponse{
		ID:    university.ID,
		Token: token,
		Name:  university.Name,
		Email: university.Email,
	}, nil
}

// AuthenticateUniversity verifies credentials and issues a fresh token.
func (s *DefaultUniversityService) AuthenticateUniversity(email, password string) (*AuthResponse, error) {
	rec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("AuthenticateUniversity: failed to fetch university", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if rec == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(rec.ID, utils.RoleUniversity, rec.Email, utils.AuthTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	rec.TokenHash = utils.HashToken(token)

	if err := s.Repo.Update(rec); err != nil {
		return nil, fmt.Errorf("failed to store token hash: %w", err)
	}

	cacheKey := utils.AuthCachePrefix + utils.RoleUniversity + ":" + rec.ID
	_ = utils.GetAuthCacheClient().Set(context.Background(), cacheKey, rec.TokenHash, time.Hour).Err()

	return &AuthResponse{
		ID:    rec.ID,
		Token: token,
		Name:  rec.Name,
		Email: rec.Email,
	}, nil
}

// GetUniversityByID retrieves a university account.
func (s *DefaultUniversityService) GetUniversityByID(id string) (*models.University, error) {
	return s.Repo.GetByID(id)
}

// GetAllUniversities lists every registered university.
func (s *DefaultUniversityService) GetAllUniversities() ([]models.University, error) {
	return s.Repo.GetAll()
}

// UpdateUniversity saves profile changes.
func (s *DefaultUniversityService) UpdateUniversity(university *models.University) error {
	return s.Repo.Update(university)
}

// DeleteUniversity removes a university account.
func (s *DefaultUniversityService) DeleteUniversity(id string) error {
	return s.Repo.Delete(id)
}
