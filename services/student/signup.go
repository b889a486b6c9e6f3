package student

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

// RegisterStudent creates a student account and returns a signed token.
func (s *DefaultStudentService) RegisterStudent(data models.StudentRegistrationData) (*AuthResponse, error) {
	existing, err := s.Repo.GetByEmail(data.Email)
	if err != nil {
		utils.GetLogger().Error("RegisterStudent: lookup failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("an account with email %s already exists", data.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	student := &models.Student{
		ID:              uuid.New().String(),
		UniversityID:    data.UniversityID,
		Name:            data.Name,
		Email:           data.Email,
		PasswordHash:    string(hash),
		Degree:          data.Degree,
		Branch:          data.Branch,
		GraduationYear:  data.GraduationYear,
		CGPA:            data.CGPA,
		PlacementStatus: models.PlacementUnplaced,
	}

	token, err := utils.GenerateToken(student.ID, utils.RoleStudent, student.Email, utils.AuthTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	student.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(student); err != nil {
		return nil, fmt.Errorf("failed to create student: %w", err)
	}

	cacheKey := utils.AuthCachePrefix + utils.RoleStudent + ":" + student.ID
	_ = utils.GetAuthCacheClient().Set(context.Background(), cacheKey, student.TokenHash, time.Hour).Err()

	return &AuthResponse{
		ID:    student.ID,
		Token: token,
		Name:  student.Name,
		Email: student.Email,
	}, nil
}
