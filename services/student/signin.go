package student

import (
	"context"
	"fmt"
	"time"

	"campushire/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthenticateStudent verifies credentials and issues a fresh token.
func (s *DefaultStudentService) AuthenticateStudent(email, password string) (*AuthResponse, error) {
	rec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("AuthenticateStudent: failed to fetch student", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if rec == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(rec.ID, utils.RoleStudent, rec.Email, utils.AuthTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.UpdateSetDocument(rec.ID, bson.M{"tokenHash": tokenHash}); err != nil {
		return nil, fmt.Errorf("failed to store token hash: %w", err)
	}

	cacheKey := utils.AuthCachePrefix + utils.RoleStudent + ":" + rec.ID
	_ = utils.GetAuthCacheClient().Set(context.Background(), cacheKey, tokenHash, time.Hour).Err()

	return &AuthResponse{
		ID:    rec.ID,
		Token: token,
		Name:  rec.Name,
		Email: rec.Email,
	}, nil
}

// RevokeAuthToken invalidates the student's current token.
func (s *DefaultStudentService) RevokeAuthToken(studentID string) error {
	if err := s.Repo.UpdateSetDocument(studentID, bson.M{"tokenHash": ""}); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	cacheKey := utils.AuthCachePrefix + utils.RoleStudent + ":" + studentID
	return utils.GetAuthCacheClient().Del(context.Background(), cacheKey).Err()
}
