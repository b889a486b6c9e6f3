package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	companyRepo "campushire/database/repository/company"
	studentRepo "campushire/database/repository/student"
	universityRepo "campushire/database/repository/university"
	"campushire/utils"

	"github.com/gin-gonic/gin"
)

// hashLookup resolves the stored token hash for an account id.
type hashLookup func(id string) (string, error)

// jwtAuth validates the bearer token, checks the role claim, and verifies the
// token hash against the auth cache with a database fallback.
func jwtAuth(expectedRole, contextKey string, lookup hashLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		id, role, err := utils.ExtractIDAndRoleFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		if role != expectedRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Token role does not permit this resource"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + expectedRole + ":" + id

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		cached, err := utils.GetAuthCacheClient().Get(ctx, cacheKey).Result()
		if err != nil || cached != computedHash {
			// Cache miss or stale entry: fall back to the stored hash.
			stored, err := lookup(id)
			if err != nil || stored == "" || stored != computedHash {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or account not found"})
				return
			}
			_ = utils.GetAuthCacheClient().Set(ctx, cacheKey, stored, time.Hour).Err()
		}

		c.Set(contextKey, id)
		c.Next()
	}
}

// JWTAuthStudentMiddleware guards student-only routes.
func JWTAuthStudentMiddleware(repo studentRepo.StudentRepository) gin.HandlerFunc {
	return jwtAuth(utils.RoleStudent, "studentID", func(id string) (string, error) {
		rec, err := repo.GetByID(id)
		if err != nil {
			return "", err
		}
		return rec.TokenHash, nil
	})
}

// JWTAuthUniversityMiddleware guards placement-cell routes.
func JWTAuthUniversityMiddleware(repo universityRepo.UniversityRepository) gin.HandlerFunc {
	return jwtAuth(utils.RoleUniversity, "universityID", func(id string) (string, error) {
		rec, err := repo.GetByID(id)
		if err != nil {
			return "", err
		}
		return rec.TokenHash, nil
	})
}

// JWTAuthCompanyMiddleware guards recruiter routes.
func JWTAuthCompanyMiddleware(repo companyRepo.CompanyRepository) gin.HandlerFunc {
	return jwtAuth(utils.RoleCompany, "companyID", func(id string) (string, error) {
		rec, err := repo.GetByID(id)
		if err != nil {
			return "", err
		}
		return rec.TokenHash, nil
	})
}
