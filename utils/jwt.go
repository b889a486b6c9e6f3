package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"campushire/config"

	"github.com/golang-jwt/jwt"
)

// Role claim values carried in auth tokens.
const (
	RoleStudent    = "student"
	RoleUniversity = "university"
	RoleCompany    = "company"
)

// AuthTokenTTL is the default lifetime of an issued auth token.
const AuthTokenTTL = 72 * time.Hour

// AuthCachePrefix namespaces token-hash entries in the auth cache.
const AuthCachePrefix = "auth:"

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "campushire-dev"
	}
	return []byte(secret)
}

// GenerateToken creates a signed JWT token with the given subject (studentID,
// universityID or companyID), role and email. The token expires after the
// specified duration.
func GenerateToken(subject, role, email string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   subject,
		"role":  role,
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ExtractIDAndRoleFromToken extracts the subject and role claims from a valid
// JWT token string.
func ExtractIDAndRoleFromToken(tokenString string) (string, string, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return "", "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", "", errors.New("token does not contain a valid 'sub' claim")
	}
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return "", "", errors.New("token does not contain a valid 'role' claim")
	}

	return sub, role, nil
}
