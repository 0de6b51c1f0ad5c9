package jwtutil

import (
	"time"

	"github.com/Matoxx01/mikes-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

var (
	secret          []byte
	expirationHours int
)

// Initialize sets up the JWT utility with configuration
func Initialize(cfg *config.AuthConfig) {
	secret = []byte(cfg.JWTSigningKey)
	expirationHours = cfg.ExpirationHours
}

// EmployeeClaims represents the JWT claims issued at login
type EmployeeClaims struct {
	EmployeeID uint   `json:"employee_id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed session token for an employee
func GenerateToken(employeeID uint, name, role string) (string, error) {
	now := time.Now()
	claims := EmployeeClaims{
		EmployeeID: employeeID,
		Name:       name,
		Role:       role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   name,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expirationHours) * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken validates and parses a session token
func ValidateToken(tokenString string) (*EmployeeClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &EmployeeClaims{}, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*EmployeeClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrSignatureInvalid
}
