package service

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"maturiq/internal/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// AuthService handles assessor authentication
type AuthService struct {
	adminUsername string
	adminPassword string
	jwtSecret     []byte
}

// NewAuthService creates a new auth service
func NewAuthService() *AuthService {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "password123"
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "super-secret-key-change-in-production"
	}

	return &AuthService{
		adminUsername: username,
		adminPassword: password,
		jwtSecret:     []byte(secret),
	}
}

// Login validates credentials and returns an assessor token
func (s *AuthService) Login(username, password string) (*model.LoginResponse, error) {
	if username != s.adminUsername || password != s.adminPassword {
		return nil, ErrInvalidCredentials
	}

	assessorID := "assessor_" + uuid.New().String()[:8]

	claims := &model.AssessorClaims{
		AssessorID: assessorID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		Token:      tokenString,
		AssessorID: assessorID,
	}, nil
}

// ValidateToken validates an assessor JWT and returns claims
func (s *AuthService) ValidateToken(tokenString string) (*model.AssessorClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.AssessorClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.AssessorClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
