package services

import (
	"time"

	"newshub-api/config"
	"newshub-api/models"

	"github.com/golang-jwt/jwt/v4"
)

type AuthService interface {
	Login(req models.LoginRequest) (*models.AuthResponse, error)
}

type authService struct{}

func NewAuthService() AuthService {
	return &authService{}
}

// Login issues a signed access token for the submitted identity. Identity is
// assumed to be verified upstream; no credential check happens here.
func (s *authService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	token, err := s.generateToken(req.Email)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token}, nil
}

func (s *authService) generateToken(email string) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"email": email,
		"exp":   now.Add(config.JWTExpiration).Unix(),
		"iat":   now.Unix(),
		"nbf":   now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}
