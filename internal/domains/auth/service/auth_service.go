package service

import (
	"context"
	"crypto/subtle"
	"time"

	"golang.org/x/crypto/bcrypt"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/domains/auth"
	"portfolio-backend/pkg/jwt"
)

type authService struct {
	admin      config.AdminConfig
	jwtManager *jwt.Manager
	expiry     time.Duration
}

func NewAuthService(admin config.AdminConfig, jwtManager *jwt.Manager, expiry time.Duration) auth.Service {
	return &authService{admin: admin, jwtManager: jwtManager, expiry: expiry}
}

func (s *authService) Login(ctx context.Context, req *auth.LoginRequest) (*auth.LoginResponse, error) {
	emailMatch := subtle.ConstantTimeCompare([]byte(req.Email), []byte(s.admin.Email)) == 1

	// Always run the bcrypt comparison so a wrong email costs the same
	// as a wrong password.
	hashErr := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(req.Password))

	if !emailMatch || hashErr != nil {
		return nil, auth.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(req.Email)
	if err != nil {
		return nil, err
	}

	return &auth.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(s.expiry.Seconds()),
	}, nil
}
