package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/domains/auth"
	"portfolio-backend/pkg/jwt"
)

func newService(t *testing.T, email, password string) auth.Service {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	admin := config.AdminConfig{Email: email, PasswordHash: string(hash)}
	manager := jwt.NewManager("test-secret", time.Hour)
	return NewAuthService(admin, manager, time.Hour)
}

func TestLoginIssuesAdminToken(t *testing.T) {
	svc := newService(t, "admin@example.com", "hunter2")

	resp, err := svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "hunter2",
	})

	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64(3600), resp.ExpiresIn)

	claims, err := jwt.NewManager("test-secret", time.Hour).ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := newService(t, "admin@example.com", "hunter2")

	_, err := svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginRejectsWrongEmail(t *testing.T) {
	svc := newService(t, "admin@example.com", "hunter2")

	_, err := svc.Login(context.Background(), &auth.LoginRequest{
		Email:    "intruder@example.com",
		Password: "hunter2",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}
