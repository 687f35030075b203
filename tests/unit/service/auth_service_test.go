package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"corrispettivi/internal/config"
	"corrispettivi/internal/domain"
	"corrispettivi/internal/service"
)

func newAuthService(t *testing.T, password string) service.AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return service.NewAuthService(
		config.AdminConfig{Email: "admin@example.com", PasswordHash: string(hash)},
		config.JWTConfig{Secret: "test-jwt-secret", AccessTokenExpiry: time.Hour, Issuer: "corrispettivi"},
	)
}

func TestAuthService_Login(t *testing.T) {
	svc := newAuthService(t, "correct-horse-battery")

	token, err := svc.Login(service.LoginInput{
		Email:    "admin@example.com",
		Password: "correct-horse-battery",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, token.AccessToken)
	assert.True(t, token.ExpiresAt.After(time.Now()))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := newAuthService(t, "correct-horse-battery")

	_, err := svc.Login(service.LoginInput{
		Email:    "admin@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongEmail(t *testing.T) {
	svc := newAuthService(t, "correct-horse-battery")

	_, err := svc.Login(service.LoginInput{
		Email:    "someone@example.com",
		Password: "correct-horse-battery",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_NoHashConfigured(t *testing.T) {
	svc := service.NewAuthService(
		config.AdminConfig{Email: "admin@example.com"},
		config.JWTConfig{Secret: "test-jwt-secret", AccessTokenExpiry: time.Hour},
	)

	_, err := svc.Login(service.LoginInput{
		Email:    "admin@example.com",
		Password: "anything-at-all",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_ValidateToken(t *testing.T) {
	svc := newAuthService(t, "correct-horse-battery")

	token, err := svc.Login(service.LoginInput{
		Email:    "admin@example.com",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token.AccessToken)

	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "admin@example.com", claims.Subject)
	assert.Equal(t, "corrispettivi", claims.Issuer)
}

func TestAuthService_ValidateToken_Garbage(t *testing.T) {
	svc := newAuthService(t, "correct-horse-battery")

	_, err := svc.ValidateToken("not.a.token")

	assert.Error(t, err)
}
