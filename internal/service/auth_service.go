package service

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"corrispettivi/internal/config"
	"corrispettivi/internal/domain"
)

// Claims represents the JWT claims for the admin session.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Token holds a signed access token.
type Token struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// LoginInput is the DTO for login requests.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// AuthService defines the authentication contract for the single admin
// account.
type AuthService interface {
	Login(input LoginInput) (*Token, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type authService struct {
	admin config.AdminConfig
	cfg   config.JWTConfig
}

// NewAuthService creates a new AuthService implementation.
func NewAuthService(admin config.AdminConfig, cfg config.JWTConfig) AuthService {
	return &authService{admin: admin, cfg: cfg}
}

func (s *authService) Login(input LoginInput) (*Token, error) {
	if s.admin.PasswordHash == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(input.Email), []byte(s.admin.Email)) != 1 {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return s.generateToken(input.Email)
}

func (s *authService) generateToken(email string) (*Token, error) {
	now := time.Now()
	expiry := now.Add(s.cfg.AccessTokenExpiry)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiry),
			ID:        uuid.New().String(),
			Audience:  jwt.ClaimStrings{"access"},
		},
		Email: email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return nil, fmt.Errorf("signing access token: %w", err)
	}

	return &Token{AccessToken: signed, ExpiresAt: expiry}, nil
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}
	if !token.Valid {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}
