package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"catalog/internal/models"
	"catalog/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// Token types carried in the token_type claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// AuthService issues and validates the JWT pairs used by the admin-only
// mutation endpoints.
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtSecret  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtSecret:  []byte(jwtSecret),
		accessTTL:  1 * time.Hour,
		refreshTTL: 24 * time.Hour,
	}
}

// ObtainTokenPair authenticates a user by credentials and returns an
// access/refresh token pair.
func (s *AuthService) ObtainTokenPair(username, password string) (string, string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		// Do not reveal whether the username exists
		return "", "", fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", "", fmt.Errorf("invalid credentials")
	}

	access, err := s.generateToken(user, TokenTypeAccess, s.accessTTL)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.generateToken(user, TokenTypeRefresh, s.refreshTTL)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// RefreshAccessToken exchanges a valid refresh token for a new access
// token.
func (s *AuthService) RefreshAccessToken(refreshToken string) (string, error) {
	claims, err := s.ValidateToken(refreshToken)
	if err != nil {
		return "", err
	}
	if claims["token_type"] != TokenTypeRefresh {
		return "", fmt.Errorf("token is not a refresh token")
	}

	userID, _ := claims["user_id"].(string)
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}
	return s.generateToken(user, TokenTypeAccess, s.accessTTL)
}

// ValidateToken parses and validates a JWT token, returning the claims
// if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

// EnsureAdmin creates a staff user with the given credentials unless one
// with that username already exists. Used at startup to seed the first
// administrator from the environment.
func (s *AuthService) EnsureAdmin(username, email, password string) error {
	if _, err := s.userRepo.GetByUsername(username); err == nil {
		log.Printf("Admin user %s already exists", username)
		return nil
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.User{
		Username: username,
		Email:    email,
		Password: string(hashedPassword),
		IsStaff:  true,
	}
	if err := s.userRepo.Create(admin); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	log.Printf("Admin user %s created", username)
	return nil
}

// generateToken signs a JWT for the user with the given type and TTL.
func (s *AuthService) generateToken(user *models.User, tokenType string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":    user.ID,
		"username":   user.Username,
		"is_admin":   user.IsStaff,
		"token_type": tokenType,
		"exp":        time.Now().Add(ttl).Unix(),
		"iat":        time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}
