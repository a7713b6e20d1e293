package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"fuelmate/internal/orderapi/auth"
	"fuelmate/internal/orderapi/models"
	"fuelmate/internal/orderapi/repository"
)

var ErrBadCredentials = errors.New("invalid email or password")

// AuthService implements register/login/profile on top of the user repo.
type AuthService struct {
	users    repository.UserRepository
	secret   string
	tokenTTL time.Duration
}

func NewAuthService(users repository.UserRepository, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{users: users, secret: secret, tokenTTL: tokenTTL}
}

// Register creates an account and returns a fresh token.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" {
		return "", models.User{}, errors.New("name and email are required")
	}
	if len(password) < 6 {
		return "", models.User{}, errors.New("password must be at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", models.User{}, fmt.Errorf("hash password: %w", err)
	}
	u, err := s.users.Create(ctx, name, email, string(hash))
	if err != nil {
		return "", models.User{}, err
	}
	token, err := auth.Issue(s.secret, s.tokenTTL, u.ID, u.Name, u.Email)
	if err != nil {
		return "", models.User{}, fmt.Errorf("issue token: %w", err)
	}
	return token, u, nil
}

// Login verifies credentials and returns a fresh token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", models.User{}, ErrBadCredentials
		}
		return "", models.User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", models.User{}, ErrBadCredentials
	}
	token, err := auth.Issue(s.secret, s.tokenTTL, u.ID, u.Name, u.Email)
	if err != nil {
		return "", models.User{}, fmt.Errorf("issue token: %w", err)
	}
	u.PasswordHash = ""
	return token, u, nil
}

// Profile returns the account for an authenticated principal.
func (s *AuthService) Profile(ctx context.Context, userID int64) (models.User, error) {
	return s.users.GetByID(ctx, userID)
}

// UpdateProfile updates the mutable account fields.
func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, name, phone, address string) (models.User, error) {
	return s.users.UpdateProfile(ctx, userID, strings.TrimSpace(name), strings.TrimSpace(phone), strings.TrimSpace(address))
}
