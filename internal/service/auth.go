package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/scribemd/scribemd-go/internal/crypto"
	"github.com/scribemd/scribemd-go/internal/model"
	"github.com/scribemd/scribemd-go/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameRequired   = errors.New("username is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrUsernameTaken      = errors.New("username already taken")
)

// AuthService handles authentication business logic.
type AuthService struct {
	repo      *repository.UserRepository
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo *repository.UserRepository, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		repo:      repo,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Login authenticates a user and returns a signed token.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	if req.Username == "" {
		return model.AuthResponse{}, ErrUsernameRequired
	}
	if req.Password == "" {
		return model.AuthResponse{}, ErrPasswordRequired
	}

	user, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	if !crypto.VerifyPassword(req.Password, user.PasswordHash) {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(user.Username, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{
		Token:    token,
		Username: user.Username,
	}, nil
}

// CreateUser registers a new user with a bcrypt-hashed password.
func (s *AuthService) CreateUser(ctx context.Context, username, password string) error {
	if username == "" {
		return ErrUsernameRequired
	}
	if password == "" {
		return ErrPasswordRequired
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return err
	}

	err = s.repo.Create(ctx, model.User{Username: username, PasswordHash: hash})
	if errors.Is(err, repository.ErrDuplicateUser) {
		return ErrUsernameTaken
	}
	return err
}

// EnsureDefaultUser bootstraps the configured default user at startup. It is
// a no-op when either value is unset or the user already exists.
func (s *AuthService) EnsureDefaultUser(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	_, err := s.repo.GetByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}

	if err := s.CreateUser(ctx, username, password); err != nil {
		return err
	}

	slog.Info("default user created", "username", username)
	return nil
}
