package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/scribemd/scribemd-go/internal/model"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrDuplicateUser = errors.New("username already exists")
)

// UserRepository persists user records in a single JSON file. Reads and
// writes are read-modify-write over the whole file with no locking; that is
// an accepted limitation for a single-operator deployment.
type UserRepository struct {
	path string
}

// NewUserRepository creates a UserRepository backed by the given JSON file.
// The file does not need to exist yet; a missing file means an empty store.
func NewUserRepository(path string) *UserRepository {
	return &UserRepository{path: path}
}

// GetByUsername retrieves a user by exact, case-sensitive username match.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	users, err := r.load()
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}

	return nil, ErrUserNotFound
}

// Create appends a new user record. Returns ErrDuplicateUser if a record
// with the same username already exists.
func (r *UserRepository) Create(ctx context.Context, user model.User) error {
	users, err := r.load()
	if err != nil {
		return err
	}

	for i := range users {
		if users[i].Username == user.Username {
			return ErrDuplicateUser
		}
	}

	users = append(users, user)
	return r.save(users)
}

func (r *UserRepository) load() ([]model.User, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading users file: %w", err)
	}

	var users []model.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("parsing users file: %w", err)
	}

	return users, nil
}

func (r *UserRepository) save(users []model.User) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(r.path, data, 0o600); err != nil {
		return fmt.Errorf("writing users file: %w", err)
	}

	return nil
}
