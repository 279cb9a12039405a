package service

import (
	"context"
	"strings"

	"vms/internal/domain"
)

// UserService exposes directory reads and self-service profile edits.
type UserService struct {
	users domain.UserRepository
}

func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users: users}
}

// Get returns the account with credential material stripped.
func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.PasswordHash = ""
	return u, nil
}

// UpdateProfile edits the caller's display name and email. Username,
// roles, and password are not editable through this path.
func (s *UserService) UpdateProfile(ctx context.Context, id int64, name, email string) (*domain.User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, domain.ErrValidation("email is required")
	}
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Name = name
	u.Email = email
	updated, err := s.users.Update(ctx, u)
	if err != nil {
		return nil, err
	}
	updated.PasswordHash = ""
	return updated, nil
}
