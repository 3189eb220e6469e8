package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"club-coordination-backend/internal/database/models"
	apperrors "club-coordination-backend/internal/errors"
	"club-coordination-backend/internal/rbac"
	"club-coordination-backend/internal/repository"

	"github.com/google/uuid"
)

// UserService provisions and reads platform accounts
type UserService struct {
	repo    repository.UserRepositoryInterface
	retrier *Retrier
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, retrier *Retrier) *UserService {
	return &UserService{repo: repo, retrier: retrier}
}

// Provision returns the account for email, creating it on first contact
func (s *UserService) Provision(ctx context.Context, email, displayName string) (*UserResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, apperrors.NewValidationError("email", "must be a valid email address")
	}
	if displayName == "" {
		displayName = strings.SplitN(email, "@", 2)[0]
	}

	var user *models.User
	err := s.retrier.Do(ctx, "user.provision", func() error {
		var err error
		user, err = s.repo.FindOrCreate(ctx, &models.User{
			Email:       email,
			DisplayName: displayName,
			GlobalRole:  rbac.RoleMember,
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to provision user: %w", err)
	}
	return toUserResponse(user), nil
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}
