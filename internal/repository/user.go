package repository

import (
	"context"

	"club-coordination-backend/internal/database/models"
	apperrors "club-coordination-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err, apperrors.ErrUserNotFound)
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		return nil, translateError(err, apperrors.ErrUserNotFound)
	}
	return &user, nil
}

// FindOrCreate returns the user with user.Email, inserting user when none exists.
// Two first contacts racing on the same email both end up with the stored row.
func (r *UserRepository) FindOrCreate(ctx context.Context, user *models.User) (*models.User, error) {
	existing, err := r.GetByEmail(ctx, user.Email)
	if err == nil {
		return existing, nil
	}
	if !apperrors.IsNotFound(err) {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if apperrors.IsConflict(translateError(err, apperrors.ErrUserNotFound)) {
			return r.GetByEmail(ctx, user.Email)
		}
		return nil, err
	}
	return user, nil
}
