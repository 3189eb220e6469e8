package memory

import (
	"context"

	"club-coordination-backend/internal/database/models"
	apperrors "club-coordination-backend/internal/errors"
	"club-coordination-backend/internal/rbac"

	"github.com/google/uuid"
)

type userRepo struct {
	s *Store
}

func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	unlock, err := r.s.read(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return &u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	unlock, err := r.s.read(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	id, ok := r.s.userByEmail[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	u := r.s.users[id]
	return &u, nil
}

func (r *userRepo) FindOrCreate(ctx context.Context, user *models.User) (*models.User, error) {
	unlock, err := r.s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if id, ok := r.s.userByEmail[user.Email]; ok {
		u := r.s.users[id]
		return &u, nil
	}

	if user.GlobalRole == "" {
		user.GlobalRole = rbac.RoleMember
	}
	r.s.stamp(&user.BaseModel)
	r.s.users[user.ID] = *user
	r.s.userByEmail[user.Email] = user.ID
	u := *user
	return &u, nil
}
