package repository

import (
	"context"
	"time"

	"club-coordination-backend/internal/database/models"
	apperrors "club-coordination-backend/internal/errors"
	"club-coordination-backend/internal/rbac"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MembershipRepository handles database operations for club memberships
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// liveMembership finds the non-rejected membership of userID in clubID. Soft-deleted rows are excluded by gorm.
func liveMembership(tx *gorm.DB, clubID, userID uuid.UUID, lock bool) (*models.ClubMembership, error) {
	var m models.ClubMembership
	q := tx
	if lock {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	err := q.Where("club_id = ? AND user_id = ? AND status <> ?", clubID, userID, models.MembershipStatusRejected).
		First(&m).Error
	if err != nil {
		return nil, translateError(err, apperrors.ErrMembershipNotFound)
	}
	return &m, nil
}

// actorMembership is liveMembership that treats absence as nil
func actorMembership(tx *gorm.DB, clubID, actorID uuid.UUID) (*models.ClubMembership, error) {
	m, err := liveMembership(tx, clubID, actorID, false)
	if apperrors.IsNotFound(err) {
		return nil, nil
	}
	return m, err
}

// GetLive retrieves the caller's pending or active membership in a club
func (r *MembershipRepository) GetLive(ctx context.Context, clubID, userID uuid.UUID) (*models.ClubMembership, error) {
	return liveMembership(r.db.WithContext(ctx), clubID, userID, false)
}

// GetByClub lists memberships of a club, optionally filtered by status
func (r *MembershipRepository) GetByClub(ctx context.Context, clubID uuid.UUID, status models.MembershipStatus, limit, offset int) ([]models.ClubMembership, int64, error) {
	var memberships []models.ClubMembership
	var total int64

	query := r.db.WithContext(ctx).Model(&models.ClubMembership{}).Where("club_id = ?", clubID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("User").Order("created_at").Limit(limit).Offset(offset).Find(&memberships).Error; err != nil {
		return nil, 0, err
	}

	return memberships, total, nil
}

// Request records a join request. Clubs without approval admit the user immediately.
func (r *MembershipRepository) Request(ctx context.Context, clubID, userID uuid.UUID) (*models.ClubMembership, error) {
	var membership *models.ClubMembership
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		club, err := lockClub(tx, clubID)
		if err != nil {
			return err
		}

		if _, err := liveMembership(tx, clubID, userID, false); err == nil {
			return apperrors.ErrMembershipExists
		} else if !apperrors.IsNotFound(err) {
			return err
		}

		membership = &models.ClubMembership{
			ClubID: clubID,
			UserID: userID,
			Status: models.MembershipStatusPending,
		}
		if !club.RequiresApproval {
			now := time.Now()
			membership.Status = models.MembershipStatusActive
			membership.Role = rbac.DefaultClubRole
			membership.JoinedAt = &now
		}

		if err := tx.Create(membership).Error; err != nil {
			return translateError(err, apperrors.ErrMembershipNotFound)
		}

		if membership.Status == models.MembershipStatusActive {
			return adjustMemberCount(tx, clubID, 1)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return membership, nil
}

// decide loads and locks the club and the target membership, runs the guard and then apply
func (r *MembershipRepository) decide(ctx context.Context, clubID, membershipID, actorID uuid.UUID, guard MembershipGuard, apply func(tx *gorm.DB, target *models.ClubMembership) error) (*models.ClubMembership, error) {
	var target models.ClubMembership
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := lockClub(tx, clubID); err != nil {
			return err
		}

		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&target, "id = ? AND club_id = ?", membershipID, clubID).Error
		if err != nil {
			return translateError(err, apperrors.ErrMembershipNotFound)
		}

		actor, err := actorMembership(tx, clubID, actorID)
		if err != nil {
			return err
		}
		if guard != nil {
			if err := guard(actor, &target); err != nil {
				return err
			}
		}

		if target.Status != models.MembershipStatusPending {
			return apperrors.ErrMembershipAlreadyProcessed
		}
		return apply(tx, &target)
	})
	if err != nil {
		return nil, err
	}
	return &target, nil
}

// Approve activates a pending membership, grants the default role and counts the member
func (r *MembershipRepository) Approve(ctx context.Context, clubID, membershipID, actorID uuid.UUID, guard MembershipGuard) (*models.ClubMembership, error) {
	return r.decide(ctx, clubID, membershipID, actorID, guard, func(tx *gorm.DB, target *models.ClubMembership) error {
		now := time.Now()
		target.Status = models.MembershipStatusActive
		target.Role = rbac.DefaultClubRole
		target.JoinedAt = &now
		target.DecidedBy = &actorID
		target.DecidedAt = &now

		err := tx.Model(target).Updates(map[string]interface{}{
			"status":     target.Status,
			"role":       target.Role,
			"joined_at":  now,
			"decided_by": actorID,
			"decided_at": now,
		}).Error
		if err != nil {
			return translateError(err, apperrors.ErrMembershipNotFound)
		}
		return adjustMemberCount(tx, clubID, 1)
	})
}

// Reject marks a pending membership rejected. The club counter is untouched.
func (r *MembershipRepository) Reject(ctx context.Context, clubID, membershipID, actorID uuid.UUID, guard MembershipGuard) (*models.ClubMembership, error) {
	return r.decide(ctx, clubID, membershipID, actorID, guard, func(tx *gorm.DB, target *models.ClubMembership) error {
		now := time.Now()
		target.Status = models.MembershipStatusRejected
		target.DecidedBy = &actorID
		target.DecidedAt = &now

		err := tx.Model(target).Updates(map[string]interface{}{
			"status":     target.Status,
			"decided_by": actorID,
			"decided_at": now,
		}).Error
		return translateError(err, apperrors.ErrMembershipNotFound)
	})
}

// Withdraw deletes the caller's own pending request
func (r *MembershipRepository) Withdraw(ctx context.Context, clubID, userID uuid.UUID) (*models.ClubMembership, error) {
	var target *models.ClubMembership
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := liveMembership(tx, clubID, userID, true)
		if err != nil {
			return err
		}
		if m.Status != models.MembershipStatusPending {
			return apperrors.ErrMembershipNotPending
		}
		target = m
		return tx.Delete(m).Error
	})
	if err != nil {
		return nil, err
	}
	return target, nil
}

// Remove deletes an active membership and uncounts the member. Used for leave and expel.
func (r *MembershipRepository) Remove(ctx context.Context, clubID, targetUserID, actorID uuid.UUID, guard MembershipGuard) (*models.ClubMembership, error) {
	var target *models.ClubMembership
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := lockClub(tx, clubID); err != nil {
			return err
		}

		m, err := liveMembership(tx, clubID, targetUserID, true)
		if err != nil {
			return err
		}

		actor := m
		if actorID != targetUserID {
			if actor, err = actorMembership(tx, clubID, actorID); err != nil {
				return err
			}
		}
		if guard != nil {
			if err := guard(actor, m); err != nil {
				return err
			}
		}

		if m.Status != models.MembershipStatusActive {
			return apperrors.ErrMembershipNotActive
		}
		if err := tx.Delete(m).Error; err != nil {
			return err
		}
		target = m
		return adjustMemberCount(tx, clubID, -1)
	})
	if err != nil {
		return nil, err
	}
	return target, nil
}

// UpdateRole changes the role of an active member
func (r *MembershipRepository) UpdateRole(ctx context.Context, clubID, targetUserID, actorID uuid.UUID, role rbac.Role, guard MembershipGuard) (*models.ClubMembership, error) {
	var target *models.ClubMembership
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := lockClub(tx, clubID); err != nil {
			return err
		}

		m, err := liveMembership(tx, clubID, targetUserID, true)
		if err != nil {
			return err
		}
		actor, err := actorMembership(tx, clubID, actorID)
		if err != nil {
			return err
		}
		if guard != nil {
			if err := guard(actor, m); err != nil {
				return err
			}
		}

		if m.Status != models.MembershipStatusActive {
			return apperrors.ErrMembershipNotActive
		}
		m.Role = role
		if err := tx.Model(m).Update("role", role).Error; err != nil {
			return translateError(err, apperrors.ErrMembershipNotFound)
		}
		target = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return target, nil
}
