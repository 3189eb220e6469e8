package repository

import (
	"context"
	"time"

	"club-coordination-backend/internal/database/models"
	apperrors "club-coordination-backend/internal/errors"
	"club-coordination-backend/internal/logger"
	"club-coordination-backend/internal/rbac"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ClubRepository handles database operations for clubs
type ClubRepository struct {
	db *gorm.DB
}

// NewClubRepository creates a new club repository
func NewClubRepository(db *gorm.DB) *ClubRepository {
	return &ClubRepository{db: db}
}

// lockClub reads a club row with FOR UPDATE inside tx
func lockClub(tx *gorm.DB, id uuid.UUID) (*models.Club, error) {
	var club models.Club
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&club, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err, apperrors.ErrClubNotFound)
	}
	return &club, nil
}

func adjustMemberCount(tx *gorm.DB, clubID uuid.UUID, delta int) error {
	err := tx.Model(&models.Club{}).
		Where("id = ?", clubID).
		UpdateColumn("member_count", gorm.Expr("member_count + ?", delta)).Error
	return translateError(err, apperrors.ErrClubNotFound)
}

// CreateWithChairman creates the club and an active chairman membership for its creator
func (r *ClubRepository) CreateWithChairman(ctx context.Context, club *models.Club, chairmanID uuid.UUID) (*models.ClubMembership, error) {
	var membership *models.ClubMembership
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		club.CreatedBy = chairmanID
		club.MemberCount = 1
		if err := tx.Create(club).Error; err != nil {
			return translateError(err, apperrors.ErrClubNotFound)
		}

		now := time.Now()
		membership = &models.ClubMembership{
			ClubID:    club.ID,
			UserID:    chairmanID,
			Status:    models.MembershipStatusActive,
			Role:      rbac.LeaderRole,
			JoinedAt:  &now,
			DecidedBy: &chairmanID,
			DecidedAt: &now,
		}
		return translateError(tx.Create(membership).Error, apperrors.ErrMembershipNotFound)
	})
	if err != nil {
		return nil, err
	}
	return membership, nil
}

// GetByID retrieves a club by ID
func (r *ClubRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Club, error) {
	var club models.Club
	err := r.db.WithContext(ctx).First(&club, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err, apperrors.ErrClubNotFound)
	}
	return &club, nil
}

// GetAll retrieves all clubs with pagination
func (r *ClubRepository) GetAll(ctx context.Context, limit, offset int) ([]models.Club, int64, error) {
	var clubs []models.Club
	var total int64

	db := r.db.WithContext(ctx)
	if err := db.Model(&models.Club{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Order("name").Limit(limit).Offset(offset).Find(&clubs).Error; err != nil {
		return nil, 0, err
	}

	return clubs, total, nil
}

// ReconcileMemberCounts repairs clubs whose member_count drifted from their active memberships.
// Each repair locks the club row and recounts, so it serializes with approve and leave.
func (r *ClubRepository) ReconcileMemberCounts(ctx context.Context) (int, error) {
	var drifted []uuid.UUID
	err := r.db.WithContext(ctx).Raw(`
		SELECT c.id FROM clubs c
		LEFT JOIN club_memberships m
			ON m.club_id = c.id AND m.status = ? AND m.deleted_at IS NULL
		GROUP BY c.id, c.member_count
		HAVING c.member_count <> COUNT(m.id)`, models.MembershipStatusActive).
		Scan(&drifted).Error
	if err != nil {
		return 0, err
	}

	repaired := 0
	for _, id := range drifted {
		err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			club, err := lockClub(tx, id)
			if err != nil {
				return err
			}
			var active int64
			if err := tx.Model(&models.ClubMembership{}).
				Where("club_id = ? AND status = ?", id, models.MembershipStatusActive).
				Count(&active).Error; err != nil {
				return err
			}
			if int(active) == club.MemberCount {
				return nil
			}
			logger.WithContext(ctx).WithFields(map[string]interface{}{
				"club_id": id,
				"stored":  club.MemberCount,
				"actual":  active,
			}).Warn("repairing club member count")
			repaired++
			return tx.Model(&models.Club{}).Where("id = ?", id).Update("member_count", active).Error
		})
		if err != nil && !apperrors.IsNotFound(err) {
			return repaired, err
		}
	}
	return repaired, nil
}
