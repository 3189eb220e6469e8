package repository

import (
	"context"

	"club-coordination-backend/internal/database/models"
	apperrors "club-coordination-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TeamMessageRepository handles database operations for team discussions
type TeamMessageRepository struct {
	db *gorm.DB
}

// NewTeamMessageRepository creates a new team message repository
func NewTeamMessageRepository(db *gorm.DB) *TeamMessageRepository {
	return &TeamMessageRepository{db: db}
}

// Create stores a message. The team row is share-locked so a concurrent disband
// either sees the message in its cascade or makes the insert fail with not found.
func (r *TeamMessageRepository) Create(ctx context.Context, msg *models.TeamMessage) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var team models.Team
		err := tx.Clauses(clause.Locking{Strength: "SHARE"}).Select("id").First(&team, "id = ?", msg.TeamID).Error
		if err != nil {
			return translateError(err, apperrors.ErrTeamNotFound)
		}

		var onRoster int64
		if err := tx.Model(&models.TeamMember{}).
			Where("team_id = ? AND user_id = ?", msg.TeamID, msg.AuthorID).
			Count(&onRoster).Error; err != nil {
			return err
		}
		if onRoster == 0 {
			return apperrors.ErrNotTeamMember
		}

		return translateError(tx.Create(msg).Error, apperrors.ErrTeamNotFound)
	})
}

// GetByTeam lists a team's messages, oldest first
func (r *TeamMessageRepository) GetByTeam(ctx context.Context, teamID uuid.UUID, limit, offset int) ([]models.TeamMessage, int64, error) {
	var messages []models.TeamMessage
	var total int64

	query := r.db.WithContext(ctx).Model(&models.TeamMessage{}).Where("team_id = ?", teamID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("created_at").Limit(limit).Offset(offset).Find(&messages).Error; err != nil {
		return nil, 0, err
	}

	return messages, total, nil
}
