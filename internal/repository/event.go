package repository

import (
	"context"

	"club-coordination-backend/internal/database/models"
	apperrors "club-coordination-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventRepository handles database operations for events
type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create creates a new event
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	return translateError(r.db.WithContext(ctx).Create(event).Error, apperrors.ErrEventNotFound)
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	var event models.Event
	err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err, apperrors.ErrEventNotFound)
	}
	return &event, nil
}

// GetByClub retrieves the events hosted by a club with pagination
func (r *EventRepository) GetByClub(ctx context.Context, clubID uuid.UUID, limit, offset int) ([]models.Event, int64, error) {
	var events []models.Event
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Event{}).Where("club_id = ?", clubID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("starts_at NULLS LAST, created_at").Limit(limit).Offset(offset).Find(&events).Error; err != nil {
		return nil, 0, err
	}

	return events, total, nil
}
