package models

import (
	"time"

	"github.com/google/uuid"
)

// Event is hosted by a club, or by the platform when ClubID is nil
type Event struct {
	BaseModel
	ClubID         *uuid.UUID `json:"club_id,omitempty" gorm:"type:uuid;index"`
	Title          string     `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description    string     `json:"description" gorm:"type:text" validate:"max=5000"`
	StartsAt       *time.Time `json:"starts_at,omitempty"`
	MaxTeamMembers int        `json:"max_team_members" gorm:"not null;check:chk_events_max_team_members,max_team_members >= 1" validate:"min=1"`
	CreatedBy      uuid.UUID  `json:"created_by" gorm:"type:uuid;not null"`

	// Relationships
	Club *Club `json:"-" gorm:"foreignKey:ClubID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Event
func (Event) TableName() string {
	return "events"
}
