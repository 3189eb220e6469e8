package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Team is a capacity-limited group formed for one event.
// The roster rows in Members are authoritative; CurrentMembers and IsFull mirror them.
type Team struct {
	BaseModel
	EventID        uuid.UUID `json:"event_id" gorm:"type:uuid;not null;uniqueIndex:idx_teams_event_name"`
	LeaderID       uuid.UUID `json:"leader_id" gorm:"type:uuid;not null;index"`
	Name           string    `json:"name" gorm:"not null;size:100;uniqueIndex:idx_teams_event_name" validate:"required,min=1,max=100"`
	Description    string    `json:"description" gorm:"size:500" validate:"max=500"`
	CurrentMembers int       `json:"current_members" gorm:"not null;check:chk_teams_capacity,current_members <= max_members"`
	MaxMembers     int       `json:"max_members" gorm:"not null;check:chk_teams_max_members,max_members >= 1"`
	IsFull         bool      `json:"is_full" gorm:"not null"`

	// Relationships
	Event   *Event       `json:"-" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
	Members []TeamMember `json:"members,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// HasMember reports whether userID is on the loaded roster
func (t *Team) HasMember(userID uuid.UUID) bool {
	for _, m := range t.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

// SetCount updates the counter and the full flag together
func (t *Team) SetCount(n int) {
	t.CurrentMembers = n
	t.IsFull = n >= t.MaxMembers
}

// TeamMember is one roster row. (EventID, UserID) is unique: one team per user per event.
type TeamMember struct {
	BaseModel
	TeamID   uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index"`
	EventID  uuid.UUID `json:"event_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_members_event_user"`
	UserID   uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_members_event_user"`
	JoinedAt time.Time `json:"joined_at"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}

// TeamJoinRequest is an application to join a team
type TeamJoinRequest struct {
	BaseModel
	TeamID          uuid.UUID         `json:"team_id" gorm:"type:uuid;not null;index"`
	EventID         uuid.UUID         `json:"event_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_join_requests_live,where:status = 'pending' OR status = 'accepted'"` // Partial unique index: one live request per user and event
	UserID          uuid.UUID         `json:"user_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_team_join_requests_live,where:status = 'pending' OR status = 'accepted'"`
	Status          JoinRequestStatus `json:"status" gorm:"type:varchar(20);not null"`
	ApplicationData json.RawMessage   `json:"application_data,omitempty" gorm:"type:jsonb"`
	DecidedAt       *time.Time        `json:"decided_at,omitempty"`
}

// TableName returns the table name for TeamJoinRequest
func (TeamJoinRequest) TableName() string {
	return "team_join_requests"
}

// TeamMessage is one entry of a team's discussion
type TeamMessage struct {
	BaseModel
	TeamID   uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index"`
	AuthorID uuid.UUID `json:"author_id" gorm:"type:uuid;not null"`
	Body     string    `json:"body" gorm:"type:text;not null" validate:"required,min=1,max=2000"`

	Team *Team `json:"-" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TeamMessage
func (TeamMessage) TableName() string {
	return "team_messages"
}
