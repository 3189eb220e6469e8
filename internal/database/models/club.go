package models

import (
	"time"

	"club-coordination-backend/internal/rbac"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Club is a student organization. MemberCount mirrors the number of active memberships.
type Club struct {
	BaseModel
	Name             string    `json:"name" gorm:"uniqueIndex:idx_clubs_name;not null;size:100" validate:"required,min=1,max=100"`
	Description      string    `json:"description" gorm:"size:500" validate:"max=500"`
	RequiresApproval bool      `json:"requires_approval" gorm:"not null"`
	MemberCount      int       `json:"member_count" gorm:"not null;default:0;check:chk_clubs_member_count,member_count >= 0"`
	CreatedBy        uuid.UUID `json:"created_by" gorm:"type:uuid;not null"`
}

// TableName returns the table name for Club
func (Club) TableName() string {
	return "clubs"
}

// ClubMembership links a user to a club. Role is only set while the membership is active.
type ClubMembership struct {
	BaseModel
	ClubID    uuid.UUID        `json:"club_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_club_memberships_live,where:status <> 'rejected' AND deleted_at IS NULL"` // Partial unique index: one live membership per user and club
	UserID    uuid.UUID        `json:"user_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_club_memberships_live,where:status <> 'rejected' AND deleted_at IS NULL"`
	Status    MembershipStatus `json:"status" gorm:"type:varchar(20);not null"`
	Role      rbac.Role        `json:"role,omitempty" gorm:"type:varchar(30)"`
	JoinedAt  *time.Time       `json:"joined_at,omitempty"`
	DecidedBy *uuid.UUID       `json:"decided_by,omitempty" gorm:"type:uuid"`
	DecidedAt *time.Time       `json:"decided_at,omitempty"`
	DeletedAt gorm.DeletedAt   `json:"-" gorm:"index"`

	// Relationships
	Club *Club `json:"club,omitempty" gorm:"foreignKey:ClubID;constraint:OnDelete:CASCADE"`
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for ClubMembership
func (ClubMembership) TableName() string {
	return "club_memberships"
}

// ScopeRole is the role the membership confers in its club. Only active memberships confer one.
func (m *ClubMembership) ScopeRole() rbac.Role {
	if m == nil || m.Status != MembershipStatusActive {
		return rbac.NoRole
	}
	return m.Role
}
