package models

import (
	"club-coordination-backend/internal/rbac"
)

// User is a platform account, provisioned on first authenticated contact
type User struct {
	BaseModel
	Email       string    `json:"email" gorm:"uniqueIndex:idx_users_email;not null;size:255" validate:"required,email,max=255"`
	DisplayName string    `json:"display_name" gorm:"size:100" validate:"max=100"`
	GlobalRole  rbac.Role `json:"global_role" gorm:"type:varchar(30);not null;default:'member'"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
