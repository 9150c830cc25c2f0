package models

import (
	"github.com/google/uuid"
)

// GroupMember links an auth user to a group. A user appears at most once
// per group; the owner gets a membership row at group creation.
type GroupMember struct {
	BaseModel
	GroupID uuid.UUID `json:"group_id" gorm:"type:uuid;not null;uniqueIndex:idx_group_members_group_user;index" validate:"required"`
	UserID  uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_group_members_group_user;index" validate:"required"`

	// Relationships
	Group Group `json:"group,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GroupMember
func (GroupMember) TableName() string {
	return "group_members"
}
