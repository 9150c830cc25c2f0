package models

import (
	"github.com/google/uuid"
)

// GroupMessage is a chat message inside a group. Messages are immutable
// once created; there is no edit or delete path.
type GroupMessage struct {
	BaseModel
	GroupID  uuid.UUID `json:"group_id" gorm:"type:uuid;not null;index" validate:"required"`
	SenderID uuid.UUID `json:"sender_id" gorm:"type:uuid;not null;index" validate:"required"`
	Content  string    `json:"content" gorm:"type:text;not null" validate:"required,min=1"`

	// Relationships
	Group Group `json:"group,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GroupMessage
func (GroupMessage) TableName() string {
	return "group_messages"
}
