package models

import (
	"time"

	"github.com/google/uuid"
)

// GroupRead tracks per-user read progress in a group, keyed on
// (group_id, user_id). LastReadAt only ever moves forward; it feeds the
// unread counters and is never displayed directly.
type GroupRead struct {
	GroupID    uuid.UUID `json:"group_id" gorm:"type:uuid;primaryKey" validate:"required"`
	UserID     uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey" validate:"required"`
	LastReadAt time.Time `json:"last_read_at" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relationships
	Group Group `json:"group,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GroupRead
func (GroupRead) TableName() string {
	return "group_reads"
}
