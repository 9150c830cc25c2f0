package models

import (
	"github.com/google/uuid"
)

// Group is a named collection of users who exchange messages and may
// organize a single football-style team.
// OwnerID references an externally managed auth user and is immutable
// after creation.
type Group struct {
	BaseModel
	Name    string    `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	OwnerID uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index" validate:"required"`

	// Relationships
	Members  []GroupMember  `json:"members,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
	Messages []GroupMessage `json:"messages,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
	Team     *Team          `json:"team,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Group
func (Group) TableName() string {
	return "groups"
}
