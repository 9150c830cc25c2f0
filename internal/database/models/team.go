package models

import (
	"github.com/google/uuid"
)

// Team is the single football-style roster of a group. Formation is nil
// until the owner picks one from the catalog; the unique index on
// GroupID enforces at most one team per group.
type Team struct {
	BaseModel
	GroupID       uuid.UUID `json:"group_id" gorm:"type:uuid;not null;uniqueIndex:idx_group_teams_group" validate:"required"`
	OwnerID       uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name          string    `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	StartersCount int       `json:"starters_count" gorm:"not null" validate:"required,min=1,max=11"`
	Formation     *string   `json:"formation,omitempty" gorm:"size:20"`

	// Relationships
	Group Group      `json:"group,omitempty" gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
	Slots []TeamSlot `json:"slots,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "group_teams"
}
