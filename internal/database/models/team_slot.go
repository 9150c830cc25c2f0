package models

import (
	"github.com/google/uuid"
)

// SlotRole is the positional role of a formation slot
type SlotRole string

const (
	SlotRoleGoalkeeper SlotRole = "GK"
	SlotRoleDefender   SlotRole = "DEF"
	SlotRoleMidfielder SlotRole = "MID"
	SlotRoleAttacker   SlotRole = "ATT"
)

// TeamSlot is one position of a team's chosen formation. X and Y are
// normalized field coordinates in [0,1] with y=0 at the own goal line.
// The partial unique index keeps a user from occupying two slots of the
// same team at once.
type TeamSlot struct {
	BaseModel
	TeamID uuid.UUID  `json:"team_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_team_slots_team_user,where:user_id IS NOT NULL" validate:"required"`
	Index  int        `json:"index" gorm:"not null" validate:"min=0"`
	Role   SlotRole   `json:"role" gorm:"type:varchar(10);not null" validate:"required,oneof=GK DEF MID ATT"`
	X      float64    `json:"x" gorm:"not null" validate:"min=0,max=1"`
	Y      float64    `json:"y" gorm:"not null" validate:"min=0,max=1"`
	UserID *uuid.UUID `json:"user_id,omitempty" gorm:"type:uuid;uniqueIndex:idx_team_slots_team_user,where:user_id IS NOT NULL"`

	// Relationships
	Team Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TeamSlot
func (TeamSlot) TableName() string {
	return "group_team_slots"
}
