package repository

import (
	"context"

	"github.com/basamba1990/smoovebox-v2-sub002/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamSlotRepository handles database operations for team slots
type TeamSlotRepository struct {
	db *gorm.DB
}

// NewTeamSlotRepository creates a new team slot repository
func NewTeamSlotRepository(db *gorm.DB) *TeamSlotRepository {
	return &TeamSlotRepository{db: db}
}

// GetByID retrieves a slot by ID
func (r *TeamSlotRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.TeamSlot, error) {
	var slot models.TeamSlot
	err := r.db.WithContext(ctx).First(&slot, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

// GetByTeamID retrieves the slots of a team ordered by index
func (r *TeamSlotRepository) GetByTeamID(ctx context.Context, teamID uuid.UUID) ([]models.TeamSlot, error) {
	var slots []models.TeamSlot
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order(`"index" ASC`).
		Find(&slots).Error
	return slots, err
}

// SetUser assigns a user to a slot, or vacates it when userID is nil
func (r *TeamSlotRepository) SetUser(ctx context.Context, slotID uuid.UUID, userID *uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.TeamSlot{}).
		Where("id = ?", slotID).
		Update("user_id", userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UserOccupiesSlot reports whether the user already holds a slot in the team
func (r *TeamSlotRepository) UserOccupiesSlot(ctx context.Context, teamID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.TeamSlot{}).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Count(&count).Error
	return count > 0, err
}
