package repository

import (
	"context"

	"github.com/basamba1990/smoovebox-v2-sub002/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByGroupID retrieves the team of a group
func (r *TeamRepository) GetByGroupID(ctx context.Context, groupID uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).First(&team, "group_id = ?", groupID).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetWithSlots retrieves a team with its slots ordered by index
func (r *TeamRepository) GetWithSlots(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).
		Preload("Slots", func(db *gorm.DB) *gorm.DB {
			return db.Order(`group_team_slots."index" ASC`)
		}).
		First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// ReplaceSlots updates the team's formation and swaps its entire slot set
// in one transaction, so a concurrent assignment can never land between the
// delete and the insert.
func (r *TeamRepository) ReplaceSlots(ctx context.Context, teamID uuid.UUID, formationName string, slots []models.TeamSlot) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Team{}).
			Where("id = ?", teamID).
			Update("formation", formationName)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Delete(&models.TeamSlot{}, "team_id = ?", teamID).Error; err != nil {
			return err
		}
		if len(slots) == 0 {
			return nil
		}
		return tx.Create(&slots).Error
	})
}

// Delete deletes a team; its slots cascade
func (r *TeamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Team{}, "id = ?", id).Error
}
