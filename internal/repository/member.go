package repository

import (
	"context"

	"github.com/basamba1990/smoovebox-v2-sub002/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GroupMemberRepository handles database operations for group memberships
type GroupMemberRepository struct {
	db *gorm.DB
}

// NewGroupMemberRepository creates a new group member repository
func NewGroupMemberRepository(db *gorm.DB) *GroupMemberRepository {
	return &GroupMemberRepository{db: db}
}

// CreateBatch inserts one membership row per entry. The unique index on
// (group_id, user_id) rejects duplicates the caller failed to filter.
func (r *GroupMemberRepository) CreateBatch(ctx context.Context, members []models.GroupMember) error {
	if len(members) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&members).Error
}

// DeleteAndClearSlots removes a membership and, in the same transaction,
// vacates any slot the user held in the group's team.
func (r *GroupMemberRepository) DeleteAndClearSlots(ctx context.Context, groupID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.GroupMember{}, "group_id = ? AND user_id = ?", groupID, userID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&models.TeamSlot{}).
			Where("user_id = ? AND team_id IN (?)",
				userID,
				tx.Model(&models.Team{}).Select("id").Where("group_id = ?", groupID),
			).
			Update("user_id", nil).Error
	})
}

// Exists reports whether the user is a current member of the group
func (r *GroupMemberRepository) Exists(ctx context.Context, groupID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.GroupMember{}).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error
	return count > 0, err
}

// GetByGroupID retrieves all membership rows for a group
func (r *GroupMemberRepository) GetByGroupID(ctx context.Context, groupID uuid.UUID) ([]models.GroupMember, error) {
	var members []models.GroupMember
	err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("created_at ASC").
		Find(&members).Error
	return members, err
}

// ExistingUserIDs returns the subset of userIDs that already have a
// membership row in the group.
func (r *GroupMemberRepository) ExistingUserIDs(ctx context.Context, groupID uuid.UUID, userIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var existing []uuid.UUID
	err := r.db.WithContext(ctx).Model(&models.GroupMember{}).
		Where("group_id = ? AND user_id IN ?", groupID, userIDs).
		Pluck("user_id", &existing).Error
	return existing, err
}
