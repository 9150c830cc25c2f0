package repository

import (
	"context"

	"github.com/basamba1990/smoovebox-v2-sub002/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GroupMessageRepository handles database operations for group messages
type GroupMessageRepository struct {
	db *gorm.DB
}

// NewGroupMessageRepository creates a new group message repository
func NewGroupMessageRepository(db *gorm.DB) *GroupMessageRepository {
	return &GroupMessageRepository{db: db}
}

// Create inserts a new message
func (r *GroupMessageRepository) Create(ctx context.Context, message *models.GroupMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// GetByGroupID retrieves the full message history of a group, oldest first
func (r *GroupMessageRepository) GetByGroupID(ctx context.Context, groupID uuid.UUID) ([]models.GroupMessage, error) {
	var messages []models.GroupMessage
	err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

// CountByGroupID returns the total number of messages in a group
func (r *GroupMessageRepository) CountByGroupID(ctx context.Context, groupID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.GroupMessage{}).
		Where("group_id = ?", groupID).
		Count(&count).Error
	return count, err
}
