package repository

import (
	"context"
	"time"

	"github.com/basamba1990/smoovebox-v2-sub002/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GroupReadRepository handles database operations for per-user read state
type GroupReadRepository struct {
	db *gorm.DB
}

// NewGroupReadRepository creates a new group read repository
func NewGroupReadRepository(db *gorm.DB) *GroupReadRepository {
	return &GroupReadRepository{db: db}
}

// Upsert records the user's last read timestamp for a group, keyed on
// (group_id, user_id).
func (r *GroupReadRepository) Upsert(ctx context.Context, groupID, userID uuid.UUID, lastReadAt time.Time) error {
	read := models.GroupRead{
		GroupID:    groupID,
		UserID:     userID,
		LastReadAt: lastReadAt,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "group_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"last_read_at", "updated_at"}),
	}).Create(&read).Error
}

// Get retrieves the read state for a (group, user) pair
func (r *GroupReadRepository) Get(ctx context.Context, groupID, userID uuid.UUID) (*models.GroupRead, error) {
	var read models.GroupRead
	err := r.db.WithContext(ctx).
		First(&read, "group_id = ? AND user_id = ?", groupID, userID).Error
	if err != nil {
		return nil, err
	}
	return &read, nil
}

// UnreadCounts returns, for every group the user belongs to, the number of
// messages newer than the user's last read timestamp. Groups the user never
// opened count all their messages. Groups with zero unread produce no row.
func (r *GroupReadRepository) UnreadCounts(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]int64, error) {
	type row struct {
		GroupID uuid.UUID `gorm:"column:group_id"`
		Unread  int64     `gorm:"column:unread"`
	}

	var rows []row
	err := r.db.WithContext(ctx).Raw(`
		SELECT gm.group_id, COUNT(msg.id) AS unread
		FROM group_members gm
		JOIN group_messages msg ON msg.group_id = gm.group_id
		LEFT JOIN group_reads gr ON gr.group_id = gm.group_id AND gr.user_id = gm.user_id
		WHERE gm.user_id = ?
		  AND (gr.last_read_at IS NULL OR msg.created_at > gr.last_read_at)
		GROUP BY gm.group_id
	`, userID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, r := range rows {
		counts[r.GroupID] = r.Unread
	}
	return counts, nil
}
