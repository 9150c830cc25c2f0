package repository

import (
	"context"
	"time"

	"github.com/basamba1990/smoovebox-v2-sub002/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// GroupRepositoryInterface defines the interface for group repository operations
type GroupRepositoryInterface interface {
	CreateWithOwner(ctx context.Context, group *models.Group) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Group, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Group, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// GroupMemberRepositoryInterface defines the interface for membership repository operations
type GroupMemberRepositoryInterface interface {
	CreateBatch(ctx context.Context, members []models.GroupMember) error
	DeleteAndClearSlots(ctx context.Context, groupID, userID uuid.UUID) error
	Exists(ctx context.Context, groupID, userID uuid.UUID) (bool, error)
	GetByGroupID(ctx context.Context, groupID uuid.UUID) ([]models.GroupMember, error)
	ExistingUserIDs(ctx context.Context, groupID uuid.UUID, userIDs []uuid.UUID) ([]uuid.UUID, error)
}

// GroupMessageRepositoryInterface defines the interface for message repository operations
type GroupMessageRepositoryInterface interface {
	Create(ctx context.Context, message *models.GroupMessage) error
	GetByGroupID(ctx context.Context, groupID uuid.UUID) ([]models.GroupMessage, error)
	CountByGroupID(ctx context.Context, groupID uuid.UUID) (int64, error)
}

// GroupReadRepositoryInterface defines the interface for read-state repository operations
type GroupReadRepositoryInterface interface {
	Upsert(ctx context.Context, groupID, userID uuid.UUID, lastReadAt time.Time) error
	Get(ctx context.Context, groupID, userID uuid.UUID) (*models.GroupRead, error)
	UnreadCounts(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]int64, error)
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error)
	GetByGroupID(ctx context.Context, groupID uuid.UUID) (*models.Team, error)
	GetWithSlots(ctx context.Context, id uuid.UUID) (*models.Team, error)
	ReplaceSlots(ctx context.Context, teamID uuid.UUID, formationName string, slots []models.TeamSlot) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TeamSlotRepositoryInterface defines the interface for slot repository operations
type TeamSlotRepositoryInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.TeamSlot, error)
	GetByTeamID(ctx context.Context, teamID uuid.UUID) ([]models.TeamSlot, error)
	SetUser(ctx context.Context, slotID uuid.UUID, userID *uuid.UUID) error
	UserOccupiesSlot(ctx context.Context, teamID, userID uuid.UUID) (bool, error)
}
