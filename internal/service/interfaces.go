package service

import (
	"context"
	"time"

	"github.com/basamba1990/smoovebox-v2-sub002/internal/formation"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// GroupServiceInterface defines the interface for group operations
type GroupServiceInterface interface {
	Create(ctx context.Context, ownerID uuid.UUID, req *CreateGroupRequest) (*GroupResponse, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]GroupResponse, error)
	Members(ctx context.Context, groupID, requesterID uuid.UUID) ([]MemberResponse, error)
	AddMembers(ctx context.Context, groupID, requesterID uuid.UUID, req *AddMembersRequest) ([]MemberResponse, error)
	RemoveMember(ctx context.Context, groupID, requesterID, targetUserID uuid.UUID) error
	IsMember(ctx context.Context, groupID, userID uuid.UUID) (bool, error)
}

// MessageServiceInterface defines the interface for group messaging
type MessageServiceInterface interface {
	Send(ctx context.Context, groupID, senderID uuid.UUID, req *SendMessageRequest) (*MessageResponse, error)
	List(ctx context.Context, groupID, requesterID uuid.UUID) ([]MessageResponse, error)
}

// UnreadServiceInterface defines the interface for read tracking
type UnreadServiceInterface interface {
	MarkRead(ctx context.Context, groupID, userID uuid.UUID, at time.Time) error
	Counts(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]int64, error)
}

// TeamServiceInterface defines the interface for team and formation operations
type TeamServiceInterface interface {
	Create(ctx context.Context, groupID, requesterID uuid.UUID, req *CreateTeamRequest) (*TeamResponse, error)
	GetForGroup(ctx context.Context, groupID, requesterID uuid.UUID) (*TeamWithSlotsResponse, error)
	SetFormation(ctx context.Context, teamID, requesterID uuid.UUID, req *SetFormationRequest) (*TeamWithSlotsResponse, error)
	AssignSlot(ctx context.Context, slotID, requesterID uuid.UUID, req *AssignSlotRequest) (*SlotResponse, error)
	Delete(ctx context.Context, teamID, requesterID uuid.UUID) error
	FormationsForCount(count int) map[string][]formation.Slot
}
