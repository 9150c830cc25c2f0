package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/basamba1990/smoovebox-v2-sub002/internal/database/models"
	apperrors "github.com/basamba1990/smoovebox-v2-sub002/internal/errors"
	"github.com/basamba1990/smoovebox-v2-sub002/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GroupService handles business logic for groups and membership
type GroupService struct {
	repo       repository.GroupRepositoryInterface
	memberRepo repository.GroupMemberRepositoryInterface
	validator  *validator.Validate
}

// NewGroupService creates a new group service
func NewGroupService(repo repository.GroupRepositoryInterface, memberRepo repository.GroupMemberRepositoryInterface, validator *validator.Validate) *GroupService {
	return &GroupService{
		repo:       repo,
		memberRepo: memberRepo,
		validator:  validator,
	}
}

// CreateGroupRequest represents the request to create a group
type CreateGroupRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// AddMembersRequest represents the request to add members to a group
type AddMembersRequest struct {
	UserIDs []uuid.UUID `json:"user_ids" validate:"dive,required"`
}

// GroupResponse represents the response for group operations
type GroupResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	OwnerID   uuid.UUID `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MemberResponse represents one group membership
type MemberResponse struct {
	ID       uuid.UUID `json:"id"`
	GroupID  uuid.UUID `json:"group_id"`
	UserID   uuid.UUID `json:"user_id"`
	JoinedAt time.Time `json:"joined_at"`
}

// Create creates a group and its owner membership row
func (s *GroupService) Create(ctx context.Context, ownerID uuid.UUID, req *CreateGroupRequest) (*GroupResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, apperrors.ErrEmptyGroupName
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if ownerID == uuid.Nil {
		return nil, apperrors.NewValidationError("owner_id", "owner id is required")
	}

	group := &models.Group{
		Name:    req.Name,
		OwnerID: ownerID,
	}
	if err := s.repo.CreateWithOwner(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	return s.toResponse(group), nil
}

// ListMine returns all groups the user belongs to, newest-created first
func (s *GroupService) ListMine(ctx context.Context, userID uuid.UUID) ([]GroupResponse, error) {
	groups, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	responses := make([]GroupResponse, len(groups))
	for i, group := range groups {
		responses[i] = *s.toResponse(&group)
	}
	return responses, nil
}

// Members lists the membership rows of a group; only members may look
func (s *GroupService) Members(ctx context.Context, groupID, requesterID uuid.UUID) ([]MemberResponse, error) {
	if _, err := s.getGroup(ctx, groupID); err != nil {
		return nil, err
	}
	if err := s.requireMember(ctx, groupID, requesterID); err != nil {
		return nil, err
	}

	members, err := s.memberRepo.GetByGroupID(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	responses := make([]MemberResponse, len(members))
	for i, member := range members {
		responses[i] = MemberResponse{
			ID:       member.ID,
			GroupID:  member.GroupID,
			UserID:   member.UserID,
			JoinedAt: member.CreatedAt,
		}
	}
	return responses, nil
}

// AddMembers adds users to a group. Owner-only; ids already present are
// skipped; an empty list is a no-op.
func (s *GroupService) AddMembers(ctx context.Context, groupID, requesterID uuid.UUID, req *AddMembersRequest) ([]MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	group, err := s.getGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group.OwnerID != requesterID {
		return nil, apperrors.ErrNotGroupOwner
	}
	if len(req.UserIDs) == 0 {
		return []MemberResponse{}, nil
	}

	existing, err := s.memberRepo.ExistingUserIDs(ctx, groupID, req.UserIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing members: %w", err)
	}
	present := make(map[uuid.UUID]bool, len(existing))
	for _, id := range existing {
		present[id] = true
	}

	var members []models.GroupMember
	seen := make(map[uuid.UUID]bool, len(req.UserIDs))
	for _, userID := range req.UserIDs {
		if present[userID] || seen[userID] {
			continue
		}
		seen[userID] = true
		members = append(members, models.GroupMember{GroupID: groupID, UserID: userID})
	}

	if err := s.memberRepo.CreateBatch(ctx, members); err != nil {
		return nil, fmt.Errorf("failed to add members: %w", err)
	}

	responses := make([]MemberResponse, len(members))
	for i, member := range members {
		responses[i] = MemberResponse{
			ID:       member.ID,
			GroupID:  member.GroupID,
			UserID:   member.UserID,
			JoinedAt: member.CreatedAt,
		}
	}
	return responses, nil
}

// RemoveMember removes a user from a group. The owner may remove anyone
// but themself; any other member may remove themself (self-leave). The
// removed user's team slot assignments are vacated in the same transaction.
func (s *GroupService) RemoveMember(ctx context.Context, groupID, requesterID, targetUserID uuid.UUID) error {
	group, err := s.getGroup(ctx, groupID)
	if err != nil {
		return err
	}

	if targetUserID == group.OwnerID {
		return apperrors.ErrOwnerCannotLeave
	}
	if requesterID != group.OwnerID && requesterID != targetUserID {
		return apperrors.ErrNotGroupOwner
	}

	if err := s.memberRepo.DeleteAndClearSlots(ctx, groupID, targetUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMemberNotFound
		}
		return fmt.Errorf("failed to remove member: %w", err)
	}
	return nil
}

// IsMember reports whether the user currently belongs to the group
func (s *GroupService) IsMember(ctx context.Context, groupID, userID uuid.UUID) (bool, error) {
	return s.memberRepo.Exists(ctx, groupID, userID)
}

func (s *GroupService) getGroup(ctx context.Context, groupID uuid.UUID) (*models.Group, error) {
	group, err := s.repo.GetByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	return group, nil
}

func (s *GroupService) requireMember(ctx context.Context, groupID, userID uuid.UUID) error {
	ok, err := s.memberRepo.Exists(ctx, groupID, userID)
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if !ok {
		return apperrors.ErrNotMember
	}
	return nil
}

func (s *GroupService) toResponse(group *models.Group) *GroupResponse {
	return &GroupResponse{
		ID:        group.ID,
		Name:      group.Name,
		OwnerID:   group.OwnerID,
		CreatedAt: group.CreatedAt,
		UpdatedAt: group.UpdatedAt,
	}
}
