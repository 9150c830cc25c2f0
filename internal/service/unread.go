package service

import (
	"context"
	"fmt"
	"time"

	apperrors "github.com/basamba1990/smoovebox-v2-sub002/internal/errors"
	"github.com/basamba1990/smoovebox-v2-sub002/internal/repository"

	"github.com/google/uuid"
)

// UnreadService derives per-group unread counters from message timestamps
// and per-user read state
type UnreadService struct {
	repo       repository.GroupReadRepositoryInterface
	memberRepo repository.GroupMemberRepositoryInterface
}

// NewUnreadService creates a new unread service
func NewUnreadService(repo repository.GroupReadRepositoryInterface, memberRepo repository.GroupMemberRepositoryInterface) *UnreadService {
	return &UnreadService{
		repo:       repo,
		memberRepo: memberRepo,
	}
}

// MarkRead records that the user has seen the group up to the given
// moment. A zero time means now.
func (s *UnreadService) MarkRead(ctx context.Context, groupID, userID uuid.UUID, at time.Time) error {
	isMember, err := s.memberRepo.Exists(ctx, groupID, userID)
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if !isMember {
		return apperrors.ErrNotMember
	}

	if at.IsZero() {
		at = time.Now().UTC()
	}
	if err := s.repo.Upsert(ctx, groupID, userID, at); err != nil {
		return fmt.Errorf("failed to mark group read: %w", err)
	}
	return nil
}

// Counts returns the user's unread message count per group. Groups with
// zero unread messages are omitted.
func (s *UnreadService) Counts(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]int64, error) {
	counts, err := s.repo.UnreadCounts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute unread counts: %w", err)
	}
	return counts, nil
}
