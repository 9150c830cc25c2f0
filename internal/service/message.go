package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/basamba1990/smoovebox-v2-sub002/internal/database/models"
	apperrors "github.com/basamba1990/smoovebox-v2-sub002/internal/errors"
	"github.com/basamba1990/smoovebox-v2-sub002/internal/logger"
	"github.com/basamba1990/smoovebox-v2-sub002/internal/realtime"
	"github.com/basamba1990/smoovebox-v2-sub002/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageService handles business logic for group messages
type MessageService struct {
	repo       repository.GroupMessageRepositoryInterface
	groupRepo  repository.GroupRepositoryInterface
	memberRepo repository.GroupMemberRepositoryInterface
	relay      realtime.Publisher
	validator  *validator.Validate
	log        *logger.Logger
}

// NewMessageService creates a new message service
func NewMessageService(
	repo repository.GroupMessageRepositoryInterface,
	groupRepo repository.GroupRepositoryInterface,
	memberRepo repository.GroupMemberRepositoryInterface,
	relay realtime.Publisher,
	validator *validator.Validate,
) *MessageService {
	return &MessageService{
		repo:       repo,
		groupRepo:  groupRepo,
		memberRepo: memberRepo,
		relay:      relay,
		validator:  validator,
		log:        logger.New().WithField("component", "messages"),
	}
}

// SendMessageRequest represents the request to post a message
type SendMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

// MessageResponse represents one group message
type MessageResponse struct {
	ID        uuid.UUID `json:"id"`
	GroupID   uuid.UUID `json:"group_id"`
	SenderID  uuid.UUID `json:"sender_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Send posts a message to a group. The sender must be a current member.
// A message-inserted event is relayed after the write commits.
func (s *MessageService) Send(ctx context.Context, groupID, senderID uuid.UUID, req *SendMessageRequest) (*MessageResponse, error) {
	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" {
		return nil, apperrors.ErrEmptyMessageContent
	}

	if _, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	isMember, err := s.memberRepo.Exists(ctx, groupID, senderID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if !isMember {
		return nil, apperrors.ErrNotMember
	}

	message := &models.GroupMessage{
		GroupID:  groupID,
		SenderID: senderID,
		Content:  req.Content,
	}
	if err := s.repo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	// The write already committed; a relay hiccup only delays refresh on
	// other clients.
	if err := s.relay.Publish(ctx, realtime.Event{Topic: realtime.TopicGroupMessages, GroupID: groupID}); err != nil {
		s.log.WithError(err).WithField("group_id", groupID).Warn("failed to relay message event")
	}

	return s.toResponse(message), nil
}

// List returns the full message history of a group, oldest first. Only
// members may read.
func (s *MessageService) List(ctx context.Context, groupID, requesterID uuid.UUID) ([]MessageResponse, error) {
	if _, err := s.groupRepo.GetByID(ctx, groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	isMember, err := s.memberRepo.Exists(ctx, groupID, requesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if !isMember {
		return nil, apperrors.ErrNotMember
	}

	messages, err := s.repo.GetByGroupID(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	responses := make([]MessageResponse, len(messages))
	for i, message := range messages {
		responses[i] = *s.toResponse(&message)
	}
	return responses, nil
}

func (s *MessageService) toResponse(message *models.GroupMessage) *MessageResponse {
	return &MessageResponse{
		ID:        message.ID,
		GroupID:   message.GroupID,
		SenderID:  message.SenderID,
		Content:   message.Content,
		CreatedAt: message.CreatedAt,
	}
}
