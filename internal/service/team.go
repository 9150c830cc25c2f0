package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/basamba1990/smoovebox-v2-sub002/internal/database/models"
	apperrors "github.com/basamba1990/smoovebox-v2-sub002/internal/errors"
	"github.com/basamba1990/smoovebox-v2-sub002/internal/formation"
	"github.com/basamba1990/smoovebox-v2-sub002/internal/logger"
	"github.com/basamba1990/smoovebox-v2-sub002/internal/realtime"
	"github.com/basamba1990/smoovebox-v2-sub002/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamService handles business logic for the single team of a group, its
// formation and its slot assignments
type TeamService struct {
	repo       repository.TeamRepositoryInterface
	slotRepo   repository.TeamSlotRepositoryInterface
	groupRepo  repository.GroupRepositoryInterface
	memberRepo repository.GroupMemberRepositoryInterface
	relay      realtime.Publisher
	validator  *validator.Validate
	log        *logger.Logger
}

// NewTeamService creates a new team service
func NewTeamService(
	repo repository.TeamRepositoryInterface,
	slotRepo repository.TeamSlotRepositoryInterface,
	groupRepo repository.GroupRepositoryInterface,
	memberRepo repository.GroupMemberRepositoryInterface,
	relay realtime.Publisher,
	validator *validator.Validate,
) *TeamService {
	return &TeamService{
		repo:       repo,
		slotRepo:   slotRepo,
		groupRepo:  groupRepo,
		memberRepo: memberRepo,
		relay:      relay,
		validator:  validator,
		log:        logger.New().WithField("component", "teams"),
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name          string `json:"name" validate:"required,max=100"`
	StartersCount int    `json:"starters_count" validate:"required"`
}

// SetFormationRequest represents the request to choose a formation
type SetFormationRequest struct {
	Formation string `json:"formation" validate:"required,max=20"`
}

// AssignSlotRequest represents the request to (un)assign a slot. A nil
// UserID vacates the slot.
type AssignSlotRequest struct {
	UserID *uuid.UUID `json:"user_id"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID            uuid.UUID `json:"id"`
	GroupID       uuid.UUID `json:"group_id"`
	OwnerID       uuid.UUID `json:"owner_id"`
	Name          string    `json:"name"`
	StartersCount int       `json:"starters_count"`
	Formation     *string   `json:"formation,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SlotResponse represents one formation slot of a team
type SlotResponse struct {
	ID     uuid.UUID       `json:"id"`
	TeamID uuid.UUID       `json:"team_id"`
	Index  int             `json:"index"`
	Role   models.SlotRole `json:"role"`
	X      float64         `json:"x"`
	Y      float64         `json:"y"`
	UserID *uuid.UUID      `json:"user_id,omitempty"`
}

// TeamWithSlotsResponse represents a team together with its ordered slots
type TeamWithSlotsResponse struct {
	Team  TeamResponse   `json:"team"`
	Slots []SlotResponse `json:"slots"`
}

// Create creates the team of a group. Only the group owner may create it,
// and a group holds at most one team.
func (s *TeamService) Create(ctx context.Context, groupID, requesterID uuid.UUID, req *CreateTeamRequest) (*TeamResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return nil, apperrors.ErrEmptyTeamName
	}
	if req.StartersCount < 1 || req.StartersCount > 11 {
		return nil, apperrors.ErrInvalidStartersCount
	}
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

	existing, err := s.repo.GetByGroupID(ctx, groupID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing team: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrTeamExists
	}

	team := &models.Team{
		GroupID:       groupID,
		OwnerID:       group.OwnerID,
		Name:          req.Name,
		StartersCount: req.StartersCount,
	}
	if err := s.repo.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return s.toResponse(team), nil
}

// GetForGroup returns the group's team and its slots; only members may look
func (s *TeamService) GetForGroup(ctx context.Context, groupID, requesterID uuid.UUID) (*TeamWithSlotsResponse, error) {
	if _, err := s.getGroup(ctx, groupID); err != nil {
		return nil, err
	}

	isMember, err := s.memberRepo.Exists(ctx, groupID, requesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}
	if !isMember {
		return nil, apperrors.ErrNotMember
	}

	team, err := s.repo.GetByGroupID(ctx, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return s.withSlots(ctx, team.ID)
}

// SetFormation chooses a formation for the team and rebuilds its slot set
// from the catalog in a single transaction. All slots come back vacant:
// changing formation always resets the lineup.
func (s *TeamService) SetFormation(ctx context.Context, teamID, requesterID uuid.UUID, req *SetFormationRequest) (*TeamWithSlotsResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.getTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team.OwnerID != requesterID {
		return nil, apperrors.ErrNotTeamOwner
	}

	layout, ok := formation.Lookup(team.StartersCount, req.Formation)
	if !ok {
		return nil, apperrors.ErrUnknownFormation
	}

	slots := make([]models.TeamSlot, len(layout))
	for i, def := range layout {
		slots[i] = models.TeamSlot{
			TeamID: teamID,
			Index:  def.Index,
			Role:   def.Role,
			X:      def.X,
			Y:      def.Y,
		}
	}

	if err := s.repo.ReplaceSlots(ctx, teamID, req.Formation, slots); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to set formation: %w", err)
	}

	s.publishSlotEvent(ctx, team.GroupID, teamID)
	return s.withSlots(ctx, teamID)
}

// AssignSlot puts a group member into a formation slot, or vacates the
// slot when no user is given. Owner-only; a member can hold at most one
// slot per team.
func (s *TeamService) AssignSlot(ctx context.Context, slotID, requesterID uuid.UUID, req *AssignSlotRequest) (*SlotResponse, error) {
	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSlotNotFound
		}
		return nil, fmt.Errorf("failed to get slot: %w", err)
	}

	team, err := s.getTeam(ctx, slot.TeamID)
	if err != nil {
		return nil, err
	}
	if team.OwnerID != requesterID {
		return nil, apperrors.ErrNotTeamOwner
	}

	if req.UserID != nil {
		userID := *req.UserID

		isMember, err := s.memberRepo.Exists(ctx, team.GroupID, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to check membership: %w", err)
		}
		if !isMember {
			return nil, apperrors.ErrUserNotGroupMember
		}

		// Re-assigning the same user to their current slot is a no-op
		if slot.UserID == nil || *slot.UserID != userID {
			occupied, err := s.slotRepo.UserOccupiesSlot(ctx, team.ID, userID)
			if err != nil {
				return nil, fmt.Errorf("failed to check slot occupancy: %w", err)
			}
			if occupied {
				return nil, apperrors.ErrUserAlreadySlotted
			}
		}
	}

	if err := s.slotRepo.SetUser(ctx, slotID, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSlotNotFound
		}
		return nil, fmt.Errorf("failed to assign slot: %w", err)
	}

	s.publishSlotEvent(ctx, team.GroupID, team.ID)

	updated, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated slot: %w", err)
	}
	resp := s.toSlotResponse(updated)
	return &resp, nil
}

// Delete removes the team; its slots cascade. Owner-only.
func (s *TeamService) Delete(ctx context.Context, teamID, requesterID uuid.UUID) error {
	team, err := s.getTeam(ctx, teamID)
	if err != nil {
		return err
	}
	if team.OwnerID != requesterID {
		return apperrors.ErrNotTeamOwner
	}

	if err := s.repo.Delete(ctx, teamID); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}

	s.publishSlotEvent(ctx, team.GroupID, teamID)
	return nil
}

// FormationsForCount exposes the formation catalog for a starter count
func (s *TeamService) FormationsForCount(count int) map[string][]formation.Slot {
	return formation.ForCount(count)
}

func (s *TeamService) getGroup(ctx context.Context, groupID uuid.UUID) (*models.Group, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	return group, nil
}

func (s *TeamService) getTeam(ctx context.Context, teamID uuid.UUID) (*models.Team, error) {
	team, err := s.repo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

func (s *TeamService) withSlots(ctx context.Context, teamID uuid.UUID) (*TeamWithSlotsResponse, error) {
	team, err := s.repo.GetWithSlots(ctx, teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team with slots: %w", err)
	}

	slots := make([]SlotResponse, len(team.Slots))
	for i, slot := range team.Slots {
		slots[i] = s.toSlotResponse(&slot)
	}
	return &TeamWithSlotsResponse{
		Team:  *s.toResponse(team),
		Slots: slots,
	}, nil
}

func (s *TeamService) publishSlotEvent(ctx context.Context, groupID, teamID uuid.UUID) {
	event := realtime.Event{Topic: realtime.TopicTeamSlots, GroupID: groupID, TeamID: teamID}
	if err := s.relay.Publish(ctx, event); err != nil {
		s.log.WithError(err).WithField("team_id", teamID).Warn("failed to relay slot event")
	}
}

func (s *TeamService) toResponse(team *models.Team) *TeamResponse {
	return &TeamResponse{
		ID:            team.ID,
		GroupID:       team.GroupID,
		OwnerID:       team.OwnerID,
		Name:          team.Name,
		StartersCount: team.StartersCount,
		Formation:     team.Formation,
		CreatedAt:     team.CreatedAt,
		UpdatedAt:     team.UpdatedAt,
	}
}

func (s *TeamService) toSlotResponse(slot *models.TeamSlot) SlotResponse {
	return SlotResponse{
		ID:     slot.ID,
		TeamID: slot.TeamID,
		Index:  slot.Index,
		Role:   slot.Role,
		X:      slot.X,
		Y:      slot.Y,
		UserID: slot.UserID,
	}
}
