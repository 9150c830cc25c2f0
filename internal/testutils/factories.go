package testutils

import (
	"fmt"
	"time"

	"github.com/basamba1990/smoovebox-v2-sub002/internal/database/models"

	"github.com/google/uuid"
)

// GroupFactory provides methods to create test Group data
type GroupFactory struct{}

// NewGroupFactory creates a new GroupFactory
func NewGroupFactory() *GroupFactory {
	return &GroupFactory{}
}

// Create creates a test Group with default values
func (f *GroupFactory) Create() *models.Group {
	return &models.Group{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:    "Test Group",
		OwnerID: uuid.New(),
	}
}

// WithOwner sets the owner ID for the group
func (f *GroupFactory) WithOwner(ownerID uuid.UUID) *models.Group {
	group := f.Create()
	group.OwnerID = ownerID
	return group
}

// WithName sets a custom name for the group
func (f *GroupFactory) WithName(name string) *models.Group {
	group := f.Create()
	group.Name = name
	return group
}

// MemberFactory provides methods to create test GroupMember data
type MemberFactory struct{}

// NewMemberFactory creates a new MemberFactory
func NewMemberFactory() *MemberFactory {
	return &MemberFactory{}
}

// Create creates a test GroupMember with default values
func (f *MemberFactory) Create() *models.GroupMember {
	return &models.GroupMember{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		GroupID: uuid.New(),
		UserID:  uuid.New(),
	}
}

// InGroup sets the group ID for the member
func (f *MemberFactory) InGroup(groupID uuid.UUID) *models.GroupMember {
	member := f.Create()
	member.GroupID = groupID
	return member
}

// ForUser sets both group and user for the member
func (f *MemberFactory) ForUser(groupID, userID uuid.UUID) *models.GroupMember {
	member := f.Create()
	member.GroupID = groupID
	member.UserID = userID
	return member
}

// MessageFactory provides methods to create test GroupMessage data
type MessageFactory struct {
	counter int
}

// NewMessageFactory creates a new MessageFactory
func NewMessageFactory() *MessageFactory {
	return &MessageFactory{}
}

// Create creates a test GroupMessage with default values
func (f *MessageFactory) Create() *models.GroupMessage {
	f.counter++
	return &models.GroupMessage{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		GroupID:  uuid.New(),
		SenderID: uuid.New(),
		Content:  fmt.Sprintf("test message %d", f.counter),
	}
}

// InGroup sets the group and sender for the message
func (f *MessageFactory) InGroup(groupID, senderID uuid.UUID) *models.GroupMessage {
	message := f.Create()
	message.GroupID = groupID
	message.SenderID = senderID
	return message
}

// At sets the creation time of the message, for unread-count scenarios
func (f *MessageFactory) At(groupID, senderID uuid.UUID, createdAt time.Time) *models.GroupMessage {
	message := f.InGroup(groupID, senderID)
	message.CreatedAt = createdAt
	message.UpdatedAt = createdAt
	return message
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		GroupID:       uuid.New(),
		OwnerID:       uuid.New(),
		Name:          "Test Team",
		StartersCount: 7,
	}
}

// ForGroup sets the group and owner for the team
func (f *TeamFactory) ForGroup(groupID, ownerID uuid.UUID) *models.Team {
	team := f.Create()
	team.GroupID = groupID
	team.OwnerID = ownerID
	return team
}

// WithStarters sets a custom starters count for the team
func (f *TeamFactory) WithStarters(count int) *models.Team {
	team := f.Create()
	team.StartersCount = count
	return team
}

// SlotFactory provides methods to create test TeamSlot data
type SlotFactory struct{}

// NewSlotFactory creates a new SlotFactory
func NewSlotFactory() *SlotFactory {
	return &SlotFactory{}
}

// Create creates a vacant test TeamSlot with default values
func (f *SlotFactory) Create() *models.TeamSlot {
	return &models.TeamSlot{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID: uuid.New(),
		Index:  0,
		Role:   models.SlotRoleGoalkeeper,
		X:      0.5,
		Y:      0.05,
	}
}

// ForTeam sets the team, index and role for the slot
func (f *SlotFactory) ForTeam(teamID uuid.UUID, index int, role models.SlotRole) *models.TeamSlot {
	slot := f.Create()
	slot.TeamID = teamID
	slot.Index = index
	slot.Role = role
	return slot
}

// Occupied sets the occupant of the slot
func (f *SlotFactory) Occupied(teamID uuid.UUID, index int, role models.SlotRole, userID uuid.UUID) *models.TeamSlot {
	slot := f.ForTeam(teamID, index, role)
	slot.UserID = &userID
	return slot
}

// FactorySet provides access to all factories
type FactorySet struct {
	Group   *GroupFactory
	Member  *MemberFactory
	Message *MessageFactory
	Team    *TeamFactory
	Slot    *SlotFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Group:   NewGroupFactory(),
		Member:  NewMemberFactory(),
		Message: NewMessageFactory(),
		Team:    NewTeamFactory(),
		Slot:    NewSlotFactory(),
	}
}

// CreateGroupWithMembers creates a group whose owner plus n extra users are
// members. Returns the group and the extra members' user ids.
func (fs *FactorySet) CreateGroupWithMembers(n int) (*models.Group, []uuid.UUID) {
	group := fs.Group.Create()
	userIDs := make([]uuid.UUID, n)
	for i := range userIDs {
		userIDs[i] = uuid.New()
	}
	return group, userIDs
}
