//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"github.com/basamba1990/smoovebox-v2-sub002/internal/database/models"
	"github.com/basamba1990/smoovebox-v2-sub002/internal/formation"
	"github.com/basamba1990/smoovebox-v2-sub002/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamRepositoryTestSuite tests the TeamRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamRepository
	groupRepo     *GroupRepository
	slotRepo      *TeamSlotRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.groupRepo = NewGroupRepository(suite.baseTestSuite.DB)
	suite.slotRepo = NewTeamSlotRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TeamRepositoryTestSuite) createGroup() *models.Group {
	group := suite.factories.Group.Create()
	suite.Require().NoError(suite.groupRepo.CreateWithOwner(suite.ctx, group))
	return group
}

func (suite *TeamRepositoryTestSuite) createTeam(group *models.Group) *models.Team {
	team := suite.factories.Team.ForGroup(group.ID, group.OwnerID)
	suite.Require().NoError(suite.repo.Create(suite.ctx, team))
	return team
}

// TestCreate tests team creation
func (suite *TeamRepositoryTestSuite) TestCreate() {
	group := suite.createGroup()
	team := suite.factories.Team.ForGroup(group.ID, group.OwnerID)

	err := suite.repo.Create(suite.ctx, team)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, team.ID)
	suite.Nil(team.Formation)
}

// TestCreateSecondTeamViolatesUniqueIndex tests the one-team-per-group constraint
func (suite *TeamRepositoryTestSuite) TestCreateSecondTeamViolatesUniqueIndex() {
	group := suite.createGroup()
	suite.createTeam(group)

	second := suite.factories.Team.ForGroup(group.ID, group.OwnerID)
	err := suite.repo.Create(suite.ctx, second)

	suite.Error(err)
}

// TestGetByGroupID tests team lookup by group
func (suite *TeamRepositoryTestSuite) TestGetByGroupID() {
	group := suite.createGroup()
	team := suite.createTeam(group)

	retrieved, err := suite.repo.GetByGroupID(suite.ctx, group.ID)

	suite.NoError(err)
	suite.Equal(team.ID, retrieved.ID)

	_, err = suite.repo.GetByGroupID(suite.ctx, uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetWithSlotsOrderedByIndex tests that preloaded slots come back in position order
func (suite *TeamRepositoryTestSuite) TestGetWithSlotsOrderedByIndex() {
	group := suite.createGroup()
	team := suite.createTeam(group)
	for _, idx := range []int{2, 0, 1} {
		slot := suite.factories.Slot.ForTeam(team.ID, idx, models.SlotRoleMidfielder)
		suite.Require().NoError(suite.baseTestSuite.DB.Create(slot).Error)
	}

	retrieved, err := suite.repo.GetWithSlots(suite.ctx, team.ID)

	suite.NoError(err)
	suite.Require().Len(retrieved.Slots, 3)
	for i, slot := range retrieved.Slots {
		suite.Equal(i, slot.Index)
	}
}

// TestReplaceSlots tests swapping the slot set when the formation changes
func (suite *TeamRepositoryTestSuite) TestReplaceSlots() {
	group := suite.createGroup()
	team := suite.createTeam(group)
	occupied := suite.factories.Slot.Occupied(team.ID, 0, models.SlotRoleGoalkeeper, group.OwnerID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(occupied).Error)

	fresh := []models.TeamSlot{
		*suite.factories.Slot.ForTeam(team.ID, 0, models.SlotRoleGoalkeeper),
		*suite.factories.Slot.ForTeam(team.ID, 1, models.SlotRoleDefender),
		*suite.factories.Slot.ForTeam(team.ID, 2, models.SlotRoleAttacker),
	}
	err := suite.repo.ReplaceSlots(suite.ctx, team.ID, "1-1", fresh)

	suite.NoError(err)

	retrieved, err := suite.repo.GetWithSlots(suite.ctx, team.ID)
	suite.NoError(err)
	suite.Require().NotNil(retrieved.Formation)
	suite.Equal("1-1", *retrieved.Formation)
	suite.Require().Len(retrieved.Slots, 3)
	for _, slot := range retrieved.Slots {
		suite.Nil(slot.UserID, "new slots start vacant")
		suite.NotEqual(occupied.ID, slot.ID)
	}
}

// TestReplaceSlotsTeamNotFound tests replacing slots of a missing team
func (suite *TeamRepositoryTestSuite) TestReplaceSlotsTeamNotFound() {
	err := suite.repo.ReplaceSlots(suite.ctx, uuid.New(), "1-1", nil)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDeleteCascadesToSlots tests that removing a team removes its slots
func (suite *TeamRepositoryTestSuite) TestDeleteCascadesToSlots() {
	group := suite.createGroup()
	team := suite.createTeam(group)
	slot := suite.factories.Slot.ForTeam(team.ID, 0, models.SlotRoleGoalkeeper)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(slot).Error)

	err := suite.repo.Delete(suite.ctx, team.ID)

	suite.NoError(err)

	_, err = suite.repo.GetByID(suite.ctx, team.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	_, err = suite.slotRepo.GetByID(suite.ctx, slot.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestTeamLifecycle walks a team from creation through a formation switch:
// slots are laid out per the catalog, an assignment sticks, and changing
// formation replaces every slot vacant.
func (suite *TeamRepositoryTestSuite) TestTeamLifecycle() {
	group := suite.factories.Group.WithName("Lions")
	suite.Require().NoError(suite.groupRepo.CreateWithOwner(suite.ctx, group))

	team := suite.factories.Team.ForGroup(group.ID, group.OwnerID)
	team.Name = "Lions FC"
	team.StartersCount = 7
	suite.Require().NoError(suite.repo.Create(suite.ctx, team))

	layout, ok := formation.Lookup(7, "2-3-1")
	suite.Require().True(ok)
	slots := make([]models.TeamSlot, len(layout))
	for i, s := range layout {
		slots[i] = models.TeamSlot{TeamID: team.ID, Index: i, Role: s.Role, X: s.X, Y: s.Y}
	}
	suite.Require().NoError(suite.repo.ReplaceSlots(suite.ctx, team.ID, "2-3-1", slots))

	retrieved, err := suite.repo.GetWithSlots(suite.ctx, team.ID)
	suite.Require().NoError(err)
	suite.Require().Len(retrieved.Slots, 7)
	wantRoles := []models.SlotRole{
		models.SlotRoleGoalkeeper,
		models.SlotRoleDefender, models.SlotRoleDefender,
		models.SlotRoleMidfielder, models.SlotRoleMidfielder, models.SlotRoleMidfielder,
		models.SlotRoleAttacker,
	}
	for i, slot := range retrieved.Slots {
		suite.Equal(wantRoles[i], slot.Role)
		suite.Nil(slot.UserID)
	}

	// Put the owner in goal
	keeper := retrieved.Slots[0]
	suite.Require().NoError(suite.slotRepo.SetUser(suite.ctx, keeper.ID, &group.OwnerID))
	refreshed, err := suite.slotRepo.GetByID(suite.ctx, keeper.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(refreshed.UserID)
	suite.Equal(group.OwnerID, *refreshed.UserID)

	// Switching formation drops the assignment
	layout, ok = formation.Lookup(7, "3-2-1")
	suite.Require().True(ok)
	slots = make([]models.TeamSlot, len(layout))
	for i, s := range layout {
		slots[i] = models.TeamSlot{TeamID: team.ID, Index: i, Role: s.Role, X: s.X, Y: s.Y}
	}
	suite.Require().NoError(suite.repo.ReplaceSlots(suite.ctx, team.ID, "3-2-1", slots))

	retrieved, err = suite.repo.GetWithSlots(suite.ctx, team.ID)
	suite.Require().NoError(err)
	suite.Require().Len(retrieved.Slots, 7)
	suite.Equal(models.SlotRoleGoalkeeper, retrieved.Slots[0].Role)
	for _, slot := range retrieved.Slots {
		suite.Nil(slot.UserID)
	}
}

// TestTeamRepositoryTestSuite runs the test suite
func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
