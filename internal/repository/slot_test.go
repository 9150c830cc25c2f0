//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"github.com/basamba1990/smoovebox-v2-sub002/internal/database/models"
	"github.com/basamba1990/smoovebox-v2-sub002/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamSlotRepositoryTestSuite tests the TeamSlotRepository
type TeamSlotRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamSlotRepository
	groupRepo     *GroupRepository
	teamRepo      *TeamRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *TeamSlotRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTeamSlotRepository(suite.baseTestSuite.DB)
	suite.groupRepo = NewGroupRepository(suite.baseTestSuite.DB)
	suite.teamRepo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamSlotRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamSlotRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamSlotRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TeamSlotRepositoryTestSuite) createTeam() *models.Team {
	group := suite.factories.Group.Create()
	suite.Require().NoError(suite.groupRepo.CreateWithOwner(suite.ctx, group))
	team := suite.factories.Team.ForGroup(group.ID, group.OwnerID)
	suite.Require().NoError(suite.teamRepo.Create(suite.ctx, team))
	return team
}

func (suite *TeamSlotRepositoryTestSuite) createSlot(teamID uuid.UUID, index int) *models.TeamSlot {
	slot := suite.factories.Slot.ForTeam(teamID, index, models.SlotRoleMidfielder)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(slot).Error)
	return slot
}

// TestGetByTeamIDOrderedByIndex tests slot listing order
func (suite *TeamSlotRepositoryTestSuite) TestGetByTeamIDOrderedByIndex() {
	team := suite.createTeam()
	for _, idx := range []int{1, 2, 0} {
		suite.createSlot(team.ID, idx)
	}

	slots, err := suite.repo.GetByTeamID(suite.ctx, team.ID)

	suite.NoError(err)
	suite.Require().Len(slots, 3)
	for i, slot := range slots {
		suite.Equal(i, slot.Index)
	}
}

// TestSetUserAssignsAndVacates tests assignment round trip
func (suite *TeamSlotRepositoryTestSuite) TestSetUserAssignsAndVacates() {
	team := suite.createTeam()
	slot := suite.createSlot(team.ID, 0)
	userID := uuid.New()

	suite.NoError(suite.repo.SetUser(suite.ctx, slot.ID, &userID))

	refreshed, err := suite.repo.GetByID(suite.ctx, slot.ID)
	suite.NoError(err)
	suite.Require().NotNil(refreshed.UserID)
	suite.Equal(userID, *refreshed.UserID)

	suite.NoError(suite.repo.SetUser(suite.ctx, slot.ID, nil))

	refreshed, err = suite.repo.GetByID(suite.ctx, slot.ID)
	suite.NoError(err)
	suite.Nil(refreshed.UserID)
}

// TestSetUserSlotNotFound tests assigning a missing slot
func (suite *TeamSlotRepositoryTestSuite) TestSetUserSlotNotFound() {
	userID := uuid.New()

	err := suite.repo.SetUser(suite.ctx, uuid.New(), &userID)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestSetUserDuplicateViolatesPartialUniqueIndex tests one slot per user per team
func (suite *TeamSlotRepositoryTestSuite) TestSetUserDuplicateViolatesPartialUniqueIndex() {
	team := suite.createTeam()
	first := suite.createSlot(team.ID, 0)
	second := suite.createSlot(team.ID, 1)
	userID := uuid.New()

	suite.NoError(suite.repo.SetUser(suite.ctx, first.ID, &userID))

	err := suite.repo.SetUser(suite.ctx, second.ID, &userID)

	suite.Error(err)
}

// TestVacantSlotsDoNotCollide tests that the unique index ignores NULL user ids
func (suite *TeamSlotRepositoryTestSuite) TestVacantSlotsDoNotCollide() {
	team := suite.createTeam()
	suite.createSlot(team.ID, 0)
	suite.createSlot(team.ID, 1)

	slots, err := suite.repo.GetByTeamID(suite.ctx, team.ID)

	suite.NoError(err)
	suite.Len(slots, 2)
}

// TestUserOccupiesSlot tests occupancy lookup
func (suite *TeamSlotRepositoryTestSuite) TestUserOccupiesSlot() {
	team := suite.createTeam()
	slot := suite.createSlot(team.ID, 0)
	userID := uuid.New()
	suite.Require().NoError(suite.repo.SetUser(suite.ctx, slot.ID, &userID))

	occupies, err := suite.repo.UserOccupiesSlot(suite.ctx, team.ID, userID)
	suite.NoError(err)
	suite.True(occupies)

	occupies, err = suite.repo.UserOccupiesSlot(suite.ctx, team.ID, uuid.New())
	suite.NoError(err)
	suite.False(occupies)
}

// TestTeamSlotRepositoryTestSuite runs the test suite
func TestTeamSlotRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamSlotRepositoryTestSuite))
}
