//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/basamba1990/smoovebox-v2-sub002/internal/database/models"
	"github.com/basamba1990/smoovebox-v2-sub002/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// GroupRepositoryTestSuite tests the GroupRepository
type GroupRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *GroupRepository
	memberRepo    *GroupMemberRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *GroupRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewGroupRepository(suite.baseTestSuite.DB)
	suite.memberRepo = NewGroupMemberRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *GroupRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *GroupRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *GroupRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateWithOwner tests that group creation also creates the owner's membership
func (suite *GroupRepositoryTestSuite) TestCreateWithOwner() {
	group := suite.factories.Group.Create()

	err := suite.repo.CreateWithOwner(suite.ctx, group)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, group.ID)

	isMember, err := suite.memberRepo.Exists(suite.ctx, group.ID, group.OwnerID)
	suite.NoError(err)
	suite.True(isMember)
}

// TestGetByID tests retrieving a group by ID
func (suite *GroupRepositoryTestSuite) TestGetByID() {
	group := suite.factories.Group.WithName("Lions")
	err := suite.repo.CreateWithOwner(suite.ctx, group)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(suite.ctx, group.ID)

	suite.NoError(err)
	suite.Equal(group.ID, retrieved.ID)
	suite.Equal("Lions", retrieved.Name)
	suite.Equal(group.OwnerID, retrieved.OwnerID)
}

// TestGetByIDNotFound tests retrieving a non-existent group
func (suite *GroupRepositoryTestSuite) TestGetByIDNotFound() {
	retrieved, err := suite.repo.GetByID(suite.ctx, uuid.New())

	suite.Nil(retrieved)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByUserIDNewestFirst tests listing a user's groups by creation time
func (suite *GroupRepositoryTestSuite) TestGetByUserIDNewestFirst() {
	userID := uuid.New()

	older := suite.factories.Group.WithOwner(userID)
	older.Name = "Older"
	older.CreatedAt = time.Now().Add(-time.Hour)
	suite.NoError(suite.repo.CreateWithOwner(suite.ctx, older))

	newer := suite.factories.Group.WithOwner(userID)
	newer.Name = "Newer"
	suite.NoError(suite.repo.CreateWithOwner(suite.ctx, newer))

	// A group the user has nothing to do with
	other := suite.factories.Group.Create()
	suite.NoError(suite.repo.CreateWithOwner(suite.ctx, other))

	groups, err := suite.repo.GetByUserID(suite.ctx, userID)

	suite.NoError(err)
	suite.Require().Len(groups, 2)
	suite.Equal("Newer", groups[0].Name)
	suite.Equal("Older", groups[1].Name)
}

// TestGetByUserIDIncludesNonOwnedGroups tests that plain memberships count
func (suite *GroupRepositoryTestSuite) TestGetByUserIDIncludesNonOwnedGroups() {
	userID := uuid.New()
	group := suite.factories.Group.Create()
	suite.NoError(suite.repo.CreateWithOwner(suite.ctx, group))
	suite.NoError(suite.memberRepo.CreateBatch(suite.ctx, []models.GroupMember{
		{GroupID: group.ID, UserID: userID},
	}))

	groups, err := suite.repo.GetByUserID(suite.ctx, userID)

	suite.NoError(err)
	suite.Require().Len(groups, 1)
	suite.Equal(group.ID, groups[0].ID)
}

// TestDeleteCascades tests that deleting a group removes its memberships
func (suite *GroupRepositoryTestSuite) TestDeleteCascades() {
	group := suite.factories.Group.Create()
	suite.NoError(suite.repo.CreateWithOwner(suite.ctx, group))

	err := suite.repo.Delete(suite.ctx, group.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(suite.ctx, group.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	isMember, err := suite.memberRepo.Exists(suite.ctx, group.ID, group.OwnerID)
	suite.NoError(err)
	suite.False(isMember)
}

// TestGroupRepositoryTestSuite runs the test suite
func TestGroupRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GroupRepositoryTestSuite))
}
