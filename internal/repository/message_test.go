//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/basamba1990/smoovebox-v2-sub002/internal/database/models"
	"github.com/basamba1990/smoovebox-v2-sub002/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// GroupMessageRepositoryTestSuite tests the GroupMessageRepository
type GroupMessageRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *GroupMessageRepository
	groupRepo     *GroupRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *GroupMessageRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewGroupMessageRepository(suite.baseTestSuite.DB)
	suite.groupRepo = NewGroupRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *GroupMessageRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *GroupMessageRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *GroupMessageRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *GroupMessageRepositoryTestSuite) createGroup() *models.Group {
	group := suite.factories.Group.Create()
	suite.Require().NoError(suite.groupRepo.CreateWithOwner(suite.ctx, group))
	return group
}

// TestCreate tests persisting a message
func (suite *GroupMessageRepositoryTestSuite) TestCreate() {
	group := suite.createGroup()
	message := suite.factories.Message.InGroup(group.ID, group.OwnerID)

	err := suite.repo.Create(suite.ctx, message)

	suite.NoError(err)
	suite.NotZero(message.ID)
	suite.False(message.CreatedAt.IsZero())
}

// TestGetByGroupIDOldestFirst tests chronological message ordering
func (suite *GroupMessageRepositoryTestSuite) TestGetByGroupIDOldestFirst() {
	group := suite.createGroup()
	now := time.Now()

	second := suite.factories.Message.At(group.ID, group.OwnerID, now.Add(-time.Minute))
	second.Content = "second"
	first := suite.factories.Message.At(group.ID, group.OwnerID, now.Add(-2*time.Minute))
	first.Content = "first"
	third := suite.factories.Message.At(group.ID, group.OwnerID, now)
	third.Content = "third"
	for _, m := range []*models.GroupMessage{second, first, third} {
		suite.Require().NoError(suite.repo.Create(suite.ctx, m))
	}

	messages, err := suite.repo.GetByGroupID(suite.ctx, group.ID)

	suite.NoError(err)
	suite.Require().Len(messages, 3)
	suite.Equal("first", messages[0].Content)
	suite.Equal("second", messages[1].Content)
	suite.Equal("third", messages[2].Content)
}

// TestGetByGroupIDScopedToGroup tests that other groups' messages are excluded
func (suite *GroupMessageRepositoryTestSuite) TestGetByGroupIDScopedToGroup() {
	group := suite.createGroup()
	other := suite.createGroup()
	suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factories.Message.InGroup(group.ID, group.OwnerID)))
	suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factories.Message.InGroup(other.ID, other.OwnerID)))

	messages, err := suite.repo.GetByGroupID(suite.ctx, group.ID)

	suite.NoError(err)
	suite.Require().Len(messages, 1)
	suite.Equal(group.ID, messages[0].GroupID)
}

// TestCountByGroupID tests the message counter
func (suite *GroupMessageRepositoryTestSuite) TestCountByGroupID() {
	group := suite.createGroup()
	for i := 0; i < 3; i++ {
		suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factories.Message.InGroup(group.ID, group.OwnerID)))
	}

	count, err := suite.repo.CountByGroupID(suite.ctx, group.ID)

	suite.NoError(err)
	suite.Equal(int64(3), count)
}

// TestGroupMessageRepositoryTestSuite runs the test suite
func TestGroupMessageRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GroupMessageRepositoryTestSuite))
}
