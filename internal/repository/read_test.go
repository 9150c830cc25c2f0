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

// GroupReadRepositoryTestSuite tests the GroupReadRepository
type GroupReadRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *GroupReadRepository
	groupRepo     *GroupRepository
	messageRepo   *GroupMessageRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *GroupReadRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewGroupReadRepository(suite.baseTestSuite.DB)
	suite.groupRepo = NewGroupRepository(suite.baseTestSuite.DB)
	suite.messageRepo = NewGroupMessageRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *GroupReadRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *GroupReadRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *GroupReadRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *GroupReadRepositoryTestSuite) createGroup() *models.Group {
	group := suite.factories.Group.Create()
	suite.Require().NoError(suite.groupRepo.CreateWithOwner(suite.ctx, group))
	return group
}

func (suite *GroupReadRepositoryTestSuite) postMessage(group *models.Group, at time.Time) {
	msg := suite.factories.Message.At(group.ID, group.OwnerID, at)
	suite.Require().NoError(suite.messageRepo.Create(suite.ctx, msg))
}

// TestUpsertInsertsThenUpdates tests that a second upsert moves the watermark
func (suite *GroupReadRepositoryTestSuite) TestUpsertInsertsThenUpdates() {
	group := suite.createGroup()
	first := time.Now().Add(-time.Hour).UTC().Truncate(time.Microsecond)
	second := time.Now().UTC().Truncate(time.Microsecond)

	suite.NoError(suite.repo.Upsert(suite.ctx, group.ID, group.OwnerID, first))

	read, err := suite.repo.Get(suite.ctx, group.ID, group.OwnerID)
	suite.NoError(err)
	suite.True(read.LastReadAt.Equal(first))

	suite.NoError(suite.repo.Upsert(suite.ctx, group.ID, group.OwnerID, second))

	read, err = suite.repo.Get(suite.ctx, group.ID, group.OwnerID)
	suite.NoError(err)
	suite.True(read.LastReadAt.Equal(second))
}

// TestGetNotFound tests reading a watermark that was never set
func (suite *GroupReadRepositoryTestSuite) TestGetNotFound() {
	group := suite.createGroup()

	read, err := suite.repo.Get(suite.ctx, group.ID, group.OwnerID)

	suite.Nil(read)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestUnreadCountsNeverRead tests that an untouched group counts every message
func (suite *GroupReadRepositoryTestSuite) TestUnreadCountsNeverRead() {
	group := suite.createGroup()
	reader := uuid.New()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(&models.GroupMember{
		GroupID: group.ID,
		UserID:  reader,
	}).Error)

	now := time.Now()
	suite.postMessage(group, now.Add(-3*time.Minute))
	suite.postMessage(group, now.Add(-2*time.Minute))
	suite.postMessage(group, now.Add(-time.Minute))

	counts, err := suite.repo.UnreadCounts(suite.ctx, reader)
	suite.NoError(err)
	suite.Equal(int64(3), counts[group.ID])

	// Opening the group catches the reader up
	suite.NoError(suite.repo.Upsert(suite.ctx, group.ID, reader, time.Now()))

	counts, err = suite.repo.UnreadCounts(suite.ctx, reader)
	suite.NoError(err)
	suite.NotContains(counts, group.ID)
}

// TestUnreadCountsWatermark tests counting only messages newer than the watermark
func (suite *GroupReadRepositoryTestSuite) TestUnreadCountsWatermark() {
	group := suite.createGroup()
	now := time.Now()
	suite.postMessage(group, now.Add(-3*time.Minute))
	suite.postMessage(group, now.Add(-2*time.Minute))
	suite.NoError(suite.repo.Upsert(suite.ctx, group.ID, group.OwnerID, now.Add(-90*time.Second)))
	suite.postMessage(group, now.Add(-time.Minute))

	counts, err := suite.repo.UnreadCounts(suite.ctx, group.OwnerID)

	suite.NoError(err)
	suite.Equal(int64(1), counts[group.ID])
}

// TestUnreadCountsOmitsFullyReadGroups tests the sparse result shape
func (suite *GroupReadRepositoryTestSuite) TestUnreadCountsOmitsFullyReadGroups() {
	group := suite.createGroup()
	suite.postMessage(group, time.Now().Add(-time.Minute))
	suite.NoError(suite.repo.Upsert(suite.ctx, group.ID, group.OwnerID, time.Now()))

	counts, err := suite.repo.UnreadCounts(suite.ctx, group.OwnerID)

	suite.NoError(err)
	suite.NotContains(counts, group.ID)
}

// TestUnreadCountsScopedToMembership tests that non-member groups never appear
func (suite *GroupReadRepositoryTestSuite) TestUnreadCountsScopedToMembership() {
	mine := suite.createGroup()
	other := suite.createGroup()
	suite.postMessage(mine, time.Now().Add(-time.Minute))
	suite.postMessage(other, time.Now().Add(-time.Minute))

	counts, err := suite.repo.UnreadCounts(suite.ctx, mine.OwnerID)

	suite.NoError(err)
	suite.Equal(int64(1), counts[mine.ID])
	suite.NotContains(counts, other.ID)
}

// TestGroupReadRepositoryTestSuite runs the test suite
func TestGroupReadRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GroupReadRepositoryTestSuite))
}
