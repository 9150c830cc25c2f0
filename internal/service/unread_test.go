package service_test

import (
	"context"
	"testing"
	"time"

	apperrors "github.com/basamba1990/smoovebox-v2-sub002/internal/errors"
	"github.com/basamba1990/smoovebox-v2-sub002/internal/mocks"
	"github.com/basamba1990/smoovebox-v2-sub002/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// UnreadServiceTestSuite defines the test suite for UnreadService
type UnreadServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockReadRepo   *mocks.MockGroupReadRepositoryInterface
	mockMemberRepo *mocks.MockGroupMemberRepositoryInterface
	unreadService  *service.UnreadService
	ctx            context.Context
}

// SetupTest sets up the test suite
func (suite *UnreadServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockReadRepo = mocks.NewMockGroupReadRepositoryInterface(suite.ctrl)
	suite.mockMemberRepo = mocks.NewMockGroupMemberRepositoryInterface(suite.ctrl)
	suite.ctx = context.Background()

	suite.unreadService = service.NewUnreadService(suite.mockReadRepo, suite.mockMemberRepo)
}

// TearDownTest cleans up after each test
func (suite *UnreadServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UnreadServiceTestSuite) TestMarkReadWithTimestamp() {
	groupID := uuid.New()
	userID := uuid.New()
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	suite.mockMemberRepo.EXPECT().Exists(suite.ctx, groupID, userID).Return(true, nil).Times(1)
	suite.mockReadRepo.EXPECT().Upsert(suite.ctx, groupID, userID, at).Return(nil).Times(1)

	err := suite.unreadService.MarkRead(suite.ctx, groupID, userID, at)

	suite.NoError(err)
}

func (suite *UnreadServiceTestSuite) TestMarkReadZeroTimeMeansNow() {
	groupID := uuid.New()
	userID := uuid.New()
	before := time.Now().UTC()

	suite.mockMemberRepo.EXPECT().Exists(suite.ctx, groupID, userID).Return(true, nil).Times(1)
	suite.mockReadRepo.EXPECT().
		Upsert(suite.ctx, groupID, userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID, lastReadAt time.Time) error {
			suite.False(lastReadAt.Before(before))
			suite.False(lastReadAt.After(time.Now().UTC()))
			return nil
		}).
		Times(1)

	err := suite.unreadService.MarkRead(suite.ctx, groupID, userID, time.Time{})

	suite.NoError(err)
}

func (suite *UnreadServiceTestSuite) TestMarkReadNonMember() {
	groupID := uuid.New()
	userID := uuid.New()

	suite.mockMemberRepo.EXPECT().Exists(suite.ctx, groupID, userID).Return(false, nil).Times(1)

	err := suite.unreadService.MarkRead(suite.ctx, groupID, userID, time.Now())

	suite.ErrorIs(err, apperrors.ErrNotMember)
}

func (suite *UnreadServiceTestSuite) TestCounts() {
	userID := uuid.New()
	groupA := uuid.New()
	groupB := uuid.New()
	counts := map[uuid.UUID]int64{groupA: 3, groupB: 1}

	suite.mockReadRepo.EXPECT().UnreadCounts(suite.ctx, userID).Return(counts, nil).Times(1)

	resp, err := suite.unreadService.Counts(suite.ctx, userID)

	suite.NoError(err)
	suite.Equal(int64(3), resp[groupA])
	suite.Equal(int64(1), resp[groupB])
}

// TestUnreadServiceTestSuite runs the test suite
func TestUnreadServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UnreadServiceTestSuite))
}
