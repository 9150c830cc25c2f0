package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/basamba1990/smoovebox-v2-sub002/internal/api/middleware"
	apperrors "github.com/basamba1990/smoovebox-v2-sub002/internal/errors"
	"github.com/basamba1990/smoovebox-v2-sub002/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// UnreadHandlerTestSuite tests the UnreadHandler
type UnreadHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	ctrl        *gomock.Controller
	mockService *mocks.MockUnreadServiceInterface
	handler     *UnreadHandler
	userID      uuid.UUID
}

// SetupSuite sets up the test suite
func (suite *UnreadHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

// SetupTest sets up each individual test
func (suite *UnreadHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockUnreadServiceInterface(suite.ctrl)
	suite.handler = NewUnreadHandler(suite.mockService)
	suite.userID = uuid.New()

	suite.router = gin.New()
	suite.router.Use(func(c *gin.Context) {
		c.Set(middleware.UserIDKey, suite.userID)
	})

	// Setup routes
	v1 := suite.router.Group("/api/v1")
	{
		v1.POST("/groups/:id/read", suite.handler.MarkRead)
		v1.GET("/unread", suite.handler.UnreadCounts)
	}
}

// TearDownTest cleans up after each test
func (suite *UnreadHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestMarkReadNoBody tests marking a group read without a body
func (suite *UnreadHandlerTestSuite) TestMarkReadNoBody() {
	groupID := uuid.New()

	suite.mockService.EXPECT().
		MarkRead(gomock.Any(), groupID, suite.userID, time.Time{}).
		Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/groups/"+groupID.String()+"/read", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

// TestMarkReadWithTimestamp tests marking a group read at an explicit time
func (suite *UnreadHandlerTestSuite) TestMarkReadWithTimestamp() {
	groupID := uuid.New()
	at := time.Date(2026, 8, 14, 18, 0, 0, 0, time.UTC)

	suite.mockService.EXPECT().
		MarkRead(gomock.Any(), groupID, suite.userID, at).
		Return(nil)

	body, _ := json.Marshal(MarkReadRequest{At: at})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/groups/"+groupID.String()+"/read", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

// TestMarkReadNotMember tests marking a group the requester is not in
func (suite *UnreadHandlerTestSuite) TestMarkReadNotMember() {
	groupID := uuid.New()

	suite.mockService.EXPECT().
		MarkRead(gomock.Any(), groupID, suite.userID, time.Time{}).
		Return(apperrors.ErrNotMember)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/groups/"+groupID.String()+"/read", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

// TestMarkReadInvalidGroupID tests marking read with a malformed group id
func (suite *UnreadHandlerTestSuite) TestMarkReadInvalidGroupID() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/groups/not-a-uuid/read", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestUnreadCounts tests retrieving per-group unread counts
func (suite *UnreadHandlerTestSuite) TestUnreadCounts() {
	groupID := uuid.New()

	suite.mockService.EXPECT().
		Counts(gomock.Any(), suite.userID).
		Return(map[uuid.UUID]int64{groupID: 3}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/unread", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response struct {
		Unread map[string]int64 `json:"unread"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(3), response.Unread[groupID.String()])
}

// TestUnreadCountsEmpty tests the all-caught-up case
func (suite *UnreadHandlerTestSuite) TestUnreadCountsEmpty() {
	suite.mockService.EXPECT().
		Counts(gomock.Any(), suite.userID).
		Return(map[uuid.UUID]int64{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/unread", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response struct {
		Unread map[string]int64 `json:"unread"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), response.Unread)
}

// Run the test suite
func TestUnreadHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UnreadHandlerTestSuite))
}
