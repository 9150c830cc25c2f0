package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/basamba1990/smoovebox-v2-sub002/internal/api/middleware"
	apperrors "github.com/basamba1990/smoovebox-v2-sub002/internal/errors"
	"github.com/basamba1990/smoovebox-v2-sub002/internal/mocks"
	"github.com/basamba1990/smoovebox-v2-sub002/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// MessageHandlerTestSuite tests the MessageHandler
type MessageHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	ctrl        *gomock.Controller
	mockService *mocks.MockMessageServiceInterface
	handler     *MessageHandler
	userID      uuid.UUID
}

// SetupSuite sets up the test suite
func (suite *MessageHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

// SetupTest sets up each individual test
func (suite *MessageHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockMessageServiceInterface(suite.ctrl)
	suite.handler = NewMessageHandler(suite.mockService)
	suite.userID = uuid.New()

	suite.router = gin.New()
	suite.router.Use(func(c *gin.Context) {
		c.Set(middleware.UserIDKey, suite.userID)
	})

	// Setup routes
	v1 := suite.router.Group("/api/v1")
	{
		v1.POST("/groups/:id/messages", suite.handler.SendMessage)
		v1.GET("/groups/:id/messages", suite.handler.ListMessages)
	}
}

// TearDownTest cleans up after each test
func (suite *MessageHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestSendMessage tests posting a message to a group
func (suite *MessageHandlerTestSuite) TestSendMessage() {
	groupID := uuid.New()
	messageID := uuid.New()

	request := service.SendMessageRequest{Content: "match at 6pm"}
	expectedResponse := &service.MessageResponse{
		ID:       messageID,
		GroupID:  groupID,
		SenderID: suite.userID,
		Content:  "match at 6pm",
	}

	suite.mockService.EXPECT().
		Send(gomock.Any(), groupID, suite.userID, gomock.Any()).
		Return(expectedResponse, nil)

	body, _ := json.Marshal(request)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/groups/"+groupID.String()+"/messages", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response service.MessageResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), messageID, response.ID)
	assert.Equal(suite.T(), "match at 6pm", response.Content)
	assert.Equal(suite.T(), suite.userID, response.SenderID)
}

// TestSendMessageEmptyContent tests posting a blank message
func (suite *MessageHandlerTestSuite) TestSendMessageEmptyContent() {
	groupID := uuid.New()

	suite.mockService.EXPECT().
		Send(gomock.Any(), groupID, suite.userID, gomock.Any()).
		Return(nil, apperrors.ErrEmptyMessageContent)

	body, _ := json.Marshal(service.SendMessageRequest{Content: "   "})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/groups/"+groupID.String()+"/messages", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestSendMessageNotMember tests posting to a group the sender is not in
func (suite *MessageHandlerTestSuite) TestSendMessageNotMember() {
	groupID := uuid.New()

	suite.mockService.EXPECT().
		Send(gomock.Any(), groupID, suite.userID, gomock.Any()).
		Return(nil, apperrors.ErrNotMember)

	body, _ := json.Marshal(service.SendMessageRequest{Content: "hello"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/groups/"+groupID.String()+"/messages", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

// TestListMessages tests retrieving a group's message history
func (suite *MessageHandlerTestSuite) TestListMessages() {
	groupID := uuid.New()
	expectedResponse := []service.MessageResponse{
		{ID: uuid.New(), GroupID: groupID, SenderID: suite.userID, Content: "first"},
		{ID: uuid.New(), GroupID: groupID, SenderID: uuid.New(), Content: "second"},
	}

	suite.mockService.EXPECT().
		List(gomock.Any(), groupID, suite.userID).
		Return(expectedResponse, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/groups/"+groupID.String()+"/messages", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response struct {
		Messages []service.MessageResponse `json:"messages"`
		Total    int                       `json:"total"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, response.Total)
	assert.Equal(suite.T(), "first", response.Messages[0].Content)
}

// TestListMessagesGroupNotFound tests listing messages of a missing group
func (suite *MessageHandlerTestSuite) TestListMessagesGroupNotFound() {
	groupID := uuid.New()

	suite.mockService.EXPECT().
		List(gomock.Any(), groupID, suite.userID).
		Return(nil, apperrors.ErrGroupNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/groups/"+groupID.String()+"/messages", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestInvalidGroupID tests message endpoints with a bad group id
func (suite *MessageHandlerTestSuite) TestInvalidGroupID() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/groups/not-a-uuid/messages", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// Run the test suite
func TestMessageHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MessageHandlerTestSuite))
}
