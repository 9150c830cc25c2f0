package handlers

import (
	"net/http"

	"github.com/basamba1990/smoovebox-v2-sub002/internal/api/middleware"
	apperrors "github.com/basamba1990/smoovebox-v2-sub002/internal/errors"
	"github.com/basamba1990/smoovebox-v2-sub002/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MessageHandler handles HTTP requests for group messages
type MessageHandler struct {
	messageService service.MessageServiceInterface
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(messageService service.MessageServiceInterface) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
	}
}

// SendMessage posts a message to a group
// @Summary Send a group message
// @Description Post a message to a group's conversation. Only group members may send. Messages are immutable once stored.
// @Tags messages
// @Accept json
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Param message body service.SendMessageRequest true "Message content"
// @Success 201 {object} service.MessageResponse "Message sent"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Sender is not a group member"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Security BearerAuth
// @Router /groups/{id}/messages [post]
func (h *MessageHandler) SendMessage(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, apperrors.ErrMissingBearerToken)
		return
	}

	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid group ID"})
		return
	}

	var req service.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	message, err := h.messageService.Send(c.Request.Context(), groupID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, message)
}

// ListMessages lists a group's messages oldest first
// @Summary List group messages
// @Description Get all messages of a group in chronological order. Only group members may read.
// @Tags messages
// @Accept json
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully retrieved messages"
// @Failure 400 {object} ErrorResponse "Invalid group ID"
// @Failure 403 {object} ErrorResponse "Requester is not a member"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Security BearerAuth
// @Router /groups/{id}/messages [get]
func (h *MessageHandler) ListMessages(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, apperrors.ErrMissingBearerToken)
		return
	}

	groupID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid group ID"})
		return
	}

	messages, err := h.messageService.List(c.Request.Context(), groupID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"messages": messages,
		"total":    len(messages),
	})
}
