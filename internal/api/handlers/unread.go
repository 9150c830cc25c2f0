package handlers

import (
	"net/http"
	"time"

	"github.com/basamba1990/smoovebox-v2-sub002/internal/api/middleware"
	apperrors "github.com/basamba1990/smoovebox-v2-sub002/internal/errors"
	"github.com/basamba1990/smoovebox-v2-sub002/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UnreadHandler handles read-state tracking endpoints
type UnreadHandler struct {
	unreadService service.UnreadServiceInterface
}

// NewUnreadHandler creates a new unread handler
func NewUnreadHandler(unreadService service.UnreadServiceInterface) *UnreadHandler {
	return &UnreadHandler{
		unreadService: unreadService,
	}
}

// MarkReadRequest represents the optional mark-read body. When `at` is
// omitted the server uses the current time.
type MarkReadRequest struct {
	At time.Time `json:"at"`
}

// MarkRead records the authenticated user as caught up on a group
// @Summary Mark a group as read
// @Description Record that the authenticated user has read a group's messages up to now (or the supplied timestamp). Marking read never decreases the stored watermark's meaning for other users.
// @Tags unread
// @Accept json
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Param body body MarkReadRequest false "Optional read timestamp"
// @Success 204 "Read state recorded"
// @Failure 400 {object} ErrorResponse "Invalid group ID"
// @Failure 403 {object} ErrorResponse "Requester is not a member"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Security BearerAuth
// @Router /groups/{id}/read [post]
func (h *UnreadHandler) MarkRead(c *gin.Context) {
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

	var req MarkReadRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
	}

	if err := h.unreadService.MarkRead(c.Request.Context(), groupID, userID, req.At); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// UnreadCounts returns per-group unread message counts
// @Summary Get unread counts
// @Description Get the number of unread messages in each of the authenticated user's groups. Groups with zero unread messages are omitted.
// @Tags unread
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Unread counts keyed by group ID"
// @Security BearerAuth
// @Router /unread [get]
func (h *UnreadHandler) UnreadCounts(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, apperrors.ErrMissingBearerToken)
		return
	}

	counts, err := h.unreadService.Counts(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make(map[string]int64, len(counts))
	for groupID, n := range counts {
		out[groupID.String()] = n
	}

	c.JSON(http.StatusOK, gin.H{"unread": out})
}
