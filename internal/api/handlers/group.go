package handlers

import (
	"net/http"

	"github.com/basamba1990/smoovebox-v2-sub002/internal/api/middleware"
	apperrors "github.com/basamba1990/smoovebox-v2-sub002/internal/errors"
	"github.com/basamba1990/smoovebox-v2-sub002/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GroupHandler handles HTTP requests for groups and their membership
type GroupHandler struct {
	groupService service.GroupServiceInterface
}

// NewGroupHandler creates a new group handler
func NewGroupHandler(groupService service.GroupServiceInterface) *GroupHandler {
	return &GroupHandler{
		groupService: groupService,
	}
}

// CreateGroup creates a new group owned by the authenticated user
// @Summary Create a new group
// @Description Create a group. The authenticated user becomes its owner and first member.
// @Tags groups
// @Accept json
// @Produce json
// @Param group body service.CreateGroupRequest true "Group data"
// @Success 201 {object} service.GroupResponse "Successfully created group"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /groups [post]
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, apperrors.ErrMissingBearerToken)
		return
	}

	var req service.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	group, err := h.groupService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, group)
}

// ListMyGroups lists the groups the authenticated user belongs to
// @Summary List my groups
// @Description Get all groups the authenticated user is a member of, newest first
// @Tags groups
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Successfully retrieved groups"
// @Security BearerAuth
// @Router /groups [get]
func (h *GroupHandler) ListMyGroups(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, apperrors.ErrMissingBearerToken)
		return
	}

	groups, err := h.groupService.ListMine(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"groups": groups,
		"total":  len(groups),
	})
}

// GetMembers lists the members of a group
// @Summary List group members
// @Description Get all members of a group. Only group members may call this.
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully retrieved members"
// @Failure 400 {object} ErrorResponse "Invalid group ID"
// @Failure 403 {object} ErrorResponse "Requester is not a member"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Security BearerAuth
// @Router /groups/{id}/members [get]
func (h *GroupHandler) GetMembers(c *gin.Context) {
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

	members, err := h.groupService.Members(c.Request.Context(), groupID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"members": members,
		"total":   len(members),
	})
}

// AddMembers adds users to a group
// @Summary Add members to a group
// @Description Add one or more users to a group. Only the group owner may call this. Users already in the group are skipped.
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Param members body service.AddMembersRequest true "User IDs to add"
// @Success 200 {object} map[string]interface{} "Members added"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Requester is not the group owner"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Security BearerAuth
// @Router /groups/{id}/members [post]
func (h *GroupHandler) AddMembers(c *gin.Context) {
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

	var req service.AddMembersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	added, err := h.groupService.AddMembers(c.Request.Context(), groupID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"added": added,
		"total": len(added),
	})
}

// RemoveMember removes a user from a group
// @Summary Remove a group member
// @Description Remove a user from a group and vacate any team slot they held. The owner may remove anyone but themselves; other members may only remove themselves.
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Param userId path string true "User ID (UUID)"
// @Success 204 "Member removed"
// @Failure 400 {object} ErrorResponse "Invalid ID or owner removal attempt"
// @Failure 403 {object} ErrorResponse "Requester may not remove this member"
// @Failure 404 {object} ErrorResponse "Group or member not found"
// @Security BearerAuth
// @Router /groups/{id}/members/{userId} [delete]
func (h *GroupHandler) RemoveMember(c *gin.Context) {
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

	targetID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid user ID"})
		return
	}

	if err := h.groupService.RemoveMember(c.Request.Context(), groupID, userID, targetID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
