package handlers

import (
	"net/http"
	"strconv"

	"github.com/basamba1990/smoovebox-v2-sub002/internal/api/middleware"
	apperrors "github.com/basamba1990/smoovebox-v2-sub002/internal/errors"
	"github.com/basamba1990/smoovebox-v2-sub002/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TeamHandler handles HTTP requests for teams, formations and slots
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// CreateTeam creates the football team for a group
// @Summary Create a group's team
// @Description Create the football team attached to a group. Each group holds at most one team. Only the group owner may create it.
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} service.TeamResponse "Successfully created team"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Requester is not the group owner"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Failure 409 {object} ErrorResponse "Group already has a team"
// @Security BearerAuth
// @Router /groups/{id}/team [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
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

	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	team, err := h.teamService.Create(c.Request.Context(), groupID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// GetTeam retrieves a group's team with its slots
// @Summary Get a group's team
// @Description Get the football team of a group, including its slots in pitch order. Only group members may call this.
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Success 200 {object} service.TeamWithSlotsResponse "Successfully retrieved team"
// @Failure 400 {object} ErrorResponse "Invalid group ID"
// @Failure 403 {object} ErrorResponse "Requester is not a member"
// @Failure 404 {object} ErrorResponse "Group or team not found"
// @Security BearerAuth
// @Router /groups/{id}/team [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
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

	team, err := h.teamService.GetForGroup(c.Request.Context(), groupID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// SetFormation applies a formation to a team
// @Summary Set a team's formation
// @Description Apply a formation from the catalog to the team. All existing slots are replaced with vacant slots laid out per the formation, so prior player assignments are cleared.
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param formation body service.SetFormationRequest true "Formation name"
// @Success 200 {object} service.TeamWithSlotsResponse "Formation applied"
// @Failure 400 {object} ErrorResponse "Unknown formation for this player count"
// @Failure 403 {object} ErrorResponse "Requester is not the team owner"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id}/formation [put]
func (h *TeamHandler) SetFormation(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, apperrors.ErrMissingBearerToken)
		return
	}

	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid team ID"})
		return
	}

	var req service.SetFormationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	team, err := h.teamService.SetFormation(c.Request.Context(), teamID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// AssignSlot assigns or vacates a team slot
// @Summary Assign a player to a slot
// @Description Put a group member into a team slot, or vacate the slot when user_id is null. A user may hold at most one slot per team. Only the team owner may assign.
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Slot ID (UUID)"
// @Param assignment body service.AssignSlotRequest true "Slot assignment"
// @Success 200 {object} service.SlotResponse "Slot updated"
// @Failure 400 {object} ErrorResponse "User is not a group member or already holds a slot"
// @Failure 403 {object} ErrorResponse "Requester is not the team owner"
// @Failure 404 {object} ErrorResponse "Slot not found"
// @Security BearerAuth
// @Router /slots/{id} [put]
func (h *TeamHandler) AssignSlot(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, apperrors.ErrMissingBearerToken)
		return
	}

	slotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid slot ID"})
		return
	}

	var req service.AssignSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	slot, err := h.teamService.AssignSlot(c.Request.Context(), slotID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, slot)
}

// DeleteTeam deletes a team and its slots
// @Summary Delete a team
// @Description Delete a team and all of its slots. Only the team owner may call this.
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 204 "Team deleted"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 403 {object} ErrorResponse "Requester is not the team owner"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, apperrors.ErrMissingBearerToken)
		return
	}

	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid team ID"})
		return
	}

	if err := h.teamService.Delete(c.Request.Context(), teamID, userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// ListFormations lists catalog formations for a player count
// @Summary List formations for a player count
// @Description Get the formation catalog entries available for a starters count (5, 7 or 11), with role and pitch position per slot.
// @Tags teams
// @Accept json
// @Produce json
// @Param count path int true "Starters count"
// @Success 200 {object} map[string]interface{} "Formations keyed by name"
// @Failure 400 {object} ErrorResponse "Invalid count"
// @Security BearerAuth
// @Router /formations/{count} [get]
func (h *TeamHandler) ListFormations(c *gin.Context) {
	count, err := strconv.Atoi(c.Param("count"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid player count"})
		return
	}

	formations := h.teamService.FormationsForCount(count)
	c.JSON(http.StatusOK, gin.H{
		"count":      count,
		"formations": formations,
	})
}
