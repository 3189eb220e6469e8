package handlers

import (
	"net/http"

	"club-coordination-backend/internal/database/models"
	apperrors "club-coordination-backend/internal/errors"
	"club-coordination-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team formation and discussion
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// CreateTeam handles POST /events/:id/teams
// @Summary Create a team for an event
// @Description The caller becomes the team leader and its first member
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Event ID" format(uuid)
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} service.TeamResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Failure 409 {object} ErrorResponse "Already in a team for this event or name taken"
// @Security BearerAuth
// @Router /events/{id}/teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	leaderID, ok := currentUser(c)
	if !ok {
		return
	}
	eventID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req service.CreateTeamRequest
	if !bindJSON(c, &req) {
		return
	}

	team, err := h.teamService.CreateTeam(c.Request.Context(), eventID, leaderID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// ListEventTeams handles GET /events/:id/teams
// @Summary List an event's teams
// @Tags teams
// @Produce json
// @Param id path string true "Event ID" format(uuid)
// @Success 200 {array} service.TeamResponse
// @Failure 404 {object} ErrorResponse "Event not found"
// @Security BearerAuth
// @Router /events/{id}/teams [get]
func (h *TeamHandler) ListEventTeams(c *gin.Context) {
	eventID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	teams, err := h.teamService.ListEventTeams(c.Request.Context(), eventID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// GetTeam handles GET /teams/:id
// @Summary Get team by ID
// @Tags teams
// @Produce json
// @Param id path string true "Team ID" format(uuid)
// @Success 200 {object} service.TeamResponse
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	teamID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	team, err := h.teamService.GetTeam(c.Request.Context(), teamID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// RequestJoin handles POST /teams/:id/join-requests
// @Summary Apply to join a team
// @Tags join-requests
// @Accept json
// @Produce json
// @Param id path string true "Team ID" format(uuid)
// @Param request body service.JoinTeamRequest false "Application data"
// @Success 201 {object} service.JoinRequestResponse
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "Team full, already in a team or request pending"
// @Security BearerAuth
// @Router /teams/{id}/join-requests [post]
func (h *TeamHandler) RequestJoin(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	teamID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req service.JoinTeamRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &req) {
		return
	}

	joinRequest, err := h.teamService.RequestJoin(c.Request.Context(), teamID, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, joinRequest)
}

// ListJoinRequests handles GET /teams/:id/join-requests
// @Summary List a team's join requests
// @Description Only the team leader may list requests
// @Tags join-requests
// @Produce json
// @Param id path string true "Team ID" format(uuid)
// @Param status query string false "Request status" Enums(pending, accepted, rejected, withdrawn)
// @Success 200 {array} service.JoinRequestResponse
// @Failure 403 {object} ErrorResponse "Not the team leader"
// @Security BearerAuth
// @Router /teams/{id}/join-requests [get]
func (h *TeamHandler) ListJoinRequests(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	teamID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	status := models.JoinRequestStatus(c.DefaultQuery("status", string(models.JoinRequestStatusPending)))
	if !status.IsValid() {
		respondError(c, apperrors.NewValidationError("status", "must be one of pending, accepted, rejected, withdrawn"))
		return
	}

	requests, err := h.teamService.ListJoinRequests(c.Request.Context(), teamID, actorID, status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, requests)
}

// AcceptJoinRequest handles POST /teams/:id/join-requests/:requestId/accept
// @Summary Accept a join request
// @Description Admits the applicant if a seat is free and withdraws their other live requests for the event
// @Tags join-requests
// @Produce json
// @Param id path string true "Team ID" format(uuid)
// @Param requestId path string true "Join request ID" format(uuid)
// @Success 200 {object} service.TeamResponse
// @Failure 403 {object} ErrorResponse "Not the team leader"
// @Failure 409 {object} ErrorResponse "Team full or request already processed"
// @Security BearerAuth
// @Router /teams/{id}/join-requests/{requestId}/accept [post]
func (h *TeamHandler) AcceptJoinRequest(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	teamID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	requestID, ok := uuidParam(c, "requestId")
	if !ok {
		return
	}

	team, err := h.teamService.AcceptJoinRequest(c.Request.Context(), teamID, requestID, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// RejectJoinRequest handles POST /teams/:id/join-requests/:requestId/reject
// @Summary Reject a join request
// @Tags join-requests
// @Produce json
// @Param id path string true "Team ID" format(uuid)
// @Param requestId path string true "Join request ID" format(uuid)
// @Success 200 {object} service.JoinRequestResponse
// @Failure 403 {object} ErrorResponse "Not the team leader"
// @Failure 409 {object} ErrorResponse "Request already processed"
// @Security BearerAuth
// @Router /teams/{id}/join-requests/{requestId}/reject [post]
func (h *TeamHandler) RejectJoinRequest(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	teamID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	requestID, ok := uuidParam(c, "requestId")
	if !ok {
		return
	}

	joinRequest, err := h.teamService.RejectJoinRequest(c.Request.Context(), teamID, requestID, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, joinRequest)
}

// WithdrawJoinRequest handles DELETE /join-requests/:requestId
// @Summary Withdraw one's own join request
// @Tags join-requests
// @Produce json
// @Param requestId path string true "Join request ID" format(uuid)
// @Success 200 {object} service.JoinRequestResponse
// @Failure 403 {object} ErrorResponse "Not the applicant"
// @Failure 409 {object} ErrorResponse "Request already processed"
// @Security BearerAuth
// @Router /join-requests/{requestId} [delete]
func (h *TeamHandler) WithdrawJoinRequest(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	requestID, ok := uuidParam(c, "requestId")
	if !ok {
		return
	}

	joinRequest, err := h.teamService.WithdrawJoinRequest(c.Request.Context(), requestID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, joinRequest)
}

// Leave handles POST /teams/:id/leave
// @Summary Leave a team
// @Description Members leave; the leader must disband instead
// @Tags teams
// @Param id path string true "Team ID" format(uuid)
// @Success 204 "Left the team"
// @Failure 404 {object} ErrorResponse "Not a member"
// @Failure 409 {object} ErrorResponse "Leader cannot leave"
// @Security BearerAuth
// @Router /teams/{id}/leave [post]
func (h *TeamHandler) Leave(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	teamID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.teamService.Leave(c.Request.Context(), teamID, userID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Disband handles DELETE /teams/:id
// @Summary Disband a team
// @Tags teams
// @Param id path string true "Team ID" format(uuid)
// @Success 204 "Team disbanded"
// @Failure 403 {object} ErrorResponse "Not the team leader"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [delete]
func (h *TeamHandler) Disband(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	teamID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.teamService.Disband(c.Request.Context(), teamID, actorID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// PostMessage handles POST /teams/:id/messages
// @Summary Post a discussion message
// @Tags messages
// @Accept json
// @Produce json
// @Param id path string true "Team ID" format(uuid)
// @Param message body service.PostMessageRequest true "Message"
// @Success 201 {object} service.MessageResponse
// @Failure 400 {object} ErrorResponse "Empty or oversized body"
// @Failure 403 {object} ErrorResponse "Not a team member"
// @Security BearerAuth
// @Router /teams/{id}/messages [post]
func (h *TeamHandler) PostMessage(c *gin.Context) {
	authorID, ok := currentUser(c)
	if !ok {
		return
	}
	teamID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req service.PostMessageRequest
	if !bindJSON(c, &req) {
		return
	}

	message, err := h.teamService.PostMessage(c.Request.Context(), teamID, authorID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, message)
}

// ListMessages handles GET /teams/:id/messages
// @Summary List discussion messages
// @Tags messages
// @Produce json
// @Param id path string true "Team ID" format(uuid)
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.MessageListResponse
// @Failure 403 {object} ErrorResponse "Not a team member"
// @Security BearerAuth
// @Router /teams/{id}/messages [get]
func (h *TeamHandler) ListMessages(c *gin.Context) {
	viewerID, ok := currentUser(c)
	if !ok {
		return
	}
	teamID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	limit, offset, ok := pagination(c)
	if !ok {
		return
	}

	messages, err := h.teamService.ListMessages(c.Request.Context(), teamID, viewerID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}
