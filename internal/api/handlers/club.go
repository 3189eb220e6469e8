package handlers

import (
	"context"
	"net/http"

	"club-coordination-backend/internal/database/models"
	apperrors "club-coordination-backend/internal/errors"
	"club-coordination-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ClubHandler handles HTTP requests for clubs and their memberships
type ClubHandler struct {
	clubService service.ClubServiceInterface
}

// NewClubHandler creates a new club handler
func NewClubHandler(clubService service.ClubServiceInterface) *ClubHandler {
	return &ClubHandler{
		clubService: clubService,
	}
}

// CreateClub handles POST /clubs
// @Summary Create a new club
// @Description Create a club. The caller becomes its chairman and first active member.
// @Tags clubs
// @Accept json
// @Produce json
// @Param club body service.CreateClubRequest true "Club data"
// @Success 201 {object} service.ClubResponse "Successfully created club"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Caller may not create clubs"
// @Failure 409 {object} ErrorResponse "Club name already taken"
// @Security BearerAuth
// @Router /clubs [post]
func (h *ClubHandler) CreateClub(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}

	var req service.CreateClubRequest
	if !bindJSON(c, &req) {
		return
	}

	club, err := h.clubService.CreateClub(c.Request.Context(), actorID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, club)
}

// GetClub handles GET /clubs/:id
// @Summary Get club by ID
// @Tags clubs
// @Produce json
// @Param id path string true "Club ID" format(uuid)
// @Success 200 {object} service.ClubResponse
// @Failure 404 {object} ErrorResponse "Club not found"
// @Security BearerAuth
// @Router /clubs/{id} [get]
func (h *ClubHandler) GetClub(c *gin.Context) {
	clubID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	club, err := h.clubService.GetClub(c.Request.Context(), clubID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, club)
}

// ListClubs handles GET /clubs
// @Summary List clubs
// @Description Retrieve a paginated list of clubs ordered by name
// @Tags clubs
// @Produce json
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.ClubListResponse
// @Failure 400 {object} ErrorResponse "Invalid pagination parameters"
// @Security BearerAuth
// @Router /clubs [get]
func (h *ClubHandler) ListClubs(c *gin.Context) {
	limit, offset, ok := pagination(c)
	if !ok {
		return
	}

	clubs, err := h.clubService.ListClubs(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, clubs)
}

// RequestJoin handles POST /clubs/:id/join
// @Summary Request to join a club
// @Description Open clubs admit the caller immediately; approval clubs record a pending request
// @Tags memberships
// @Produce json
// @Param id path string true "Club ID" format(uuid)
// @Success 201 {object} service.MembershipResponse
// @Failure 404 {object} ErrorResponse "Club not found"
// @Failure 409 {object} ErrorResponse "Already a member or request pending"
// @Security BearerAuth
// @Router /clubs/{id}/join [post]
func (h *ClubHandler) RequestJoin(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	clubID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	membership, err := h.clubService.RequestJoin(c.Request.Context(), clubID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, membership)
}

// WithdrawJoin handles DELETE /clubs/:id/join
// @Summary Withdraw a pending club join request
// @Tags memberships
// @Param id path string true "Club ID" format(uuid)
// @Success 204 "Request withdrawn"
// @Failure 404 {object} ErrorResponse "No pending request"
// @Security BearerAuth
// @Router /clubs/{id}/join [delete]
func (h *ClubHandler) WithdrawJoin(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	clubID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.clubService.WithdrawJoin(c.Request.Context(), clubID, userID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListMemberships handles GET /clubs/:id/memberships
// @Summary List club memberships
// @Description Active members are visible to any member; other statuses need the review capability
// @Tags memberships
// @Produce json
// @Param id path string true "Club ID" format(uuid)
// @Param status query string false "Membership status" Enums(pending, active, rejected)
// @Param limit query int false "Number of items to return" default(20)
// @Param offset query int false "Number of items to skip" default(0)
// @Success 200 {object} service.MembershipListResponse
// @Failure 400 {object} ErrorResponse "Invalid status or pagination"
// @Failure 403 {object} ErrorResponse "Insufficient club role"
// @Security BearerAuth
// @Router /clubs/{id}/memberships [get]
func (h *ClubHandler) ListMemberships(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	clubID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	status := models.MembershipStatus(c.DefaultQuery("status", string(models.MembershipStatusActive)))
	if !status.IsValid() {
		respondError(c, apperrors.NewValidationError("status", "must be one of pending, active, rejected"))
		return
	}

	limit, offset, ok := pagination(c)
	if !ok {
		return
	}

	memberships, err := h.clubService.ListMemberships(c.Request.Context(), clubID, actorID, status, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, memberships)
}

// GetMyMembership handles GET /clubs/:id/memberships/me
// @Summary Get the caller's membership in a club
// @Tags memberships
// @Produce json
// @Param id path string true "Club ID" format(uuid)
// @Success 200 {object} service.MembershipResponse
// @Failure 404 {object} ErrorResponse "No membership"
// @Security BearerAuth
// @Router /clubs/{id}/memberships/me [get]
func (h *ClubHandler) GetMyMembership(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	clubID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	membership, err := h.clubService.GetMyMembership(c.Request.Context(), clubID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, membership)
}

// Approve handles POST /clubs/:id/memberships/:membershipId/approve
// @Summary Approve a pending membership
// @Tags memberships
// @Produce json
// @Param id path string true "Club ID" format(uuid)
// @Param membershipId path string true "Membership ID" format(uuid)
// @Success 200 {object} service.MembershipResponse
// @Failure 403 {object} ErrorResponse "Insufficient club role"
// @Failure 409 {object} ErrorResponse "Request already processed"
// @Security BearerAuth
// @Router /clubs/{id}/memberships/{membershipId}/approve [post]
func (h *ClubHandler) Approve(c *gin.Context) {
	h.decide(c, h.clubService.Approve)
}

// Reject handles POST /clubs/:id/memberships/:membershipId/reject
// @Summary Reject a pending membership
// @Tags memberships
// @Produce json
// @Param id path string true "Club ID" format(uuid)
// @Param membershipId path string true "Membership ID" format(uuid)
// @Success 200 {object} service.MembershipResponse
// @Failure 403 {object} ErrorResponse "Insufficient club role"
// @Failure 409 {object} ErrorResponse "Request already processed"
// @Security BearerAuth
// @Router /clubs/{id}/memberships/{membershipId}/reject [post]
func (h *ClubHandler) Reject(c *gin.Context) {
	h.decide(c, h.clubService.Reject)
}

type membershipDecision func(ctx context.Context, clubID, membershipID, actorID uuid.UUID) (*service.MembershipResponse, error)

func (h *ClubHandler) decide(c *gin.Context, decision membershipDecision) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	clubID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	membershipID, ok := uuidParam(c, "membershipId")
	if !ok {
		return
	}

	membership, err := decision(c.Request.Context(), clubID, membershipID, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, membership)
}

// Leave handles POST /clubs/:id/leave
// @Summary Leave a club
// @Description Members leave voluntarily. A chairman must hand over the role first.
// @Tags memberships
// @Param id path string true "Club ID" format(uuid)
// @Success 204 "Left the club"
// @Failure 404 {object} ErrorResponse "Not a member"
// @Failure 409 {object} ErrorResponse "Chairman cannot leave"
// @Security BearerAuth
// @Router /clubs/{id}/leave [post]
func (h *ClubHandler) Leave(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	clubID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.clubService.Leave(c.Request.Context(), clubID, userID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Expel handles DELETE /clubs/:id/members/:userId
// @Summary Expel a member
// @Description The actor must hold the expel capability and outrank the target
// @Tags memberships
// @Param id path string true "Club ID" format(uuid)
// @Param userId path string true "User ID" format(uuid)
// @Success 204 "Member expelled"
// @Failure 403 {object} ErrorResponse "Insufficient club role"
// @Failure 404 {object} ErrorResponse "Target is not a member"
// @Security BearerAuth
// @Router /clubs/{id}/members/{userId} [delete]
func (h *ClubHandler) Expel(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	clubID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	targetID, ok := uuidParam(c, "userId")
	if !ok {
		return
	}

	if err := h.clubService.Expel(c.Request.Context(), clubID, targetID, actorID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UpdateRole handles PUT /clubs/:id/members/:userId/role
// @Summary Change a member's club role
// @Tags memberships
// @Accept json
// @Produce json
// @Param id path string true "Club ID" format(uuid)
// @Param userId path string true "User ID" format(uuid)
// @Param role body service.UpdateRoleRequest true "New role"
// @Success 200 {object} service.MembershipResponse
// @Failure 400 {object} ErrorResponse "Unknown role"
// @Failure 403 {object} ErrorResponse "Insufficient club role"
// @Failure 404 {object} ErrorResponse "Target is not a member"
// @Security BearerAuth
// @Router /clubs/{id}/members/{userId}/role [put]
func (h *ClubHandler) UpdateRole(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	clubID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	targetID, ok := uuidParam(c, "userId")
	if !ok {
		return
	}

	var req service.UpdateRoleRequest
	if !bindJSON(c, &req) {
		return
	}

	membership, err := h.clubService.UpdateRole(c.Request.Context(), clubID, targetID, actorID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, membership)
}
