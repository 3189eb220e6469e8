package handlers

import (
	"net/http"

	"club-coordination-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests about the calling user
type UserHandler struct {
	userService service.UserServiceInterface
	teamService service.TeamServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserServiceInterface, teamService service.TeamServiceInterface) *UserHandler {
	return &UserHandler{
		userService: userService,
		teamService: teamService,
	}
}

// GetMe handles GET /users/me
// @Summary Get the caller's profile
// @Tags users
// @Produce json
// @Success 200 {object} service.UserResponse
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Security BearerAuth
// @Router /users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// ListMyJoinRequests handles GET /users/me/join-requests
// @Summary List the caller's team join requests
// @Tags users
// @Produce json
// @Success 200 {array} service.JoinRequestResponse
// @Security BearerAuth
// @Router /users/me/join-requests [get]
func (h *UserHandler) ListMyJoinRequests(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	requests, err := h.teamService.ListUserJoinRequests(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, requests)
}
