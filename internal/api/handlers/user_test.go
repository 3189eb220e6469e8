package handlers_test

import (
	"net/http"
	"testing"

	"club-coordination-backend/internal/api/handlers"
	"club-coordination-backend/internal/database/models"
	apperrors "club-coordination-backend/internal/errors"
	"club-coordination-backend/internal/mocks"
	"club-coordination-backend/internal/service"
	"club-coordination-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserServiceInterface(ctrl)
	teams := mocks.NewMockTeamServiceInterface(ctrl)
	handler := handlers.NewUserHandler(users, teams)

	callerID := uuid.New()
	h, v1 := authenticatedRouter(callerID)
	v1.GET("/users/me", handler.GetMe)
	v1.GET("/users/me/join-requests", handler.ListMyJoinRequests)

	t.Run("profile", func(t *testing.T) {
		users.EXPECT().GetUser(gomock.Any(), callerID).
			Return(&service.UserResponse{ID: callerID, Email: "alice@campus.edu"}, nil)

		rec := h.MakeRequest(http.MethodGet, "/api/v1/users/me", nil)

		var resp service.UserResponse
		testutils.AssertJSONResponse(t, rec, http.StatusOK, &resp)
		assert.Equal(t, "alice@campus.edu", resp.Email)
	})

	t.Run("profile gone", func(t *testing.T) {
		users.EXPECT().GetUser(gomock.Any(), callerID).Return(nil, apperrors.ErrUserNotFound)

		rec := h.MakeRequest(http.MethodGet, "/api/v1/users/me", nil)
		testutils.AssertErrorResponse(t, rec, http.StatusNotFound, "not_found")
	})

	t.Run("join requests", func(t *testing.T) {
		teams.EXPECT().ListUserJoinRequests(gomock.Any(), callerID).Return([]service.JoinRequestResponse{
			{UserID: callerID, Status: models.JoinRequestStatusPending},
			{UserID: callerID, Status: models.JoinRequestStatusWithdrawn},
		}, nil)

		rec := h.MakeRequest(http.MethodGet, "/api/v1/users/me/join-requests", nil)

		var resp []service.JoinRequestResponse
		testutils.AssertJSONResponse(t, rec, http.StatusOK, &resp)
		assert.Len(t, resp, 2)
	})

	t.Run("anonymous", func(t *testing.T) {
		anon, group := authenticatedRouter(uuid.Nil)
		group.GET("/users/me", handler.GetMe)

		rec := anon.MakeRequest(http.MethodGet, "/api/v1/users/me", nil)
		testutils.AssertErrorResponse(t, rec, http.StatusUnauthorized, "authentication")
	})
}
