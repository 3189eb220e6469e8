package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"club-coordination-backend/internal/api/handlers"
	"club-coordination-backend/internal/mocks"
	"club-coordination-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupHealthRouter(store, notifier *mocks.MockPinger) *testutils.HTTPTestSuite {
	var handler *handlers.HealthHandler
	if notifier == nil {
		handler = handlers.NewHealthHandler(store, nil)
	} else {
		handler = handlers.NewHealthHandler(store, notifier)
	}

	h := testutils.SetupHTTPTest()
	h.Router.GET("/health", handler.Health)
	h.Router.GET("/health/ready", handler.Ready)
	h.Router.GET("/health/live", handler.Live)
	return h
}

func TestHealth(t *testing.T) {
	ctrl := gomock.NewController(t)

	t.Run("healthy", func(t *testing.T) {
		store := mocks.NewMockPinger(ctrl)
		store.EXPECT().Ping(gomock.Any()).Return(nil)

		rec := setupHealthRouter(store, nil).MakeRequest(http.MethodGet, "/health", nil)

		var resp handlers.HealthResponse
		testutils.AssertJSONResponse(t, rec, http.StatusOK, &resp)
		assert.Equal(t, "healthy", resp.Status)
		assert.Equal(t, "healthy", resp.Services["store"])
		assert.NotContains(t, resp.Services, "notifications")
	})

	t.Run("store down", func(t *testing.T) {
		store := mocks.NewMockPinger(ctrl)
		store.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))

		rec := setupHealthRouter(store, nil).MakeRequest(http.MethodGet, "/health", nil)

		var resp handlers.HealthResponse
		testutils.AssertJSONResponse(t, rec, http.StatusServiceUnavailable, &resp)
		assert.Equal(t, "unhealthy", resp.Status)
	})

	t.Run("notifier down only degrades", func(t *testing.T) {
		store := mocks.NewMockPinger(ctrl)
		notifier := mocks.NewMockPinger(ctrl)
		store.EXPECT().Ping(gomock.Any()).Return(nil)
		notifier.EXPECT().Ping(gomock.Any()).Return(errors.New("redis: nil"))

		rec := setupHealthRouter(store, notifier).MakeRequest(http.MethodGet, "/health/ready", nil)

		var resp map[string]interface{}
		testutils.AssertJSONResponse(t, rec, http.StatusOK, &resp)
		assert.Equal(t, true, resp["ready"])
		services := resp["services"].(map[string]interface{})
		assert.Contains(t, services["notifications"], "degraded")
	})

	t.Run("live needs no dependencies", func(t *testing.T) {
		store := mocks.NewMockPinger(ctrl)

		rec := setupHealthRouter(store, nil).MakeRequest(http.MethodGet, "/health/live", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
