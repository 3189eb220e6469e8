package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"club-coordination-backend/internal/api/handlers"
	apperrors "club-coordination-backend/internal/errors"
	"club-coordination-backend/internal/mocks"
	"club-coordination-backend/internal/service"
	"club-coordination-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EventHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockEventServiceInterface
	httpSuite   *testutils.HTTPTestSuite
	callerID    uuid.UUID
}

func (suite *EventHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockEventServiceInterface(suite.ctrl)
	suite.callerID = uuid.New()

	handler := handlers.NewEventHandler(suite.mockService)
	h, v1 := authenticatedRouter(suite.callerID)
	v1.POST("/events", handler.CreateEvent)
	v1.GET("/events/:id", handler.GetEvent)
	v1.GET("/clubs/:id/events", handler.ListClubEvents)
	suite.httpSuite = h
}

func (suite *EventHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *EventHandlerTestSuite) TestCreateEvent() {
	clubID := uuid.New()

	suite.Run("Club event", func() {
		req := service.CreateEventRequest{ClubID: &clubID, Title: "Hackathon", MaxTeamMembers: 4}
		suite.mockService.EXPECT().CreateEvent(gomock.Any(), suite.callerID, &req).
			Return(&service.EventResponse{ID: uuid.New(), ClubID: &clubID, Title: "Hackathon", MaxTeamMembers: 4}, nil)

		rec := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/events", req)

		var resp service.EventResponse
		testutils.AssertJSONResponse(suite.T(), rec, http.StatusCreated, &resp)
		assert.Equal(suite.T(), &clubID, resp.ClubID)
		assert.Equal(suite.T(), 4, resp.MaxTeamMembers)
	})

	suite.Run("Platform event without privilege", func() {
		suite.mockService.EXPECT().CreateEvent(gomock.Any(), suite.callerID, gomock.Any()).Return(nil, apperrors.ErrForbidden)

		rec := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/events", service.CreateEventRequest{Title: "Open day", MaxTeamMembers: 2})
		testutils.AssertErrorResponse(suite.T(), rec, http.StatusForbidden, "authorization")
	})

	suite.Run("Zero capacity", func() {
		suite.mockService.EXPECT().CreateEvent(gomock.Any(), suite.callerID, gomock.Any()).
			Return(nil, apperrors.NewValidationError("max_team_members", "must be at least 1"))

		rec := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/events", service.CreateEventRequest{Title: "Quiz"})
		testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "validation")
	})
}

func (suite *EventHandlerTestSuite) TestQueries() {
	suite.Run("Get event", func() {
		eventID := uuid.New()
		suite.mockService.EXPECT().GetEvent(gomock.Any(), eventID).Return(&service.EventResponse{ID: eventID, Title: "Quiz"}, nil)

		rec := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/events/"+eventID.String(), nil)

		var resp service.EventResponse
		testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, &resp)
		assert.Equal(suite.T(), "Quiz", resp.Title)
	})

	suite.Run("Missing event", func() {
		suite.mockService.EXPECT().GetEvent(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrEventNotFound)

		rec := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/events/"+uuid.NewString(), nil)
		testutils.AssertErrorResponse(suite.T(), rec, http.StatusNotFound, "not_found")
	})

	suite.Run("Club events", func() {
		clubID := uuid.New()
		suite.mockService.EXPECT().ListClubEvents(gomock.Any(), clubID, 2, 4).
			Return(&service.EventListResponse{Events: []service.EventResponse{{Title: "A"}, {Title: "B"}}, Total: 6, Limit: 2, Offset: 4}, nil)

		rec := suite.httpSuite.MakeRequest(http.MethodGet, fmt.Sprintf("/api/v1/clubs/%s/events?limit=2&offset=4", clubID), nil)

		var resp service.EventListResponse
		testutils.AssertJSONResponse(suite.T(), rec, http.StatusOK, &resp)
		assert.Len(suite.T(), resp.Events, 2)
		assert.Equal(suite.T(), int64(6), resp.Total)
	})

	suite.Run("Bad offset", func() {
		rec := suite.httpSuite.MakeRequest(http.MethodGet, fmt.Sprintf("/api/v1/clubs/%s/events?offset=x", uuid.New()), nil)
		testutils.AssertErrorResponse(suite.T(), rec, http.StatusBadRequest, "validation")
	})
}

// Malformed input never reaches the service
func (suite *EventHandlerTestSuite) TestMalformedInput() {
	suite.httpSuite.RunHTTPTestCases(suite.T(), []testutils.HTTPTestCase{
		{
			Name:    "Event id is not a UUID",
			Request: testutils.MockHTTPRequest{Method: http.MethodGet, URL: "/api/v1/events/sumo"},
			ExpectedResponse: testutils.MockHTTPResponse{
				Status: http.StatusBadRequest,
				Body:   map[string]string{"error": "validation", "message": "validation error: id - must be a valid UUID"},
			},
		},
		{
			Name:    "Club id is not a UUID",
			Request: testutils.MockHTTPRequest{Method: http.MethodGet, URL: "/api/v1/clubs/42/events"},
			ExpectedResponse: testutils.MockHTTPResponse{
				Status: http.StatusBadRequest,
			},
		},
		{
			Name:    "Limit is not a number",
			Request: testutils.MockHTTPRequest{Method: http.MethodGet, URL: fmt.Sprintf("/api/v1/clubs/%s/events?limit=ten", uuid.New())},
			ExpectedResponse: testutils.MockHTTPResponse{
				Status: http.StatusBadRequest,
				Body:   map[string]string{"error": "validation", "message": "validation error: limit - invalid pagination parameters"},
			},
		},
		{
			Name: "Body is not JSON",
			Request: testutils.MockHTTPRequest{
				Method:  http.MethodPost,
				URL:     "/api/v1/events",
				Body:    "not an object",
				Headers: map[string]string{"X-Request-ID": "malformed-body"},
			},
			ExpectedResponse: testutils.MockHTTPResponse{
				Status: http.StatusBadRequest,
				Body:   map[string]string{"error": "validation", "message": "validation error: body - malformed JSON request body"},
			},
		},
	})
}

func TestEventHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EventHandlerTestSuite))
}
