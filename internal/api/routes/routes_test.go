package routes_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"club-coordination-backend/internal/api/routes"
	"club-coordination-backend/internal/auth"
	"club-coordination-backend/internal/config"
	"club-coordination-backend/internal/notification"
	"club-coordination-backend/internal/rbac"
	"club-coordination-backend/internal/repository/memory"
	"club-coordination-backend/internal/service"
	"club-coordination-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RoutesTestSuite struct {
	suite.Suite
	http   *testutils.HTTPTestSuite
	tokens map[string]string
}

func (s *RoutesTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	repos := store.Repositories()
	services := service.New(repos, rbac.NewResolver(rbac.DefaultRegistry()), notification.NewLogDispatcher(),
		service.Options{MaxAttempts: 3, EnforcePromotionCeiling: true})

	authService, err := auth.NewAuthService("routes-test-secret", time.Hour)
	s.Require().NoError(err)

	router := routes.SetupRoutes(routes.Dependencies{
		Config:   &config.Config{Environment: "development", AllowedOrigins: []string{"http://localhost:5173"}},
		Services: services,
		Auth:     authService,
		Store:    repos.Pinger,
	})
	s.http = &testutils.HTTPTestSuite{Router: router}
	s.tokens = make(map[string]string)
}

// token signs in through the development endpoint
func (s *RoutesTestSuite) token(name string) string {
	if tok, ok := s.tokens[name]; ok {
		return tok
	}
	rec := s.http.MakeRequest(http.MethodPost, "/api/auth/dev-token", auth.DevTokenRequest{Email: name + "@campus.edu", DisplayName: name})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var resp auth.DevTokenResponse
	testutils.ParseJSONResponse(s.T(), rec, &resp)
	s.tokens[name] = resp.AccessToken
	return resp.AccessToken
}

func (s *RoutesTestSuite) do(who, method, url string, body interface{}, status int, target interface{}) {
	rec := s.http.MakeAuthedRequest(method, url, s.token(who), body)
	s.Require().Equal(status, rec.Code, "%s %s: %s", method, url, rec.Body.String())
	if target != nil {
		testutils.ParseJSONResponse(s.T(), rec, target)
	}
}

func (s *RoutesTestSuite) TestHealthAndAuthBoundary() {
	rec := s.http.MakeRequest(http.MethodGet, "/health", nil)
	assert.Equal(s.T(), http.StatusOK, rec.Code)
	assert.NotEmpty(s.T(), rec.Header().Get("X-Request-ID"))

	rec = s.http.MakeRequest(http.MethodGet, "/api/v1/clubs", nil)
	testutils.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "authentication")

	rec = s.http.MakeAuthedRequest(http.MethodGet, "/api/v1/clubs", "forged", nil)
	testutils.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "authentication")
}

func (s *RoutesTestSuite) TestClubAndTeamLifecycle() {
	var me service.UserResponse
	s.do("alice", http.MethodGet, "/api/v1/users/me", nil, http.StatusOK, &me)
	assert.Equal(s.T(), "alice@campus.edu", me.Email)

	// Alice founds an approval-gated club and becomes its chairman
	var club service.ClubResponse
	s.do("alice", http.MethodPost, "/api/v1/clubs", service.CreateClubRequest{Name: "Robotics", RequiresApproval: true}, http.StatusCreated, &club)
	assert.Equal(s.T(), 1, club.MemberCount)

	// Bob applies and waits for approval
	var pending service.MembershipResponse
	s.do("bob", http.MethodPost, fmt.Sprintf("/api/v1/clubs/%s/join", club.ID), nil, http.StatusCreated, &pending)
	s.do("bob", http.MethodPost, fmt.Sprintf("/api/v1/clubs/%s/join", club.ID), nil, http.StatusConflict, nil)
	s.do("bob", http.MethodGet, fmt.Sprintf("/api/v1/clubs/%s/memberships?status=pending", club.ID), nil, http.StatusForbidden, nil)

	var queue service.MembershipListResponse
	s.do("alice", http.MethodGet, fmt.Sprintf("/api/v1/clubs/%s/memberships?status=pending", club.ID), nil, http.StatusOK, &queue)
	require.Len(s.T(), queue.Memberships, 1)

	s.do("alice", http.MethodPost, fmt.Sprintf("/api/v1/clubs/%s/memberships/%s/approve", club.ID, pending.ID), nil, http.StatusOK, nil)
	s.do("alice", http.MethodPost, fmt.Sprintf("/api/v1/clubs/%s/memberships/%s/approve", club.ID, pending.ID), nil, http.StatusConflict, nil)

	s.do("alice", http.MethodGet, "/api/v1/clubs/"+club.ID.String(), nil, http.StatusOK, &club)
	assert.Equal(s.T(), 2, club.MemberCount)

	// A plain member cannot create club events
	s.do("bob", http.MethodPost, "/api/v1/events", service.CreateEventRequest{ClubID: &club.ID, Title: "Sumo", MaxTeamMembers: 2}, http.StatusForbidden, nil)

	var event service.EventResponse
	s.do("alice", http.MethodPost, "/api/v1/events", service.CreateEventRequest{ClubID: &club.ID, Title: "Sumo", MaxTeamMembers: 2}, http.StatusCreated, &event)

	// Bob leads a two-seat team; carol gets the last seat and dave is turned away
	var team service.TeamResponse
	s.do("bob", http.MethodPost, fmt.Sprintf("/api/v1/events/%s/teams", event.ID), service.CreateTeamRequest{Name: "Crushers"}, http.StatusCreated, &team)

	var carolReq, daveReq service.JoinRequestResponse
	s.do("carol", http.MethodPost, fmt.Sprintf("/api/v1/teams/%s/join-requests", team.ID), nil, http.StatusCreated, &carolReq)
	s.do("dave", http.MethodPost, fmt.Sprintf("/api/v1/teams/%s/join-requests", team.ID), nil, http.StatusCreated, &daveReq)

	s.do("carol", http.MethodPost, fmt.Sprintf("/api/v1/teams/%s/join-requests/%s/accept", team.ID, daveReq.ID), nil, http.StatusForbidden, nil)
	s.do("bob", http.MethodPost, fmt.Sprintf("/api/v1/teams/%s/join-requests/%s/accept", team.ID, carolReq.ID), nil, http.StatusOK, &team)
	assert.Equal(s.T(), 2, team.CurrentMembers)
	assert.True(s.T(), team.IsFull)

	rec := s.http.MakeAuthedRequest(http.MethodPost, fmt.Sprintf("/api/v1/teams/%s/join-requests/%s/accept", team.ID, daveReq.ID), s.token("bob"), nil)
	testutils.AssertErrorResponse(s.T(), rec, http.StatusConflict, "conflict")

	// Discussion is members only
	s.do("carol", http.MethodPost, fmt.Sprintf("/api/v1/teams/%s/messages", team.ID), service.PostMessageRequest{Body: "hello"}, http.StatusCreated, nil)
	s.do("dave", http.MethodGet, fmt.Sprintf("/api/v1/teams/%s/messages", team.ID), nil, http.StatusForbidden, nil)

	var msgs service.MessageListResponse
	s.do("bob", http.MethodGet, fmt.Sprintf("/api/v1/teams/%s/messages", team.ID), nil, http.StatusOK, &msgs)
	assert.Equal(s.T(), int64(1), msgs.Total)

	// Dave withdraws and the leader disbands
	s.do("dave", http.MethodDelete, "/api/v1/join-requests/"+daveReq.ID.String(), nil, http.StatusOK, nil)
	s.do("bob", http.MethodPost, fmt.Sprintf("/api/v1/teams/%s/leave", team.ID), nil, http.StatusConflict, nil)
	s.do("bob", http.MethodDelete, "/api/v1/teams/"+team.ID.String(), nil, http.StatusNoContent, nil)
	s.do("bob", http.MethodGet, "/api/v1/teams/"+team.ID.String(), nil, http.StatusNotFound, nil)
}

func (s *RoutesTestSuite) TestDevTokenOnlyInDevelopment() {
	store := memory.NewStore()
	repos := store.Repositories()
	services := service.New(repos, rbac.NewResolver(rbac.DefaultRegistry()), notification.NewLogDispatcher(), service.Options{MaxAttempts: 1})
	authService, err := auth.NewAuthService("prod-secret", time.Hour)
	s.Require().NoError(err)

	router := routes.SetupRoutes(routes.Dependencies{
		Config:   &config.Config{Environment: "production"},
		Services: services,
		Auth:     authService,
		Store:    repos.Pinger,
	})
	h := &testutils.HTTPTestSuite{Router: router}

	rec := h.MakeRequest(http.MethodPost, "/api/auth/dev-token", auth.DevTokenRequest{Email: "eve@campus.edu"})
	assert.Equal(s.T(), http.StatusNotFound, rec.Code)
}

func TestRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}
