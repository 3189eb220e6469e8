package service_test

import (
	"context"
	"fmt"
	"sync"

	"club-coordination-backend/internal/database/models"
	"club-coordination-backend/internal/mocks"
	"club-coordination-backend/internal/notification"
	"club-coordination-backend/internal/rbac"
	"club-coordination-backend/internal/repository/memory"
	"club-coordination-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// coordinationSuite runs the services against the in-process store and records dispatched events
type coordinationSuite struct {
	suite.Suite
	ctx        context.Context
	ctrl       *gomock.Controller
	mem        *memory.Store
	dispatcher *mocks.MockDispatcher
	svc        *service.Services

	mu         sync.Mutex
	dispatched []notification.Event
}

func (s *coordinationSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mem = memory.NewStore()
	s.dispatched = nil

	s.dispatcher = mocks.NewMockDispatcher(s.ctrl)
	s.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e notification.Event) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.dispatched = append(s.dispatched, e)
			return nil
		}).AnyTimes()

	s.svc = service.New(s.mem.Repositories(), rbac.NewResolver(rbac.DefaultRegistry()), s.dispatcher, service.Options{
		MaxAttempts:             3,
		EnforcePromotionCeiling: true,
	})
}

func (s *coordinationSuite) TearDownTest() {
	s.ctrl.Finish()
}

// eventsOf returns the dispatched events of type t
func (s *coordinationSuite) eventsOf(t notification.EventType) []notification.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []notification.Event
	for _, e := range s.dispatched {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func (s *coordinationSuite) newUser(name string) uuid.UUID {
	u, err := s.svc.Users.Provision(s.ctx, fmt.Sprintf("%s@campus.edu", name), name)
	s.Require().NoError(err)
	return u.ID
}

// newUserWithGlobalRole provisions a user directly in the store with a platform role
func (s *coordinationSuite) newUserWithGlobalRole(name string, role rbac.Role) uuid.UUID {
	u, err := s.mem.Repositories().Users.FindOrCreate(s.ctx, &models.User{
		Email:       fmt.Sprintf("%s@campus.edu", name),
		DisplayName: name,
		GlobalRole:  role,
	})
	s.Require().NoError(err)
	return u.ID
}

func (s *coordinationSuite) newClub(chairman uuid.UUID, requiresApproval bool) uuid.UUID {
	club, err := s.svc.Clubs.CreateClub(s.ctx, chairman, &service.CreateClubRequest{
		Name:             fmt.Sprintf("club-%s", uuid.NewString()[:8]),
		RequiresApproval: requiresApproval,
	})
	s.Require().NoError(err)
	return club.ID
}

// addMember admits userID into an approval-gated club through the chairman
func (s *coordinationSuite) addMember(clubID, chairman, userID uuid.UUID) {
	m, err := s.svc.Clubs.RequestJoin(s.ctx, clubID, userID)
	s.Require().NoError(err)
	if m.Status == models.MembershipStatusPending {
		_, err = s.svc.Clubs.Approve(s.ctx, clubID, m.ID, chairman)
		s.Require().NoError(err)
	}
}

// grantRole admits userID and gives them role
func (s *coordinationSuite) grantRole(clubID, chairman, userID uuid.UUID, role rbac.Role) {
	s.addMember(clubID, chairman, userID)
	_, err := s.svc.Clubs.UpdateRole(s.ctx, clubID, userID, chairman, &service.UpdateRoleRequest{Role: role})
	s.Require().NoError(err)
}

func (s *coordinationSuite) memberCount(clubID uuid.UUID) int {
	club, err := s.svc.Clubs.GetClub(s.ctx, clubID)
	s.Require().NoError(err)
	return club.MemberCount
}

// newEvent creates a club event with the given team size limit
func (s *coordinationSuite) newEvent(maxTeamMembers int) uuid.UUID {
	chairman := s.newUser(fmt.Sprintf("organizer-%s", uuid.NewString()[:8]))
	clubID := s.newClub(chairman, false)
	event, err := s.svc.Events.CreateEvent(s.ctx, chairman, &service.CreateEventRequest{
		ClubID:         &clubID,
		Title:          "Hackathon",
		MaxTeamMembers: maxTeamMembers,
	})
	s.Require().NoError(err)
	return event.ID
}

func (s *coordinationSuite) newTeam(eventID, leader uuid.UUID) *service.TeamResponse {
	team, err := s.svc.Teams.CreateTeam(s.ctx, eventID, leader, &service.CreateTeamRequest{
		Name: fmt.Sprintf("team-%s", uuid.NewString()[:8]),
	})
	s.Require().NoError(err)
	return team
}

func (s *coordinationSuite) requestTeam(teamID, userID uuid.UUID) uuid.UUID {
	req, err := s.svc.Teams.RequestJoin(s.ctx, teamID, userID, &service.JoinTeamRequest{})
	s.Require().NoError(err)
	return req.ID
}
