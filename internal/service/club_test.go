package service_test

import (
	"sync"
	"testing"

	"club-coordination-backend/internal/database/models"
	apperrors "club-coordination-backend/internal/errors"
	"club-coordination-backend/internal/notification"
	"club-coordination-backend/internal/rbac"
	"club-coordination-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type ClubServiceTestSuite struct {
	coordinationSuite
}

func TestClubServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClubServiceTestSuite))
}

func (s *ClubServiceTestSuite) TestCreateClub() {
	chairman := s.newUser("alice")

	club, err := s.svc.Clubs.CreateClub(s.ctx, chairman, &service.CreateClubRequest{Name: "Robotics", RequiresApproval: true})
	s.Require().NoError(err)
	s.Equal(1, club.MemberCount)
	s.Equal(chairman, club.CreatedBy)
	s.True(club.RequiresApproval)

	m, err := s.svc.Clubs.GetMyMembership(s.ctx, club.ID, chairman)
	s.Require().NoError(err)
	s.Equal(models.MembershipStatusActive, m.Status)
	s.Equal(rbac.RoleChairman, m.Role)

	_, err = s.svc.Clubs.CreateClub(s.ctx, s.newUser("bob"), &service.CreateClubRequest{Name: "Robotics"})
	s.ErrorIs(err, apperrors.ErrClubNameTaken)

	_, err = s.svc.Clubs.CreateClub(s.ctx, chairman, &service.CreateClubRequest{})
	s.True(apperrors.IsValidation(err))
}

func (s *ClubServiceTestSuite) TestApprovalScenario() {
	chairman := s.newUser("alice")
	clubID := s.newClub(chairman, true)
	bob := s.newUser("bob")

	pending, err := s.svc.Clubs.RequestJoin(s.ctx, clubID, bob)
	s.Require().NoError(err)
	s.Equal(models.MembershipStatusPending, pending.Status)
	s.Equal(rbac.NoRole, pending.Role)
	s.Equal(1, s.memberCount(clubID))
	s.Len(s.eventsOf(notification.ClubJoinRequested), 1)

	active, err := s.svc.Clubs.Approve(s.ctx, clubID, pending.ID, chairman)
	s.Require().NoError(err)
	s.Equal(models.MembershipStatusActive, active.Status)
	s.Equal(rbac.RoleMember, active.Role)
	s.NotNil(active.JoinedAt)
	s.Equal(&chairman, active.DecidedBy)
	s.Equal(2, s.memberCount(clubID))

	approved := s.eventsOf(notification.ClubMemberApproved)
	s.Require().Len(approved, 1)
	s.Equal(bob, approved[0].SubjectID)
	s.Equal([]uuid.UUID{bob}, approved[0].Recipients)
}

func (s *ClubServiceTestSuite) TestOpenClubAdmitsImmediately() {
	chairman := s.newUser("alice")
	clubID := s.newClub(chairman, false)

	m, err := s.svc.Clubs.RequestJoin(s.ctx, clubID, s.newUser("bob"))
	s.Require().NoError(err)
	s.Equal(models.MembershipStatusActive, m.Status)
	s.Equal(rbac.RoleMember, m.Role)
	s.Equal(2, s.memberCount(clubID))
	s.Empty(s.eventsOf(notification.ClubJoinRequested))
	s.Len(s.eventsOf(notification.ClubMemberApproved), 1)
}

func (s *ClubServiceTestSuite) TestRequestJoinTwice() {
	chairman := s.newUser("alice")
	clubID := s.newClub(chairman, true)
	bob := s.newUser("bob")

	_, err := s.svc.Clubs.RequestJoin(s.ctx, clubID, bob)
	s.Require().NoError(err)

	_, err = s.svc.Clubs.RequestJoin(s.ctx, clubID, bob)
	s.ErrorIs(err, apperrors.ErrMembershipExists)

	_, err = s.svc.Clubs.RequestJoin(s.ctx, uuid.New(), bob)
	s.True(apperrors.IsNotFound(err))
}

func (s *ClubServiceTestSuite) TestDoubleApprove() {
	chairman := s.newUser("alice")
	clubID := s.newClub(chairman, true)
	pending, err := s.svc.Clubs.RequestJoin(s.ctx, clubID, s.newUser("bob"))
	s.Require().NoError(err)

	_, err = s.svc.Clubs.Approve(s.ctx, clubID, pending.ID, chairman)
	s.Require().NoError(err)

	_, err = s.svc.Clubs.Approve(s.ctx, clubID, pending.ID, chairman)
	s.ErrorIs(err, apperrors.ErrMembershipAlreadyProcessed)
	s.Equal(apperrors.KindConflict, apperrors.KindOf(err))
	s.Equal(2, s.memberCount(clubID))
}

func (s *ClubServiceTestSuite) TestConcurrentApprove() {
	chairman := s.newUser("alice")
	secretary := s.newUser("sam")
	clubID := s.newClub(chairman, true)
	s.grantRole(clubID, chairman, secretary, rbac.RoleSecretary)

	pending, err := s.svc.Clubs.RequestJoin(s.ctx, clubID, s.newUser("bob"))
	s.Require().NoError(err)

	const attempts = 10
	var wg sync.WaitGroup
	errs := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		actor := chairman
		if i%2 == 1 {
			actor = secretary
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.svc.Clubs.Approve(s.ctx, clubID, pending.ID, actor)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		s.ErrorIs(err, apperrors.ErrMembershipAlreadyProcessed)
	}
	s.Equal(1, succeeded)
	s.Equal(3, s.memberCount(clubID))
}

func (s *ClubServiceTestSuite) TestNoRoleInClubIsDenied() {
	chairman := s.newUser("alice")
	clubID := s.newClub(chairman, true)
	bob := s.newUser("bob")
	pending, err := s.svc.Clubs.RequestJoin(s.ctx, clubID, bob)
	s.Require().NoError(err)

	// A platform-wide chairman has no role in this club.
	outsider := s.newUserWithGlobalRole("dean", rbac.RoleChairman)

	_, err = s.svc.Clubs.Approve(s.ctx, clubID, pending.ID, outsider)
	s.True(apperrors.IsAuthorization(err))
	_, err = s.svc.Clubs.Reject(s.ctx, clubID, pending.ID, outsider)
	s.True(apperrors.IsAuthorization(err))

	carol := s.newUser("carol")
	s.addMember(clubID, chairman, carol)
	_, err = s.svc.Clubs.UpdateRole(s.ctx, clubID, carol, outsider, &service.UpdateRoleRequest{Role: rbac.RoleSecretary})
	s.True(apperrors.IsAuthorization(err))

	// A pending requester has no role either.
	waiting := s.newUser("dave")
	_, err = s.svc.Clubs.RequestJoin(s.ctx, clubID, waiting)
	s.Require().NoError(err)
	_, err = s.svc.Clubs.Approve(s.ctx, clubID, pending.ID, waiting)
	s.True(apperrors.IsAuthorization(err))

	m, err := s.svc.Clubs.GetMyMembership(s.ctx, clubID, bob)
	s.Require().NoError(err)
	s.Equal(models.MembershipStatusPending, m.Status)
}

func (s *ClubServiceTestSuite) TestMemberCannotApprove() {
	chairman := s.newUser("alice")
	clubID := s.newClub(chairman, true)
	member := s.newUser("bob")
	s.addMember(clubID, chairman, member)

	pending, err := s.svc.Clubs.RequestJoin(s.ctx, clubID, s.newUser("carol"))
	s.Require().NoError(err)

	_, err = s.svc.Clubs.Approve(s.ctx, clubID, pending.ID, member)
	s.True(apperrors.IsAuthorization(err))
	s.Equal(2, s.memberCount(clubID))
}

func (s *ClubServiceTestSuite) TestRejectAllowsNewRequest() {
	chairman := s.newUser("alice")
	clubID := s.newClub(chairman, true)
	bob := s.newUser("bob")

	pending, err := s.svc.Clubs.RequestJoin(s.ctx, clubID, bob)
	s.Require().NoError(err)

	rejected, err := s.svc.Clubs.Reject(s.ctx, clubID, pending.ID, chairman)
	s.Require().NoError(err)
	s.Equal(models.MembershipStatusRejected, rejected.Status)
	s.Equal(1, s.memberCount(clubID))
	s.Len(s.eventsOf(notification.ClubMemberRejected), 1)

	_, err = s.svc.Clubs.Approve(s.ctx, clubID, pending.ID, chairman)
	s.ErrorIs(err, apperrors.ErrMembershipAlreadyProcessed)

	again, err := s.svc.Clubs.RequestJoin(s.ctx, clubID, bob)
	s.Require().NoError(err)
	s.NotEqual(pending.ID, again.ID)
}

func (s *ClubServiceTestSuite) TestWithdrawJoin() {
	chairman := s.newUser("alice")
	clubID := s.newClub(chairman, true)
	bob := s.newUser("bob")

	_, err := s.svc.Clubs.RequestJoin(s.ctx, clubID, bob)
	s.Require().NoError(err)
	s.Require().NoError(s.svc.Clubs.WithdrawJoin(s.ctx, clubID, bob))

	_, err = s.svc.Clubs.GetMyMembership(s.ctx, clubID, bob)
	s.True(apperrors.IsNotFound(err))

	s.addMember(clubID, chairman, bob)
	err = s.svc.Clubs.WithdrawJoin(s.ctx, clubID, bob)
	s.ErrorIs(err, apperrors.ErrMembershipNotPending)
	s.Equal(2, s.memberCount(clubID))
}

func (s *ClubServiceTestSuite) TestLeave() {
	chairman := s.newUser("alice")
	clubID := s.newClub(chairman, false)
	bob := s.newUser("bob")
	s.addMember(clubID, chairman, bob)
	s.Require().Equal(2, s.memberCount(clubID))

	s.Require().NoError(s.svc.Clubs.Leave(s.ctx, clubID, bob))
	s.Equal(1, s.memberCount(clubID))
	s.Len(s.eventsOf(notification.ClubMemberLeft), 1)

	err := s.svc.Clubs.Leave(s.ctx, clubID, bob)
	s.True(apperrors.IsNotFound(err))

	err = s.svc.Clubs.Leave(s.ctx, clubID, chairman)
	s.ErrorIs(err, apperrors.ErrClubLeaderCannotLeave)
	s.Equal(1, s.memberCount(clubID))
}

func (s *ClubServiceTestSuite) TestExpel() {
	chairman := s.newUser("alice")
	clubID := s.newClub(chairman, false)
	secretary := s.newUser("sam")
	vice := s.newUser("victor")
	member := s.newUser("bob")
	s.grantRole(clubID, chairman, secretary, rbac.RoleSecretary)
	s.grantRole(clubID, chairman, vice, rbac.RoleViceChairman)
	s.addMember(clubID, chairman, member)
	s.Require().Equal(4, s.memberCount(clubID))

	s.Run("self expel is a validation error", func() {
		err := s.svc.Clubs.Expel(s.ctx, clubID, secretary, secretary)
		s.True(apperrors.IsValidation(err))
	})

	s.Run("member lacks manage_members", func() {
		err := s.svc.Clubs.Expel(s.ctx, clubID, secretary, member)
		s.True(apperrors.IsAuthorization(err))
	})

	s.Run("secretary cannot expel a higher rank", func() {
		err := s.svc.Clubs.Expel(s.ctx, clubID, vice, secretary)
		s.ErrorIs(err, apperrors.ErrInsufficientRank)
	})

	s.Run("chairman cannot be expelled", func() {
		err := s.svc.Clubs.Expel(s.ctx, clubID, chairman, vice)
		s.ErrorIs(err, apperrors.ErrClubLeaderCannotBeExpelled)
	})

	s.Run("secretary expels a member", func() {
		s.Require().NoError(s.svc.Clubs.Expel(s.ctx, clubID, member, secretary))
		s.Equal(3, s.memberCount(clubID))
		expelled := s.eventsOf(notification.ClubMemberExpelled)
		s.Require().Len(expelled, 1)
		s.Equal(member, expelled[0].SubjectID)
	})
}

func (s *ClubServiceTestSuite) TestUpdateRole() {
	chairman := s.newUser("alice")
	clubID := s.newClub(chairman, false)
	secretary := s.newUser("sam")
	member := s.newUser("bob")
	s.grantRole(clubID, chairman, secretary, rbac.RoleSecretary)
	s.addMember(clubID, chairman, member)

	s.Run("secretary promotes below their own rank", func() {
		m, err := s.svc.Clubs.UpdateRole(s.ctx, clubID, member, secretary, &service.UpdateRoleRequest{Role: rbac.RoleEventHead})
		s.Require().NoError(err)
		s.Equal(rbac.RoleEventHead, m.Role)
	})

	s.Run("promotion ceiling", func() {
		_, err := s.svc.Clubs.UpdateRole(s.ctx, clubID, member, secretary, &service.UpdateRoleRequest{Role: rbac.RoleViceChairman})
		s.ErrorIs(err, apperrors.ErrInsufficientRank)
		_, err = s.svc.Clubs.UpdateRole(s.ctx, clubID, member, secretary, &service.UpdateRoleRequest{Role: rbac.RoleSecretary})
		s.ErrorIs(err, apperrors.ErrInsufficientRank)
	})

	s.Run("chairman role is immutable", func() {
		_, err := s.svc.Clubs.UpdateRole(s.ctx, clubID, member, chairman, &service.UpdateRoleRequest{Role: rbac.RoleChairman})
		s.ErrorIs(err, apperrors.ErrLeaderRoleImmutable)
		_, err = s.svc.Clubs.UpdateRole(s.ctx, clubID, chairman, secretary, &service.UpdateRoleRequest{Role: rbac.RoleMember})
		s.ErrorIs(err, apperrors.ErrLeaderRoleImmutable)
	})

	s.Run("unknown role", func() {
		_, err := s.svc.Clubs.UpdateRole(s.ctx, clubID, member, chairman, &service.UpdateRoleRequest{Role: "janitor"})
		s.True(apperrors.IsValidation(err))
		_, err = s.svc.Clubs.UpdateRole(s.ctx, clubID, member, chairman, &service.UpdateRoleRequest{Role: rbac.RoleUser})
		s.True(apperrors.IsValidation(err))
	})

	s.Run("own role cannot be changed", func() {
		_, err := s.svc.Clubs.UpdateRole(s.ctx, clubID, secretary, secretary, &service.UpdateRoleRequest{Role: rbac.RoleMember})
		s.ErrorIs(err, apperrors.ErrInsufficientRank)
	})

	s.Run("unchanged role emits nothing", func() {
		before := len(s.eventsOf(notification.ClubRoleUpdated))
		_, err := s.svc.Clubs.UpdateRole(s.ctx, clubID, member, chairman, &service.UpdateRoleRequest{Role: rbac.RoleEventHead})
		s.Require().NoError(err)
		s.Len(s.eventsOf(notification.ClubRoleUpdated), before)
	})

	s.Run("pending target", func() {
		clubWithApproval := s.newClub(chairman, true)
		carol := s.newUser("carol")
		_, err := s.svc.Clubs.RequestJoin(s.ctx, clubWithApproval, carol)
		s.Require().NoError(err)
		_, err = s.svc.Clubs.UpdateRole(s.ctx, clubWithApproval, carol, chairman, &service.UpdateRoleRequest{Role: rbac.RoleSecretary})
		s.ErrorIs(err, apperrors.ErrMembershipNotActive)
	})
}

func (s *ClubServiceTestSuite) TestUpdateRoleWithoutCeiling() {
	svc := service.New(s.mem.Repositories(), rbac.NewResolver(rbac.DefaultRegistry()), s.dispatcher, service.Options{MaxAttempts: 1})

	chairman := s.newUser("alice")
	clubID := s.newClub(chairman, false)
	secretary := s.newUser("sam")
	member := s.newUser("bob")
	s.grantRole(clubID, chairman, secretary, rbac.RoleSecretary)
	s.addMember(clubID, chairman, member)

	m, err := svc.Clubs.UpdateRole(s.ctx, clubID, member, secretary, &service.UpdateRoleRequest{Role: rbac.RoleViceChairman})
	s.Require().NoError(err)
	s.Equal(rbac.RoleViceChairman, m.Role)
}

func (s *ClubServiceTestSuite) TestListMemberships() {
	chairman := s.newUser("alice")
	clubID := s.newClub(chairman, true)
	member := s.newUser("bob")
	s.addMember(clubID, chairman, member)
	_, err := s.svc.Clubs.RequestJoin(s.ctx, clubID, s.newUser("carol"))
	s.Require().NoError(err)

	active, err := s.svc.Clubs.ListMemberships(s.ctx, clubID, member, models.MembershipStatusActive, 0, 0)
	s.Require().NoError(err)
	s.EqualValues(2, active.Total)
	s.Equal(20, active.Limit)

	_, err = s.svc.Clubs.ListMemberships(s.ctx, clubID, member, models.MembershipStatusPending, 0, 0)
	s.True(apperrors.IsAuthorization(err))

	pending, err := s.svc.Clubs.ListMemberships(s.ctx, clubID, chairman, models.MembershipStatusPending, 10, 0)
	s.Require().NoError(err)
	s.Require().Len(pending.Memberships, 1)
	s.Equal("carol", pending.Memberships[0].DisplayName)

	_, err = s.svc.Clubs.ListMemberships(s.ctx, clubID, s.newUser("eve"), models.MembershipStatusActive, 0, 0)
	s.True(apperrors.IsAuthorization(err))

	_, err = s.svc.Clubs.ListMemberships(s.ctx, clubID, chairman, "banned", 0, 0)
	s.ErrorIs(err, apperrors.ErrInvalidStatus)

	_, err = s.svc.Clubs.ListMemberships(s.ctx, clubID, chairman, "", 500, 0)
	s.ErrorIs(err, apperrors.ErrInvalidPaginationParams)
}

func (s *ClubServiceTestSuite) TestListClubs() {
	chairman := s.newUser("alice")
	s.newClub(chairman, false)
	s.newClub(chairman, true)

	list, err := s.svc.Clubs.ListClubs(s.ctx, 1, 0)
	s.Require().NoError(err)
	s.EqualValues(2, list.Total)
	s.Len(list.Clubs, 1)

	_, err = s.svc.Clubs.ListClubs(s.ctx, -1, 0)
	s.True(apperrors.IsValidation(err))
}
