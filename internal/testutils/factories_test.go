package testutils

import (
	"testing"

	"club-coordination-backend/internal/database/models"
	"club-coordination-backend/internal/rbac"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFactoriesBuildDistinctRecords(t *testing.T) {
	factories := NewFactorySet()

	a, b := factories.User.Create(), factories.User.Create()
	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, a.Email, b.Email)
	assert.Equal(t, rbac.RoleMember, a.GlobalRole)
	assert.Equal(t, rbac.RoleChairman, factories.User.WithGlobalRole(rbac.RoleChairman).GlobalRole)

	assert.NotEqual(t, factories.Club.Create().Name, factories.Club.Create().Name)
	assert.True(t, factories.Club.WithApproval().RequiresApproval)
	assert.Equal(t, "named", factories.Team.WithName("named").Name)
}

func TestTeamFactoryFollowsEvent(t *testing.T) {
	factories := NewFactorySet()
	clubID := uuid.New()

	event := factories.Event.WithClub(clubID)
	assert.Equal(t, &clubID, event.ClubID)

	event = factories.Event.WithCapacity(5)
	leader := uuid.New()
	team := factories.Team.ForEvent(event, leader)
	assert.Equal(t, event.ID, team.EventID)
	assert.Equal(t, leader, team.LeaderID)
	assert.Equal(t, 5, team.MaxMembers)

	applicant := uuid.New()
	req := factories.JoinRequest.Create(team, applicant)
	assert.Equal(t, team.ID, req.TeamID)
	assert.Equal(t, team.EventID, req.EventID)
	assert.Equal(t, applicant, req.UserID)
	assert.Equal(t, models.JoinRequestStatusPending, req.Status)
}
