package models

import (
	"testing"

	"club-coordination-backend/internal/rbac"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestClubMembershipScopeRole(t *testing.T) {
	var missing *ClubMembership
	assert.Equal(t, rbac.NoRole, missing.ScopeRole())

	pending := &ClubMembership{Status: MembershipStatusPending, Role: rbac.RoleSecretary}
	assert.Equal(t, rbac.NoRole, pending.ScopeRole())

	active := &ClubMembership{Status: MembershipStatusActive, Role: rbac.RoleSecretary}
	assert.Equal(t, rbac.RoleSecretary, active.ScopeRole())
}

func TestTeamRoster(t *testing.T) {
	leader := uuid.New()
	team := &Team{LeaderID: leader, MaxMembers: 2, Members: []TeamMember{{UserID: leader}}}

	assert.True(t, team.HasMember(leader))
	assert.False(t, team.HasMember(uuid.New()))

	team.SetCount(1)
	assert.False(t, team.IsFull)
	team.SetCount(2)
	assert.True(t, team.IsFull)
}

func TestStatusValidity(t *testing.T) {
	assert.True(t, MembershipStatusRejected.IsValid())
	assert.False(t, MembershipStatus("archived").IsValid())

	assert.True(t, JoinRequestStatusWithdrawn.IsValid())
	assert.True(t, JoinRequestStatusPending.IsLive())
	assert.True(t, JoinRequestStatusAccepted.IsLive())
	assert.False(t, JoinRequestStatusRejected.IsLive())
	assert.False(t, JoinRequestStatusWithdrawn.IsLive())
}
