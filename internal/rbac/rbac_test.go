package rbac

import (
	"os"
	"path/filepath"
	"testing"

	apperrors "club-coordination-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()

	t.Run("priorities are strictly ordered", func(t *testing.T) {
		roles := r.Roles()
		require.Len(t, roles, 8)
		assert.Equal(t, RoleChairman, roles[0])
		assert.Equal(t, RoleUser, roles[len(roles)-1])
		for i := 1; i < len(roles); i++ {
			prev, _ := r.Priority(roles[i-1])
			cur, _ := r.Priority(roles[i])
			assert.Greater(t, prev, cur)
		}
	})

	t.Run("capability sets are derived from priority", func(t *testing.T) {
		assert.ElementsMatch(t, []Capability{CapViewClub}, r.Capabilities(RoleMember))
		assert.Contains(t, r.Capabilities(RoleSecretary), CapManageMembers)
		assert.NotContains(t, r.Capabilities(RoleEventHead), CapManageMembers)
		assert.Empty(t, r.Capabilities(RoleUser))
		assert.Nil(t, r.Capabilities(Role("janitor")))
	})
}

func TestNewRegistryOverrides(t *testing.T) {
	t.Run("capability override", func(t *testing.T) {
		r, err := NewRegistry(WithCapabilityMinPriority(CapPromoteMembers, 90))
		require.NoError(t, err)
		min, ok := r.MinPriority(CapPromoteMembers)
		assert.True(t, ok)
		assert.Equal(t, 90, min)
	})

	t.Run("unknown capability", func(t *testing.T) {
		_, err := NewRegistry(WithCapabilityMinPriority("launch_rockets", 10))
		assert.Error(t, err)
	})

	t.Run("out of range priority", func(t *testing.T) {
		_, err := NewRegistry(WithRolePriority(RoleSecretary, 101))
		assert.Error(t, err)
	})

	t.Run("duplicate role priority breaks total order", func(t *testing.T) {
		_, err := NewRegistry(WithRolePriority(RoleSecretary, 90))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "share priority")
	})

	t.Run("chairman must stay highest", func(t *testing.T) {
		_, err := NewRegistry(WithRolePriority(RoleChairman, 85))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "outranks the chairman")

		r, err := NewRegistry(WithRolePriority(RoleChairman, 95))
		require.NoError(t, err)
		assert.Equal(t, RoleChairman, r.Roles()[0])
	})
}

func TestResolverAuthorize(t *testing.T) {
	resolver := NewResolver(DefaultRegistry())

	testCases := []struct {
		name       string
		role       Role
		capability Capability
		allowed    bool
	}{
		{"chairman approves", RoleChairman, CapManageMembers, true},
		{"secretary approves", RoleSecretary, CapManageMembers, true},
		{"event head cannot approve", RoleEventHead, CapManageMembers, false},
		{"member views club", RoleMember, CapViewClub, true},
		{"member cannot promote", RoleMember, CapPromoteMembers, false},
		{"no role is denied even the lowest capability", NoRole, CapViewClub, false},
		{"unknown role is denied", Role("superuser"), CapViewClub, false},
		{"unknown capability is denied", RoleChairman, Capability("teleport"), false},
		{"team head manages team", RoleTeamHead, CapManageTeam, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := resolver.Authorize(tc.role, tc.capability)
			assert.Equal(t, tc.allowed, resolver.Allows(tc.role, tc.capability))
			if tc.allowed {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.True(t, apperrors.IsAuthorization(err))
			}
		})
	}
}

func TestResolverOutranks(t *testing.T) {
	resolver := NewResolver(DefaultRegistry())

	assert.True(t, resolver.Outranks(RoleChairman, RoleSecretary))
	assert.False(t, resolver.Outranks(RoleSecretary, RoleSecretary))
	assert.False(t, resolver.Outranks(RoleMember, RoleSecretary))
	assert.False(t, resolver.Outranks(NoRole, RoleUser))
	assert.True(t, resolver.Outranks(RoleMember, Role("legacy")))
}

func TestTeamRole(t *testing.T) {
	assert.Equal(t, RoleTeamHead, TeamRole(true, true))
	assert.Equal(t, RoleMember, TeamRole(false, true))
	assert.Equal(t, NoRole, TeamRole(false, false))
}

func TestPolicy(t *testing.T) {
	t.Run("parse and apply", func(t *testing.T) {
		policy, err := ParsePolicy([]byte("roles:\n  event_head: 75\ncapabilities:\n  promote_members: 95\n"))
		require.NoError(t, err)

		r, err := NewRegistry(policy.Options()...)
		require.NoError(t, err)

		p, _ := r.Priority(RoleEventHead)
		assert.Equal(t, 75, p)
		min, _ := r.MinPriority(CapPromoteMembers)
		assert.Equal(t, 95, min)
	})

	t.Run("load from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "roles.yaml")
		require.NoError(t, os.WriteFile(path, []byte("capabilities:\n  manage_members: 90\n"), 0o600))

		policy, err := LoadPolicy(path)
		require.NoError(t, err)
		assert.Equal(t, 90, policy.Capabilities[CapManageMembers])
	})

	t.Run("empty path", func(t *testing.T) {
		policy, err := LoadPolicy("")
		require.NoError(t, err)
		assert.Empty(t, policy.Options())
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := ParsePolicy([]byte("roles: [unterminated"))
		assert.Error(t, err)
	})
}
