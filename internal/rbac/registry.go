// Package rbac holds the role registry and the authorization resolver used for
// every club-scoped and platform decision. Team authority is the team leader
// identity and does not go through the registry.
//
// There is exactly one evaluation rule: a capability is granted when the actor has
// a known role in the scope and that role's priority is at least the capability's
// minimum priority. A role's capability set is derived from that table.
package rbac

import (
	"fmt"
	"sort"
)

// Role identifies a role within a club or team scope
type Role string

const (
	RoleChairman       Role = "chairman"
	RoleViceChairman   Role = "vice_chairman"
	RoleSecretary      Role = "secretary"
	RoleEventHead      Role = "event_head"
	RoleTeamHead       Role = "team_head"
	RoleJointSecretary Role = "joint_secretary"
	RoleMember         Role = "member"
	RoleUser           Role = "user"
)

// Capability is a named permission granted by roles
type Capability string

const (
	CapViewClub         Capability = "view_club"
	CapPostAnnouncement Capability = "post_announcement"
	CapManageTeam       Capability = "manage_team"
	CapCreateEvent      Capability = "create_event"
	CapManageMembers    Capability = "manage_members"
	CapPromoteMembers   Capability = "promote_members"
	CapEditClub         Capability = "edit_club"
	CapDeleteClub       Capability = "delete_club"
)

// MaxPriority is the upper bound for role and capability priorities
const MaxPriority = 100

// LeaderRole is the club's designated leader. It has no succession path.
const LeaderRole = RoleChairman

// DefaultClubRole is granted to newly admitted members
const DefaultClubRole = RoleMember

var defaultPriorities = map[Role]int{
	RoleChairman:       100,
	RoleViceChairman:   90,
	RoleSecretary:      80,
	RoleEventHead:      70,
	RoleTeamHead:       60,
	RoleJointSecretary: 50,
	RoleMember:         10,
	RoleUser:           0,
}

var defaultCapabilities = map[Capability]int{
	CapViewClub:         10,
	CapPostAnnouncement: 50,
	CapManageTeam:       60,
	CapCreateEvent:      70,
	CapManageMembers:    80,
	CapPromoteMembers:   80,
	CapEditClub:         90,
	CapDeleteClub:       100,
}

// Registry is an immutable mapping from roles to priorities and from
// capabilities to the minimum priority that grants them.
type Registry struct {
	priorities   map[Role]int
	capabilities map[Capability]int
}

// Option customizes a registry at construction time
type Option func(*Registry) error

// WithCapabilityMinPriority overrides the minimum priority of a known capability
func WithCapabilityMinPriority(capability Capability, minPriority int) Option {
	return func(r *Registry) error {
		if _, ok := r.capabilities[capability]; !ok {
			return fmt.Errorf("unknown capability %q", capability)
		}
		if minPriority < 0 || minPriority > MaxPriority {
			return fmt.Errorf("capability %q: priority %d out of range [0,%d]", capability, minPriority, MaxPriority)
		}
		r.capabilities[capability] = minPriority
		return nil
	}
}

// WithRolePriority overrides the priority of a known role
func WithRolePriority(role Role, priority int) Option {
	return func(r *Registry) error {
		if _, ok := r.priorities[role]; !ok {
			return fmt.Errorf("unknown role %q", role)
		}
		if priority < 0 || priority > MaxPriority {
			return fmt.Errorf("role %q: priority %d out of range [0,%d]", role, priority, MaxPriority)
		}
		r.priorities[role] = priority
		return nil
	}
}

// NewRegistry builds a registry from the built-in table and the given overrides
func NewRegistry(opts ...Option) (*Registry, error) {
	r := &Registry{
		priorities:   make(map[Role]int, len(defaultPriorities)),
		capabilities: make(map[Capability]int, len(defaultCapabilities)),
	}
	for role, p := range defaultPriorities {
		r.priorities[role] = p
	}
	for c, p := range defaultCapabilities {
		r.capabilities[c] = p
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	if err := r.checkOrdering(); err != nil {
		return nil, err
	}
	return r, nil
}

// DefaultRegistry returns the built-in registry
func DefaultRegistry() *Registry {
	r, err := NewRegistry()
	if err != nil {
		panic(err)
	}
	return r
}

// checkOrdering keeps the priority order total and the leader role on top:
// two roles may not share a priority and no role may reach the leader's.
func (r *Registry) checkOrdering() error {
	leader := r.priorities[LeaderRole]
	seen := make(map[int]Role, len(r.priorities))
	for role, p := range r.priorities {
		if other, dup := seen[p]; dup {
			return fmt.Errorf("roles %q and %q share priority %d", other, role, p)
		}
		seen[p] = role
		if role != LeaderRole && p > leader {
			return fmt.Errorf("role %q: priority %d outranks the %s (%d)", role, p, LeaderRole, leader)
		}
	}
	return nil
}

// Priority returns the priority of a role and whether the role is known
func (r *Registry) Priority(role Role) (int, bool) {
	p, ok := r.priorities[role]
	return p, ok
}

// MinPriority returns the minimum priority for a capability and whether it is known
func (r *Registry) MinPriority(capability Capability) (int, bool) {
	p, ok := r.capabilities[capability]
	return p, ok
}

// IsKnown reports whether role is part of the registry
func (r *Registry) IsKnown(role Role) bool {
	_, ok := r.priorities[role]
	return ok
}

// Capabilities lists the capabilities granted to role, sorted by name
func (r *Registry) Capabilities(role Role) []Capability {
	p, ok := r.priorities[role]
	if !ok {
		return nil
	}
	var caps []Capability
	for c, min := range r.capabilities {
		if p >= min {
			caps = append(caps, c)
		}
	}
	sort.Slice(caps, func(i, j int) bool { return caps[i] < caps[j] })
	return caps
}

// Roles lists all roles from highest to lowest priority
func (r *Registry) Roles() []Role {
	roles := make([]Role, 0, len(r.priorities))
	for role := range r.priorities {
		roles = append(roles, role)
	}
	sort.Slice(roles, func(i, j int) bool { return r.priorities[roles[i]] > r.priorities[roles[j]] })
	return roles
}
