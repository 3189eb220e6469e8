package rbac

import (
	"fmt"

	apperrors "club-coordination-backend/internal/errors"
)

// NoRole is the role of an actor without a role record in the scope
const NoRole Role = ""

// Resolver answers allow/deny questions against a Registry
type Resolver struct {
	registry *Registry
}

// NewResolver creates a resolver over registry
func NewResolver(registry *Registry) *Resolver {
	return &Resolver{registry: registry}
}

// Registry returns the underlying registry
func (r *Resolver) Registry() *Registry {
	return r.registry
}

// Allows reports whether role grants capability. Unknown roles and NoRole never do.
func (r *Resolver) Allows(role Role, capability Capability) bool {
	if role == NoRole {
		return false
	}
	priority, ok := r.registry.Priority(role)
	if !ok {
		return false
	}
	min, ok := r.registry.MinPriority(capability)
	if !ok {
		return false
	}
	return priority >= min
}

// Authorize returns an AuthorizationError when role does not grant capability
func (r *Resolver) Authorize(role Role, capability Capability) error {
	if r.Allows(role, capability) {
		return nil
	}
	if role == NoRole {
		return apperrors.NewAuthorizationError(fmt.Sprintf("no role in scope: %s required", capability))
	}
	return apperrors.NewAuthorizationError(fmt.Sprintf("role %s lacks %s", role, capability))
}

// Outranks reports whether actor has strictly greater priority than target.
// An unknown actor outranks nobody; an unknown target is outranked by any known actor.
func (r *Resolver) Outranks(actor, target Role) bool {
	ap, ok := r.registry.Priority(actor)
	if !ok || actor == NoRole {
		return false
	}
	tp, ok := r.registry.Priority(target)
	if !ok {
		return true
	}
	return ap > tp
}

// TeamRole labels a user in a team scope. It is descriptive only: team
// authority is decided by the team leader identity, not by priorities.
func TeamRole(isLeader, isMember bool) Role {
	switch {
	case isLeader:
		return RoleTeamHead
	case isMember:
		return RoleMember
	default:
		return NoRole
	}
}
