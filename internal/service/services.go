package service

import (
	"club-coordination-backend/internal/notification"
	"club-coordination-backend/internal/rbac"
	"club-coordination-backend/internal/repository"
)

// Options tunes the coordination services
type Options struct {
	// MaxAttempts bounds how often a transaction is tried after transient store conflicts
	MaxAttempts int
	// EnforcePromotionCeiling requires the actor to outrank both the target's current and new role
	EnforcePromotionCeiling bool
}

// Services bundles the coordination services built over one store
type Services struct {
	Users  *UserService
	Clubs  *ClubService
	Events *EventService
	Teams  *TeamService
}

// New wires every service over store
func New(store *repository.Store, resolver *rbac.Resolver, dispatcher notification.Dispatcher, opts Options) *Services {
	v := NewValidator()
	retrier := NewRetrier(opts.MaxAttempts)

	return &Services{
		Users:  NewUserService(store.Users, retrier),
		Clubs:  NewClubService(store.Clubs, store.Memberships, resolver, dispatcher, retrier, v, opts.EnforcePromotionCeiling),
		Events: NewEventService(store.Events, store.Clubs, store.Memberships, store.Users, resolver, retrier, v),
		Teams:  NewTeamService(store.Teams, store.Events, store.Messages, dispatcher, retrier, v),
	}
}
