package repository

import (
	"context"

	"club-coordination-backend/internal/database/models"
	"club-coordination-backend/internal/rbac"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// MembershipGuard runs inside a membership transaction, after the rows are locked.
// actor is the actor's live membership in the club, or nil when there is none.
// Returning an error aborts the transaction without changes.
type MembershipGuard func(actor, target *models.ClubMembership) error

// TeamGuard runs inside a team transaction with the locked team and its roster loaded
type TeamGuard func(team *models.Team) error

// AcceptOutcome describes the result of accepting a join request
type AcceptOutcome struct {
	Team    *models.Team
	Request *models.TeamJoinRequest
	// AlreadyMember is set when the requester was on the roster before the call; nothing was counted.
	AlreadyMember bool
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	FindOrCreate(ctx context.Context, user *models.User) (*models.User, error)
}

// ClubRepositoryInterface defines the interface for club repository operations
type ClubRepositoryInterface interface {
	CreateWithChairman(ctx context.Context, club *models.Club, chairmanID uuid.UUID) (*models.ClubMembership, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Club, error)
	GetAll(ctx context.Context, limit, offset int) ([]models.Club, int64, error)
	ReconcileMemberCounts(ctx context.Context) (int, error)
}

// MembershipRepositoryInterface defines the interface for club membership operations.
// Every mutating method runs in one transaction holding the club and membership row locks.
type MembershipRepositoryInterface interface {
	GetLive(ctx context.Context, clubID, userID uuid.UUID) (*models.ClubMembership, error)
	GetByClub(ctx context.Context, clubID uuid.UUID, status models.MembershipStatus, limit, offset int) ([]models.ClubMembership, int64, error)
	Request(ctx context.Context, clubID, userID uuid.UUID) (*models.ClubMembership, error)
	Approve(ctx context.Context, clubID, membershipID, actorID uuid.UUID, guard MembershipGuard) (*models.ClubMembership, error)
	Reject(ctx context.Context, clubID, membershipID, actorID uuid.UUID, guard MembershipGuard) (*models.ClubMembership, error)
	Withdraw(ctx context.Context, clubID, userID uuid.UUID) (*models.ClubMembership, error)
	Remove(ctx context.Context, clubID, targetUserID, actorID uuid.UUID, guard MembershipGuard) (*models.ClubMembership, error)
	UpdateRole(ctx context.Context, clubID, targetUserID, actorID uuid.UUID, role rbac.Role, guard MembershipGuard) (*models.ClubMembership, error)
}

// EventRepositoryInterface defines the interface for event repository operations
type EventRepositoryInterface interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error)
	GetByClub(ctx context.Context, clubID uuid.UUID, limit, offset int) ([]models.Event, int64, error)
}

// TeamRepositoryInterface defines the interface for teams, rosters and join requests.
// Capacity-affecting methods run in one transaction holding the team row lock.
type TeamRepositoryInterface interface {
	CreateWithLeader(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error)
	GetByEvent(ctx context.Context, eventID uuid.UUID) ([]models.Team, error)
	RemoveMember(ctx context.Context, teamID, userID uuid.UUID) (*models.Team, error)
	Disband(ctx context.Context, teamID uuid.UUID, guard TeamGuard) (*models.Team, error)
	ReconcileMemberCounts(ctx context.Context) (int, error)

	CreateJoinRequest(ctx context.Context, req *models.TeamJoinRequest) error
	GetJoinRequest(ctx context.Context, id uuid.UUID) (*models.TeamJoinRequest, error)
	GetJoinRequestsByTeam(ctx context.Context, teamID uuid.UUID, status models.JoinRequestStatus) ([]models.TeamJoinRequest, error)
	GetJoinRequestsByUser(ctx context.Context, userID uuid.UUID) ([]models.TeamJoinRequest, error)
	AcceptJoinRequest(ctx context.Context, teamID, requestID uuid.UUID, guard TeamGuard) (*AcceptOutcome, error)
	RejectJoinRequest(ctx context.Context, teamID, requestID uuid.UUID, guard TeamGuard) (*models.TeamJoinRequest, error)
	WithdrawJoinRequest(ctx context.Context, requestID, userID uuid.UUID) (*models.TeamJoinRequest, error)
}

// TeamMessageRepositoryInterface defines the interface for team discussion operations
type TeamMessageRepositoryInterface interface {
	Create(ctx context.Context, msg *models.TeamMessage) error
	GetByTeam(ctx context.Context, teamID uuid.UUID, limit, offset int) ([]models.TeamMessage, int64, error)
}

// Pinger reports whether the backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}
