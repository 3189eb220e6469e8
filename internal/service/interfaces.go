package service

import (
	"context"

	"club-coordination-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	Provision(ctx context.Context, email, displayName string) (*UserResponse, error)
	GetUser(ctx context.Context, id uuid.UUID) (*UserResponse, error)
}

// ClubServiceInterface defines the interface for club and membership operations
type ClubServiceInterface interface {
	CreateClub(ctx context.Context, actorID uuid.UUID, req *CreateClubRequest) (*ClubResponse, error)
	GetClub(ctx context.Context, id uuid.UUID) (*ClubResponse, error)
	ListClubs(ctx context.Context, limit, offset int) (*ClubListResponse, error)
	RequestJoin(ctx context.Context, clubID, userID uuid.UUID) (*MembershipResponse, error)
	WithdrawJoin(ctx context.Context, clubID, userID uuid.UUID) error
	ListMemberships(ctx context.Context, clubID, actorID uuid.UUID, status models.MembershipStatus, limit, offset int) (*MembershipListResponse, error)
	GetMyMembership(ctx context.Context, clubID, userID uuid.UUID) (*MembershipResponse, error)
	Approve(ctx context.Context, clubID, membershipID, actorID uuid.UUID) (*MembershipResponse, error)
	Reject(ctx context.Context, clubID, membershipID, actorID uuid.UUID) (*MembershipResponse, error)
	Leave(ctx context.Context, clubID, userID uuid.UUID) error
	Expel(ctx context.Context, clubID, targetUserID, actorID uuid.UUID) error
	UpdateRole(ctx context.Context, clubID, targetUserID, actorID uuid.UUID, req *UpdateRoleRequest) (*MembershipResponse, error)
}

// EventServiceInterface defines the interface for event operations
type EventServiceInterface interface {
	CreateEvent(ctx context.Context, actorID uuid.UUID, req *CreateEventRequest) (*EventResponse, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*EventResponse, error)
	ListClubEvents(ctx context.Context, clubID uuid.UUID, limit, offset int) (*EventListResponse, error)
}

// TeamServiceInterface defines the interface for team formation and discussion
type TeamServiceInterface interface {
	CreateTeam(ctx context.Context, eventID, leaderID uuid.UUID, req *CreateTeamRequest) (*TeamResponse, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*TeamResponse, error)
	ListEventTeams(ctx context.Context, eventID uuid.UUID) ([]TeamResponse, error)
	RequestJoin(ctx context.Context, teamID, userID uuid.UUID, req *JoinTeamRequest) (*JoinRequestResponse, error)
	ListJoinRequests(ctx context.Context, teamID, actorID uuid.UUID, status models.JoinRequestStatus) ([]JoinRequestResponse, error)
	ListUserJoinRequests(ctx context.Context, userID uuid.UUID) ([]JoinRequestResponse, error)
	AcceptJoinRequest(ctx context.Context, teamID, requestID, actorID uuid.UUID) (*TeamResponse, error)
	RejectJoinRequest(ctx context.Context, teamID, requestID, actorID uuid.UUID) (*JoinRequestResponse, error)
	WithdrawJoinRequest(ctx context.Context, requestID, userID uuid.UUID) (*JoinRequestResponse, error)
	Leave(ctx context.Context, teamID, userID uuid.UUID) error
	Disband(ctx context.Context, teamID, actorID uuid.UUID) error
	PostMessage(ctx context.Context, teamID, authorID uuid.UUID, req *PostMessageRequest) (*MessageResponse, error)
	ListMessages(ctx context.Context, teamID, viewerID uuid.UUID, limit, offset int) (*MessageListResponse, error)
}
