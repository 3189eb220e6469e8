package service

import (
	"encoding/json"
	"time"

	"club-coordination-backend/internal/database/models"
	"club-coordination-backend/internal/rbac"

	"github.com/google/uuid"
)

// CreateClubRequest represents the request to create a club
type CreateClubRequest struct {
	Name             string `json:"name" validate:"required,min=1,max=100" example:"Robotics Club"`
	Description      string `json:"description" validate:"max=500"`
	RequiresApproval bool   `json:"requires_approval"`
}

// UpdateRoleRequest represents the request to change a member's club role
type UpdateRoleRequest struct {
	Role rbac.Role `json:"role" validate:"required" example:"secretary"`
}

// CreateEventRequest represents the request to create an event. A nil ClubID creates a platform-level event.
type CreateEventRequest struct {
	ClubID         *uuid.UUID `json:"club_id,omitempty"`
	Title          string     `json:"title" validate:"required,min=1,max=200" example:"Hackathon 2026"`
	Description    string     `json:"description" validate:"max=5000"`
	StartsAt       *time.Time `json:"starts_at,omitempty"`
	MaxTeamMembers int        `json:"max_team_members" validate:"min=1" example:"4"`
}

// CreateTeamRequest represents the request to create a team for an event
type CreateTeamRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100" example:"Byte Me"`
	Description string `json:"description" validate:"max=500"`
}

// JoinTeamRequest represents an application to join a team
type JoinTeamRequest struct {
	ApplicationData json.RawMessage `json:"application_data,omitempty" swaggertype:"object"`
}

// PostMessageRequest represents a new discussion message
type PostMessageRequest struct {
	Body string `json:"body" validate:"required,min=1,max=2000"`
}

// UserResponse represents a platform user
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	GlobalRole  rbac.Role `json:"global_role"`
	CreatedAt   string    `json:"created_at"`
}

// ClubResponse represents a club
type ClubResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	RequiresApproval bool      `json:"requires_approval"`
	MemberCount      int       `json:"member_count"`
	CreatedBy        uuid.UUID `json:"created_by"`
	CreatedAt        string    `json:"created_at"`
}

// ClubListResponse represents a paginated list of clubs
type ClubListResponse struct {
	Clubs  []ClubResponse `json:"clubs"`
	Total  int64          `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// MembershipResponse represents a club membership
type MembershipResponse struct {
	ID          uuid.UUID               `json:"id"`
	ClubID      uuid.UUID               `json:"club_id"`
	UserID      uuid.UUID               `json:"user_id"`
	DisplayName string                  `json:"display_name,omitempty"`
	Status      models.MembershipStatus `json:"status"`
	Role        rbac.Role               `json:"role,omitempty"`
	JoinedAt    *time.Time              `json:"joined_at,omitempty"`
	DecidedBy   *uuid.UUID              `json:"decided_by,omitempty"`
	DecidedAt   *time.Time              `json:"decided_at,omitempty"`
	CreatedAt   string                  `json:"created_at"`
}

// MembershipListResponse represents a paginated list of memberships
type MembershipListResponse struct {
	Memberships []MembershipResponse `json:"memberships"`
	Total       int64                `json:"total"`
	Limit       int                  `json:"limit"`
	Offset      int                  `json:"offset"`
}

// EventResponse represents an event
type EventResponse struct {
	ID             uuid.UUID  `json:"id"`
	ClubID         *uuid.UUID `json:"club_id,omitempty"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	StartsAt       *time.Time `json:"starts_at,omitempty"`
	MaxTeamMembers int        `json:"max_team_members"`
	CreatedBy      uuid.UUID  `json:"created_by"`
	CreatedAt      string     `json:"created_at"`
}

// EventListResponse represents a paginated list of events
type EventListResponse struct {
	Events []EventResponse `json:"events"`
	Total  int64           `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

// TeamMemberResponse represents one roster entry
type TeamMemberResponse struct {
	UserID   uuid.UUID `json:"user_id"`
	JoinedAt time.Time `json:"joined_at"`
	IsLeader bool      `json:"is_leader"`
	Role     rbac.Role `json:"role"`
}

// TeamResponse represents a team with its roster
type TeamResponse struct {
	ID             uuid.UUID            `json:"id"`
	EventID        uuid.UUID            `json:"event_id"`
	LeaderID       uuid.UUID            `json:"leader_id"`
	Name           string               `json:"name"`
	Description    string               `json:"description"`
	CurrentMembers int                  `json:"current_members"`
	MaxMembers     int                  `json:"max_members"`
	IsFull         bool                 `json:"is_full"`
	Members        []TeamMemberResponse `json:"members"`
	CreatedAt      string               `json:"created_at"`
}

// JoinRequestResponse represents a team join request
type JoinRequestResponse struct {
	ID              uuid.UUID                `json:"id"`
	TeamID          uuid.UUID                `json:"team_id"`
	EventID         uuid.UUID                `json:"event_id"`
	UserID          uuid.UUID                `json:"user_id"`
	Status          models.JoinRequestStatus `json:"status"`
	ApplicationData json.RawMessage          `json:"application_data,omitempty" swaggertype:"object"`
	DecidedAt       *time.Time               `json:"decided_at,omitempty"`
	CreatedAt       string                   `json:"created_at"`
}

// MessageResponse represents a team discussion message
type MessageResponse struct {
	ID        uuid.UUID `json:"id"`
	TeamID    uuid.UUID `json:"team_id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt string    `json:"created_at"`
}

// MessageListResponse represents a paginated list of messages
type MessageListResponse struct {
	Messages []MessageResponse `json:"messages"`
	Total    int64             `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

func timestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}

func toUserResponse(u *models.User) *UserResponse {
	return &UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		GlobalRole:  u.GlobalRole,
		CreatedAt:   timestamp(u.CreatedAt),
	}
}

func toClubResponse(c *models.Club) *ClubResponse {
	return &ClubResponse{
		ID:               c.ID,
		Name:             c.Name,
		Description:      c.Description,
		RequiresApproval: c.RequiresApproval,
		MemberCount:      c.MemberCount,
		CreatedBy:        c.CreatedBy,
		CreatedAt:        timestamp(c.CreatedAt),
	}
}

func toMembershipResponse(m *models.ClubMembership) *MembershipResponse {
	resp := &MembershipResponse{
		ID:        m.ID,
		ClubID:    m.ClubID,
		UserID:    m.UserID,
		Status:    m.Status,
		Role:      m.Role,
		JoinedAt:  m.JoinedAt,
		DecidedBy: m.DecidedBy,
		DecidedAt: m.DecidedAt,
		CreatedAt: timestamp(m.CreatedAt),
	}
	if m.User != nil {
		resp.DisplayName = m.User.DisplayName
	}
	return resp
}

func toEventResponse(e *models.Event) *EventResponse {
	return &EventResponse{
		ID:             e.ID,
		ClubID:         e.ClubID,
		Title:          e.Title,
		Description:    e.Description,
		StartsAt:       e.StartsAt,
		MaxTeamMembers: e.MaxTeamMembers,
		CreatedBy:      e.CreatedBy,
		CreatedAt:      timestamp(e.CreatedAt),
	}
}

func toTeamResponse(t *models.Team) *TeamResponse {
	members := make([]TeamMemberResponse, 0, len(t.Members))
	for _, m := range t.Members {
		members = append(members, TeamMemberResponse{
			UserID:   m.UserID,
			JoinedAt: m.JoinedAt,
			IsLeader: m.UserID == t.LeaderID,
			Role:     rbac.TeamRole(m.UserID == t.LeaderID, true),
		})
	}
	return &TeamResponse{
		ID:             t.ID,
		EventID:        t.EventID,
		LeaderID:       t.LeaderID,
		Name:           t.Name,
		Description:    t.Description,
		CurrentMembers: t.CurrentMembers,
		MaxMembers:     t.MaxMembers,
		IsFull:         t.IsFull,
		Members:        members,
		CreatedAt:      timestamp(t.CreatedAt),
	}
}

func toJoinRequestResponse(r *models.TeamJoinRequest) *JoinRequestResponse {
	return &JoinRequestResponse{
		ID:              r.ID,
		TeamID:          r.TeamID,
		EventID:         r.EventID,
		UserID:          r.UserID,
		Status:          r.Status,
		ApplicationData: r.ApplicationData,
		DecidedAt:       r.DecidedAt,
		CreatedAt:       timestamp(r.CreatedAt),
	}
}

func toJoinRequestResponses(reqs []models.TeamJoinRequest) []JoinRequestResponse {
	out := make([]JoinRequestResponse, 0, len(reqs))
	for i := range reqs {
		out = append(out, *toJoinRequestResponse(&reqs[i]))
	}
	return out
}

func toMessageResponse(m *models.TeamMessage) *MessageResponse {
	return &MessageResponse{
		ID:        m.ID,
		TeamID:    m.TeamID,
		AuthorID:  m.AuthorID,
		Body:      m.Body,
		CreatedAt: timestamp(m.CreatedAt),
	}
}
