package service

import (
	"context"
	"encoding/json"
	"fmt"

	"club-coordination-backend/internal/database/models"
	apperrors "club-coordination-backend/internal/errors"
	"club-coordination-backend/internal/logger"
	"club-coordination-backend/internal/notification"
	"club-coordination-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TeamService handles team formation, capacity and team discussions
type TeamService struct {
	teams      repository.TeamRepositoryInterface
	events     repository.EventRepositoryInterface
	messages   repository.TeamMessageRepositoryInterface
	dispatcher notification.Dispatcher
	retrier    *Retrier
	validator  *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(
	teams repository.TeamRepositoryInterface,
	events repository.EventRepositoryInterface,
	messages repository.TeamMessageRepositoryInterface,
	dispatcher notification.Dispatcher,
	retrier *Retrier,
	validator *validator.Validate,
) *TeamService {
	return &TeamService{
		teams:      teams,
		events:     events,
		messages:   messages,
		dispatcher: dispatcher,
		retrier:    retrier,
		validator:  validator,
	}
}

// requireLeader builds a guard that admits only the team leader.
// Leadership is the team's LeaderID, never a club role priority.
func requireLeader(actorID uuid.UUID) repository.TeamGuard {
	return func(team *models.Team) error {
		if team.LeaderID != actorID {
			return apperrors.ErrNotTeamLeader
		}
		return nil
	}
}

func requireMember(team *models.Team, userID uuid.UUID) error {
	if !team.HasMember(userID) {
		return apperrors.ErrNotTeamMember
	}
	return nil
}

// CreateTeam creates a team for an event with the caller as leader and first member
func (s *TeamService) CreateTeam(ctx context.Context, eventID, leaderID uuid.UUID, req *CreateTeamRequest) (*TeamResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	var team *models.Team
	err := s.retrier.Do(ctx, "team.create", func() error {
		team = &models.Team{
			EventID:     eventID,
			LeaderID:    leaderID,
			Name:        req.Name,
			Description: req.Description,
		}
		return s.teams.CreateWithLeader(ctx, team)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id":     team.ID,
		"event_id":    eventID,
		"max_members": team.MaxMembers,
	}).Info("team created")

	emit(ctx, s.dispatcher, notification.New(notification.TeamCreated, leaderID, team.ID).
		ForTeam(eventID, team.ID).
		With("name", team.Name))
	if team.IsFull {
		emit(ctx, s.dispatcher, notification.New(notification.TeamFull, leaderID, team.ID).
			ForTeam(eventID, team.ID).
			To(leaderID))
	}
	return toTeamResponse(team), nil
}

// GetTeam retrieves a team with its roster
func (s *TeamService) GetTeam(ctx context.Context, id uuid.UUID) (*TeamResponse, error) {
	team, err := s.teams.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toTeamResponse(team), nil
}

// ListEventTeams lists the teams formed for an event
func (s *TeamService) ListEventTeams(ctx context.Context, eventID uuid.UUID) ([]TeamResponse, error) {
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return nil, err
	}

	teams, err := s.teams.GetByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	resp := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		resp = append(resp, *toTeamResponse(&teams[i]))
	}
	return resp, nil
}

// RequestJoin files a pending application to join a team
func (s *TeamService) RequestJoin(ctx context.Context, teamID, userID uuid.UUID, req *JoinTeamRequest) (*JoinRequestResponse, error) {
	if req == nil {
		req = &JoinTeamRequest{}
	}
	if len(req.ApplicationData) > 0 && !json.Valid(req.ApplicationData) {
		return nil, apperrors.NewValidationError("application_data", "must be valid JSON")
	}

	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	var joinReq *models.TeamJoinRequest
	err = s.retrier.Do(ctx, "team.request_join", func() error {
		joinReq = &models.TeamJoinRequest{
			TeamID:          teamID,
			UserID:          userID,
			ApplicationData: req.ApplicationData,
		}
		return s.teams.CreateJoinRequest(ctx, joinReq)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to request team membership: %w", err)
	}

	emit(ctx, s.dispatcher, notification.New(notification.TeamJoinRequested, userID, userID).
		ForTeam(team.EventID, teamID).
		To(team.LeaderID).
		With("request_id", joinReq.ID))
	return toJoinRequestResponse(joinReq), nil
}

// ListJoinRequests lists a team's requests for its leader
func (s *TeamService) ListJoinRequests(ctx context.Context, teamID, actorID uuid.UUID, status models.JoinRequestStatus) ([]JoinRequestResponse, error) {
	if status != "" && !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if err := requireLeader(actorID)(team); err != nil {
		return nil, err
	}

	reqs, err := s.teams.GetJoinRequestsByTeam(ctx, teamID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list join requests: %w", err)
	}
	return toJoinRequestResponses(reqs), nil
}

// ListUserJoinRequests lists the caller's own requests, newest first
func (s *TeamService) ListUserJoinRequests(ctx context.Context, userID uuid.UUID) ([]JoinRequestResponse, error) {
	reqs, err := s.teams.GetJoinRequestsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list join requests: %w", err)
	}
	return toJoinRequestResponses(reqs), nil
}

// AcceptJoinRequest admits the requester if the team still has room.
// Accepting a requester who is already on the team succeeds without counting them twice.
func (s *TeamService) AcceptJoinRequest(ctx context.Context, teamID, requestID, actorID uuid.UUID) (*TeamResponse, error) {
	var outcome *repository.AcceptOutcome
	err := s.retrier.Do(ctx, "team.accept", func() error {
		var err error
		outcome, err = s.teams.AcceptJoinRequest(ctx, teamID, requestID, requireLeader(actorID))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to accept join request: %w", err)
	}

	team := outcome.Team
	if outcome.AlreadyMember {
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"team_id":    teamID,
			"request_id": requestID,
		}).Info("requester already on team, nothing to admit")
		return toTeamResponse(team), nil
	}

	emit(ctx, s.dispatcher, notification.New(notification.TeamJoined, actorID, outcome.Request.UserID).
		ForTeam(team.EventID, team.ID).
		To(outcome.Request.UserID).
		With("current_members", team.CurrentMembers))
	if team.IsFull {
		recipients := make([]uuid.UUID, 0, len(team.Members))
		for _, m := range team.Members {
			recipients = append(recipients, m.UserID)
		}
		emit(ctx, s.dispatcher, notification.New(notification.TeamFull, actorID, team.ID).
			ForTeam(team.EventID, team.ID).
			To(recipients...))
	}
	return toTeamResponse(team), nil
}

// RejectJoinRequest declines a pending request; the team is unchanged
func (s *TeamService) RejectJoinRequest(ctx context.Context, teamID, requestID, actorID uuid.UUID) (*JoinRequestResponse, error) {
	var joinReq *models.TeamJoinRequest
	err := s.retrier.Do(ctx, "team.reject", func() error {
		var err error
		joinReq, err = s.teams.RejectJoinRequest(ctx, teamID, requestID, requireLeader(actorID))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reject join request: %w", err)
	}

	emit(ctx, s.dispatcher, notification.New(notification.TeamJoinRejected, actorID, joinReq.UserID).
		ForTeam(joinReq.EventID, teamID).
		To(joinReq.UserID))
	return toJoinRequestResponse(joinReq), nil
}

// WithdrawJoinRequest cancels the caller's own pending request
func (s *TeamService) WithdrawJoinRequest(ctx context.Context, requestID, userID uuid.UUID) (*JoinRequestResponse, error) {
	var joinReq *models.TeamJoinRequest
	err := s.retrier.Do(ctx, "team.withdraw_request", func() error {
		var err error
		joinReq, err = s.teams.WithdrawJoinRequest(ctx, requestID, userID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to withdraw join request: %w", err)
	}
	return toJoinRequestResponse(joinReq), nil
}

// Leave takes the caller off a team. The leader has to disband instead.
func (s *TeamService) Leave(ctx context.Context, teamID, userID uuid.UUID) error {
	var team *models.Team
	err := s.retrier.Do(ctx, "team.leave", func() error {
		var err error
		team, err = s.teams.RemoveMember(ctx, teamID, userID)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to leave team: %w", err)
	}

	emit(ctx, s.dispatcher, notification.New(notification.TeamMemberLeft, userID, userID).
		ForTeam(team.EventID, team.ID).
		To(team.LeaderID).
		With("current_members", team.CurrentMembers))
	return nil
}

// Disband deletes a team with its roster, requests and messages
func (s *TeamService) Disband(ctx context.Context, teamID, actorID uuid.UUID) error {
	var team *models.Team
	err := s.retrier.Do(ctx, "team.disband", func() error {
		var err error
		team, err = s.teams.Disband(ctx, teamID, requireLeader(actorID))
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to disband team: %w", err)
	}

	var recipients []uuid.UUID
	for _, m := range team.Members {
		if m.UserID != team.LeaderID {
			recipients = append(recipients, m.UserID)
		}
	}
	emit(ctx, s.dispatcher, notification.New(notification.TeamDisbanded, actorID, team.ID).
		ForTeam(team.EventID, team.ID).
		To(recipients...).
		With("name", team.Name))
	return nil
}

// PostMessage adds a message to the team discussion
func (s *TeamService) PostMessage(ctx context.Context, teamID, authorID uuid.UUID, req *PostMessageRequest) (*MessageResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if err := requireMember(team, authorID); err != nil {
		return nil, err
	}

	msg := &models.TeamMessage{TeamID: teamID, AuthorID: authorID, Body: req.Body}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to post message: %w", err)
	}
	return toMessageResponse(msg), nil
}

// ListMessages lists the team discussion for members, oldest first
func (s *TeamService) ListMessages(ctx context.Context, teamID, viewerID uuid.UUID, limit, offset int) (*MessageListResponse, error) {
	limit, offset, err := normalizePagination(limit, offset)
	if err != nil {
		return nil, err
	}

	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if err := requireMember(team, viewerID); err != nil {
		return nil, err
	}

	messages, total, err := s.messages.GetByTeam(ctx, teamID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	resp := &MessageListResponse{Messages: make([]MessageResponse, 0, len(messages)), Total: total, Limit: limit, Offset: offset}
	for i := range messages {
		resp.Messages = append(resp.Messages, *toMessageResponse(&messages[i]))
	}
	return resp, nil
}
