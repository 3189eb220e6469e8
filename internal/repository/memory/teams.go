package memory

import (
	"context"
	"time"

	"club-coordination-backend/internal/database/models"
	apperrors "club-coordination-backend/internal/errors"
	"club-coordination-backend/internal/repository"

	"github.com/google/uuid"
)

type eventRepo struct {
	s *Store
}

func (r *eventRepo) Create(ctx context.Context, event *models.Event) error {
	unlock, err := r.s.begin(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	if event.ClubID != nil {
		if _, ok := r.s.clubs[*event.ClubID]; !ok {
			return apperrors.ErrClubNotFound
		}
	}
	r.s.stamp(&event.BaseModel)
	r.s.events[event.ID] = *event
	return nil
}

func (r *eventRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	unlock, err := r.s.read(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	e, ok := r.s.events[id]
	if !ok {
		return nil, apperrors.ErrEventNotFound
	}
	return &e, nil
}

func (r *eventRepo) GetByClub(ctx context.Context, clubID uuid.UUID, limit, offset int) ([]models.Event, int64, error) {
	unlock, err := r.s.read(ctx)
	if err != nil {
		return nil, 0, err
	}
	defer unlock()

	var out []models.Event
	for _, e := range r.s.events {
		if e.ClubID != nil && *e.ClubID == clubID {
			out = append(out, e)
		}
	}
	sortByOrder(r.s, out, func(e models.Event) uuid.UUID { return e.ID })
	return page(out, limit, offset), int64(len(out)), nil
}

type teamRepo struct {
	s *Store
}

// team returns a copy of the team with its roster. Caller holds the lock.
func (s *Store) team(id uuid.UUID) (models.Team, bool) {
	t, ok := s.teams[id]
	if !ok {
		return models.Team{}, false
	}
	t.Members = append([]models.TeamMember(nil), s.roster[id]...)
	return t, true
}

func (s *Store) saveTeam(t models.Team) {
	s.roster[t.ID] = append([]models.TeamMember(nil), t.Members...)
	t.Members = nil
	t.UpdatedAt = time.Now()
	s.teams[t.ID] = t
}

func (s *Store) inTeamForEvent(eventID, userID uuid.UUID) bool {
	for teamID, members := range s.roster {
		if s.teams[teamID].EventID != eventID {
			continue
		}
		for _, m := range members {
			if m.UserID == userID {
				return true
			}
		}
	}
	return false
}

func (s *Store) hasLiveRequest(eventID, userID uuid.UUID) bool {
	for _, req := range s.joinRequests {
		if req.EventID == eventID && req.UserID == userID && req.Status.IsLive() {
			return true
		}
	}
	return false
}

func (s *Store) newMember(t models.Team, userID uuid.UUID) models.TeamMember {
	m := models.TeamMember{TeamID: t.ID, EventID: t.EventID, UserID: userID}
	s.stamp(&m.BaseModel)
	m.JoinedAt = m.CreatedAt
	return m
}

func (r *teamRepo) CreateWithLeader(ctx context.Context, team *models.Team) error {
	unlock, err := r.s.begin(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	event, ok := r.s.events[team.EventID]
	if !ok {
		return apperrors.ErrEventNotFound
	}
	if r.s.inTeamForEvent(event.ID, team.LeaderID) {
		return apperrors.ErrAlreadyInTeamForEvent
	}
	for _, t := range r.s.teams {
		if t.EventID == team.EventID && t.Name == team.Name {
			return apperrors.ErrTeamNameTaken
		}
	}

	team.MaxMembers = event.MaxTeamMembers
	r.s.stamp(&team.BaseModel)
	team.Members = []models.TeamMember{r.s.newMember(*team, team.LeaderID)}
	team.SetCount(1)
	r.s.saveTeam(*team)
	return nil
}

func (r *teamRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	unlock, err := r.s.read(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	t, ok := r.s.team(id)
	if !ok {
		return nil, apperrors.ErrTeamNotFound
	}
	return &t, nil
}

func (r *teamRepo) GetByEvent(ctx context.Context, eventID uuid.UUID) ([]models.Team, error) {
	unlock, err := r.s.read(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	var out []models.Team
	for id, t := range r.s.teams {
		if t.EventID == eventID {
			full, _ := r.s.team(id)
			out = append(out, full)
		}
	}
	sortByOrder(r.s, out, func(t models.Team) uuid.UUID { return t.ID })
	return out, nil
}

func (r *teamRepo) RemoveMember(ctx context.Context, teamID, userID uuid.UUID) (*models.Team, error) {
	unlock, err := r.s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	t, ok := r.s.team(teamID)
	if !ok {
		return nil, apperrors.ErrTeamNotFound
	}
	if t.LeaderID == userID {
		return nil, apperrors.ErrTeamLeaderCannotLeave
	}
	if !t.HasMember(userID) {
		return nil, apperrors.ErrTeamMembershipNotFound
	}

	remaining := make([]models.TeamMember, 0, len(t.Members))
	for _, m := range t.Members {
		if m.UserID != userID {
			remaining = append(remaining, m)
		}
	}
	t.Members = remaining
	t.SetCount(len(remaining))
	r.s.saveTeam(t)

	for id, req := range r.s.joinRequests {
		if req.TeamID == teamID && req.UserID == userID && req.Status == models.JoinRequestStatusAccepted {
			req.Status = models.JoinRequestStatusWithdrawn
			req.UpdatedAt = time.Now()
			r.s.joinRequests[id] = req
		}
	}
	return &t, nil
}

func (r *teamRepo) Disband(ctx context.Context, teamID uuid.UUID, guard repository.TeamGuard) (*models.Team, error) {
	unlock, err := r.s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	t, ok := r.s.team(teamID)
	if !ok {
		return nil, apperrors.ErrTeamNotFound
	}
	if guard != nil {
		if err := guard(&t); err != nil {
			return nil, err
		}
	}

	for id, req := range r.s.joinRequests {
		if req.TeamID == teamID {
			delete(r.s.joinRequests, id)
		}
	}
	delete(r.s.messages, teamID)
	delete(r.s.roster, teamID)
	delete(r.s.teams, teamID)
	return &t, nil
}

func (r *teamRepo) ReconcileMemberCounts(ctx context.Context) (int, error) {
	unlock, err := r.s.begin(ctx)
	if err != nil {
		return 0, err
	}
	defer unlock()

	repaired := 0
	for id := range r.s.teams {
		t, _ := r.s.team(id)
		n := len(t.Members)
		if t.CurrentMembers == n && t.IsFull == (n >= t.MaxMembers) {
			continue
		}
		if t.CurrentMembers != n {
			repaired++
		}
		t.SetCount(n)
		r.s.saveTeam(t)
	}
	return repaired, nil
}

func (r *teamRepo) CreateJoinRequest(ctx context.Context, req *models.TeamJoinRequest) error {
	unlock, err := r.s.begin(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	t, ok := r.s.team(req.TeamID)
	if !ok {
		return apperrors.ErrTeamNotFound
	}
	if t.HasMember(req.UserID) {
		return apperrors.ErrAlreadyTeamMember
	}
	if len(t.Members) >= t.MaxMembers {
		return apperrors.ErrTeamFull
	}
	if r.s.inTeamForEvent(t.EventID, req.UserID) {
		return apperrors.ErrAlreadyInTeamForEvent
	}
	if r.s.hasLiveRequest(t.EventID, req.UserID) {
		return apperrors.ErrDuplicateJoinRequest
	}

	req.EventID = t.EventID
	req.Status = models.JoinRequestStatusPending
	r.s.stamp(&req.BaseModel)
	r.s.joinRequests[req.ID] = *req
	return nil
}

func (r *teamRepo) GetJoinRequest(ctx context.Context, id uuid.UUID) (*models.TeamJoinRequest, error) {
	unlock, err := r.s.read(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	req, ok := r.s.joinRequests[id]
	if !ok {
		return nil, apperrors.ErrJoinRequestNotFound
	}
	return &req, nil
}

func (r *teamRepo) GetJoinRequestsByTeam(ctx context.Context, teamID uuid.UUID, status models.JoinRequestStatus) ([]models.TeamJoinRequest, error) {
	return r.filterRequests(ctx, func(req models.TeamJoinRequest) bool {
		return req.TeamID == teamID && (status == "" || req.Status == status)
	}, false)
}

func (r *teamRepo) GetJoinRequestsByUser(ctx context.Context, userID uuid.UUID) ([]models.TeamJoinRequest, error) {
	return r.filterRequests(ctx, func(req models.TeamJoinRequest) bool {
		return req.UserID == userID
	}, true)
}

func (r *teamRepo) filterRequests(ctx context.Context, keep func(models.TeamJoinRequest) bool, newestFirst bool) ([]models.TeamJoinRequest, error) {
	unlock, err := r.s.read(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	out := []models.TeamJoinRequest{}
	for _, req := range r.s.joinRequests {
		if keep(req) {
			out = append(out, req)
		}
	}
	sortByOrder(r.s, out, func(req models.TeamJoinRequest) uuid.UUID { return req.ID })
	if newestFirst {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out, nil
}

// lockedRequest loads a team and one of its requests and runs the guard. Caller holds the lock.
func (s *Store) lockedRequest(teamID, requestID uuid.UUID, guard repository.TeamGuard) (models.Team, models.TeamJoinRequest, error) {
	t, ok := s.team(teamID)
	if !ok {
		return t, models.TeamJoinRequest{}, apperrors.ErrTeamNotFound
	}
	if guard != nil {
		if err := guard(&t); err != nil {
			return t, models.TeamJoinRequest{}, err
		}
	}
	req, ok := s.joinRequests[requestID]
	if !ok || req.TeamID != teamID {
		return t, req, apperrors.ErrJoinRequestNotFound
	}
	return t, req, nil
}

func (s *Store) decideRequest(req *models.TeamJoinRequest, status models.JoinRequestStatus) {
	now := time.Now()
	req.Status = status
	req.DecidedAt = &now
	req.UpdatedAt = now
	s.joinRequests[req.ID] = *req
}

func (r *teamRepo) AcceptJoinRequest(ctx context.Context, teamID, requestID uuid.UUID, guard repository.TeamGuard) (*repository.AcceptOutcome, error) {
	unlock, err := r.s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	t, req, err := r.s.lockedRequest(teamID, requestID, guard)
	if err != nil {
		return nil, err
	}
	if t.CurrentMembers != len(t.Members) || t.IsFull != (len(t.Members) >= t.MaxMembers) {
		t.SetCount(len(t.Members))
		r.s.saveTeam(t)
	}

	if t.HasMember(req.UserID) {
		if req.Status == models.JoinRequestStatusPending {
			r.s.decideRequest(&req, models.JoinRequestStatusAccepted)
		}
		return &repository.AcceptOutcome{Team: &t, Request: &req, AlreadyMember: true}, nil
	}
	if req.Status != models.JoinRequestStatusPending {
		return nil, apperrors.ErrJoinRequestNotPending
	}
	if t.CurrentMembers >= t.MaxMembers {
		return nil, apperrors.ErrTeamFull
	}
	if r.s.inTeamForEvent(t.EventID, req.UserID) {
		return nil, apperrors.ErrAlreadyInTeamForEvent
	}

	t.Members = append(t.Members, r.s.newMember(t, req.UserID))
	t.SetCount(len(t.Members))
	r.s.saveTeam(t)
	r.s.decideRequest(&req, models.JoinRequestStatusAccepted)
	return &repository.AcceptOutcome{Team: &t, Request: &req}, nil
}

func (r *teamRepo) RejectJoinRequest(ctx context.Context, teamID, requestID uuid.UUID, guard repository.TeamGuard) (*models.TeamJoinRequest, error) {
	unlock, err := r.s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	_, req, err := r.s.lockedRequest(teamID, requestID, guard)
	if err != nil {
		return nil, err
	}
	if req.Status != models.JoinRequestStatusPending {
		return nil, apperrors.ErrJoinRequestNotPending
	}
	r.s.decideRequest(&req, models.JoinRequestStatusRejected)
	return &req, nil
}

func (r *teamRepo) WithdrawJoinRequest(ctx context.Context, requestID, userID uuid.UUID) (*models.TeamJoinRequest, error) {
	unlock, err := r.s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	req, ok := r.s.joinRequests[requestID]
	if !ok {
		return nil, apperrors.ErrJoinRequestNotFound
	}
	if req.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	if req.Status != models.JoinRequestStatusPending {
		return nil, apperrors.ErrJoinRequestNotPending
	}
	r.s.decideRequest(&req, models.JoinRequestStatusWithdrawn)
	return &req, nil
}

type messageRepo struct {
	s *Store
}

func (r *messageRepo) Create(ctx context.Context, msg *models.TeamMessage) error {
	unlock, err := r.s.begin(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	t, ok := r.s.team(msg.TeamID)
	if !ok {
		return apperrors.ErrTeamNotFound
	}
	if !t.HasMember(msg.AuthorID) {
		return apperrors.ErrNotTeamMember
	}
	r.s.stamp(&msg.BaseModel)
	r.s.messages[msg.TeamID] = append(r.s.messages[msg.TeamID], *msg)
	return nil
}

func (r *messageRepo) GetByTeam(ctx context.Context, teamID uuid.UUID, limit, offset int) ([]models.TeamMessage, int64, error) {
	unlock, err := r.s.read(ctx)
	if err != nil {
		return nil, 0, err
	}
	defer unlock()

	all := append([]models.TeamMessage(nil), r.s.messages[teamID]...)
	return page(all, limit, offset), int64(len(all)), nil
}
