package memory

import (
	"context"
	"sort"
	"time"

	"club-coordination-backend/internal/database/models"
	apperrors "club-coordination-backend/internal/errors"
	"club-coordination-backend/internal/rbac"
	"club-coordination-backend/internal/repository"

	"github.com/google/uuid"
)

type clubRepo struct {
	s *Store
}

func (r *clubRepo) CreateWithChairman(ctx context.Context, club *models.Club, chairmanID uuid.UUID) (*models.ClubMembership, error) {
	unlock, err := r.s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if _, taken := r.s.clubByName[club.Name]; taken {
		return nil, apperrors.ErrClubNameTaken
	}

	club.CreatedBy = chairmanID
	club.MemberCount = 1
	r.s.stamp(&club.BaseModel)
	r.s.clubs[club.ID] = *club
	r.s.clubByName[club.Name] = club.ID

	now := time.Now()
	m := models.ClubMembership{
		ClubID:    club.ID,
		UserID:    chairmanID,
		Status:    models.MembershipStatusActive,
		Role:      rbac.LeaderRole,
		JoinedAt:  &now,
		DecidedBy: &chairmanID,
		DecidedAt: &now,
	}
	r.s.stamp(&m.BaseModel)
	r.s.memberships[m.ID] = m
	return &m, nil
}

func (r *clubRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Club, error) {
	unlock, err := r.s.read(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	c, ok := r.s.clubs[id]
	if !ok {
		return nil, apperrors.ErrClubNotFound
	}
	return &c, nil
}

func (r *clubRepo) GetAll(ctx context.Context, limit, offset int) ([]models.Club, int64, error) {
	unlock, err := r.s.read(ctx)
	if err != nil {
		return nil, 0, err
	}
	defer unlock()

	clubs := make([]models.Club, 0, len(r.s.clubs))
	for _, c := range r.s.clubs {
		clubs = append(clubs, c)
	}
	sort.Slice(clubs, func(i, j int) bool { return clubs[i].Name < clubs[j].Name })
	return page(clubs, limit, offset), int64(len(clubs)), nil
}

func (r *clubRepo) ReconcileMemberCounts(ctx context.Context) (int, error) {
	unlock, err := r.s.begin(ctx)
	if err != nil {
		return 0, err
	}
	defer unlock()

	active := make(map[uuid.UUID]int)
	for _, m := range r.s.memberships {
		if m.Status == models.MembershipStatusActive {
			active[m.ClubID]++
		}
	}

	repaired := 0
	for id, c := range r.s.clubs {
		if c.MemberCount != active[id] {
			c.MemberCount = active[id]
			r.s.clubs[id] = c
			repaired++
		}
	}
	return repaired, nil
}

type membershipRepo struct {
	s *Store
}

// live finds the non-rejected membership of userID in clubID. Caller holds the lock.
func (s *Store) live(clubID, userID uuid.UUID) (models.ClubMembership, bool) {
	for _, m := range s.memberships {
		if m.ClubID == clubID && m.UserID == userID && m.Status != models.MembershipStatusRejected {
			return m, true
		}
	}
	return models.ClubMembership{}, false
}

func (s *Store) actor(clubID, actorID uuid.UUID) *models.ClubMembership {
	m, ok := s.live(clubID, actorID)
	if !ok {
		return nil
	}
	return &m
}

func (s *Store) adjustMemberCount(clubID uuid.UUID, delta int) {
	c := s.clubs[clubID]
	c.MemberCount += delta
	c.UpdatedAt = time.Now()
	s.clubs[clubID] = c
}

func (r *membershipRepo) GetLive(ctx context.Context, clubID, userID uuid.UUID) (*models.ClubMembership, error) {
	unlock, err := r.s.read(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	m, ok := r.s.live(clubID, userID)
	if !ok {
		return nil, apperrors.ErrMembershipNotFound
	}
	return &m, nil
}

func (r *membershipRepo) GetByClub(ctx context.Context, clubID uuid.UUID, status models.MembershipStatus, limit, offset int) ([]models.ClubMembership, int64, error) {
	unlock, err := r.s.read(ctx)
	if err != nil {
		return nil, 0, err
	}
	defer unlock()

	var out []models.ClubMembership
	for _, m := range r.s.memberships {
		if m.ClubID != clubID || (status != "" && m.Status != status) {
			continue
		}
		if u, ok := r.s.users[m.UserID]; ok {
			m.User = &u
		}
		out = append(out, m)
	}
	sortByOrder(r.s, out, func(m models.ClubMembership) uuid.UUID { return m.ID })
	return page(out, limit, offset), int64(len(out)), nil
}

func (r *membershipRepo) Request(ctx context.Context, clubID, userID uuid.UUID) (*models.ClubMembership, error) {
	unlock, err := r.s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	club, ok := r.s.clubs[clubID]
	if !ok {
		return nil, apperrors.ErrClubNotFound
	}
	if _, exists := r.s.live(clubID, userID); exists {
		return nil, apperrors.ErrMembershipExists
	}

	m := models.ClubMembership{ClubID: clubID, UserID: userID, Status: models.MembershipStatusPending}
	if !club.RequiresApproval {
		now := time.Now()
		m.Status = models.MembershipStatusActive
		m.Role = rbac.DefaultClubRole
		m.JoinedAt = &now
	}
	r.s.stamp(&m.BaseModel)
	r.s.memberships[m.ID] = m
	if m.Status == models.MembershipStatusActive {
		r.s.adjustMemberCount(clubID, 1)
	}
	return &m, nil
}

func (r *membershipRepo) decide(ctx context.Context, clubID, membershipID, actorID uuid.UUID, guard repository.MembershipGuard, apply func(m *models.ClubMembership)) (*models.ClubMembership, error) {
	unlock, err := r.s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if _, ok := r.s.clubs[clubID]; !ok {
		return nil, apperrors.ErrClubNotFound
	}
	target, ok := r.s.memberships[membershipID]
	if !ok || target.ClubID != clubID {
		return nil, apperrors.ErrMembershipNotFound
	}
	if guard != nil {
		if err := guard(r.s.actor(clubID, actorID), &target); err != nil {
			return nil, err
		}
	}
	if target.Status != models.MembershipStatusPending {
		return nil, apperrors.ErrMembershipAlreadyProcessed
	}

	now := time.Now()
	target.DecidedBy = &actorID
	target.DecidedAt = &now
	target.UpdatedAt = now
	apply(&target)
	r.s.memberships[target.ID] = target
	return &target, nil
}

func (r *membershipRepo) Approve(ctx context.Context, clubID, membershipID, actorID uuid.UUID, guard repository.MembershipGuard) (*models.ClubMembership, error) {
	return r.decide(ctx, clubID, membershipID, actorID, guard, func(m *models.ClubMembership) {
		m.Status = models.MembershipStatusActive
		m.Role = rbac.DefaultClubRole
		m.JoinedAt = m.DecidedAt
		r.s.adjustMemberCount(clubID, 1)
	})
}

func (r *membershipRepo) Reject(ctx context.Context, clubID, membershipID, actorID uuid.UUID, guard repository.MembershipGuard) (*models.ClubMembership, error) {
	return r.decide(ctx, clubID, membershipID, actorID, guard, func(m *models.ClubMembership) {
		m.Status = models.MembershipStatusRejected
	})
}

func (r *membershipRepo) Withdraw(ctx context.Context, clubID, userID uuid.UUID) (*models.ClubMembership, error) {
	unlock, err := r.s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	m, ok := r.s.live(clubID, userID)
	if !ok {
		return nil, apperrors.ErrMembershipNotFound
	}
	if m.Status != models.MembershipStatusPending {
		return nil, apperrors.ErrMembershipNotPending
	}
	delete(r.s.memberships, m.ID)
	return &m, nil
}

func (r *membershipRepo) Remove(ctx context.Context, clubID, targetUserID, actorID uuid.UUID, guard repository.MembershipGuard) (*models.ClubMembership, error) {
	unlock, err := r.s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if _, ok := r.s.clubs[clubID]; !ok {
		return nil, apperrors.ErrClubNotFound
	}
	target, ok := r.s.live(clubID, targetUserID)
	if !ok {
		return nil, apperrors.ErrMembershipNotFound
	}
	if guard != nil {
		actor := &target
		if actorID != targetUserID {
			actor = r.s.actor(clubID, actorID)
		}
		if err := guard(actor, &target); err != nil {
			return nil, err
		}
	}
	if target.Status != models.MembershipStatusActive {
		return nil, apperrors.ErrMembershipNotActive
	}

	delete(r.s.memberships, target.ID)
	r.s.adjustMemberCount(clubID, -1)
	return &target, nil
}

func (r *membershipRepo) UpdateRole(ctx context.Context, clubID, targetUserID, actorID uuid.UUID, role rbac.Role, guard repository.MembershipGuard) (*models.ClubMembership, error) {
	unlock, err := r.s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if _, ok := r.s.clubs[clubID]; !ok {
		return nil, apperrors.ErrClubNotFound
	}
	target, ok := r.s.live(clubID, targetUserID)
	if !ok {
		return nil, apperrors.ErrMembershipNotFound
	}
	if guard != nil {
		if err := guard(r.s.actor(clubID, actorID), &target); err != nil {
			return nil, err
		}
	}
	if target.Status != models.MembershipStatusActive {
		return nil, apperrors.ErrMembershipNotActive
	}

	target.Role = role
	target.UpdatedAt = time.Now()
	r.s.memberships[target.ID] = target
	return &target, nil
}
