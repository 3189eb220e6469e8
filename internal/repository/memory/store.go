// Package memory is an in-process implementation of the repository interfaces.
// A single store-wide mutex stands in for the database transaction: every
// mutating call runs under it, so the same capacity and uniqueness rules hold
// as with Postgres row locks.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"club-coordination-backend/internal/database/models"
	apperrors "club-coordination-backend/internal/errors"
	"club-coordination-backend/internal/repository"

	"github.com/google/uuid"
)

var errInjectedConflict = errors.New("injected serialization failure")

// Store holds all records in memory
type Store struct {
	mu sync.Mutex

	users        map[uuid.UUID]models.User
	userByEmail  map[string]uuid.UUID
	clubs        map[uuid.UUID]models.Club
	clubByName   map[string]uuid.UUID
	memberships  map[uuid.UUID]models.ClubMembership
	events       map[uuid.UUID]models.Event
	teams        map[uuid.UUID]models.Team
	roster       map[uuid.UUID][]models.TeamMember
	joinRequests map[uuid.UUID]models.TeamJoinRequest
	messages     map[uuid.UUID][]models.TeamMessage

	seq      uint64
	order    map[uuid.UUID]uint64
	failNext int
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		users:        make(map[uuid.UUID]models.User),
		userByEmail:  make(map[string]uuid.UUID),
		clubs:        make(map[uuid.UUID]models.Club),
		clubByName:   make(map[string]uuid.UUID),
		memberships:  make(map[uuid.UUID]models.ClubMembership),
		events:       make(map[uuid.UUID]models.Event),
		teams:        make(map[uuid.UUID]models.Team),
		roster:       make(map[uuid.UUID][]models.TeamMember),
		joinRequests: make(map[uuid.UUID]models.TeamJoinRequest),
		messages:     make(map[uuid.UUID][]models.TeamMessage),
		order:        make(map[uuid.UUID]uint64),
	}
}

// Repositories exposes the store through the repository interfaces
func (s *Store) Repositories() *repository.Store {
	return &repository.Store{
		Users:       &userRepo{s},
		Clubs:       &clubRepo{s},
		Memberships: &membershipRepo{s},
		Events:      &eventRepo{s},
		Teams:       &teamRepo{s},
		Messages:    &messageRepo{s},
		Pinger:      s,
	}
}

// Ping always succeeds
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// FailNext makes the next n mutating calls fail with a transient conflict,
// the way a Postgres serialization failure would.
func (s *Store) FailNext(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = n
}

// CorruptTeamCount overwrites a team's stored counter without touching the roster
func (s *Store) CorruptTeamCount(teamID uuid.UUID, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.teams[teamID]; ok {
		t.CurrentMembers = n
		s.teams[teamID] = t
	}
}

// CorruptClubCount overwrites a club's stored member count
func (s *Store) CorruptClubCount(clubID uuid.UUID, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.clubs[clubID]; ok {
		c.MemberCount = n
		s.clubs[clubID] = c
	}
}

// begin locks the store for a mutating call. The caller must call the returned unlock.
func (s *Store) begin(ctx context.Context) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	if s.failNext > 0 {
		s.failNext--
		s.mu.Unlock()
		return nil, apperrors.NewTransientConflictError(errInjectedConflict)
	}
	return s.mu.Unlock, nil
}

// read locks the store for a query
func (s *Store) read(ctx context.Context) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	return s.mu.Unlock, nil
}

func (s *Store) stamp(base *models.BaseModel) {
	now := time.Now()
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	base.CreatedAt = now
	base.UpdatedAt = now
	s.seq++
	s.order[base.ID] = s.seq
}

func (s *Store) before(a, b uuid.UUID) bool {
	return s.order[a] < s.order[b]
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

func sortByOrder[T any](s *Store, items []T, id func(T) uuid.UUID) {
	sort.Slice(items, func(i, j int) bool { return s.before(id(items[i]), id(items[j])) })
}
