package memory

import (
	"context"
	"sync"
	"testing"

	"club-coordination-backend/internal/database/models"
	apperrors "club-coordination-backend/internal/errors"
	"club-coordination-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTeam(t *testing.T, s *Store, max int) *models.Team {
	t.Helper()
	repos := s.Repositories()
	factories := testutils.NewFactorySet()

	event := factories.Event.WithCapacity(max)
	require.NoError(t, repos.Events.Create(context.Background(), event))

	team := factories.Team.ForEvent(event, uuid.New())
	require.NoError(t, repos.Teams.CreateWithLeader(context.Background(), team))
	return team
}

func TestFailNext(t *testing.T) {
	s := NewStore()
	repos := s.Repositories()
	ctx := context.Background()
	club := testutils.NewClubFactory().Create()

	s.FailNext(2)
	for i := 0; i < 2; i++ {
		_, err := repos.Clubs.CreateWithChairman(ctx, club, uuid.New())
		assert.True(t, apperrors.IsTransientConflict(err))
	}

	_, err := repos.Clubs.CreateWithChairman(ctx, club, uuid.New())
	require.NoError(t, err)

	_, err = repos.Clubs.GetByID(ctx, club.ID)
	assert.NoError(t, err, "reads are never failed")
}

func TestCancelledContext(t *testing.T) {
	repos := NewStore().Repositories()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repos.Users.FindOrCreate(ctx, testutils.NewUserFactory().Create())
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, repos.Pinger.Ping(ctx), context.Canceled)
}

func TestReconcileRepairsCorruptedCounters(t *testing.T) {
	s := NewStore()
	repos := s.Repositories()
	ctx := context.Background()

	club := testutils.NewClubFactory().Create()
	_, err := repos.Clubs.CreateWithChairman(ctx, club, uuid.New())
	require.NoError(t, err)
	team := newTeam(t, s, 3)

	s.CorruptClubCount(club.ID, 5)
	s.CorruptTeamCount(team.ID, 3)

	repaired, err := repos.Clubs.ReconcileMemberCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, repaired)

	repaired, err = repos.Teams.ReconcileMemberCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, repaired)

	fetchedClub, err := repos.Clubs.GetByID(ctx, club.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, fetchedClub.MemberCount)

	fetchedTeam, err := repos.Teams.GetByID(ctx, team.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, fetchedTeam.CurrentMembers)
	assert.False(t, fetchedTeam.IsFull)
}

func TestAcceptRecountsBeforeDeciding(t *testing.T) {
	s := NewStore()
	repos := s.Repositories()
	ctx := context.Background()
	team := newTeam(t, s, 2)

	req := testutils.NewJoinRequestFactory().Create(team, uuid.New())
	require.NoError(t, repos.Teams.CreateJoinRequest(ctx, req))

	// A stale counter claiming the team is full must not block a real free seat
	s.CorruptTeamCount(team.ID, 2)
	outcome, err := repos.Teams.AcceptJoinRequest(ctx, team.ID, req.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, outcome.Team.CurrentMembers)
	assert.True(t, outcome.Team.IsFull)
}

func TestConcurrentAccepts(t *testing.T) {
	s := NewStore()
	repos := s.Repositories()
	ctx := context.Background()
	team := newTeam(t, s, 4)

	requests := make([]*models.TeamJoinRequest, 16)
	for i := range requests {
		requests[i] = testutils.NewJoinRequestFactory().Create(team, uuid.New())
		require.NoError(t, repos.Teams.CreateJoinRequest(ctx, requests[i]))
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := 0
	for _, req := range requests {
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			_, err := repos.Teams.AcceptJoinRequest(ctx, team.ID, id, nil)
			if err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, apperrors.ErrTeamFull)
		}(req.ID)
	}
	wg.Wait()

	assert.Equal(t, 3, accepted)
	fetched, err := repos.Teams.GetByID(ctx, team.ID)
	require.NoError(t, err)
	assert.Len(t, fetched.Members, 4)
	assert.Equal(t, 4, fetched.CurrentMembers)
}

func TestClubsAreListedByName(t *testing.T) {
	repos := NewStore().Repositories()
	ctx := context.Background()
	factory := testutils.NewClubFactory()

	names := []string{"Rowing", "Archery", "Debate"}
	for _, name := range names {
		_, err := repos.Clubs.CreateWithChairman(ctx, factory.WithName(name), uuid.New())
		require.NoError(t, err)
	}

	clubs, total, err := repos.Clubs.GetAll(ctx, 2, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, clubs, 2)
	assert.Equal(t, "Debate", clubs[0].Name)
	assert.Equal(t, "Rowing", clubs[1].Name)

	_, err = repos.Clubs.CreateWithChairman(ctx, factory.WithName("Rowing"), uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrClubNameTaken)
}

func TestEventRequiresExistingClub(t *testing.T) {
	repos := NewStore().Repositories()
	event := testutils.NewEventFactory().WithClub(uuid.New())

	err := repos.Events.Create(context.Background(), event)
	assert.ErrorIs(t, err, apperrors.ErrClubNotFound)
}

func TestMessageNeedsRosterSeat(t *testing.T) {
	s := NewStore()
	repos := s.Repositories()
	ctx := context.Background()
	team := newTeam(t, s, 3)

	err := repos.Messages.Create(ctx, &models.TeamMessage{TeamID: team.ID, AuthorID: uuid.New(), Body: "let me in"})
	assert.ErrorIs(t, err, apperrors.ErrNotTeamMember)

	require.NoError(t, repos.Messages.Create(ctx, &models.TeamMessage{TeamID: team.ID, AuthorID: team.LeaderID, Body: "hi"}))

	_, err = repos.Teams.Disband(ctx, team.ID, nil)
	require.NoError(t, err)

	err = repos.Messages.Create(ctx, &models.TeamMessage{TeamID: team.ID, AuthorID: team.LeaderID, Body: "anyone?"})
	assert.ErrorIs(t, err, apperrors.ErrTeamNotFound)

	_, total, err := repos.Messages.GetByTeam(ctx, team.ID, 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
}
