package jobs_test

import (
	"context"
	"errors"
	"testing"

	"club-coordination-backend/internal/jobs"
	"club-coordination-backend/internal/mocks"
	"club-coordination-backend/internal/repository/memory"
	"club-coordination-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRunOnceRepairsDrift(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repos := store.Repositories()
	factories := testutils.NewFactorySet()

	club := factories.Club.Create()
	_, err := repos.Clubs.CreateWithChairman(ctx, club, uuid.New())
	require.NoError(t, err)

	event := factories.Event.WithCapacity(3)
	require.NoError(t, repos.Events.Create(ctx, event))
	team := factories.Team.ForEvent(event, uuid.New())
	require.NoError(t, repos.Teams.CreateWithLeader(ctx, team))

	store.CorruptClubCount(club.ID, 7)
	store.CorruptTeamCount(team.ID, 3)

	r := jobs.NewReconciler("", repos.Clubs, repos.Teams)
	fixed, err := r.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"clubs": 1, "teams": 1}, fixed)

	gotClub, err := repos.Clubs.GetByID(ctx, club.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, gotClub.MemberCount)

	gotTeam, err := repos.Teams.GetByID(ctx, team.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, gotTeam.CurrentMembers)
	assert.False(t, gotTeam.IsFull)

	fixed, err = r.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"clubs": 0, "teams": 0}, fixed, "second pass finds nothing")
}

func TestRunOnceContinuesPastFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	clubs := mocks.NewMockClubRepositoryInterface(ctrl)
	teams := mocks.NewMockTeamRepositoryInterface(ctrl)

	clubs.EXPECT().ReconcileMemberCounts(gomock.Any()).Return(0, errors.New("connection reset"))
	teams.EXPECT().ReconcileMemberCounts(gomock.Any()).Return(2, nil)

	fixed, err := jobs.NewReconciler("", clubs, teams).RunOnce(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reconcile clubs")
	assert.Equal(t, 2, fixed["teams"])
	assert.NotContains(t, fixed, "clubs")
}

func TestStart(t *testing.T) {
	repos := memory.NewStore().Repositories()

	t.Run("disabled", func(t *testing.T) {
		r := jobs.NewReconciler("", repos.Clubs, repos.Teams)
		require.NoError(t, r.Start())
		r.Stop()
	})

	t.Run("invalid schedule", func(t *testing.T) {
		r := jobs.NewReconciler("every tuesday", repos.Clubs, repos.Teams)
		assert.Error(t, r.Start())
	})

	t.Run("scheduled", func(t *testing.T) {
		r := jobs.NewReconciler("@every 1h", repos.Clubs, repos.Teams)
		require.NoError(t, r.Start())
		r.Stop()
	})
}
