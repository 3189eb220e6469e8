package service_test

import (
	"context"
	"errors"
	"testing"

	"club-coordination-backend/internal/database/models"
	apperrors "club-coordination-backend/internal/errors"
	"club-coordination-backend/internal/mocks"
	"club-coordination-backend/internal/rbac"
	"club-coordination-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRetrierDo(t *testing.T) {
	ctx := context.Background()
	transient := apperrors.NewTransientConflictError(errors.New("could not serialize access"))

	t.Run("succeeds after transient failures", func(t *testing.T) {
		calls := 0
		err := service.NewRetrier(3).Do(ctx, "test", func() error {
			calls++
			if calls < 3 {
				return transient
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("exhausted retries become try again", func(t *testing.T) {
		calls := 0
		err := service.NewRetrier(2).Do(ctx, "test", func() error {
			calls++
			return transient
		})
		assert.ErrorIs(t, err, apperrors.ErrTryAgain)
		assert.Equal(t, 2, calls)
	})

	t.Run("permanent errors are returned untouched", func(t *testing.T) {
		calls := 0
		err := service.NewRetrier(5).Do(ctx, "test", func() error {
			calls++
			return apperrors.ErrTeamFull
		})
		assert.ErrorIs(t, err, apperrors.ErrTeamFull)
		assert.Equal(t, 1, calls)
	})

	t.Run("attempts below one still run once", func(t *testing.T) {
		calls := 0
		err := service.NewRetrier(0).Do(ctx, "test", func() error {
			calls++
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})
}

func TestApproveRetriesTransientConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	clubs := mocks.NewMockClubRepositoryInterface(ctrl)
	memberships := mocks.NewMockMembershipRepositoryInterface(ctrl)
	dispatcher := mocks.NewMockDispatcher(ctrl)

	svc := service.NewClubService(clubs, memberships, rbac.NewResolver(rbac.DefaultRegistry()), dispatcher,
		service.NewRetrier(3), validator.New(), true)

	clubID, membershipID, actorID := uuid.New(), uuid.New(), uuid.New()
	approved := &models.ClubMembership{
		BaseModel: models.BaseModel{ID: membershipID},
		ClubID:    clubID,
		UserID:    uuid.New(),
		Status:    models.MembershipStatusActive,
		Role:      rbac.RoleMember,
	}

	gomock.InOrder(
		memberships.EXPECT().Approve(gomock.Any(), clubID, membershipID, actorID, gomock.Any()).
			Return(nil, apperrors.NewTransientConflictError(errors.New("deadlock detected"))).Times(2),
		memberships.EXPECT().Approve(gomock.Any(), clubID, membershipID, actorID, gomock.Any()).
			Return(approved, nil),
	)
	dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	resp, err := svc.Approve(context.Background(), clubID, membershipID, actorID)
	require.NoError(t, err, "dispatch failures must not fail the request")
	assert.Equal(t, models.MembershipStatusActive, resp.Status)
}
