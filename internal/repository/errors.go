package repository

import (
	"errors"

	apperrors "club-coordination-backend/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres SQLSTATE codes the store reacts to
const (
	pgUniqueViolation      = "23505"
	pgCheckViolation       = "23514"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgLockNotAvailable     = "55P03"
)

var constraintConflicts = map[string]error{
	"idx_users_email":             apperrors.NewConflictError("a user with this email already exists"),
	"idx_clubs_name":              apperrors.ErrClubNameTaken,
	"idx_club_memberships_live":   apperrors.ErrMembershipExists,
	"idx_teams_event_name":        apperrors.ErrTeamNameTaken,
	"idx_team_members_event_user": apperrors.ErrAlreadyInTeamForEvent,
	"idx_team_join_requests_live": apperrors.ErrDuplicateJoinRequest,
	"chk_teams_capacity":          apperrors.ErrTeamFull,
	"chk_clubs_member_count":      apperrors.NewConflictError("club member count cannot go negative"),
}

// translateError maps driver and gorm errors onto the application taxonomy.
// Errors that are already typed pass through unchanged.
func translateError(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgUniqueViolation, pgCheckViolation:
		if conflict, ok := constraintConflicts[pgErr.ConstraintName]; ok {
			return conflict
		}
		return apperrors.NewConflictError("resource already exists")
	case pgSerializationFailure, pgDeadlockDetected, pgLockNotAvailable:
		return apperrors.NewTransientConflictError(err)
	}
	return err
}
