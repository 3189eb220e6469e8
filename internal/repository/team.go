package repository

import (
	"context"
	"time"

	"club-coordination-backend/internal/database/models"
	apperrors "club-coordination-backend/internal/errors"
	"club-coordination-backend/internal/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TeamRepository handles database operations for teams, rosters and join requests
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// lockTeam reads a team row with FOR UPDATE and loads its roster
func lockTeam(tx *gorm.DB, id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&team, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err, apperrors.ErrTeamNotFound)
	}
	if err := tx.Where("team_id = ?", id).Order("joined_at").Find(&team.Members).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// syncCount makes the stored counter agree with the locked roster
func syncCount(ctx context.Context, tx *gorm.DB, team *models.Team) error {
	n := len(team.Members)
	if n == team.CurrentMembers && team.IsFull == (n >= team.MaxMembers) {
		return nil
	}
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id": team.ID,
		"stored":  team.CurrentMembers,
		"actual":  n,
	}).Warn("team member counter drifted from roster")
	team.SetCount(n)
	return saveCount(tx, team)
}

func saveCount(tx *gorm.DB, team *models.Team) error {
	err := tx.Model(&models.Team{}).Where("id = ?", team.ID).Updates(map[string]interface{}{
		"current_members": team.CurrentMembers,
		"is_full":         team.IsFull,
	}).Error
	return translateError(err, apperrors.ErrTeamNotFound)
}

func inTeamForEvent(tx *gorm.DB, eventID, userID uuid.UUID) (bool, error) {
	var n int64
	err := tx.Model(&models.TeamMember{}).Where("event_id = ? AND user_id = ?", eventID, userID).Count(&n).Error
	return n > 0, err
}

// CreateWithLeader creates a team for team.EventID with team.LeaderID as its first member.
// MaxMembers is taken from the event.
func (r *TeamRepository) CreateWithLeader(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event models.Event
		if err := tx.First(&event, "id = ?", team.EventID).Error; err != nil {
			return translateError(err, apperrors.ErrEventNotFound)
		}

		taken, err := inTeamForEvent(tx, event.ID, team.LeaderID)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.ErrAlreadyInTeamForEvent
		}

		team.MaxMembers = event.MaxTeamMembers
		team.SetCount(1)
		team.Members = nil
		if err := tx.Create(team).Error; err != nil {
			return translateError(err, apperrors.ErrTeamNotFound)
		}

		leader := models.TeamMember{
			TeamID:   team.ID,
			EventID:  team.EventID,
			UserID:   team.LeaderID,
			JoinedAt: time.Now(),
		}
		if err := tx.Create(&leader).Error; err != nil {
			return translateError(err, apperrors.ErrTeamNotFound)
		}
		team.Members = []models.TeamMember{leader}
		return nil
	})
}

// GetByID retrieves a team with its roster
func (r *TeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).
		Preload("Members", func(db *gorm.DB) *gorm.DB { return db.Order("joined_at") }).
		First(&team, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err, apperrors.ErrTeamNotFound)
	}
	return &team, nil
}

// GetByEvent lists the teams of an event with their rosters
func (r *TeamRepository) GetByEvent(ctx context.Context, eventID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.WithContext(ctx).
		Preload("Members", func(db *gorm.DB) *gorm.DB { return db.Order("joined_at") }).
		Where("event_id = ?", eventID).
		Order("created_at").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// RemoveMember takes userID off the roster and withdraws the request that admitted them
func (r *TeamRepository) RemoveMember(ctx context.Context, teamID, userID uuid.UUID) (*models.Team, error) {
	var team *models.Team
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		t, err := lockTeam(tx, teamID)
		if err != nil {
			return err
		}
		if t.LeaderID == userID {
			return apperrors.ErrTeamLeaderCannotLeave
		}
		if !t.HasMember(userID) {
			return apperrors.ErrTeamMembershipNotFound
		}

		if err := tx.Where("team_id = ? AND user_id = ?", teamID, userID).Delete(&models.TeamMember{}).Error; err != nil {
			return err
		}
		remaining := t.Members[:0]
		for _, m := range t.Members {
			if m.UserID != userID {
				remaining = append(remaining, m)
			}
		}
		t.Members = remaining
		t.SetCount(len(remaining))
		if err := saveCount(tx, t); err != nil {
			return err
		}

		err = tx.Model(&models.TeamJoinRequest{}).
			Where("team_id = ? AND user_id = ? AND status = ?", teamID, userID, models.JoinRequestStatusAccepted).
			Update("status", models.JoinRequestStatusWithdrawn).Error
		if err != nil {
			return err
		}
		team = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return team, nil
}

// Disband deletes the team and everything that hangs off it in one transaction
func (r *TeamRepository) Disband(ctx context.Context, teamID uuid.UUID, guard TeamGuard) (*models.Team, error) {
	var team *models.Team
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		t, err := lockTeam(tx, teamID)
		if err != nil {
			return err
		}
		if guard != nil {
			if err := guard(t); err != nil {
				return err
			}
		}

		for _, dependent := range []interface{}{
			&models.TeamJoinRequest{},
			&models.TeamMessage{},
			&models.TeamMember{},
		} {
			if err := tx.Where("team_id = ?", teamID).Delete(dependent).Error; err != nil {
				return err
			}
		}
		if err := tx.Delete(&models.Team{}, "id = ?", teamID).Error; err != nil {
			return err
		}
		team = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return team, nil
}

// ReconcileMemberCounts repairs teams whose counter or full flag drifted from the roster
func (r *TeamRepository) ReconcileMemberCounts(ctx context.Context) (int, error) {
	var drifted []uuid.UUID
	err := r.db.WithContext(ctx).Raw(`
		SELECT t.id FROM teams t
		LEFT JOIN team_members m ON m.team_id = t.id
		GROUP BY t.id, t.current_members, t.max_members, t.is_full
		HAVING t.current_members <> COUNT(m.id) OR t.is_full <> (COUNT(m.id) >= t.max_members)`).
		Scan(&drifted).Error
	if err != nil {
		return 0, err
	}

	repaired := 0
	for _, id := range drifted {
		err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			team, err := lockTeam(tx, id)
			if err != nil {
				return err
			}
			before := team.CurrentMembers
			if err := syncCount(ctx, tx, team); err != nil {
				return err
			}
			if before != team.CurrentMembers {
				repaired++
			}
			return nil
		})
		if err != nil && !apperrors.IsNotFound(err) {
			return repaired, err
		}
	}
	return repaired, nil
}

// CreateJoinRequest stores a pending request after checking the team can still take the user
func (r *TeamRepository) CreateJoinRequest(ctx context.Context, req *models.TeamJoinRequest) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		team, err := lockTeam(tx, req.TeamID)
		if err != nil {
			return err
		}
		if team.HasMember(req.UserID) {
			return apperrors.ErrAlreadyTeamMember
		}
		if len(team.Members) >= team.MaxMembers {
			return apperrors.ErrTeamFull
		}

		taken, err := inTeamForEvent(tx, team.EventID, req.UserID)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.ErrAlreadyInTeamForEvent
		}

		var live int64
		err = tx.Model(&models.TeamJoinRequest{}).
			Where("event_id = ? AND user_id = ? AND status IN ?", team.EventID, req.UserID,
				[]models.JoinRequestStatus{models.JoinRequestStatusPending, models.JoinRequestStatusAccepted}).
			Count(&live).Error
		if err != nil {
			return err
		}
		if live > 0 {
			return apperrors.ErrDuplicateJoinRequest
		}

		req.EventID = team.EventID
		req.Status = models.JoinRequestStatusPending
		return translateError(tx.Create(req).Error, apperrors.ErrJoinRequestNotFound)
	})
}

// GetJoinRequest retrieves a join request by ID
func (r *TeamRepository) GetJoinRequest(ctx context.Context, id uuid.UUID) (*models.TeamJoinRequest, error) {
	var req models.TeamJoinRequest
	err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error
	if err != nil {
		return nil, translateError(err, apperrors.ErrJoinRequestNotFound)
	}
	return &req, nil
}

// GetJoinRequestsByTeam lists a team's requests, optionally filtered by status
func (r *TeamRepository) GetJoinRequestsByTeam(ctx context.Context, teamID uuid.UUID, status models.JoinRequestStatus) ([]models.TeamJoinRequest, error) {
	var reqs []models.TeamJoinRequest
	query := r.db.WithContext(ctx).Where("team_id = ?", teamID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("created_at").Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

// GetJoinRequestsByUser lists every request a user has made
func (r *TeamRepository) GetJoinRequestsByUser(ctx context.Context, userID uuid.UUID) ([]models.TeamJoinRequest, error) {
	var reqs []models.TeamJoinRequest
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

func lockJoinRequest(tx *gorm.DB, teamID, requestID uuid.UUID) (*models.TeamJoinRequest, error) {
	var req models.TeamJoinRequest
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&req, "id = ? AND team_id = ?", requestID, teamID).Error
	if err != nil {
		return nil, translateError(err, apperrors.ErrJoinRequestNotFound)
	}
	return &req, nil
}

func decideJoinRequest(tx *gorm.DB, req *models.TeamJoinRequest, status models.JoinRequestStatus) error {
	now := time.Now()
	req.Status = status
	req.DecidedAt = &now
	err := tx.Model(req).Updates(map[string]interface{}{
		"status":     status,
		"decided_at": now,
	}).Error
	return translateError(err, apperrors.ErrJoinRequestNotFound)
}

// AcceptJoinRequest admits the requester if capacity allows.
// The team row is locked first, then the request row; the roster is recounted before deciding.
func (r *TeamRepository) AcceptJoinRequest(ctx context.Context, teamID, requestID uuid.UUID, guard TeamGuard) (*AcceptOutcome, error) {
	var outcome AcceptOutcome
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		team, err := lockTeam(tx, teamID)
		if err != nil {
			return err
		}
		if guard != nil {
			if err := guard(team); err != nil {
				return err
			}
		}

		req, err := lockJoinRequest(tx, teamID, requestID)
		if err != nil {
			return err
		}
		if err := syncCount(ctx, tx, team); err != nil {
			return err
		}

		outcome.Team = team
		outcome.Request = req

		if team.HasMember(req.UserID) {
			outcome.AlreadyMember = true
			if req.Status == models.JoinRequestStatusPending {
				return decideJoinRequest(tx, req, models.JoinRequestStatusAccepted)
			}
			return nil
		}

		if req.Status != models.JoinRequestStatusPending {
			return apperrors.ErrJoinRequestNotPending
		}
		if team.CurrentMembers >= team.MaxMembers {
			return apperrors.ErrTeamFull
		}

		taken, err := inTeamForEvent(tx, team.EventID, req.UserID)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.ErrAlreadyInTeamForEvent
		}

		member := models.TeamMember{
			TeamID:   team.ID,
			EventID:  team.EventID,
			UserID:   req.UserID,
			JoinedAt: time.Now(),
		}
		if err := tx.Create(&member).Error; err != nil {
			return translateError(err, apperrors.ErrTeamNotFound)
		}
		team.Members = append(team.Members, member)
		team.SetCount(len(team.Members))
		if err := saveCount(tx, team); err != nil {
			return err
		}
		return decideJoinRequest(tx, req, models.JoinRequestStatusAccepted)
	})
	if err != nil {
		return nil, err
	}
	return &outcome, nil
}

// RejectJoinRequest declines a pending request. The team is not modified.
func (r *TeamRepository) RejectJoinRequest(ctx context.Context, teamID, requestID uuid.UUID, guard TeamGuard) (*models.TeamJoinRequest, error) {
	var req *models.TeamJoinRequest
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		team, err := lockTeam(tx, teamID)
		if err != nil {
			return err
		}
		if guard != nil {
			if err := guard(team); err != nil {
				return err
			}
		}

		req, err = lockJoinRequest(tx, teamID, requestID)
		if err != nil {
			return err
		}
		if req.Status != models.JoinRequestStatusPending {
			return apperrors.ErrJoinRequestNotPending
		}
		return decideJoinRequest(tx, req, models.JoinRequestStatusRejected)
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

// WithdrawJoinRequest lets the requester cancel their own pending request
func (r *TeamRepository) WithdrawJoinRequest(ctx context.Context, requestID, userID uuid.UUID) (*models.TeamJoinRequest, error) {
	var req models.TeamJoinRequest
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&req, "id = ?", requestID).Error
		if err != nil {
			return translateError(err, apperrors.ErrJoinRequestNotFound)
		}
		if req.UserID != userID {
			return apperrors.ErrForbidden
		}
		if req.Status != models.JoinRequestStatusPending {
			return apperrors.ErrJoinRequestNotPending
		}
		return decideJoinRequest(tx, &req, models.JoinRequestStatusWithdrawn)
	})
	if err != nil {
		return nil, err
	}
	return &req, nil
}
