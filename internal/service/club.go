package service

import (
	"context"
	"fmt"

	"club-coordination-backend/internal/database/models"
	apperrors "club-coordination-backend/internal/errors"
	"club-coordination-backend/internal/logger"
	"club-coordination-backend/internal/notification"
	"club-coordination-backend/internal/rbac"
	"club-coordination-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ClubService handles clubs and the membership ledger
type ClubService struct {
	clubs          repository.ClubRepositoryInterface
	memberships    repository.MembershipRepositoryInterface
	resolver       *rbac.Resolver
	dispatcher     notification.Dispatcher
	retrier        *Retrier
	validator      *validator.Validate
	enforceCeiling bool
}

// NewClubService creates a new club service
func NewClubService(
	clubs repository.ClubRepositoryInterface,
	memberships repository.MembershipRepositoryInterface,
	resolver *rbac.Resolver,
	dispatcher notification.Dispatcher,
	retrier *Retrier,
	validator *validator.Validate,
	enforceCeiling bool,
) *ClubService {
	return &ClubService{
		clubs:          clubs,
		memberships:    memberships,
		resolver:       resolver,
		dispatcher:     dispatcher,
		retrier:        retrier,
		validator:      validator,
		enforceCeiling: enforceCeiling,
	}
}

// CreateClub creates a club with the creator as its chairman
func (s *ClubService) CreateClub(ctx context.Context, actorID uuid.UUID, req *CreateClubRequest) (*ClubResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	var club *models.Club
	err := s.retrier.Do(ctx, "club.create", func() error {
		club = &models.Club{
			Name:             req.Name,
			Description:      req.Description,
			RequiresApproval: req.RequiresApproval,
		}
		_, err := s.clubs.CreateWithChairman(ctx, club, actorID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create club: %w", err)
	}

	logger.WithContext(ctx).WithField("club_id", club.ID).Info("club created")
	return toClubResponse(club), nil
}

// GetClub retrieves a club by ID
func (s *ClubService) GetClub(ctx context.Context, id uuid.UUID) (*ClubResponse, error) {
	club, err := s.clubs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toClubResponse(club), nil
}

// ListClubs lists clubs by name
func (s *ClubService) ListClubs(ctx context.Context, limit, offset int) (*ClubListResponse, error) {
	limit, offset, err := normalizePagination(limit, offset)
	if err != nil {
		return nil, err
	}

	clubs, total, err := s.clubs.GetAll(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list clubs: %w", err)
	}

	resp := &ClubListResponse{Clubs: make([]ClubResponse, 0, len(clubs)), Total: total, Limit: limit, Offset: offset}
	for i := range clubs {
		resp.Clubs = append(resp.Clubs, *toClubResponse(&clubs[i]))
	}
	return resp, nil
}

// RequestJoin asks to join a club. Open clubs admit the user straight away.
func (s *ClubService) RequestJoin(ctx context.Context, clubID, userID uuid.UUID) (*MembershipResponse, error) {
	var membership *models.ClubMembership
	err := s.retrier.Do(ctx, "club.request_join", func() error {
		var err error
		membership, err = s.memberships.Request(ctx, clubID, userID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to request club membership: %w", err)
	}

	if membership.Status == models.MembershipStatusActive {
		emit(ctx, s.dispatcher, notification.New(notification.ClubMemberApproved, userID, userID).
			ForClub(clubID).
			To(userID).
			With("automatic", true))
	} else {
		emit(ctx, s.dispatcher, notification.New(notification.ClubJoinRequested, userID, userID).
			ForClub(clubID).
			With("membership_id", membership.ID))
	}
	return toMembershipResponse(membership), nil
}

// WithdrawJoin cancels the caller's pending request
func (s *ClubService) WithdrawJoin(ctx context.Context, clubID, userID uuid.UUID) error {
	err := s.retrier.Do(ctx, "club.withdraw", func() error {
		_, err := s.memberships.Withdraw(ctx, clubID, userID)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to withdraw club request: %w", err)
	}
	return nil
}

// ListMemberships lists a club's memberships. Active members are visible to every member;
// any other view needs manage_members.
func (s *ClubService) ListMemberships(ctx context.Context, clubID, actorID uuid.UUID, status models.MembershipStatus, limit, offset int) (*MembershipListResponse, error) {
	if status != "" && !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}
	limit, offset, err := normalizePagination(limit, offset)
	if err != nil {
		return nil, err
	}

	if _, err := s.clubs.GetByID(ctx, clubID); err != nil {
		return nil, err
	}
	role, err := s.scopeRole(ctx, clubID, actorID)
	if err != nil {
		return nil, err
	}
	capability := rbac.CapManageMembers
	if status == models.MembershipStatusActive {
		capability = rbac.CapViewClub
	}
	if err := s.resolver.Authorize(role, capability); err != nil {
		return nil, err
	}

	memberships, total, err := s.memberships.GetByClub(ctx, clubID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	resp := &MembershipListResponse{
		Memberships: make([]MembershipResponse, 0, len(memberships)),
		Total:       total,
		Limit:       limit,
		Offset:      offset,
	}
	for i := range memberships {
		resp.Memberships = append(resp.Memberships, *toMembershipResponse(&memberships[i]))
	}
	return resp, nil
}

// GetMyMembership returns the caller's pending or active membership
func (s *ClubService) GetMyMembership(ctx context.Context, clubID, userID uuid.UUID) (*MembershipResponse, error) {
	m, err := s.memberships.GetLive(ctx, clubID, userID)
	if err != nil {
		return nil, err
	}
	return toMembershipResponse(m), nil
}

// Approve activates a pending membership
func (s *ClubService) Approve(ctx context.Context, clubID, membershipID, actorID uuid.UUID) (*MembershipResponse, error) {
	var membership *models.ClubMembership
	err := s.retrier.Do(ctx, "club.approve", func() error {
		var err error
		membership, err = s.memberships.Approve(ctx, clubID, membershipID, actorID, s.requireCapability(rbac.CapManageMembers))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to approve membership: %w", err)
	}

	emit(ctx, s.dispatcher, notification.New(notification.ClubMemberApproved, actorID, membership.UserID).
		ForClub(clubID).
		To(membership.UserID).
		With("membership_id", membership.ID))
	return toMembershipResponse(membership), nil
}

// Reject declines a pending membership
func (s *ClubService) Reject(ctx context.Context, clubID, membershipID, actorID uuid.UUID) (*MembershipResponse, error) {
	var membership *models.ClubMembership
	err := s.retrier.Do(ctx, "club.reject", func() error {
		var err error
		membership, err = s.memberships.Reject(ctx, clubID, membershipID, actorID, s.requireCapability(rbac.CapManageMembers))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reject membership: %w", err)
	}

	emit(ctx, s.dispatcher, notification.New(notification.ClubMemberRejected, actorID, membership.UserID).
		ForClub(clubID).
		To(membership.UserID).
		With("membership_id", membership.ID))
	return toMembershipResponse(membership), nil
}

// Leave removes the caller from the club. The chairman has no successor and cannot leave.
func (s *ClubService) Leave(ctx context.Context, clubID, userID uuid.UUID) error {
	guard := func(_, target *models.ClubMembership) error {
		if target.ScopeRole() == rbac.LeaderRole {
			return apperrors.ErrClubLeaderCannotLeave
		}
		return nil
	}

	err := s.retrier.Do(ctx, "club.leave", func() error {
		_, err := s.memberships.Remove(ctx, clubID, userID, userID, guard)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to leave club: %w", err)
	}

	emit(ctx, s.dispatcher, notification.New(notification.ClubMemberLeft, userID, userID).ForClub(clubID))
	return nil
}

// Expel removes another member. The actor needs manage_members and must outrank the target.
func (s *ClubService) Expel(ctx context.Context, clubID, targetUserID, actorID uuid.UUID) error {
	if targetUserID == actorID {
		return apperrors.NewValidationError("user_id", "use leave to remove yourself")
	}

	guard := func(actor, target *models.ClubMembership) error {
		actorRole := actor.ScopeRole()
		if err := s.resolver.Authorize(actorRole, rbac.CapManageMembers); err != nil {
			return err
		}
		if target.ScopeRole() == rbac.LeaderRole {
			return apperrors.ErrClubLeaderCannotBeExpelled
		}
		if !s.resolver.Outranks(actorRole, target.ScopeRole()) {
			return apperrors.ErrInsufficientRank
		}
		return nil
	}

	err := s.retrier.Do(ctx, "club.expel", func() error {
		_, err := s.memberships.Remove(ctx, clubID, targetUserID, actorID, guard)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to expel member: %w", err)
	}

	emit(ctx, s.dispatcher, notification.New(notification.ClubMemberExpelled, actorID, targetUserID).
		ForClub(clubID).
		To(targetUserID))
	return nil
}

// UpdateRole changes an active member's role. The chairman role is never granted or revoked.
func (s *ClubService) UpdateRole(ctx context.Context, clubID, targetUserID, actorID uuid.UUID, req *UpdateRoleRequest) (*MembershipResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	registry := s.resolver.Registry()
	if !registry.IsKnown(req.Role) || req.Role == rbac.RoleUser {
		return nil, apperrors.NewValidationError("role", fmt.Sprintf("unknown club role %q", req.Role))
	}
	if targetUserID == actorID {
		return nil, apperrors.ErrInsufficientRank
	}

	var previous rbac.Role
	guard := func(actor, target *models.ClubMembership) error {
		actorRole := actor.ScopeRole()
		if err := s.resolver.Authorize(actorRole, rbac.CapPromoteMembers); err != nil {
			return err
		}
		if target.Role == rbac.LeaderRole || req.Role == rbac.LeaderRole {
			return apperrors.ErrLeaderRoleImmutable
		}
		if s.enforceCeiling {
			if !s.resolver.Outranks(actorRole, target.ScopeRole()) || !s.resolver.Outranks(actorRole, req.Role) {
				return apperrors.ErrInsufficientRank
			}
		}
		previous = target.Role
		return nil
	}

	var membership *models.ClubMembership
	err := s.retrier.Do(ctx, "club.update_role", func() error {
		var err error
		membership, err = s.memberships.UpdateRole(ctx, clubID, targetUserID, actorID, req.Role, guard)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update member role: %w", err)
	}

	if previous != req.Role {
		emit(ctx, s.dispatcher, notification.New(notification.ClubRoleUpdated, actorID, targetUserID).
			ForClub(clubID).
			To(targetUserID).
			With("previous_role", previous).
			With("role", req.Role))
	}
	return toMembershipResponse(membership), nil
}

// requireCapability builds a guard that checks the actor's role in the locked club
func (s *ClubService) requireCapability(capability rbac.Capability) repository.MembershipGuard {
	return func(actor, _ *models.ClubMembership) error {
		return s.resolver.Authorize(actor.ScopeRole(), capability)
	}
}

func (s *ClubService) scopeRole(ctx context.Context, clubID, userID uuid.UUID) (rbac.Role, error) {
	m, err := s.memberships.GetLive(ctx, clubID, userID)
	if apperrors.IsNotFound(err) {
		return rbac.NoRole, nil
	}
	if err != nil {
		return rbac.NoRole, err
	}
	return m.ScopeRole(), nil
}
