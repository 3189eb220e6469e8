package service

import (
	"context"
	"fmt"

	"club-coordination-backend/internal/database/models"
	apperrors "club-coordination-backend/internal/errors"
	"club-coordination-backend/internal/logger"
	"club-coordination-backend/internal/rbac"
	"club-coordination-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// EventService handles events that teams form around
type EventService struct {
	events      repository.EventRepositoryInterface
	clubs       repository.ClubRepositoryInterface
	memberships repository.MembershipRepositoryInterface
	users       repository.UserRepositoryInterface
	resolver    *rbac.Resolver
	retrier     *Retrier
	validator   *validator.Validate
}

// NewEventService creates a new event service
func NewEventService(
	events repository.EventRepositoryInterface,
	clubs repository.ClubRepositoryInterface,
	memberships repository.MembershipRepositoryInterface,
	users repository.UserRepositoryInterface,
	resolver *rbac.Resolver,
	retrier *Retrier,
	validator *validator.Validate,
) *EventService {
	return &EventService{
		events:      events,
		clubs:       clubs,
		memberships: memberships,
		users:       users,
		resolver:    resolver,
		retrier:     retrier,
		validator:   validator,
	}
}

// CreateEvent creates a club or platform event. Club events need create_event in the club;
// platform events need it in the actor's global role.
func (s *EventService) CreateEvent(ctx context.Context, actorID uuid.UUID, req *CreateEventRequest) (*EventResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	role, err := s.actorRole(ctx, actorID, req.ClubID)
	if err != nil {
		return nil, err
	}
	if err := s.resolver.Authorize(role, rbac.CapCreateEvent); err != nil {
		return nil, err
	}

	var event *models.Event
	err = s.retrier.Do(ctx, "event.create", func() error {
		event = &models.Event{
			ClubID:         req.ClubID,
			Title:          req.Title,
			Description:    req.Description,
			StartsAt:       req.StartsAt,
			MaxTeamMembers: req.MaxTeamMembers,
			CreatedBy:      actorID,
		}
		return s.events.Create(ctx, event)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	logger.WithContext(ctx).WithField("event_id", event.ID).Info("event created")
	return toEventResponse(event), nil
}

// GetEvent retrieves an event by ID
func (s *EventService) GetEvent(ctx context.Context, id uuid.UUID) (*EventResponse, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toEventResponse(event), nil
}

// ListClubEvents lists the events of a club
func (s *EventService) ListClubEvents(ctx context.Context, clubID uuid.UUID, limit, offset int) (*EventListResponse, error) {
	limit, offset, err := normalizePagination(limit, offset)
	if err != nil {
		return nil, err
	}
	if _, err := s.clubs.GetByID(ctx, clubID); err != nil {
		return nil, err
	}

	events, total, err := s.events.GetByClub(ctx, clubID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	resp := &EventListResponse{Events: make([]EventResponse, 0, len(events)), Total: total, Limit: limit, Offset: offset}
	for i := range events {
		resp.Events = append(resp.Events, *toEventResponse(&events[i]))
	}
	return resp, nil
}

func (s *EventService) actorRole(ctx context.Context, actorID uuid.UUID, clubID *uuid.UUID) (rbac.Role, error) {
	if clubID == nil {
		user, err := s.users.GetByID(ctx, actorID)
		if err != nil {
			return rbac.NoRole, err
		}
		return user.GlobalRole, nil
	}

	if _, err := s.clubs.GetByID(ctx, *clubID); err != nil {
		return rbac.NoRole, err
	}
	m, err := s.memberships.GetLive(ctx, *clubID, actorID)
	if apperrors.IsNotFound(err) {
		return rbac.NoRole, nil
	}
	if err != nil {
		return rbac.NoRole, err
	}
	return m.ScopeRole(), nil
}
