package notification

import (
	"context"
	"errors"

	"club-coordination-backend/internal/logger"
)

//go:generate mockgen -source=dispatcher.go -destination=../mocks/notification_mocks.go -package=mocks

// Dispatcher delivers domain events to the notification collaborator
type Dispatcher interface {
	Dispatch(ctx context.Context, event Event) error
}

// LogDispatcher writes events to the structured log
type LogDispatcher struct{}

// NewLogDispatcher creates a dispatcher that only logs
func NewLogDispatcher() *LogDispatcher {
	return &LogDispatcher{}
}

// Dispatch logs the event
func (d *LogDispatcher) Dispatch(ctx context.Context, event Event) error {
	fields := map[string]interface{}{
		"event_id":   event.ID,
		"event_type": event.Type,
		"actor_id":   event.ActorID,
		"subject_id": event.SubjectID,
	}
	if event.ClubID != nil {
		fields["club_id"] = *event.ClubID
	}
	if event.TeamID != nil {
		fields["team_id"] = *event.TeamID
	}
	logger.WithContext(ctx).WithFields(fields).Info("domain event")
	return nil
}

// MultiDispatcher fans an event out to several dispatchers.
// Every dispatcher is called; their errors are joined.
type MultiDispatcher struct {
	dispatchers []Dispatcher
}

// NewMultiDispatcher creates a fan-out dispatcher
func NewMultiDispatcher(dispatchers ...Dispatcher) *MultiDispatcher {
	return &MultiDispatcher{dispatchers: dispatchers}
}

// Dispatch sends the event to every dispatcher
func (d *MultiDispatcher) Dispatch(ctx context.Context, event Event) error {
	var errs []error
	for _, dispatcher := range d.dispatchers {
		if err := dispatcher.Dispatch(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
