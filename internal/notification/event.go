// Package notification carries domain events out of the coordination engine.
// Events are dispatched after the store transaction commits; delivery is best effort.
package notification

import (
	"time"

	"github.com/google/uuid"
)

// EventType names a domain event
type EventType string

const (
	ClubJoinRequested  EventType = "club.join_requested"
	ClubMemberApproved EventType = "club.member_approved"
	ClubMemberRejected EventType = "club.member_rejected"
	ClubMemberLeft     EventType = "club.member_left"
	ClubMemberExpelled EventType = "club.member_expelled"
	ClubRoleUpdated    EventType = "club.role_updated"

	TeamCreated       EventType = "team.created"
	TeamJoinRequested EventType = "team.join_requested"
	TeamJoined        EventType = "team.joined"
	TeamFull          EventType = "team.full"
	TeamJoinRejected  EventType = "team.join_rejected"
	TeamMemberLeft    EventType = "team.member_left"
	TeamDisbanded     EventType = "team.disbanded"
)

// Event is the payload handed to dispatchers
type Event struct {
	ID         uuid.UUID              `json:"id"`
	Type       EventType              `json:"type"`
	OccurredAt time.Time              `json:"occurred_at"`
	ActorID    uuid.UUID              `json:"actor_id"`
	SubjectID  uuid.UUID              `json:"subject_id"`
	ClubID     *uuid.UUID             `json:"club_id,omitempty"`
	EventID    *uuid.UUID             `json:"event_id,omitempty"`
	TeamID     *uuid.UUID             `json:"team_id,omitempty"`
	Recipients []uuid.UUID            `json:"recipients,omitempty"`
	Data       map[string]interface{} `json:"data,omitempty"`
}

// New creates an event with a fresh id and timestamp
func New(eventType EventType, actorID, subjectID uuid.UUID) Event {
	return Event{
		ID:         uuid.New(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		ActorID:    actorID,
		SubjectID:  subjectID,
	}
}

// ForClub scopes the event to a club
func (e Event) ForClub(clubID uuid.UUID) Event {
	e.ClubID = &clubID
	return e
}

// ForTeam scopes the event to a team of an event
func (e Event) ForTeam(eventID, teamID uuid.UUID) Event {
	e.EventID = &eventID
	e.TeamID = &teamID
	return e
}

// To sets the users who should be told about the event
func (e Event) To(recipients ...uuid.UUID) Event {
	e.Recipients = append(e.Recipients, recipients...)
	return e
}

// With attaches a data field
func (e Event) With(key string, value interface{}) Event {
	data := make(map[string]interface{}, len(e.Data)+1)
	for k, v := range e.Data {
		data[k] = v
	}
	data[key] = value
	e.Data = data
	return e
}
