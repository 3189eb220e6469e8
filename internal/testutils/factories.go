package testutils

import (
	"time"

	"club-coordination-backend/internal/database/models"
	"club-coordination-backend/internal/rbac"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with a unique email
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	// Unique email per call so factories can be used repeatedly in one test
	local := "student-" + id.String()[:8]

	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:       local + "@campus.edu",
		DisplayName: local,
		GlobalRole:  rbac.RoleMember,
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithGlobalRole sets the platform-wide role for the user
func (f *UserFactory) WithGlobalRole(role rbac.Role) *models.User {
	user := f.Create()
	user.GlobalRole = role
	return user
}

// ClubFactory provides methods to create test Club data
type ClubFactory struct{}

// NewClubFactory creates a new ClubFactory
func NewClubFactory() *ClubFactory {
	return &ClubFactory{}
}

// Create creates an open test Club. MemberCount is left at zero; the store sets it.
func (f *ClubFactory) Create() *models.Club {
	id := uuid.New()
	return &models.Club{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "club-" + id.String()[:8],
		Description: "A test club for testing purposes",
	}
}

// WithName sets a custom name for the club
func (f *ClubFactory) WithName(name string) *models.Club {
	club := f.Create()
	club.Name = name
	return club
}

// WithApproval creates a club whose join requests need a decision
func (f *ClubFactory) WithApproval() *models.Club {
	club := f.Create()
	club.RequiresApproval = true
	return club
}

// EventFactory provides methods to create test Event data
type EventFactory struct{}

// NewEventFactory creates a new EventFactory
func NewEventFactory() *EventFactory {
	return &EventFactory{}
}

// Create creates a platform-hosted test Event with teams of three
func (f *EventFactory) Create() *models.Event {
	startsAt := time.Now().Add(7 * 24 * time.Hour).UTC().Truncate(time.Second)
	return &models.Event{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:          "Test Hackathon",
		Description:    "A test event for testing purposes",
		StartsAt:       &startsAt,
		MaxTeamMembers: 3,
		CreatedBy:      uuid.New(),
	}
}

// WithClub sets the hosting club for the event
func (f *EventFactory) WithClub(clubID uuid.UUID) *models.Event {
	event := f.Create()
	event.ClubID = &clubID
	return event
}

// WithCapacity sets the team size limit for the event
func (f *EventFactory) WithCapacity(max int) *models.Event {
	event := f.Create()
	event.MaxTeamMembers = max
	return event
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team. CurrentMembers and IsFull are set by CreateWithLeader.
func (f *TeamFactory) Create() *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		EventID:     uuid.New(),
		LeaderID:    uuid.New(),
		Name:        "team-" + id.String()[:8],
		Description: "A test team for testing purposes",
		MaxMembers:  3,
	}
}

// ForEvent creates a team for the event, led by leaderID, sized by the event
func (f *TeamFactory) ForEvent(event *models.Event, leaderID uuid.UUID) *models.Team {
	team := f.Create()
	team.EventID = event.ID
	team.LeaderID = leaderID
	team.MaxMembers = event.MaxTeamMembers
	return team
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// JoinRequestFactory provides methods to create test TeamJoinRequest data
type JoinRequestFactory struct{}

// NewJoinRequestFactory creates a new JoinRequestFactory
func NewJoinRequestFactory() *JoinRequestFactory {
	return &JoinRequestFactory{}
}

// Create creates a pending join request for the team
func (f *JoinRequestFactory) Create(team *models.Team, userID uuid.UUID) *models.TeamJoinRequest {
	return &models.TeamJoinRequest{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:  team.ID,
		EventID: team.EventID,
		UserID:  userID,
		Status:  models.JoinRequestStatusPending,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	User        *UserFactory
	Club        *ClubFactory
	Event       *EventFactory
	Team        *TeamFactory
	JoinRequest *JoinRequestFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:        NewUserFactory(),
		Club:        NewClubFactory(),
		Event:       NewEventFactory(),
		Team:        NewTeamFactory(),
		JoinRequest: NewJoinRequestFactory(),
	}
}
