package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store groups the repositories the coordination service works against.
// The gorm-backed store and the in-process store both fill it.
type Store struct {
	Users       UserRepositoryInterface
	Clubs       ClubRepositoryInterface
	Memberships MembershipRepositoryInterface
	Events      EventRepositoryInterface
	Teams       TeamRepositoryInterface
	Messages    TeamMessageRepositoryInterface
	Pinger      Pinger
}

// NewStore creates the Postgres-backed store
func NewStore(db *gorm.DB) *Store {
	return &Store{
		Users:       NewUserRepository(db),
		Clubs:       NewClubRepository(db),
		Memberships: NewMembershipRepository(db),
		Events:      NewEventRepository(db),
		Teams:       NewTeamRepository(db),
		Messages:    NewTeamMessageRepository(db),
		Pinger:      &dbPinger{db: db},
	}
}

type dbPinger struct {
	db *gorm.DB
}

func (p *dbPinger) Ping(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
