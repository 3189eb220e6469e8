package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"club-coordination-backend/internal/config"
	"club-coordination-backend/internal/database"
	"club-coordination-backend/internal/database/models"
	apperrors "club-coordination-backend/internal/errors"
	"club-coordination-backend/internal/notification"
	"club-coordination-backend/internal/rbac"
	"club-coordination-backend/internal/repository"
	"club-coordination-backend/internal/service"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that mirror the demo data file
type UserData struct {
	Email       string `yaml:"email"`
	DisplayName string `yaml:"display_name"`
}

type MemberData struct {
	Email string `yaml:"email"`
	Role  string `yaml:"role,omitempty"`
}

type EventData struct {
	Title          string `yaml:"title"`
	Description    string `yaml:"description"`
	MaxTeamMembers int    `yaml:"max_team_members"`
	StartsInDays   int    `yaml:"starts_in_days"`
}

type ClubData struct {
	Name             string       `yaml:"name"`
	Description      string       `yaml:"description"`
	RequiresApproval bool         `yaml:"requires_approval"`
	Chairman         string       `yaml:"chairman"`
	Members          []MemberData `yaml:"members"`
	Events           []EventData  `yaml:"events"`
}

type DemoFile struct {
	Users []UserData `yaml:"users"`
	Clubs []ClubData `yaml:"clubs"`
}

func main() {
	log.Println("Loading demo data...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	data, err := loadDemoFile(filepath.Join("scripts", "data", "demo.yaml"))
	if err != nil {
		log.Fatalf("Failed to read demo data: %v", err)
	}

	// Seed through the services so every membership and counter rule applies
	services := service.New(repository.NewStore(db), rbac.NewResolver(rbac.DefaultRegistry()),
		notification.NewLogDispatcher(), service.Options{MaxAttempts: cfg.TxMaxRetries, EnforcePromotionCeiling: cfg.EnforcePromotionCeiling})

	if err := seed(context.Background(), services, data); err != nil {
		log.Fatalf("Failed to load demo data: %v", err)
	}

	log.Println("Demo data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDemoFile(path string) (*DemoFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data DemoFile
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &data, nil
}

func seed(ctx context.Context, services *service.Services, data *DemoFile) error {
	users := make(map[string]uuid.UUID, len(data.Users))
	for _, u := range data.Users {
		user, err := services.Users.Provision(ctx, u.Email, u.DisplayName)
		if err != nil {
			return fmt.Errorf("failed to provision %s: %w", u.Email, err)
		}
		users[user.Email] = user.ID
	}

	created, skipped := 0, 0
	for _, c := range data.Clubs {
		chairmanID, ok := users[c.Chairman]
		if !ok {
			return fmt.Errorf("club %s: chairman %s is not a listed user", c.Name, c.Chairman)
		}

		club, err := services.Clubs.CreateClub(ctx, chairmanID, &service.CreateClubRequest{
			Name:             c.Name,
			Description:      c.Description,
			RequiresApproval: c.RequiresApproval,
		})
		if errors.Is(err, apperrors.ErrClubNameTaken) {
			log.Printf("Club %s already exists, skipping", c.Name)
			skipped++
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to create club %s: %w", c.Name, err)
		}

		if err := seedMembers(ctx, services, club.ID, chairmanID, c.Members, users); err != nil {
			return fmt.Errorf("club %s: %w", c.Name, err)
		}

		for _, e := range c.Events {
			startsAt := time.Now().AddDate(0, 0, e.StartsInDays)
			if _, err := services.Events.CreateEvent(ctx, chairmanID, &service.CreateEventRequest{
				ClubID:         &club.ID,
				Title:          e.Title,
				Description:    e.Description,
				StartsAt:       &startsAt,
				MaxTeamMembers: e.MaxTeamMembers,
			}); err != nil {
				return fmt.Errorf("club %s: failed to create event %s: %w", c.Name, e.Title, err)
			}
		}
		created++
	}

	log.Printf("Users: %d, clubs created: %d, clubs skipped: %d", len(users), created, skipped)
	return nil
}

func seedMembers(ctx context.Context, services *service.Services, clubID, chairmanID uuid.UUID, members []MemberData, users map[string]uuid.UUID) error {
	for _, m := range members {
		userID, ok := users[m.Email]
		if !ok {
			return fmt.Errorf("member %s is not a listed user", m.Email)
		}

		membership, err := services.Clubs.RequestJoin(ctx, clubID, userID)
		if err != nil {
			return fmt.Errorf("failed to add %s: %w", m.Email, err)
		}
		if membership.Status != models.MembershipStatusActive {
			if _, err := services.Clubs.Approve(ctx, clubID, membership.ID, chairmanID); err != nil {
				return fmt.Errorf("failed to approve %s: %w", m.Email, err)
			}
		}

		if m.Role != "" {
			if _, err := services.Clubs.UpdateRole(ctx, clubID, userID, chairmanID, &service.UpdateRoleRequest{Role: rbac.Role(m.Role)}); err != nil {
				return fmt.Errorf("failed to grant %s to %s: %w", m.Role, m.Email, err)
			}
		}
	}
	return nil
}
