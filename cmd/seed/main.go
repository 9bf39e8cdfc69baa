package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"eventease/internal/events"
	"eventease/internal/halls"
	"eventease/internal/layout"
	"eventease/internal/shared/config"
	"eventease/internal/shared/database"
	"eventease/internal/users"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting EventEase Database Seeder...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	// Clean database
	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	// Seed data
	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in the correct order (respecting foreign key constraints)
func (s *Seeder) CleanDatabase() error {
	// Delete in reverse dependency order
	tables := []string{
		"bookings",
		"events",
		"halls",
		"users",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Exec("SET CONSTRAINTS ALL DEFERRED").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to defer constraints: %w", err)
	}

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	if err := tx.Exec("SET CONSTRAINTS ALL IMMEDIATE").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to restore constraints: %w", err)
	}

	return tx.Commit().Error
}

// SeedAll seeds all required data
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	// Seed users first (no dependencies)
	userIDs, err := s.SeedUsers()
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	// Seed halls with their layouts
	hallIDs, err := s.SeedHalls(userIDs["admin"])
	if err != nil {
		return fmt.Errorf("failed to seed halls: %w", err)
	}

	// Seed events bound to the halls
	if err := s.SeedEvents(userIDs["admin"], hallIDs); err != nil {
		return fmt.Errorf("failed to seed events: %w", err)
	}

	// Clear Redis cache to ensure fresh state
	if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
		log.Printf("Warning: Failed to clear Redis cache: %v", err)
	}

	return nil
}

// SeedUsers creates 3 users: 1 admin and 2 regular users
func (s *Seeder) SeedUsers() (map[string]uuid.UUID, error) {
	fmt.Println("  👤 Seeding users...")

	userIDs := make(map[string]uuid.UUID)

	// Hash password for all users (using "qwerty")
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("qwerty"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usersData := []struct {
		key       string
		firstName string
		lastName  string
		email     string
		role      users.Role
	}{
		{"admin", "Admin", "User", "admin@eventease.io", users.RoleAdmin},
		{"user1", "Nora", "Lindqvist", "nora.lindqvist@example.com", users.RoleUser},
		{"user2", "Tomas", "Berg", "tomas.berg@example.com", users.RoleUser},
	}

	for _, userData := range usersData {
		user := users.User{
			ID:        uuid.New(),
			FirstName: userData.firstName,
			LastName:  userData.lastName,
			Email:     userData.email,
			Password:  string(hashedPassword),
			Role:      userData.role,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", userData.email, err)
		}

		userIDs[userData.key] = user.ID
		fmt.Printf("    ✅ Created user: %s (%s)\n", user.Email, user.Role)
	}

	return userIDs, nil
}

// SeedHalls creates demo halls from the layout templates, plus one hall
// stored in the legacy {rows, cols} form to exercise the blob upgrade path.
func (s *Seeder) SeedHalls(adminID uuid.UUID) (map[string]uuid.UUID, error) {
	fmt.Println("  🏟️ Seeding halls...")

	hallIDs := make(map[string]uuid.UUID)

	hallsData := []struct {
		key         string
		name        string
		description string
		template    layout.TemplateID
		zones       []layout.Zone
	}{
		{
			key:         "cinema",
			name:        "Screen One",
			description: "Small cinema hall with a center aisle",
			template:    layout.TemplateCinemaSmall,
			zones: []layout.Zone{
				{ID: "Z1", Name: "Standard", Price: 250, Color: "#92FCA7"},
				{ID: "Z2", Name: "Premium", Price: 450, Color: "#ED94FF"},
			},
		},
		{
			key:         "conference",
			name:        "Summit Hall",
			description: "Conference hall with stage and side screens",
			template:    layout.TemplateConference,
			zones: []layout.Zone{
				{ID: "Z1", Name: "General", Price: 1500, Color: "#92FCA7"},
				{ID: "Z2", Name: "VIP", Price: 3000, Color: "#ED94FF"},
			},
		},
		{
			key:         "wedding",
			name:        "Garden Pavilion",
			description: "Wedding hall with round tables and a dance floor",
			template:    layout.TemplateWeddingSmall,
			zones:       layout.DefaultZones(),
		},
	}

	for _, hallData := range hallsData {
		items, err := layout.BuildTemplate(hallData.template)
		if err != nil {
			return nil, fmt.Errorf("failed to build layout for hall %s: %w", hallData.name, err)
		}

		blob, err := layout.Encode(&layout.Layout{Items: items, Zones: hallData.zones})
		if err != nil {
			return nil, fmt.Errorf("failed to encode layout for hall %s: %w", hallData.name, err)
		}

		hall := halls.Hall{
			ID:          uuid.New(),
			Name:        hallData.name,
			Description: hallData.description,
			LayoutData:  blob,
			CreatedBy:   adminID,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&hall).Error; err != nil {
			return nil, fmt.Errorf("failed to create hall %s: %w", hall.Name, err)
		}

		hallIDs[hallData.key] = hall.ID
		fmt.Printf("    ✅ Created hall: %s (%d seats)\n", hall.Name, hall.SeatCount())
	}

	// Legacy hall: raw {rows, cols} blob as written by the old importer.
	// Reads upgrade it to a centered seat grid.
	legacy := halls.Hall{
		ID:          uuid.New(),
		Name:        "Old Lecture Room",
		Description: "Imported hall record in the legacy grid form",
		LayoutData:  []byte(`{"rows": 4, "cols": 6}`),
		CreatedBy:   adminID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.db.PostgreSQL.Create(&legacy).Error; err != nil {
		return nil, fmt.Errorf("failed to create hall %s: %w", legacy.Name, err)
	}

	hallIDs["legacy"] = legacy.ID
	fmt.Printf("    ✅ Created hall: %s (%d seats, legacy blob)\n", legacy.Name, legacy.SeatCount())

	return hallIDs, nil
}

// SeedEvents creates sample events bound to the seeded halls
func (s *Seeder) SeedEvents(adminID uuid.UUID, hallIDs map[string]uuid.UUID) error {
	fmt.Println("  🎪 Seeding events...")

	eventsData := []struct {
		name        string
		description string
		hallKey     string
		status      events.EventStatus
		daysFromNow int
	}{
		{
			name:        "Tech Summit 2026",
			description: "Annual technology conference featuring the latest innovations and industry leaders.",
			hallKey:     "conference",
			status:      events.EventStatusPublished,
			daysFromNow: 30,
		},
		{
			name:        "Classic Film Night",
			description: "A restored 35mm classic on the big screen.",
			hallKey:     "cinema",
			status:      events.EventStatusPublished,
			daysFromNow: 14,
		},
		{
			name:        "Lindqvist & Berg Wedding",
			description: "Private wedding reception with dinner and live music.",
			hallKey:     "wedding",
			status:      events.EventStatusDraft,
			daysFromNow: 60,
		},
		{
			name:        "Intro to Rust Workshop",
			description: "Hands-on systems programming workshop for beginners.",
			hallKey:     "legacy",
			status:      events.EventStatusPublished,
			daysFromNow: 7,
		},
	}

	for _, eventData := range eventsData {
		hallID, ok := hallIDs[eventData.hallKey]
		if !ok {
			return fmt.Errorf("unknown hall key %q for event %s", eventData.hallKey, eventData.name)
		}

		event := events.Event{
			ID:          uuid.New(),
			Name:        eventData.name,
			Description: eventData.description,
			HallID:      hallID,
			StartsAt:    time.Now().AddDate(0, 0, eventData.daysFromNow),
			Status:      eventData.status,
			ImageURL:    "",
			CreatedBy:   adminID,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&event).Error; err != nil {
			return fmt.Errorf("failed to create event %s: %w", event.Name, err)
		}

		fmt.Printf("    ✅ Created event: %s (%s)\n", event.Name, event.Status)
	}

	return nil
}
