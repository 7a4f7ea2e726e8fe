package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stablebook/stablebook/internal/db"
	"github.com/stablebook/stablebook/internal/model"
)

// newTestDB opens a fresh in-memory SQLite database with all migrations
// applied. Each test gets its own database, destroyed on cleanup.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := db.Init("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	// One connection only: every new connection to :memory: would get its
	// own empty database.
	database.SetMaxOpenConns(1)

	err = db.RunMigrations(database.DB, "sqlite")
	if err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return database
}

func createTestHorse(t *testing.T, database *sqlx.DB, name string) *model.Horse {
	t.Helper()

	horse := &model.Horse{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now(),
	}
	err := NewHorseRepository(database).Create(horse)
	if err != nil {
		t.Fatalf("failed to create test horse: %v", err)
	}
	return horse
}

func createTestRider(t *testing.T, database *sqlx.DB, name, horseID string) *model.Rider {
	t.Helper()

	rider := &model.Rider{
		ID:        uuid.New().String(),
		Name:      name,
		HorseID:   horseID,
		CreatedAt: time.Now(),
	}
	err := NewRiderRepository(database).Create(rider)
	if err != nil {
		t.Fatalf("failed to create test rider: %v", err)
	}
	return rider
}

func createTestEntry(t *testing.T, database *sqlx.DB, riderID, text string, createdAt time.Time) *model.Entry {
	t.Helper()

	entry := &model.Entry{
		ID:          uuid.New().String(),
		RiderID:     riderID,
		TextContent: text,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	err := NewEntryRepository(database).Create(entry)
	if err != nil {
		t.Fatalf("failed to create test entry: %v", err)
	}
	return entry
}

func createTestEvent(t *testing.T, database *sqlx.DB, horseID, title, date string, timeOfDay *string, createdBy *string) *model.Event {
	t.Helper()

	now := time.Now()
	event := &model.Event{
		ID:        uuid.New().String(),
		HorseID:   horseID,
		Title:     title,
		EventType: model.EventTypeOther,
		Date:      date,
		Time:      timeOfDay,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := NewEventRepository(database).Create(event)
	if err != nil {
		t.Fatalf("failed to create test event: %v", err)
	}
	return event
}

func createTestGoal(t *testing.T, database *sqlx.DB, riderID, title string) *model.Goal {
	t.Helper()

	now := time.Now()
	goal := &model.Goal{
		ID:        uuid.New().String(),
		RiderID:   riderID,
		Title:     title,
		Status:    model.GoalStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := NewGoalRepository(database).Create(goal)
	if err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}

func strptr(s string) *string { return &s }
