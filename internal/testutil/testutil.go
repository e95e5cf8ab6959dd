package testutil

import (
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/lnbfans/courtside/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestDatabase holds the in-memory SQLite connection used by tests.
type TestDatabase struct {
	DB *gorm.DB
}

// TestRedis holds an in-memory Redis mock (miniredis).
type TestRedis struct {
	Server *miniredis.Miniredis
	URL    string
}

// SetupTestDatabase opens a private in-memory SQLite database and runs
// the migrations. Every ID is generated application-side, so the real
// models migrate cleanly without Postgres.
func SetupTestDatabase(t *testing.T) *TestDatabase {
	t.Helper()

	// cache=shared keeps every pooled connection on the same database.
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.Coach{},
		&models.Player{},
		&models.Article{},
		&models.Event{},
		&models.EventSignup{},
		&models.FavoriteSlot{},
	)
	if err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return &TestDatabase{DB: db}
}

// Teardown closes the test database connection.
func (td *TestDatabase) Teardown(t *testing.T) {
	t.Helper()
	sqlDB, err := td.DB.DB()
	if err != nil {
		t.Logf("Warning: Failed to get underlying DB: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		t.Logf("Warning: Failed to close database: %v", err)
	}
}

// SetupTestRedis starts a miniredis server for session and rate-limit
// tests.
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()
	server := miniredis.RunT(t)
	return &TestRedis{
		Server: server,
		URL:    fmt.Sprintf("redis://%s", server.Addr()),
	}
}

// Teardown stops the Redis mock.
func (tr *TestRedis) Teardown(t *testing.T) {
	t.Helper()
	tr.Server.Close()
}

// CleanDatabase deletes all rows, children before parents.
func CleanDatabase(t *testing.T, db *gorm.DB) {
	t.Helper()
	tables := []string{
		"favorite_slots",
		"event_signups",
		"events",
		"articles",
		"players",
		"coaches",
		"users",
		"teams",
	}
	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("Warning: Failed to clean table %s: %v", table, err)
		}
	}
}
