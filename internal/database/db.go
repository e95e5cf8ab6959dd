package database

import (
	"fmt"

	"github.com/lnbfans/courtside/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres database and returns the handle. There is no
// package-level connection; callers pass the handle down explicitly.
func Connect(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the schema for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Team{},
		&models.User{},
		&models.Coach{},
		&models.Player{},
		&models.Article{},
		&models.Event{},
		&models.EventSignup{},
		&models.FavoriteSlot{},
	)
}
