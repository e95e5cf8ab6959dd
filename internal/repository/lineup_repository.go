package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/lnbfans/courtside/internal/models"
	"gorm.io/gorm"
)

type LineupRepository struct {
	db *gorm.DB
}

func NewLineupRepository(db *gorm.DB) *LineupRepository {
	return &LineupRepository{db: db}
}

// ListByFan returns the fan's favorite-five slots with players preloaded.
func (r *LineupRepository) ListByFan(fanID uuid.UUID) ([]models.FavoriteSlot, error) {
	var slots []models.FavoriteSlot
	err := r.db.Preload("Player").Where("fan_id = ?", fanID).Find(&slots).Error
	return slots, err
}

// Assign puts the player into the fan's slot for the position, replacing
// any previous occupant. Removal and insert run in one transaction so the
// one-row-per-(fan,position) invariant holds under concurrent updates.
func (r *LineupRepository) Assign(fanID uuid.UUID, position string, playerID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(`fan_id = ? AND "position" = ?`, fanID, position).
			Delete(&models.FavoriteSlot{}).Error; err != nil {
			return err
		}
		slot := models.FavoriteSlot{
			ID:        uuid.New(),
			FanID:     fanID,
			Position:  position,
			PlayerID:  playerID,
			CreatedAt: time.Now(),
		}
		return tx.Create(&slot).Error
	})
}

// Clear removes the fan's slot for a position.
func (r *LineupRepository) Clear(fanID uuid.UUID, position string) error {
	return r.db.Where(`fan_id = ? AND "position" = ?`, fanID, position).
		Delete(&models.FavoriteSlot{}).Error
}
