package repository

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/lnbfans/courtside/internal/models"
	"gorm.io/gorm"
)

// ErrOwnerConflict means the fan already owns a created player.
var ErrOwnerConflict = errors.New("fan already owns a player")

type PlayerRepository struct {
	db *gorm.DB
}

func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) Create(player *models.Player) error {
	return r.db.Create(player).Error
}

// CreateFanPlayer inserts a fan-created player, checking the one-player-
// per-fan invariant inside the same transaction so concurrent submissions
// cannot both pass the check.
func (r *PlayerRepository) CreateFanPlayer(player *models.Player) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Player{}).
			Where("owner_fan_id = ?", player.OwnerFanID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrOwnerConflict
		}
		return tx.Create(player).Error
	})
}

func (r *PlayerRepository) GetByID(id uuid.UUID) (*models.Player, error) {
	var player models.Player
	err := r.db.Where("id = ?", id).First(&player).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &player, nil
}

// GetByOwner returns the fan's created player, nil when they have none.
func (r *PlayerRepository) GetByOwner(fanID uuid.UUID) (*models.Player, error) {
	var player models.Player
	err := r.db.Where("owner_fan_id = ?", fanID).First(&player).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &player, nil
}

// List returns players, optionally filtered by a case-insensitive
// substring match on first or last name.
func (r *PlayerRepository) List(query string) ([]models.Player, error) {
	var players []models.Player
	tx := r.db.Order("last_name ASC")
	if query != "" {
		pattern := "%" + strings.ToLower(query) + "%"
		tx = tx.Where("lower(first_name) LIKE ? OR lower(last_name) LIKE ?", pattern, pattern)
	}
	err := tx.Find(&players).Error
	return players, err
}

// ListFanCreated returns every fan-created player (the pool a favorite
// five is picked from).
func (r *PlayerRepository) ListFanCreated() ([]models.Player, error) {
	var players []models.Player
	err := r.db.Where("owner_fan_id IS NOT NULL").Order("rating DESC").Find(&players).Error
	return players, err
}

func (r *PlayerRepository) Update(player *models.Player) error {
	return r.db.Save(player).Error
}

// Delete removes the player together with any favorite slots and
// favorite-player picks referencing it.
func (r *PlayerRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("player_id = ?", id).Delete(&models.FavoriteSlot{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.User{}).Where("favorite_player_id = ?", id).
			Update("favorite_player_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Player{}, "id = ?", id).Error
	})
}
