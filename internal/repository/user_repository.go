package repository

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/lnbfans/courtside/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// List returns users, optionally filtered by a case-insensitive substring
// match on username or email.
func (r *UserRepository) List(query string) ([]models.User, error) {
	var users []models.User
	tx := r.db.Order("created_at DESC")
	if query != "" {
		pattern := "%" + strings.ToLower(query) + "%"
		tx = tx.Where("lower(username) LIKE ? OR lower(email) LIKE ?", pattern, pattern)
	}
	err := tx.Find(&users).Error
	return users, err
}

func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// Delete removes the user and applies the foreign-key policy in one
// transaction: the owned player goes with the account, which also clears
// every reference to that player (other fans' lineup slots and favorite
// picks); the user's own slots go too; event signup rows stay but lose
// their user reference.
func (r *UserRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var owned models.Player
		err := tx.Where("owner_fan_id = ?", id).First(&owned).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err == nil {
			if err := tx.Where("player_id = ?", owned.ID).Delete(&models.FavoriteSlot{}).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.User{}).Where("favorite_player_id = ?", owned.ID).
				Update("favorite_player_id", nil).Error; err != nil {
				return err
			}
			if err := tx.Delete(&models.Player{}, "id = ?", owned.ID).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("fan_id = ?", id).Delete(&models.FavoriteSlot{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.EventSignup{}).Where("user_id = ?", id).
			Update("user_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, "id = ?", id).Error
	})
}
