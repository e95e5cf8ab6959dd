package repository

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/lnbfans/courtside/internal/models"
	"gorm.io/gorm"
)

type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID loads the team with its roster and coaching staff.
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Players").Preload("Coaches").Where("id = ?", id).First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

func (r *TeamRepository) GetByName(name string) (*models.Team, error) {
	var team models.Team
	err := r.db.Where("name = ?", name).First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &team, nil
}

// List returns teams, optionally filtered by a case-insensitive substring
// match on name or city.
func (r *TeamRepository) List(query string) ([]models.Team, error) {
	var teams []models.Team
	tx := r.db.Order("name ASC")
	if query != "" {
		pattern := "%" + strings.ToLower(query) + "%"
		tx = tx.Where("lower(name) LIKE ? OR lower(city) LIKE ?", pattern, pattern)
	}
	err := tx.Find(&teams).Error
	return teams, err
}

func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// Delete removes the team. Its players and coaches become unassigned, not
// deleted.
func (r *TeamRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Player{}).Where("team_id = ?", id).
			Update("team_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Coach{}).Where("team_id = ?", id).
			Update("team_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Team{}, "id = ?", id).Error
	})
}
