package repository

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/lnbfans/courtside/internal/models"
	"gorm.io/gorm"
)

type CoachRepository struct {
	db *gorm.DB
}

func NewCoachRepository(db *gorm.DB) *CoachRepository {
	return &CoachRepository{db: db}
}

func (r *CoachRepository) Create(coach *models.Coach) error {
	return r.db.Create(coach).Error
}

func (r *CoachRepository) GetByID(id uuid.UUID) (*models.Coach, error) {
	var coach models.Coach
	err := r.db.Where("id = ?", id).First(&coach).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &coach, nil
}

func (r *CoachRepository) List(query string) ([]models.Coach, error) {
	var coaches []models.Coach
	tx := r.db.Order("last_name ASC")
	if query != "" {
		pattern := "%" + strings.ToLower(query) + "%"
		tx = tx.Where("lower(first_name) LIKE ? OR lower(last_name) LIKE ?", pattern, pattern)
	}
	err := tx.Find(&coaches).Error
	return coaches, err
}

func (r *CoachRepository) Update(coach *models.Coach) error {
	return r.db.Save(coach).Error
}

func (r *CoachRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Coach{}, "id = ?", id).Error
}
