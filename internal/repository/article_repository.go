package repository

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/lnbfans/courtside/internal/models"
	"gorm.io/gorm"
)

type ArticleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

func (r *ArticleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *ArticleRepository) GetByID(id uuid.UUID) (*models.Article, error) {
	var article models.Article
	err := r.db.Where("id = ?", id).First(&article).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}

func (r *ArticleRepository) GetByTitle(title string) (*models.Article, error) {
	var article models.Article
	err := r.db.Where("title = ?", title).First(&article).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}

// List returns articles newest first, optionally filtered by a
// case-insensitive substring match on the title.
func (r *ArticleRepository) List(query string) ([]models.Article, error) {
	var articles []models.Article
	tx := r.db.Order("publish_date DESC")
	if query != "" {
		pattern := "%" + strings.ToLower(query) + "%"
		tx = tx.Where("lower(title) LIKE ?", pattern)
	}
	err := tx.Find(&articles).Error
	return articles, err
}

func (r *ArticleRepository) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

func (r *ArticleRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Article{}, "id = ?", id).Error
}
