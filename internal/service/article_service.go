package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lnbfans/courtside/internal/models"
	"github.com/lnbfans/courtside/internal/repository"
	"github.com/lnbfans/courtside/pkg/logger"
	"go.uber.org/zap"
)

var (
	ErrArticleNotFound   = errors.New("article not found")
	ErrArticleTitleTaken = errors.New("article title already exists")
)

type ArticleInput struct {
	Title       string
	Description string
	PublishDate *time.Time
	CoverURL    string
	Photo1URL   string
	Photo2URL   string
	Photo3URL   string
}

type ArticleService struct {
	articleRepo *repository.ArticleRepository
}

func NewArticleService(articleRepo *repository.ArticleRepository) *ArticleService {
	return &ArticleService{articleRepo: articleRepo}
}

func (s *ArticleService) List(query string) ([]models.Article, error) {
	return s.articleRepo.List(query)
}

func (s *ArticleService) Get(id uuid.UUID) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

func (s *ArticleService) Create(input ArticleInput) (*models.Article, error) {
	existing, err := s.articleRepo.GetByTitle(input.Title)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrArticleTitleTaken
	}

	article := &models.Article{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		PublishDate: input.PublishDate,
		CoverURL:    input.CoverURL,
		Photo1URL:   input.Photo1URL,
		Photo2URL:   input.Photo2URL,
		Photo3URL:   input.Photo3URL,
	}
	if err := s.articleRepo.Create(article); err != nil {
		logger.Log.Error("Failed to create article", zap.Error(err))
		return nil, err
	}
	logger.Log.Info("Article created", zap.String("article_id", article.ID.String()))
	return article, nil
}

func (s *ArticleService) Update(id uuid.UUID, input ArticleInput) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}

	if input.Title != article.Title {
		existing, err := s.articleRepo.GetByTitle(input.Title)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrArticleTitleTaken
		}
	}

	article.Title = input.Title
	article.Description = input.Description
	article.PublishDate = input.PublishDate
	article.CoverURL = input.CoverURL
	article.Photo1URL = input.Photo1URL
	article.Photo2URL = input.Photo2URL
	article.Photo3URL = input.Photo3URL

	if err := s.articleRepo.Update(article); err != nil {
		logger.Log.Error("Failed to update article", zap.Error(err))
		return nil, err
	}
	return article, nil
}

func (s *ArticleService) Delete(id uuid.UUID) error {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		return err
	}
	if article == nil {
		return ErrArticleNotFound
	}
	if err := s.articleRepo.Delete(id); err != nil {
		logger.Log.Error("Failed to delete article", zap.Error(err))
		return err
	}
	logger.Log.Info("Article deleted", zap.String("article_id", id.String()))
	return nil
}
