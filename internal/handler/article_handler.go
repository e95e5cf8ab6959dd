package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lnbfans/courtside/internal/service"
)

type ArticleHandler struct {
	articleService *service.ArticleService
}

func NewArticleHandler(articleService *service.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// List returns news articles, newest first, with ?q= title search.
// GET /news, GET /admin/articles
func (h *ArticleHandler) List(c *gin.Context) {
	articles, err := h.articleService.List(c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch articles"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// Get returns one article.
// GET /news/:id
func (h *ArticleHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	article, err := h.articleService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch article"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}

type ArticleRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	PublishDate string `json:"publish_date"`
	CoverURL    string `json:"cover_url"`
	Photo1URL   string `json:"photo_1_url"`
	Photo2URL   string `json:"photo_2_url"`
	Photo3URL   string `json:"photo_3_url"`
}

func (r *ArticleRequest) toInput() (service.ArticleInput, bool) {
	published, ok := parseDate(r.PublishDate)
	if !ok {
		return service.ArticleInput{}, false
	}
	return service.ArticleInput{
		Title:       r.Title,
		Description: r.Description,
		PublishDate: published,
		CoverURL:    r.CoverURL,
		Photo1URL:   r.Photo1URL,
		Photo2URL:   r.Photo2URL,
		Photo3URL:   r.Photo3URL,
	}, true
}

// Create publishes an article.
// POST /admin/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	input, ok := req.toInput()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid publish_date, use YYYY-MM-DD"})
		return
	}

	article, err := h.articleService.Create(input)
	if err != nil {
		if errors.Is(err, service.ErrArticleTitleTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create article"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"article": article})
}

// Update edits an article.
// PUT /admin/articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	input, ok := req.toInput()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid publish_date, use YYYY-MM-DD"})
		return
	}

	article, err := h.articleService.Update(id, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrArticleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		case errors.Is(err, service.ErrArticleTitleTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update article"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}

// Delete removes an article.
// DELETE /admin/articles/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.articleService.Delete(id); err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete article"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Article deleted"})
}
