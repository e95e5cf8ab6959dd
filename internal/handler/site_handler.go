package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lnbfans/courtside/internal/service"
)

// SiteHandler serves the public landing data.
type SiteHandler struct {
	articleService *service.ArticleService
	eventService   *service.EventService
	teamService    *service.TeamService
}

func NewSiteHandler(articleService *service.ArticleService, eventService *service.EventService, teamService *service.TeamService) *SiteHandler {
	return &SiteHandler{
		articleService: articleService,
		eventService:   eventService,
		teamService:    teamService,
	}
}

// Landing returns the front-page view model: latest news, upcoming
// events and the league's teams.
// GET /
func (h *SiteHandler) Landing(c *gin.Context) {
	articles, err := h.articleService.List("")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load landing page"})
		return
	}
	if len(articles) > 5 {
		articles = articles[:5]
	}

	events, err := h.eventService.List("")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load landing page"})
		return
	}
	if len(events) > 5 {
		events = events[:5]
	}

	teams, err := h.teamService.List("")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load landing page"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"articles": articles,
		"events":   events,
		"teams":    teams,
	})
}
