package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lnbfans/courtside/internal/service"
)

type TeamHandler struct {
	teamService *service.TeamService
}

func NewTeamHandler(teamService *service.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// List returns all teams, filtered by ?q= on name or city.
// GET /teams, GET /admin/teams
func (h *TeamHandler) List(c *gin.Context) {
	teams, err := h.teamService.List(c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch teams"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"teams": teams})
}

// Get returns one team with its roster and coaches.
// GET /teams/:id
func (h *TeamHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	team, err := h.teamService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrTeamNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch team"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"team": team})
}

type TeamRequest struct {
	Name          string `json:"name" binding:"required"`
	City          string `json:"city"`
	Venue         string `json:"venue"`
	FoundingDate  string `json:"founding_date"`
	Seasons       int    `json:"seasons"`
	Championships int    `json:"championships"`
	CrestURL      string `json:"crest_url"`
	VenueURL      string `json:"venue_url"`
}

func (r *TeamRequest) toInput() (service.TeamInput, bool) {
	founded, ok := parseDate(r.FoundingDate)
	if !ok {
		return service.TeamInput{}, false
	}
	return service.TeamInput{
		Name:          r.Name,
		City:          r.City,
		Venue:         r.Venue,
		FoundingDate:  founded,
		Seasons:       r.Seasons,
		Championships: r.Championships,
		CrestURL:      r.CrestURL,
		VenueURL:      r.VenueURL,
	}, true
}

// Create adds a team.
// POST /admin/teams
func (h *TeamHandler) Create(c *gin.Context) {
	var req TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	input, ok := req.toInput()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid founding_date, use YYYY-MM-DD"})
		return
	}

	team, err := h.teamService.Create(input)
	if err != nil {
		if errors.Is(err, service.ErrTeamNameTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create team"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"team": team})
}

// Update edits a team.
// PUT /admin/teams/:id
func (h *TeamHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	input, ok := req.toInput()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid founding_date, use YYYY-MM-DD"})
		return
	}

	team, err := h.teamService.Update(id, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTeamNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		case errors.Is(err, service.ErrTeamNameTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update team"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"team": team})
}

// Delete removes a team; players and coaches become unassigned.
// DELETE /admin/teams/:id
func (h *TeamHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.teamService.Delete(id); err != nil {
		if errors.Is(err, service.ErrTeamNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete team"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Team deleted"})
}
