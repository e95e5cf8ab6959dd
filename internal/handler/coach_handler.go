package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lnbfans/courtside/internal/service"
)

type CoachHandler struct {
	coachService *service.CoachService
}

func NewCoachHandler(coachService *service.CoachService) *CoachHandler {
	return &CoachHandler{coachService: coachService}
}

// List returns coaches with ?q= name search.
// GET /admin/coaches
func (h *CoachHandler) List(c *gin.Context) {
	coaches, err := h.coachService.List(c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch coaches"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"coaches": coaches})
}

// GET /admin/coaches/:id
func (h *CoachHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	coach, err := h.coachService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrCoachNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch coach"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"coach": coach})
}

type CoachRequest struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	BirthDate   string `json:"birth_date"`
	Nationality string `json:"nationality"`
	City        string `json:"city"`
	Seasons     int    `json:"seasons"`
	PhotoURL    string `json:"photo_url"`
	TeamID      string `json:"team_id"`
}

func (r *CoachRequest) toInput() (service.CoachInput, bool) {
	born, ok := parseDate(r.BirthDate)
	if !ok {
		return service.CoachInput{}, false
	}
	teamID, ok := parseOptionalID(r.TeamID)
	if !ok {
		return service.CoachInput{}, false
	}
	return service.CoachInput{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		BirthDate:   born,
		Nationality: r.Nationality,
		City:        r.City,
		Seasons:     r.Seasons,
		PhotoURL:    r.PhotoURL,
		TeamID:      teamID,
	}, true
}

// POST /admin/coaches
func (h *CoachHandler) Create(c *gin.Context) {
	var req CoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	input, ok := req.toInput()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid birth_date or team_id"})
		return
	}

	coach, err := h.coachService.Create(input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create coach"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"coach": coach})
}

// PUT /admin/coaches/:id
func (h *CoachHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req CoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	input, ok := req.toInput()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid birth_date or team_id"})
		return
	}

	coach, err := h.coachService.Update(id, input)
	if err != nil {
		if errors.Is(err, service.ErrCoachNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update coach"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"coach": coach})
}

// DELETE /admin/coaches/:id
func (h *CoachHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.coachService.Delete(id); err != nil {
		if errors.Is(err, service.ErrCoachNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete coach"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Coach deleted"})
}
