package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lnbfans/courtside/internal/middleware"
	"github.com/lnbfans/courtside/internal/service"
)

type PlayerHandler struct {
	playerService *service.PlayerService
}

func NewPlayerHandler(playerService *service.PlayerService) *PlayerHandler {
	return &PlayerHandler{playerService: playerService}
}

// List returns players, with ?q= name search and ?position= slot filter.
// GET /players, GET /admin/players
func (h *PlayerHandler) List(c *gin.Context) {
	players, err := h.playerService.List(c.Query("q"), c.Query("position"))
	if err != nil {
		if errors.Is(err, service.ErrUnknownPosition) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch players"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"players": players})
}

// Get returns one player card.
// GET /players/:id
func (h *PlayerHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	player, err := h.playerService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrPlayerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch player"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"player": player})
}

// Community returns the fan-created player pool.
// GET /community/players
func (h *PlayerHandler) Community(c *gin.Context) {
	players, err := h.playerService.ListFanCreated()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch players"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"players": players})
}

type PlayerRequest struct {
	FirstName   string  `json:"first_name" binding:"required"`
	LastName    string  `json:"last_name" binding:"required"`
	Jersey      int     `json:"jersey"`
	Position    string  `json:"position" binding:"required"`
	Nationality string  `json:"nationality"`
	City        string  `json:"city"`
	Height      float64 `json:"height"`
	Hand        string  `json:"hand"`
	Specialty   string  `json:"specialty"`
	Move        string  `json:"move"`
	TeamID      string  `json:"team_id"`
}

func (r *PlayerRequest) toInput() service.FanPlayerInput {
	return service.FanPlayerInput{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Jersey:      r.Jersey,
		Position:    r.Position,
		Nationality: r.Nationality,
		City:        r.City,
		Height:      r.Height,
		Hand:        r.Hand,
		Specialty:   r.Specialty,
		Move:        r.Move,
	}
}

// MyPlayer returns the acting fan's created player.
// GET /my-player
func (h *PlayerHandler) MyPlayer(c *gin.Context) {
	user := middleware.CurrentUser(c)

	player, err := h.playerService.MyPlayer(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch player"})
		return
	}
	if player == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "You have not created a player yet"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"player": player})
}

// CreateMyPlayer builds the fan's one personal player card.
// POST /my-player
func (h *PlayerHandler) CreateMyPlayer(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req PlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	player, err := h.playerService.CreateFanPlayer(user.ID, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPlayerAlreadyOwned):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrUnknownPosition):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create player"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"player": player})
}

// Create adds an official roster player.
// POST /admin/players
func (h *PlayerHandler) Create(c *gin.Context) {
	var req PlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	teamID, ok := parseOptionalID(req.TeamID)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team_id"})
		return
	}

	player, err := h.playerService.AdminCreate(req.toInput(), teamID)
	if err != nil {
		if errors.Is(err, service.ErrUnknownPosition) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create player"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"player": player})
}

// Update edits an official player. Fan-owned players are rejected.
// PUT /admin/players/:id
func (h *PlayerHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req PlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	teamID, ok := parseOptionalID(req.TeamID)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team_id"})
		return
	}

	player, err := h.playerService.AdminUpdate(id, req.toInput(), teamID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPlayerNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		case errors.Is(err, service.ErrFanOwnedPlayer):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrUnknownPosition):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update player"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"player": player})
}

// Delete removes an official player. Fan-owned players are rejected.
// DELETE /admin/players/:id
func (h *PlayerHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.playerService.AdminDelete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrPlayerNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		case errors.Is(err, service.ErrFanOwnedPlayer):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete player"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Player deleted"})
}
