package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lnbfans/courtside/internal/middleware"
	"github.com/lnbfans/courtside/internal/service"
)

type ProfileHandler struct {
	profileService *service.ProfileService
	playerService  *service.PlayerService
}

func NewProfileHandler(profileService *service.ProfileService, playerService *service.PlayerService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		playerService:  playerService,
	}
}

// Get returns the acting user's own profile.
// GET /profile
func (h *ProfileHandler) Get(c *gin.Context) {
	user := middleware.CurrentUser(c)

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":                 user.ID,
			"username":           user.Username,
			"email":              user.Email,
			"role":               user.Role,
			"first_name":         user.FirstName,
			"last_name":          user.LastName,
			"birth_date":         user.BirthDate,
			"points":             user.Points,
			"favorite_team_id":   user.FavoriteTeamID,
			"favorite_player_id": user.FavoritePlayerID,
		},
	})
}

type favoriteRequest struct {
	ID uuid.UUID `json:"id" binding:"required"`
}

// SetFavoriteTeam picks the fan's favorite team.
// PUT /profile/favorite-team
func (h *ProfileHandler) SetFavoriteTeam(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.profileService.SetFavoriteTeam(user.ID, req.ID); err != nil {
		if errors.Is(err, service.ErrTeamNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set favorite team"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Favorite team updated"})
}

// SetFavoritePlayer picks the fan's favorite player.
// PUT /profile/favorite-player
func (h *ProfileHandler) SetFavoritePlayer(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.profileService.SetFavoritePlayer(user.ID, req.ID); err != nil {
		if errors.Is(err, service.ErrPlayerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set favorite player"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Favorite player updated"})
}

// Lineup returns the fan's favorite five keyed by slot.
// GET /profile/lineup
func (h *ProfileHandler) Lineup(c *gin.Context) {
	user := middleware.CurrentUser(c)

	lineup, err := h.profileService.Lineup(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch lineup"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"lineup": lineup})
}

type assignSlotRequest struct {
	PlayerID uuid.UUID `json:"player_id" binding:"required"`
}

// AssignSlot fills one lineup position, replacing any previous occupant.
// PUT /profile/lineup/:position
func (h *ProfileHandler) AssignSlot(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req assignSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.profileService.AssignSlot(user.ID, c.Param("position"), req.PlayerID); err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownPosition):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrPlayerNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		case errors.Is(err, service.ErrPositionMismatch), errors.Is(err, service.ErrIneligiblePlayer):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign slot"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Lineup updated"})
}
