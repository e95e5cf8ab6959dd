package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lnbfans/courtside/internal/middleware"
	"github.com/lnbfans/courtside/internal/service"
)

type EventHandler struct {
	eventService *service.EventService
}

func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// List returns events soonest first, with ?q= title search.
// GET /events, GET /admin/events
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.eventService.List(c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

// Get returns one event with its active signup count.
// GET /events/:id
func (h *EventHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	event, err := h.eventService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch event"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"event": event})
}

// SignUp registers the acting fan for the event. Repeat signups are a
// no-op; full events reject.
// POST /events/:id/signup
func (h *EventHandler) SignUp(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	user := middleware.CurrentUser(c)

	if err := h.eventService.SignUp(id, user.ID); err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		case errors.Is(err, service.ErrEventFull):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign up"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed up"})
}

type EventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	StartsAt    string `json:"starts_at" binding:"required"`
	CapMax      int    `json:"cap_max"`
	CoverURL    string `json:"cover_url"`
	PhotoURL    string `json:"photo_url"`
}

func (r *EventRequest) toInput() (service.EventInput, bool) {
	startsAt, err := time.Parse(time.RFC3339, r.StartsAt)
	if err != nil {
		return service.EventInput{}, false
	}
	return service.EventInput{
		Title:       r.Title,
		Description: r.Description,
		StartsAt:    startsAt,
		CapMax:      r.CapMax,
		CoverURL:    r.CoverURL,
		PhotoURL:    r.PhotoURL,
	}, true
}

// Create schedules an event.
// POST /admin/events
func (h *EventHandler) Create(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	input, ok := req.toInput()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid starts_at, use RFC 3339"})
		return
	}

	event, err := h.eventService.Create(input)
	if err != nil {
		if errors.Is(err, service.ErrEventTitleTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"event": event})
}

// Update edits an event.
// PUT /admin/events/:id
func (h *EventHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	input, ok := req.toInput()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid starts_at, use RFC 3339"})
		return
	}

	event, err := h.eventService.Update(id, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		case errors.Is(err, service.ErrEventTitleTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"event": event})
}

// Delete removes an event and its signups.
// DELETE /admin/events/:id
func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.eventService.Delete(id); err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}

// Signups lists an event's registrations.
// GET /admin/events/:id/signups
func (h *EventHandler) Signups(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	signups, err := h.eventService.Signups(id)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch signups"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"signups": signups})
}
