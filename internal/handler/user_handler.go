package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lnbfans/courtside/internal/models"
	"github.com/lnbfans/courtside/internal/service"
	"github.com/lnbfans/courtside/pkg/logger"
	"go.uber.org/zap"
)

// UserHandler is the admin view of accounts.
type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns accounts with ?q= username/email search.
// GET /admin/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// GET /admin/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	user, err := h.userService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

type UserRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	BirthDate string `json:"birth_date"`
	Points    int    `json:"points"`
}

func (r *UserRequest) toInput() (service.UserInput, bool) {
	born, ok := parseDate(r.BirthDate)
	if !ok {
		return service.UserInput{}, false
	}
	return service.UserInput{
		Username:  r.Username,
		Email:     r.Email,
		Password:  r.Password,
		Role:      models.Role(r.Role),
		FirstName: r.FirstName,
		LastName:  r.LastName,
		BirthDate: born,
		Points:    r.Points,
	}, true
}

// Create adds an account; this is the only route that can mint an admin.
// POST /admin/users
func (h *UserHandler) Create(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	input, ok := req.toInput()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid birth_date, use YYYY-MM-DD"})
		return
	}

	user, err := h.userService.Create(input)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, service.ErrEmailTaken) || errors.Is(err, service.ErrUsernameTaken) {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// PUT /admin/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	input, ok := req.toInput()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid birth_date, use YYYY-MM-DD"})
		return
	}

	user, err := h.userService.Update(id, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		case errors.Is(err, service.ErrEmailTaken), errors.Is(err, service.ErrUsernameTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Delete removes an account and cascades its owned player and slots.
// DELETE /admin/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	logger.Log.Info("Admin deleting user", zap.String("user_id", id.String()))

	if err := h.userService.Delete(id); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
