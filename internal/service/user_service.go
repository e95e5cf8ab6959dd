package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lnbfans/courtside/internal/models"
	"github.com/lnbfans/courtside/internal/repository"
	"github.com/lnbfans/courtside/internal/utils"
	"github.com/lnbfans/courtside/pkg/logger"
	"go.uber.org/zap"
)

var ErrUserNotFound = errors.New("user not found")

type UserInput struct {
	Username  string
	Email     string
	Password  string
	Role      models.Role
	FirstName string
	LastName  string
	BirthDate *time.Time
	Points    int
}

// UserService is the admin side of account management. Only here can an
// admin role be handed out.
type UserService struct {
	userRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) List(query string) ([]models.User, error) {
	return s.userRepo.List(query)
}

func (s *UserService) Get(id uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) Create(input UserInput) (*models.User, error) {
	if err := validateRegisterInput(input.Username, input.Email, input.Password); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetByEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}
	existing, err = s.userRepo.GetByUsername(input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	role := input.Role
	if role != models.RoleAdmin {
		role = models.RoleFan
	}

	passwordHash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: passwordHash,
		Role:         role,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		BirthDate:    input.BirthDate,
		Points:       input.Points,
	}
	if err := s.userRepo.Create(user); err != nil {
		logger.Log.Error("Failed to create user", zap.Error(err))
		return nil, err
	}

	logger.Log.Info("User created by admin",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)),
	)
	return user, nil
}

// Update edits profile fields and role. Username, email and password stay
// as they are unless provided.
func (s *UserService) Update(id uuid.UUID, input UserInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if input.Email != "" && input.Email != user.Email {
		existing, err := s.userRepo.GetByEmail(input.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrEmailTaken
		}
		user.Email = input.Email
	}
	if input.Username != "" && input.Username != user.Username {
		existing, err := s.userRepo.GetByUsername(input.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrUsernameTaken
		}
		user.Username = input.Username
	}
	if input.Password != "" {
		passwordHash, err := utils.HashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = passwordHash
	}
	if input.Role == models.RoleAdmin || input.Role == models.RoleFan {
		user.Role = input.Role
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.BirthDate = input.BirthDate
	user.Points = input.Points

	if err := s.userRepo.Update(user); err != nil {
		logger.Log.Error("Failed to update user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// Delete removes the account together with its owned player and lineup
// slots; the user's event signup rows lose their reference but remain.
func (s *UserService) Delete(id uuid.UUID) error {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if err := s.userRepo.Delete(id); err != nil {
		logger.Log.Error("Failed to delete user", zap.Error(err))
		return err
	}
	logger.Log.Info("User deleted", zap.String("user_id", id.String()))
	return nil
}
