package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/lnbfans/courtside/internal/models"
	"github.com/lnbfans/courtside/internal/repository"
	"github.com/lnbfans/courtside/internal/session"
	"github.com/lnbfans/courtside/internal/utils"
	"github.com/lnbfans/courtside/pkg/logger"
	"go.uber.org/zap"
)

var (
	ErrEmailTaken         = errors.New("email already exists")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// AuthService handles registration, login and session lifecycle.
// Self-registration always produces a fan; admins come from the bootstrap
// command or from another admin.
type AuthService struct {
	userRepo *repository.UserRepository
	sessions *session.Store
}

func NewAuthService(userRepo *repository.UserRepository, sessions *session.Store) *AuthService {
	return &AuthService{userRepo: userRepo, sessions: sessions}
}

// SessionTTL is the cookie lifetime matching the server-side session.
func (s *AuthService) SessionTTL() time.Duration {
	return s.sessions.TTL()
}

func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, string, error) {
	if err := validateRegisterInput(username, email, password); err != nil {
		logger.Log.Warn("Registration validation failed",
			zap.String("username", username),
			zap.Error(err),
		)
		return nil, "", err
	}

	existing, err := s.userRepo.GetByEmail(email)
	if err != nil {
		logger.Log.Error("Failed to check email existence", zap.Error(err))
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	existing, err = s.userRepo.GetByUsername(username)
	if err != nil {
		logger.Log.Error("Failed to check username existence", zap.Error(err))
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrUsernameTaken
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		logger.Log.Error("Failed to hash password", zap.Error(err))
		return nil, "", err
	}

	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         models.RoleFan,
	}
	if err := s.userRepo.Create(user); err != nil {
		logger.Log.Error("Failed to create user",
			zap.String("username", username),
			zap.Error(err),
		)
		return nil, "", err
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		logger.Log.Error("Failed to create session",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return nil, "", err
	}

	logger.Log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("username", username),
	)
	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		logger.Log.Error("Failed to get user by username", zap.Error(err))
		return nil, "", err
	}
	if user == nil {
		logger.Log.Warn("Login failed: unknown username", zap.String("username", username))
		return nil, "", ErrInvalidCredentials
	}

	valid, err := utils.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		logger.Log.Error("Failed to verify password", zap.Error(err))
		return nil, "", err
	}
	if !valid {
		logger.Log.Warn("Login failed: bad password",
			zap.String("user_id", user.ID.String()),
		)
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		logger.Log.Error("Failed to create session",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return nil, "", err
	}

	logger.Log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
	)
	return user, token, nil
}

// Logout destroys the server-side session. Unknown tokens are ignored.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Destroy(ctx, token)
}

// CurrentUser resolves a session token to the user row. The role is read
// from the database on every call, never cached in the session.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	userID, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return s.userRepo.GetByID(userID)
}

func validateRegisterInput(username, email, password string) error {
	if len(username) < 3 {
		return errors.New("username must be at least 3 characters")
	}
	if len(username) > 80 {
		return errors.New("username must be at most 80 characters")
	}
	if !emailRegex.MatchString(email) {
		return errors.New("invalid email format")
	}
	if len(email) > 200 {
		return errors.New("email too long")
	}
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	if len(password) > 128 {
		return errors.New("password too long")
	}
	return nil
}
