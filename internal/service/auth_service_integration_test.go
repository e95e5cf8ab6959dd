package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/lnbfans/courtside/internal/models"
	"github.com/lnbfans/courtside/internal/repository"
	"github.com/lnbfans/courtside/internal/service"
	"github.com/lnbfans/courtside/internal/session"
	"github.com/lnbfans/courtside/internal/testutil"
	"github.com/lnbfans/courtside/pkg/logger"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type AuthServiceIntegrationTestSuite struct {
	suite.Suite
	testDB      *testutil.TestDatabase
	testRedis   *testutil.TestRedis
	authService *service.AuthService
}

func (s *AuthServiceIntegrationTestSuite) SetupSuite() {
	logger.Init(false)
	s.testDB = testutil.SetupTestDatabase(s.T())
	s.testRedis = testutil.SetupTestRedis(s.T())

	client := redis.NewClient(&redis.Options{Addr: s.testRedis.Server.Addr()})
	sessions := session.NewStore(client, time.Hour)

	userRepo := repository.NewUserRepository(s.testDB.DB)
	s.authService = service.NewAuthService(userRepo, sessions)
}

func (s *AuthServiceIntegrationTestSuite) TearDownSuite() {
	s.testDB.Teardown(s.T())
}

func (s *AuthServiceIntegrationTestSuite) SetupTest() {
	s.testDB.DB.Exec("DELETE FROM users")
	s.testRedis.Server.FlushAll()
}

func (s *AuthServiceIntegrationTestSuite) TestRegisterCreatesFanWithSession() {
	ctx := context.Background()

	user, token, err := s.authService.Register(ctx, "newfan", "newfan@example.com", "Password123")
	assert.NoError(s.T(), err)
	assert.NotNil(s.T(), user)
	assert.NotEmpty(s.T(), token)

	// Self-registration never grants admin.
	assert.Equal(s.T(), models.RoleFan, user.Role)
	assert.NotEqual(s.T(), "Password123", user.PasswordHash)

	resolved, err := s.authService.CurrentUser(ctx, token)
	assert.NoError(s.T(), err)
	assert.NotNil(s.T(), resolved)
	assert.Equal(s.T(), user.ID, resolved.ID)
}

func (s *AuthServiceIntegrationTestSuite) TestRegisterDuplicateEmail() {
	ctx := context.Background()

	_, _, err := s.authService.Register(ctx, "fanone", "same@example.com", "Password123")
	assert.NoError(s.T(), err)

	_, _, err = s.authService.Register(ctx, "fantwo", "same@example.com", "Password123")
	assert.ErrorIs(s.T(), err, service.ErrEmailTaken)
}

func (s *AuthServiceIntegrationTestSuite) TestRegisterDuplicateUsername() {
	ctx := context.Background()

	_, _, err := s.authService.Register(ctx, "samefan", "one@example.com", "Password123")
	assert.NoError(s.T(), err)

	_, _, err = s.authService.Register(ctx, "samefan", "two@example.com", "Password123")
	assert.ErrorIs(s.T(), err, service.ErrUsernameTaken)
}

func (s *AuthServiceIntegrationTestSuite) TestRegisterValidation() {
	ctx := context.Background()

	testCases := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{"Short username", "ab", "ok@example.com", "Password123"},
		{"Bad email", "gooduser", "not-an-email", "Password123"},
		{"Short password", "gooduser", "ok@example.com", "short"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			user, token, err := s.authService.Register(ctx, tc.username, tc.email, tc.password)
			assert.Error(s.T(), err)
			assert.Nil(s.T(), user)
			assert.Empty(s.T(), token)
		})
	}
}

func (s *AuthServiceIntegrationTestSuite) TestLogin() {
	ctx := context.Background()

	_, _, err := s.authService.Register(ctx, "loginfan", "login@example.com", "Password123")
	assert.NoError(s.T(), err)

	user, token, err := s.authService.Login(ctx, "loginfan", "Password123")
	assert.NoError(s.T(), err)
	assert.NotNil(s.T(), user)
	assert.NotEmpty(s.T(), token)

	_, _, err = s.authService.Login(ctx, "loginfan", "WrongPassword")
	assert.ErrorIs(s.T(), err, service.ErrInvalidCredentials)

	_, _, err = s.authService.Login(ctx, "nosuchfan", "Password123")
	assert.ErrorIs(s.T(), err, service.ErrInvalidCredentials)
}

func (s *AuthServiceIntegrationTestSuite) TestLogoutInvalidatesSession() {
	ctx := context.Background()

	_, token, err := s.authService.Register(ctx, "leaver", "leaver@example.com", "Password123")
	assert.NoError(s.T(), err)

	assert.NoError(s.T(), s.authService.Logout(ctx, token))

	resolved, err := s.authService.CurrentUser(ctx, token)
	assert.NoError(s.T(), err)
	assert.Nil(s.T(), resolved)
}

func (s *AuthServiceIntegrationTestSuite) TestCurrentUserReadsRoleFromDatabase() {
	ctx := context.Background()

	user, token, err := s.authService.Register(ctx, "promoted", "promoted@example.com", "Password123")
	assert.NoError(s.T(), err)

	// A role change takes effect on the next request, no re-login needed.
	s.testDB.DB.Model(&models.User{}).Where("id = ?", user.ID).Update("role", models.RoleAdmin)

	resolved, err := s.authService.CurrentUser(ctx, token)
	assert.NoError(s.T(), err)
	assert.NotNil(s.T(), resolved)
	assert.Equal(s.T(), models.RoleAdmin, resolved.Role)
}

func TestAuthServiceIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceIntegrationTestSuite))
}
