package repository_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lnbfans/courtside/internal/models"
	"github.com/lnbfans/courtside/internal/repository"
	"github.com/lnbfans/courtside/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type UserRepositoryTestSuite struct {
	suite.Suite
	testDB   *testutil.TestDatabase
	userRepo *repository.UserRepository
}

func (s *UserRepositoryTestSuite) SetupSuite() {
	s.testDB = testutil.SetupTestDatabase(s.T())
	s.userRepo = repository.NewUserRepository(s.testDB.DB)
}

func (s *UserRepositoryTestSuite) TearDownSuite() {
	s.testDB.Teardown(s.T())
}

func (s *UserRepositoryTestSuite) SetupTest() {
	testutil.CleanDatabase(s.T(), s.testDB.DB)
}

func (s *UserRepositoryTestSuite) TestGetByUsernameAndEmail() {
	user, _ := testutil.DefaultTestUser()
	assert.NoError(s.T(), s.userRepo.Create(user))

	got, err := s.userRepo.GetByUsername(user.Username)
	assert.NoError(s.T(), err)
	assert.NotNil(s.T(), got)
	assert.Equal(s.T(), user.ID, got.ID)

	got, err = s.userRepo.GetByEmail(user.Email)
	assert.NoError(s.T(), err)
	assert.NotNil(s.T(), got)

	got, err = s.userRepo.GetByUsername("nobody")
	assert.NoError(s.T(), err)
	assert.Nil(s.T(), got)
}

func (s *UserRepositoryTestSuite) TestDeleteCascades() {
	fan, _ := testutil.DefaultTestUser()
	assert.NoError(s.T(), s.userRepo.Create(fan))

	other, _ := testutil.CreateTestUser("otherfan", "other@example.com", "Test123456", models.RoleFan)
	assert.NoError(s.T(), s.userRepo.Create(other))

	// The fan's created player, a lineup slot picking it, and an event
	// signup.
	player := testutil.CreateTestFanPlayer("Mi", "Jugador", "Base", fan.ID)
	s.testDB.DB.Create(player)

	ownSlot := &models.FavoriteSlot{ID: uuid.New(), FanID: fan.ID, Position: "Base", PlayerID: player.ID}
	s.testDB.DB.Create(ownSlot)

	event := testutil.CreateTestEvent("Despedida", 10)
	s.testDB.DB.Create(event)
	uid := fan.ID
	signup := &models.EventSignup{ID: uuid.New(), EventID: event.ID, UserID: &uid}
	s.testDB.DB.Create(signup)

	assert.NoError(s.T(), s.userRepo.Delete(fan.ID))

	// Account, owned player and lineup slots are gone.
	got, err := s.userRepo.GetByID(fan.ID)
	assert.NoError(s.T(), err)
	assert.Nil(s.T(), got)

	var playerCount int64
	s.testDB.DB.Model(&models.Player{}).Where("id = ?", player.ID).Count(&playerCount)
	assert.Equal(s.T(), int64(0), playerCount)

	var slotCount int64
	s.testDB.DB.Model(&models.FavoriteSlot{}).Where("fan_id = ?", fan.ID).Count(&slotCount)
	assert.Equal(s.T(), int64(0), slotCount)

	// The signup row survives for history but frees its capacity slot.
	var kept models.EventSignup
	assert.NoError(s.T(), s.testDB.DB.First(&kept, "event_id = ?", event.ID).Error)
	assert.Nil(s.T(), kept.UserID)
}

func (s *UserRepositoryTestSuite) TestDeleteClearsOtherFansReferences() {
	creator, _ := testutil.CreateTestUser("cardcreator", "cardcreator@example.com", "Test123456", models.RoleFan)
	collector, _ := testutil.CreateTestUser("cardcollector", "cardcollector@example.com", "Test123456", models.RoleFan)
	assert.NoError(s.T(), s.userRepo.Create(creator))
	assert.NoError(s.T(), s.userRepo.Create(collector))

	player := testutil.CreateTestFanPlayer("Idolo", "Ajeno", "Base", creator.ID)
	s.testDB.DB.Create(player)

	// Another fan holds the player in a lineup slot and as favorite.
	otherSlot := &models.FavoriteSlot{ID: uuid.New(), FanID: collector.ID, Position: "Base", PlayerID: player.ID}
	s.testDB.DB.Create(otherSlot)
	s.testDB.DB.Model(&models.User{}).Where("id = ?", collector.ID).
		Update("favorite_player_id", player.ID)

	assert.NoError(s.T(), s.userRepo.Delete(creator.ID))

	// The player went with its creator, so no slot may still point at it.
	var playerCount int64
	s.testDB.DB.Model(&models.Player{}).Where("id = ?", player.ID).Count(&playerCount)
	assert.Equal(s.T(), int64(0), playerCount)

	var slotCount int64
	s.testDB.DB.Model(&models.FavoriteSlot{}).Where("player_id = ?", player.ID).Count(&slotCount)
	assert.Equal(s.T(), int64(0), slotCount)

	kept, err := s.userRepo.GetByID(collector.ID)
	assert.NoError(s.T(), err)
	assert.NotNil(s.T(), kept)
	assert.Nil(s.T(), kept.FavoritePlayerID)
}

func (s *UserRepositoryTestSuite) TestListFilters() {
	fan, _ := testutil.DefaultTestUser()
	admin, _ := testutil.DefaultAdminUser()
	assert.NoError(s.T(), s.userRepo.Create(fan))
	assert.NoError(s.T(), s.userRepo.Create(admin))

	users, err := s.userRepo.List("admin")
	assert.NoError(s.T(), err)
	assert.Len(s.T(), users, 1)
	assert.Equal(s.T(), admin.Username, users[0].Username)

	users, err = s.userRepo.List("")
	assert.NoError(s.T(), err)
	assert.Len(s.T(), users, 2)
}

func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
