package service_test

import (
	"testing"

	"github.com/lnbfans/courtside/internal/models"
	"github.com/lnbfans/courtside/internal/repository"
	"github.com/lnbfans/courtside/internal/service"
	"github.com/lnbfans/courtside/internal/stats"
	"github.com/lnbfans/courtside/internal/testutil"
	"github.com/lnbfans/courtside/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ProfileServiceIntegrationTestSuite struct {
	suite.Suite
	testDB         *testutil.TestDatabase
	profileService *service.ProfileService
	fan            *models.User
	creator        *models.User
	creator2       *models.User
}

func (s *ProfileServiceIntegrationTestSuite) SetupSuite() {
	logger.Init(false)
	s.testDB = testutil.SetupTestDatabase(s.T())

	userRepo := repository.NewUserRepository(s.testDB.DB)
	teamRepo := repository.NewTeamRepository(s.testDB.DB)
	playerRepo := repository.NewPlayerRepository(s.testDB.DB)
	lineupRepo := repository.NewLineupRepository(s.testDB.DB)
	s.profileService = service.NewProfileService(userRepo, teamRepo, playerRepo, lineupRepo)

	s.fan, _ = testutil.CreateTestUser("collector", "collector@example.com", "Test123456", models.RoleFan)
	s.creator, _ = testutil.CreateTestUser("creator", "creator@example.com", "Test123456", models.RoleFan)
	s.creator2, _ = testutil.CreateTestUser("creator2", "creator2@example.com", "Test123456", models.RoleFan)
	s.testDB.DB.Create(s.fan)
	s.testDB.DB.Create(s.creator)
	s.testDB.DB.Create(s.creator2)
}

func (s *ProfileServiceIntegrationTestSuite) TearDownSuite() {
	s.testDB.Teardown(s.T())
}

func (s *ProfileServiceIntegrationTestSuite) SetupTest() {
	s.testDB.DB.Exec("DELETE FROM favorite_slots")
	s.testDB.DB.Exec("DELETE FROM players")
	s.testDB.DB.Exec("DELETE FROM teams")
}

func (s *ProfileServiceIntegrationTestSuite) TestSetFavoriteTeam() {
	team := testutil.CreateTestTeam("Nacional")
	s.testDB.DB.Create(team)

	assert.NoError(s.T(), s.profileService.SetFavoriteTeam(s.fan.ID, team.ID))

	var user models.User
	s.testDB.DB.First(&user, "id = ?", s.fan.ID)
	assert.NotNil(s.T(), user.FavoriteTeamID)
	assert.Equal(s.T(), team.ID, *user.FavoriteTeamID)
}

func (s *ProfileServiceIntegrationTestSuite) TestAssignSlotAndReplace() {
	first := testutil.CreateTestFanPlayer("Primer", "Pivot", "Pivot", s.creator.ID)
	s.testDB.DB.Create(first)

	err := s.profileService.AssignSlot(s.fan.ID, "Pivot", first.ID)
	assert.NoError(s.T(), err)

	// A second fan-created Pivot replaces the first in the slot.
	second := testutil.CreateTestFanPlayer("Segundo", "Pivot", "Pivot", s.creator2.ID)
	s.testDB.DB.Create(second)

	err = s.profileService.AssignSlot(s.fan.ID, "Pivot", second.ID)
	assert.NoError(s.T(), err)

	var slots []models.FavoriteSlot
	s.testDB.DB.Where("fan_id = ?", s.fan.ID).Find(&slots)
	assert.Len(s.T(), slots, 1)
	assert.Equal(s.T(), second.ID, slots[0].PlayerID)
	assert.Equal(s.T(), "Pivot", slots[0].Position)
}

func (s *ProfileServiceIntegrationTestSuite) TestAssignSlotRejectsUnknownSlot() {
	player := testutil.CreateTestFanPlayer("Algun", "Jugador", "Base", s.creator.ID)
	s.testDB.DB.Create(player)

	err := s.profileService.AssignSlot(s.fan.ID, "Centro", player.ID)
	assert.ErrorIs(s.T(), err, service.ErrUnknownPosition)
}

func (s *ProfileServiceIntegrationTestSuite) TestAssignSlotRejectsOfficialPlayer() {
	team := testutil.CreateTestTeam("Penarol")
	s.testDB.DB.Create(team)
	official := testutil.CreateTestPlayer("Plantilla", "Oficial", "Base", &team.ID)
	s.testDB.DB.Create(official)

	err := s.profileService.AssignSlot(s.fan.ID, "Base", official.ID)
	assert.ErrorIs(s.T(), err, service.ErrIneligiblePlayer)
}

func (s *ProfileServiceIntegrationTestSuite) TestAssignSlotRejectsPositionMismatch() {
	player := testutil.CreateTestFanPlayer("Armador", "Puro", "Base", s.creator.ID)
	s.testDB.DB.Create(player)

	err := s.profileService.AssignSlot(s.fan.ID, "Pivot", player.ID)
	assert.ErrorIs(s.T(), err, service.ErrPositionMismatch)
}

func (s *ProfileServiceIntegrationTestSuite) TestAssignSlotUsesPrincipalPosition() {
	// "Alero/Escolta" plays the Alero slot, not Escolta.
	player := testutil.CreateTestFanPlayer("Doble", "Puesto", "Alero/Escolta", s.creator.ID)
	s.testDB.DB.Create(player)

	assert.ErrorIs(s.T(), s.profileService.AssignSlot(s.fan.ID, "Escolta", player.ID), service.ErrPositionMismatch)
	assert.NoError(s.T(), s.profileService.AssignSlot(s.fan.ID, "Alero", player.ID))
}

func (s *ProfileServiceIntegrationTestSuite) TestLineupAlwaysHasFiveSlots() {
	lineup, err := s.profileService.Lineup(s.fan.ID)
	assert.NoError(s.T(), err)
	assert.Len(s.T(), lineup, 5)
	for _, pos := range stats.Positions {
		assert.Nil(s.T(), lineup[pos])
	}

	player := testutil.CreateTestFanPlayer("Unico", "Titular", "Escolta", s.creator.ID)
	s.testDB.DB.Create(player)
	assert.NoError(s.T(), s.profileService.AssignSlot(s.fan.ID, "Escolta", player.ID))

	lineup, err = s.profileService.Lineup(s.fan.ID)
	assert.NoError(s.T(), err)
	assert.NotNil(s.T(), lineup[stats.PositionEscolta])
	assert.Equal(s.T(), player.ID, lineup[stats.PositionEscolta].ID)
	assert.Nil(s.T(), lineup[stats.PositionBase])
}

func TestProfileServiceIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProfileServiceIntegrationTestSuite))
}
