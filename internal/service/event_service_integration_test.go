package service_test

import (
	"testing"

	"github.com/lnbfans/courtside/internal/models"
	"github.com/lnbfans/courtside/internal/repository"
	"github.com/lnbfans/courtside/internal/service"
	"github.com/lnbfans/courtside/internal/testutil"
	"github.com/lnbfans/courtside/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type EventServiceIntegrationTestSuite struct {
	suite.Suite
	testDB       *testutil.TestDatabase
	eventService *service.EventService
	fans         []*models.User
}

func (s *EventServiceIntegrationTestSuite) SetupSuite() {
	logger.Init(false)
	s.testDB = testutil.SetupTestDatabase(s.T())

	eventRepo := repository.NewEventRepository(s.testDB.DB)
	s.eventService = service.NewEventService(eventRepo)

	names := []string{"fan1", "fan2", "fan3"}
	for _, name := range names {
		fan, _ := testutil.CreateTestUser(name, name+"@example.com", "Test123456", models.RoleFan)
		s.testDB.DB.Create(fan)
		s.fans = append(s.fans, fan)
	}
}

func (s *EventServiceIntegrationTestSuite) TearDownSuite() {
	s.testDB.Teardown(s.T())
}

func (s *EventServiceIntegrationTestSuite) SetupTest() {
	s.testDB.DB.Exec("DELETE FROM event_signups")
	s.testDB.DB.Exec("DELETE FROM events")
}

func (s *EventServiceIntegrationTestSuite) TestSignUpCapacity() {
	event := testutil.CreateTestEvent("Fan meetup", 2)
	s.testDB.DB.Create(event)

	assert.NoError(s.T(), s.eventService.SignUp(event.ID, s.fans[0].ID))
	assert.NoError(s.T(), s.eventService.SignUp(event.ID, s.fans[1].ID))

	err := s.eventService.SignUp(event.ID, s.fans[2].ID)
	assert.ErrorIs(s.T(), err, service.ErrEventFull)

	detail, err := s.eventService.Get(event.ID)
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), int64(2), detail.ActiveSignups)
}

func (s *EventServiceIntegrationTestSuite) TestSignUpTwiceIsNoOp() {
	event := testutil.CreateTestEvent("Open practice", 10)
	s.testDB.DB.Create(event)

	assert.NoError(s.T(), s.eventService.SignUp(event.ID, s.fans[0].ID))
	assert.NoError(s.T(), s.eventService.SignUp(event.ID, s.fans[0].ID))

	var count int64
	s.testDB.DB.Model(&models.EventSignup{}).Where("event_id = ?", event.ID).Count(&count)
	assert.Equal(s.T(), int64(1), count)
}

func (s *EventServiceIntegrationTestSuite) TestSignUpTwiceOnFullEventStillSucceeds() {
	event := testutil.CreateTestEvent("Sold out night", 1)
	s.testDB.DB.Create(event)

	assert.NoError(s.T(), s.eventService.SignUp(event.ID, s.fans[0].ID))

	// The fan already holds a slot, so repeating must not hit the cap.
	assert.NoError(s.T(), s.eventService.SignUp(event.ID, s.fans[0].ID))
}

func (s *EventServiceIntegrationTestSuite) TestOrphanedSignupsFreeCapacity() {
	event := testutil.CreateTestEvent("Season opener", 1)
	s.testDB.DB.Create(event)

	assert.NoError(s.T(), s.eventService.SignUp(event.ID, s.fans[0].ID))

	// Simulate the account going away: the row stays, the user ref clears.
	s.testDB.DB.Model(&models.EventSignup{}).
		Where("event_id = ? AND user_id = ?", event.ID, s.fans[0].ID).
		Update("user_id", nil)

	assert.NoError(s.T(), s.eventService.SignUp(event.ID, s.fans[1].ID))

	detail, err := s.eventService.Get(event.ID)
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), detail.ActiveSignups)
}

func (s *EventServiceIntegrationTestSuite) TestCreateRejectsDuplicateTitle() {
	_, err := s.eventService.Create(service.EventInput{Title: "Finals watch party", CapMax: 50})
	assert.NoError(s.T(), err)

	event, err := s.eventService.Create(service.EventInput{Title: "Finals watch party", CapMax: 10})
	assert.ErrorIs(s.T(), err, service.ErrEventTitleTaken)
	assert.Nil(s.T(), event)
}

func (s *EventServiceIntegrationTestSuite) TestDeleteRemovesSignups() {
	event := testutil.CreateTestEvent("Cancelled clinic", 5)
	s.testDB.DB.Create(event)
	assert.NoError(s.T(), s.eventService.SignUp(event.ID, s.fans[0].ID))

	assert.NoError(s.T(), s.eventService.Delete(event.ID))

	var count int64
	s.testDB.DB.Model(&models.EventSignup{}).Where("event_id = ?", event.ID).Count(&count)
	assert.Equal(s.T(), int64(0), count)
}

func (s *EventServiceIntegrationTestSuite) TestSignupsListsUsers() {
	event := testutil.CreateTestEvent("Autograph session", 5)
	s.testDB.DB.Create(event)
	assert.NoError(s.T(), s.eventService.SignUp(event.ID, s.fans[0].ID))
	assert.NoError(s.T(), s.eventService.SignUp(event.ID, s.fans[1].ID))

	signups, err := s.eventService.Signups(event.ID)
	assert.NoError(s.T(), err)
	assert.Len(s.T(), signups, 2)
	assert.NotNil(s.T(), signups[0].User)
	assert.Equal(s.T(), s.fans[0].Username, signups[0].User.Username)
}

func TestEventServiceIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(EventServiceIntegrationTestSuite))
}
