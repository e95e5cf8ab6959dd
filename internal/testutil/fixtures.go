package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/lnbfans/courtside/internal/models"
	"github.com/lnbfans/courtside/internal/utils"
)

// CreateTestUser builds a user with a real argon2id hash so login flows
// can be exercised end to end.
func CreateTestUser(username, email, password string, role models.Role) (*models.User, error) {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	return &models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         role,
	}, nil
}

// DefaultTestUser returns a fan account.
func DefaultTestUser() (*models.User, error) {
	return CreateTestUser("testfan", "fan@example.com", "Test123456", models.RoleFan)
}

// DefaultAdminUser returns an admin account.
func DefaultAdminUser() (*models.User, error) {
	return CreateTestUser("admin", "admin@example.com", "Admin123456", models.RoleAdmin)
}

// CreateTestTeam builds a league team.
func CreateTestTeam(name string) *models.Team {
	return &models.Team{
		ID:    uuid.New(),
		Name:  name,
		City:  "Montevideo",
		Venue: "Estadio Central",
	}
}

// CreateTestPlayer builds an official roster player on the given team.
func CreateTestPlayer(firstName, lastName, position string, teamID *uuid.UUID) *models.Player {
	return &models.Player{
		ID:        uuid.New(),
		FirstName: firstName,
		LastName:  lastName,
		Jersey:    7,
		Position:  position,
		TeamID:    teamID,
	}
}

// CreateTestFanPlayer builds a fan-created player owned by fanID.
func CreateTestFanPlayer(firstName, lastName, position string, fanID uuid.UUID) *models.Player {
	return &models.Player{
		ID:         uuid.New(),
		FirstName:  firstName,
		LastName:   lastName,
		Jersey:     10,
		Position:   position,
		OwnerFanID: &fanID,
	}
}

// CreateTestCoach builds a coach, optionally assigned to a team.
func CreateTestCoach(firstName, lastName string, teamID *uuid.UUID) *models.Coach {
	return &models.Coach{
		ID:        uuid.New(),
		FirstName: firstName,
		LastName:  lastName,
		TeamID:    teamID,
	}
}

// CreateTestArticle builds a published news article.
func CreateTestArticle(title string) *models.Article {
	publishDate := time.Now()
	return &models.Article{
		ID:          uuid.New(),
		Title:       title,
		Description: "Test article body",
		PublishDate: &publishDate,
	}
}

// CreateTestEvent builds an upcoming event with the given capacity.
func CreateTestEvent(title string, capMax int) *models.Event {
	return &models.Event{
		ID:       uuid.New(),
		Title:    title,
		StartsAt: time.Now().Add(48 * time.Hour),
		CapMax:   capMax,
	}
}
