package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lnbfans/courtside/internal/models"
	"github.com/lnbfans/courtside/internal/repository"
	"github.com/lnbfans/courtside/pkg/logger"
	"go.uber.org/zap"
)

var (
	ErrTeamNotFound  = errors.New("team not found")
	ErrTeamNameTaken = errors.New("team name already exists")
)

type TeamInput struct {
	Name          string
	City          string
	Venue         string
	FoundingDate  *time.Time
	Seasons       int
	Championships int
	CrestURL      string
	VenueURL      string
}

type TeamService struct {
	teamRepo *repository.TeamRepository
}

func NewTeamService(teamRepo *repository.TeamRepository) *TeamService {
	return &TeamService{teamRepo: teamRepo}
}

func (s *TeamService) List(query string) ([]models.Team, error) {
	return s.teamRepo.List(query)
}

func (s *TeamService) Get(id uuid.UUID) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, ErrTeamNotFound
	}
	return team, nil
}

func (s *TeamService) Create(input TeamInput) (*models.Team, error) {
	existing, err := s.teamRepo.GetByName(input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrTeamNameTaken
	}

	team := &models.Team{
		ID:            uuid.New(),
		Name:          input.Name,
		City:          input.City,
		Venue:         input.Venue,
		FoundingDate:  input.FoundingDate,
		Seasons:       input.Seasons,
		Championships: input.Championships,
		CrestURL:      input.CrestURL,
		VenueURL:      input.VenueURL,
	}
	if err := s.teamRepo.Create(team); err != nil {
		logger.Log.Error("Failed to create team", zap.Error(err))
		return nil, err
	}
	logger.Log.Info("Team created",
		zap.String("team_id", team.ID.String()),
		zap.String("name", team.Name),
	)
	return team, nil
}

func (s *TeamService) Update(id uuid.UUID, input TeamInput) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, ErrTeamNotFound
	}

	if input.Name != team.Name {
		existing, err := s.teamRepo.GetByName(input.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrTeamNameTaken
		}
	}

	team.Name = input.Name
	team.City = input.City
	team.Venue = input.Venue
	team.FoundingDate = input.FoundingDate
	team.Seasons = input.Seasons
	team.Championships = input.Championships
	team.CrestURL = input.CrestURL
	team.VenueURL = input.VenueURL

	if err := s.teamRepo.Update(team); err != nil {
		logger.Log.Error("Failed to update team", zap.Error(err))
		return nil, err
	}
	return team, nil
}

// Delete removes the team; its players and coaches stay and become
// unassigned.
func (s *TeamService) Delete(id uuid.UUID) error {
	team, err := s.teamRepo.GetByID(id)
	if err != nil {
		return err
	}
	if team == nil {
		return ErrTeamNotFound
	}
	if err := s.teamRepo.Delete(id); err != nil {
		logger.Log.Error("Failed to delete team", zap.Error(err))
		return err
	}
	logger.Log.Info("Team deleted", zap.String("team_id", id.String()))
	return nil
}
