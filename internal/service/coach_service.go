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

var ErrCoachNotFound = errors.New("coach not found")

type CoachInput struct {
	FirstName   string
	LastName    string
	BirthDate   *time.Time
	Nationality string
	City        string
	Seasons     int
	PhotoURL    string
	TeamID      *uuid.UUID
}

type CoachService struct {
	coachRepo *repository.CoachRepository
}

func NewCoachService(coachRepo *repository.CoachRepository) *CoachService {
	return &CoachService{coachRepo: coachRepo}
}

func (s *CoachService) List(query string) ([]models.Coach, error) {
	return s.coachRepo.List(query)
}

func (s *CoachService) Get(id uuid.UUID) (*models.Coach, error) {
	coach, err := s.coachRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if coach == nil {
		return nil, ErrCoachNotFound
	}
	return coach, nil
}

func (s *CoachService) Create(input CoachInput) (*models.Coach, error) {
	coach := &models.Coach{
		ID:          uuid.New(),
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		BirthDate:   input.BirthDate,
		Nationality: input.Nationality,
		City:        input.City,
		Seasons:     input.Seasons,
		PhotoURL:    input.PhotoURL,
		TeamID:      input.TeamID,
	}
	if err := s.coachRepo.Create(coach); err != nil {
		logger.Log.Error("Failed to create coach", zap.Error(err))
		return nil, err
	}
	logger.Log.Info("Coach created", zap.String("coach_id", coach.ID.String()))
	return coach, nil
}

func (s *CoachService) Update(id uuid.UUID, input CoachInput) (*models.Coach, error) {
	coach, err := s.coachRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if coach == nil {
		return nil, ErrCoachNotFound
	}

	coach.FirstName = input.FirstName
	coach.LastName = input.LastName
	coach.BirthDate = input.BirthDate
	coach.Nationality = input.Nationality
	coach.City = input.City
	coach.Seasons = input.Seasons
	coach.PhotoURL = input.PhotoURL
	coach.TeamID = input.TeamID

	if err := s.coachRepo.Update(coach); err != nil {
		logger.Log.Error("Failed to update coach", zap.Error(err))
		return nil, err
	}
	return coach, nil
}

func (s *CoachService) Delete(id uuid.UUID) error {
	coach, err := s.coachRepo.GetByID(id)
	if err != nil {
		return err
	}
	if coach == nil {
		return ErrCoachNotFound
	}
	if err := s.coachRepo.Delete(id); err != nil {
		logger.Log.Error("Failed to delete coach", zap.Error(err))
		return err
	}
	logger.Log.Info("Coach deleted", zap.String("coach_id", id.String()))
	return nil
}
