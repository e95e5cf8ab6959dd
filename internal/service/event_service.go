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
	ErrEventNotFound   = errors.New("event not found")
	ErrEventFull       = errors.New("event is full")
	ErrEventTitleTaken = errors.New("event title already exists")
)

// EventDetail pairs an event with its active signup count.
type EventDetail struct {
	models.Event
	ActiveSignups int64 `json:"active_signups"`
}

type EventService struct {
	eventRepo *repository.EventRepository
}

func NewEventService(eventRepo *repository.EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo}
}

func (s *EventService) List(query string) ([]models.Event, error) {
	return s.eventRepo.List(query)
}

func (s *EventService) Get(id uuid.UUID) (*EventDetail, error) {
	event, err := s.eventRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	active, err := s.eventRepo.ActiveSignupCount(id)
	if err != nil {
		return nil, err
	}
	return &EventDetail{Event: *event, ActiveSignups: active}, nil
}

// SignUp registers the fan for the event. Signing up twice is a no-op; a
// full event rejects the attempt without writing anything.
func (s *EventService) SignUp(eventID, userID uuid.UUID) error {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return err
	}
	if event == nil {
		return ErrEventNotFound
	}

	created, err := s.eventRepo.AddSignup(event, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCapacityReached) {
			logger.Log.Warn("Event signup rejected: full",
				zap.String("event_id", eventID.String()),
				zap.String("user_id", userID.String()),
			)
			return ErrEventFull
		}
		logger.Log.Error("Failed to sign up for event", zap.Error(err))
		return err
	}

	if created {
		logger.Log.Info("Event signup",
			zap.String("event_id", eventID.String()),
			zap.String("user_id", userID.String()),
		)
	}
	return nil
}

type EventInput struct {
	Title       string
	Description string
	StartsAt    time.Time
	CapMax      int
	CoverURL    string
	PhotoURL    string
}

func (s *EventService) Create(input EventInput) (*models.Event, error) {
	existing, err := s.eventRepo.GetByTitle(input.Title)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEventTitleTaken
	}

	event := &models.Event{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		StartsAt:    input.StartsAt,
		CapMax:      input.CapMax,
		CoverURL:    input.CoverURL,
		PhotoURL:    input.PhotoURL,
	}
	if err := s.eventRepo.Create(event); err != nil {
		logger.Log.Error("Failed to create event", zap.Error(err))
		return nil, err
	}
	logger.Log.Info("Event created", zap.String("event_id", event.ID.String()))
	return event, nil
}

func (s *EventService) Update(id uuid.UUID, input EventInput) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	if input.Title != event.Title {
		existing, err := s.eventRepo.GetByTitle(input.Title)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrEventTitleTaken
		}
	}

	event.Title = input.Title
	event.Description = input.Description
	event.StartsAt = input.StartsAt
	event.CapMax = input.CapMax
	event.CoverURL = input.CoverURL
	event.PhotoURL = input.PhotoURL

	if err := s.eventRepo.Update(event); err != nil {
		logger.Log.Error("Failed to update event", zap.Error(err))
		return nil, err
	}
	return event, nil
}

func (s *EventService) Delete(id uuid.UUID) error {
	event, err := s.eventRepo.GetByID(id)
	if err != nil {
		return err
	}
	if event == nil {
		return ErrEventNotFound
	}
	if err := s.eventRepo.Delete(id); err != nil {
		logger.Log.Error("Failed to delete event", zap.Error(err))
		return err
	}
	logger.Log.Info("Event deleted", zap.String("event_id", id.String()))
	return nil
}

// Signups lists the event's registrations for the admin view.
func (s *EventService) Signups(eventID uuid.UUID) ([]models.EventSignup, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return s.eventRepo.ListSignups(eventID)
}
