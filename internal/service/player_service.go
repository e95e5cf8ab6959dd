package service

import (
	"errors"

	"github.com/google/uuid"
	"github.com/lnbfans/courtside/internal/models"
	"github.com/lnbfans/courtside/internal/repository"
	"github.com/lnbfans/courtside/internal/stats"
	"github.com/lnbfans/courtside/pkg/logger"
	"go.uber.org/zap"
)

var (
	ErrPlayerNotFound     = errors.New("player not found")
	ErrPlayerAlreadyOwned = errors.New("fan already owns a player")
	ErrUnknownPosition    = errors.New("unknown position")
	ErrFanOwnedPlayer     = errors.New("fan-owned players are managed by their owner")
)

// FanPlayerInput is what a fan submits to build their personal player
// card. Skills are never taken from input: they come from the specialty
// and signature move through the generation rule.
type FanPlayerInput struct {
	FirstName   string
	LastName    string
	Jersey      int
	Position    string
	Nationality string
	City        string
	Height      float64
	Hand        string
	Specialty   string
	Move        string
}

type PlayerService struct {
	playerRepo *repository.PlayerRepository
}

func NewPlayerService(playerRepo *repository.PlayerRepository) *PlayerService {
	return &PlayerService{playerRepo: playerRepo}
}

// CreateFanPlayer builds and stores the fan's one personal player. The
// position string must resolve to a canonical slot; attributes come from
// the generation rule.
func (s *PlayerService) CreateFanPlayer(fanID uuid.UUID, input FanPlayerInput) (*models.Player, error) {
	if _, ok := stats.PrincipalPosition(input.Position); !ok {
		return nil, ErrUnknownPosition
	}

	profile := stats.GenerateProfile(input.Specialty, input.Move)

	fan := fanID
	player := &models.Player{
		ID:          uuid.New(),
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Jersey:      input.Jersey,
		Position:    input.Position,
		Nationality: input.Nationality,
		City:        input.City,
		Height:      input.Height,
		Hand:        input.Hand,
		Specialty:   input.Specialty,
		Move:        input.Move,
		Shot:        profile.Shot,
		Pass:        profile.Pass,
		Dribble:     profile.Dribble,
		Speed:       profile.Speed,
		Defense:     profile.Defense,
		Jump:        profile.Jump,
		Rating:      profile.Rating,
		OwnerFanID:  &fan,
	}

	if err := s.playerRepo.CreateFanPlayer(player); err != nil {
		if errors.Is(err, repository.ErrOwnerConflict) {
			logger.Log.Warn("Fan attempted second player",
				zap.String("fan_id", fanID.String()),
			)
			return nil, ErrPlayerAlreadyOwned
		}
		logger.Log.Error("Failed to create fan player", zap.Error(err))
		return nil, err
	}

	logger.Log.Info("Fan player created",
		zap.String("fan_id", fanID.String()),
		zap.String("player_id", player.ID.String()),
		zap.Int("rating", player.Rating),
	)
	return player, nil
}

// MyPlayer returns the fan's created player, nil when they have none.
func (s *PlayerService) MyPlayer(fanID uuid.UUID) (*models.Player, error) {
	return s.playerRepo.GetByOwner(fanID)
}

func (s *PlayerService) Get(id uuid.UUID) (*models.Player, error) {
	player, err := s.playerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if player == nil {
		return nil, ErrPlayerNotFound
	}
	return player, nil
}

// List returns players matching an optional name query and an optional
// canonical slot. Slot filtering uses the principal position of each
// player's free-text position string.
func (s *PlayerService) List(query, slot string) ([]models.Player, error) {
	players, err := s.playerRepo.List(query)
	if err != nil {
		return nil, err
	}
	if slot == "" {
		return players, nil
	}

	want, ok := stats.ParsePosition(slot)
	if !ok {
		return nil, ErrUnknownPosition
	}

	filtered := players[:0]
	for _, p := range players {
		if principal, ok := stats.PrincipalPosition(p.Position); ok && principal == want {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// ListFanCreated returns the community player pool.
func (s *PlayerService) ListFanCreated() ([]models.Player, error) {
	return s.playerRepo.ListFanCreated()
}

// AdminCreate adds an official roster player. Skills regenerate from the
// specialty and move like fan players, so every card follows one rule.
func (s *PlayerService) AdminCreate(input FanPlayerInput, teamID *uuid.UUID) (*models.Player, error) {
	if _, ok := stats.PrincipalPosition(input.Position); !ok {
		return nil, ErrUnknownPosition
	}

	profile := stats.GenerateProfile(input.Specialty, input.Move)
	player := &models.Player{
		ID:          uuid.New(),
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Jersey:      input.Jersey,
		Position:    input.Position,
		Nationality: input.Nationality,
		City:        input.City,
		Height:      input.Height,
		Hand:        input.Hand,
		Specialty:   input.Specialty,
		Move:        input.Move,
		Shot:        profile.Shot,
		Pass:        profile.Pass,
		Dribble:     profile.Dribble,
		Speed:       profile.Speed,
		Defense:     profile.Defense,
		Jump:        profile.Jump,
		Rating:      profile.Rating,
		TeamID:      teamID,
	}

	if err := s.playerRepo.Create(player); err != nil {
		logger.Log.Error("Failed to create player", zap.Error(err))
		return nil, err
	}

	logger.Log.Info("Player created",
		zap.String("player_id", player.ID.String()),
	)
	return player, nil
}

// AdminUpdate edits an official player. Fan-owned players are off limits
// to admins; they disappear only with their owner's account.
func (s *PlayerService) AdminUpdate(id uuid.UUID, input FanPlayerInput, teamID *uuid.UUID) (*models.Player, error) {
	player, err := s.playerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if player == nil {
		return nil, ErrPlayerNotFound
	}
	if player.IsFanOwned() {
		return nil, ErrFanOwnedPlayer
	}
	if _, ok := stats.PrincipalPosition(input.Position); !ok {
		return nil, ErrUnknownPosition
	}

	profile := stats.GenerateProfile(input.Specialty, input.Move)
	player.FirstName = input.FirstName
	player.LastName = input.LastName
	player.Jersey = input.Jersey
	player.Position = input.Position
	player.Nationality = input.Nationality
	player.City = input.City
	player.Height = input.Height
	player.Hand = input.Hand
	player.Specialty = input.Specialty
	player.Move = input.Move
	player.Shot = profile.Shot
	player.Pass = profile.Pass
	player.Dribble = profile.Dribble
	player.Speed = profile.Speed
	player.Defense = profile.Defense
	player.Jump = profile.Jump
	player.Rating = profile.Rating
	player.TeamID = teamID

	if err := s.playerRepo.Update(player); err != nil {
		logger.Log.Error("Failed to update player", zap.Error(err))
		return nil, err
	}
	return player, nil
}

// AdminDelete removes an official player.
func (s *PlayerService) AdminDelete(id uuid.UUID) error {
	player, err := s.playerRepo.GetByID(id)
	if err != nil {
		return err
	}
	if player == nil {
		return ErrPlayerNotFound
	}
	if player.IsFanOwned() {
		return ErrFanOwnedPlayer
	}

	if err := s.playerRepo.Delete(id); err != nil {
		logger.Log.Error("Failed to delete player", zap.Error(err))
		return err
	}
	logger.Log.Info("Player deleted", zap.String("player_id", id.String()))
	return nil
}
