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
	// ErrPositionMismatch means the player's principal position does not
	// match the lineup slot being filled.
	ErrPositionMismatch = errors.New("player does not play that position")
	// ErrIneligiblePlayer means the player is not part of the community
	// pool the favorite five is picked from.
	ErrIneligiblePlayer = errors.New("only fan-created players can join a favorite five")
)

// ProfileService covers the fan's own page: favorite team and player,
// and the favorite-five lineup.
type ProfileService struct {
	userRepo   *repository.UserRepository
	teamRepo   *repository.TeamRepository
	playerRepo *repository.PlayerRepository
	lineupRepo *repository.LineupRepository
}

func NewProfileService(
	userRepo *repository.UserRepository,
	teamRepo *repository.TeamRepository,
	playerRepo *repository.PlayerRepository,
	lineupRepo *repository.LineupRepository,
) *ProfileService {
	return &ProfileService{
		userRepo:   userRepo,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		lineupRepo: lineupRepo,
	}
}

func (s *ProfileService) SetFavoriteTeam(userID, teamID uuid.UUID) error {
	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		return err
	}
	if team == nil {
		return ErrTeamNotFound
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	user.FavoriteTeamID = &team.ID
	return s.userRepo.Update(user)
}

func (s *ProfileService) SetFavoritePlayer(userID, playerID uuid.UUID) error {
	player, err := s.playerRepo.GetByID(playerID)
	if err != nil {
		return err
	}
	if player == nil {
		return ErrPlayerNotFound
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	user.FavoritePlayerID = &player.ID
	return s.userRepo.Update(user)
}

// Lineup returns the fan's favorite five, keyed by canonical slot.
func (s *ProfileService) Lineup(fanID uuid.UUID) (map[stats.Position]*models.Player, error) {
	slots, err := s.lineupRepo.ListByFan(fanID)
	if err != nil {
		return nil, err
	}

	lineup := make(map[stats.Position]*models.Player, len(stats.Positions))
	for _, p := range stats.Positions {
		lineup[p] = nil
	}
	for i := range slots {
		if pos, ok := stats.ParsePosition(slots[i].Position); ok {
			lineup[pos] = slots[i].Player
		}
	}
	return lineup, nil
}

// AssignSlot puts a community player into one of the fan's five slots.
// Unknown slot names are rejected; the player must be fan-created and
// their principal position must match the slot. Any previous occupant of
// the slot is replaced.
func (s *ProfileService) AssignSlot(fanID uuid.UUID, slot string, playerID uuid.UUID) error {
	position, ok := stats.ParsePosition(slot)
	if !ok {
		return ErrUnknownPosition
	}

	player, err := s.playerRepo.GetByID(playerID)
	if err != nil {
		return err
	}
	if player == nil {
		return ErrPlayerNotFound
	}
	if !player.IsFanOwned() {
		return ErrIneligiblePlayer
	}

	principal, ok := stats.PrincipalPosition(player.Position)
	if !ok || principal != position {
		return ErrPositionMismatch
	}

	if err := s.lineupRepo.Assign(fanID, string(position), playerID); err != nil {
		logger.Log.Error("Failed to assign lineup slot", zap.Error(err))
		return err
	}

	logger.Log.Info("Lineup slot assigned",
		zap.String("fan_id", fanID.String()),
		zap.String("position", string(position)),
		zap.String("player_id", playerID.String()),
	)
	return nil
}
