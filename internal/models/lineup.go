package models

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteSlot is one entry of a fan's favorite starting five: at most one
// row per (fan, canonical position). Reassigning a position replaces the
// previous occupant.
type FavoriteSlot struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FanID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_fan_position" json:"fan_id"`
	Position string    `gorm:"type:varchar(15);not null;uniqueIndex:idx_fan_position" json:"position"`
	PlayerID uuid.UUID `gorm:"type:uuid;not null" json:"player_id"`

	Player *Player `gorm:"foreignKey:PlayerID;constraint:OnDelete:CASCADE" json:"player,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
