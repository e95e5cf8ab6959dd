package models

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleFan   Role = "fan"
	RoleAdmin Role = "admin"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string    `gorm:"type:varchar(80);uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"type:varchar(200);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"` // Never expose password hash in JSON
	Role         Role      `gorm:"type:varchar(20);not null;default:'fan'" json:"role"`

	FirstName string     `gorm:"type:varchar(20)" json:"first_name"`
	LastName  string     `gorm:"type:varchar(30)" json:"last_name"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Points    int        `gorm:"default:0" json:"points"`
	AvatarURL string     `gorm:"type:varchar(300)" json:"avatar_url,omitempty"`

	FavoriteTeamID   *uuid.UUID `gorm:"type:uuid" json:"favorite_team_id,omitempty"`
	FavoritePlayerID *uuid.UUID `gorm:"type:uuid" json:"favorite_player_id,omitempty"`

	FavoriteTeam   *Team   `gorm:"foreignKey:FavoriteTeamID;constraint:OnDelete:SET NULL" json:"favorite_team,omitempty"`
	FavoritePlayer *Player `gorm:"foreignKey:FavoritePlayerID;constraint:OnDelete:SET NULL" json:"favorite_player,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
