package models

import (
	"time"

	"github.com/google/uuid"
)

// Player is either an official roster player (TeamID set, admin-managed)
// or a fan-created player (OwnerFanID set). Never both.
type Player struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName   string     `gorm:"type:varchar(20)" json:"first_name"`
	LastName    string     `gorm:"type:varchar(30)" json:"last_name"`
	Jersey      int        `json:"jersey"`
	Position    string     `gorm:"type:varchar(15)" json:"position"`
	Nationality string     `gorm:"type:varchar(30)" json:"nationality"`
	BirthDate   *time.Time `json:"birth_date,omitempty"`
	City        string     `gorm:"type:varchar(50)" json:"city"`
	Height      float64    `json:"height"`
	Hand        string     `gorm:"type:varchar(10)" json:"hand"`

	// Skill profile, nominally in [0,100].
	Shot    int `json:"shot"`
	Pass    int `json:"pass"`
	Dribble int `json:"dribble"`
	Speed   int `json:"speed"`
	Defense int `json:"defense"`
	Jump    int `json:"jump"`
	Rating  int `json:"rating"`

	Specialty string `gorm:"type:varchar(30)" json:"specialty"`
	Move      string `gorm:"type:varchar(30)" json:"move"`

	TeamID     *uuid.UUID `gorm:"type:uuid;index" json:"team_id,omitempty"`
	OwnerFanID *uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"owner_fan_id,omitempty"`

	OwnerFan *User `gorm:"foreignKey:OwnerFanID;constraint:OnDelete:CASCADE" json:"-"`

	CardPhotoURL string `gorm:"type:varchar(300)" json:"card_photo_url,omitempty"`
	MediaDayURL  string `gorm:"type:varchar(300)" json:"media_day_url,omitempty"`
	GamePhotoURL string `gorm:"type:varchar(300)" json:"game_photo_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsFanOwned reports whether the player was created by a fan rather than
// added to an official roster by an admin.
func (p *Player) IsFanOwned() bool {
	return p.OwnerFanID != nil
}
