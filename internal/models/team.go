package models

import (
	"time"

	"github.com/google/uuid"
)

type Team struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string     `gorm:"type:varchar(30);uniqueIndex;not null" json:"name"`
	City          string     `gorm:"type:varchar(50)" json:"city"`
	Venue         string     `gorm:"type:varchar(50)" json:"venue"`
	FoundingDate  *time.Time `json:"founding_date,omitempty"`
	Seasons       int        `gorm:"default:0" json:"seasons"`
	Championships int        `gorm:"default:0" json:"championships"`

	CrestURL string `gorm:"type:varchar(300)" json:"crest_url,omitempty"`
	VenueURL string `gorm:"type:varchar(300)" json:"venue_url,omitempty"`

	// Roster players and coaches become unassigned when the team goes away.
	Players []Player `gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL" json:"players,omitempty"`
	Coaches []Coach  `gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL" json:"coaches,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
