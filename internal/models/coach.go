package models

import (
	"time"

	"github.com/google/uuid"
)

type Coach struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName   string     `gorm:"type:varchar(20)" json:"first_name"`
	LastName    string     `gorm:"type:varchar(30)" json:"last_name"`
	BirthDate   *time.Time `json:"birth_date,omitempty"`
	Nationality string     `gorm:"type:varchar(30)" json:"nationality"`
	City        string     `gorm:"type:varchar(50)" json:"city"`
	Seasons     int        `gorm:"default:0" json:"seasons"`
	PhotoURL    string     `gorm:"type:varchar(300)" json:"photo_url,omitempty"`

	TeamID *uuid.UUID `gorm:"type:uuid;index" json:"team_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
