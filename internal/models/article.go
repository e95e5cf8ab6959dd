package models

import (
	"time"

	"github.com/google/uuid"
)

type Article struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string     `gorm:"type:varchar(150);uniqueIndex;not null" json:"title"`
	Description string     `gorm:"type:varchar(3000)" json:"description"`
	PublishDate *time.Time `json:"publish_date,omitempty"`

	CoverURL  string `gorm:"type:varchar(300)" json:"cover_url,omitempty"`
	Photo1URL string `gorm:"type:varchar(300)" json:"photo_1_url,omitempty"`
	Photo2URL string `gorm:"type:varchar(300)" json:"photo_2_url,omitempty"`
	Photo3URL string `gorm:"type:varchar(300)" json:"photo_3_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
