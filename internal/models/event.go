package models

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"title"`
	Description string    `gorm:"type:varchar(3000)" json:"description"`
	StartsAt    time.Time `json:"starts_at"`
	CapMax      int       `json:"cap_max"`

	CoverURL string `gorm:"type:varchar(300)" json:"cover_url,omitempty"`
	PhotoURL string `gorm:"type:varchar(300)" json:"photo_url,omitempty"`

	Signups []EventSignup `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"signups,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EventSignup records one fan's registration for an event. UserID goes
// null when the account is deleted; the row stays for history, so active
// signups are the rows with a non-null user.
type EventSignup struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	EventID uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_event_user" json:"event_id"`
	UserID  *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_event_user" json:"user_id,omitempty"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
