package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lnbfans/courtside/internal/models"
	"gorm.io/gorm"
)

// ErrCapacityReached means the event's active signups already hit cap_max.
var ErrCapacityReached = errors.New("event capacity reached")

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

func (r *EventRepository) GetByID(id uuid.UUID) (*models.Event, error) {
	var event models.Event
	err := r.db.Where("id = ?", id).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) GetByTitle(title string) (*models.Event, error) {
	var event models.Event
	err := r.db.Where("title = ?", title).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

// List returns events soonest first, optionally filtered by a
// case-insensitive substring match on the title.
func (r *EventRepository) List(query string) ([]models.Event, error) {
	var events []models.Event
	tx := r.db.Order("starts_at ASC")
	if query != "" {
		pattern := "%" + strings.ToLower(query) + "%"
		tx = tx.Where("lower(title) LIKE ?", pattern)
	}
	err := tx.Find(&events).Error
	return events, err
}

func (r *EventRepository) Update(event *models.Event) error {
	return r.db.Save(event).Error
}

// Delete removes the event and its signup rows.
func (r *EventRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&models.EventSignup{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Event{}, "id = ?", id).Error
	})
}

// ActiveSignupCount counts signup rows that still reference a user.
// Rows orphaned by account deletion do not hold a capacity slot.
func (r *EventRepository) ActiveSignupCount(eventID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.EventSignup{}).
		Where("event_id = ? AND user_id IS NOT NULL", eventID).
		Count(&count).Error
	return count, err
}

// AddSignup registers the user for the event. The capacity check, the
// duplicate check and the insert run in one transaction so the cap holds
// under concurrent signups. A repeat signup by the same user is a no-op;
// created reports whether a new row was written.
func (r *EventRepository) AddSignup(event *models.Event, userID uuid.UUID) (created bool, err error) {
	err = r.db.Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.EventSignup{}).
			Where("event_id = ? AND user_id = ?", event.ID, userID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return nil
		}

		var active int64
		if err := tx.Model(&models.EventSignup{}).
			Where("event_id = ? AND user_id IS NOT NULL", event.ID).
			Count(&active).Error; err != nil {
			return err
		}
		if active >= int64(event.CapMax) {
			return ErrCapacityReached
		}

		uid := userID
		signup := models.EventSignup{
			ID:        uuid.New(),
			EventID:   event.ID,
			UserID:    &uid,
			CreatedAt: time.Now(),
		}
		if err := tx.Create(&signup).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	return created, err
}

// ListSignups returns the event's signup rows with their users preloaded.
func (r *EventRepository) ListSignups(eventID uuid.UUID) ([]models.EventSignup, error) {
	var signups []models.EventSignup
	err := r.db.Preload("User").Where("event_id = ?", eventID).
		Order("created_at ASC").Find(&signups).Error
	return signups, err
}
