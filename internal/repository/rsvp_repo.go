package repository

import (
	"errors"

	"gatherly/internal/domain"
	"gatherly/internal/models"

	"gorm.io/gorm"
)

type RSVPRepository struct {
	db *gorm.DB
}

func NewRSVPRepository(db *gorm.DB) *RSVPRepository {
	return &RSVPRepository{db: db}
}

// Set replaces the user's RSVP entry for the event. Remove-then-insert runs
// in one transaction so a concurrent Set for the same pair degenerates to
// last-write-wins on the unique (event_id, user_id) row.
func (r *RSVPRepository) Set(eventID, userID uint, status domain.RSVPStatus) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ? AND user_id = ?", eventID, userID).
			Delete(&models.EventRSVP{}).Error; err != nil {
			return err
		}
		return tx.Create(&models.EventRSVP{EventID: eventID, UserID: userID, Status: status}).Error
	})
}

// Clear removes the user's RSVP entry if present.
func (r *RSVPRepository) Clear(eventID, userID uint) error {
	return r.db.Where("event_id = ? AND user_id = ?", eventID, userID).
		Delete(&models.EventRSVP{}).Error
}

// Get returns the user's entry, or nil when none exists.
func (r *RSVPRepository) Get(eventID, userID uint) (*models.EventRSVP, error) {
	var rsvp models.EventRSVP
	err := r.db.Where("event_id = ? AND user_id = ?", eventID, userID).First(&rsvp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rsvp, nil
}

// CountByStatus derives the attendee counter for one status.
func (r *RSVPRepository) CountByStatus(eventID uint, status domain.RSVPStatus) (int64, error) {
	var c int64
	err := r.db.Model(&models.EventRSVP{}).
		Where("event_id = ? AND status = ?", eventID, status).Count(&c).Error
	return c, err
}

func (r *RSVPRepository) ListByEvent(eventID uint) ([]models.EventRSVP, error) {
	var list []models.EventRSVP
	err := r.db.Where("event_id = ?", eventID).Order("created_at ASC").Find(&list).Error
	return list, err
}
