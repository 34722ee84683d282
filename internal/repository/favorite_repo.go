package repository

import (
	"gatherly/internal/models"

	"gorm.io/gorm"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) Add(eventID, userID uint) error {
	return r.db.Create(&models.EventFavorite{EventID: eventID, UserID: userID}).Error
}

func (r *FavoriteRepository) Remove(eventID, userID uint) error {
	return r.db.Where("event_id = ? AND user_id = ?", eventID, userID).
		Delete(&models.EventFavorite{}).Error
}

func (r *FavoriteRepository) IsFavorite(eventID, userID uint) (bool, error) {
	var c int64
	err := r.db.Model(&models.EventFavorite{}).
		Where("event_id = ? AND user_id = ?", eventID, userID).Count(&c).Error
	return c > 0, err
}

func (r *FavoriteRepository) CountByEvent(eventID uint) (int64, error) {
	var c int64
	err := r.db.Model(&models.EventFavorite{}).Where("event_id = ?", eventID).Count(&c).Error
	return c, err
}
