package repository

import (
	"gatherly/internal/models"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(c *models.EventComment) error {
	return r.db.Create(c).Error
}

// ListByEvent returns comments newest-first.
func (r *CommentRepository) ListByEvent(eventID uint) ([]models.EventComment, error) {
	var list []models.EventComment
	err := r.db.Where("event_id = ?", eventID).
		Order("created_at DESC, id DESC").Find(&list).Error
	return list, err
}
