package repository

import (
	"time"

	"gatherly/internal/models"

	"gorm.io/gorm"
)

type AdminStats struct {
	TotalUsers     int64           `json:"totalUsers"`
	TotalEvents    int64           `json:"totalEvents"`
	TotalAdmins    int64           `json:"totalAdmins"`
	NewUsers7Days  int64           `json:"newUsersLast7Days"`
	UpcomingEvents int64           `json:"upcomingEvents"`
	ByCategory     []CategoryCount `json:"eventsByCategory"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// AdminEventRow is an event joined with its organizer's account identity.
type AdminEventRow struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	Category       string    `json:"category"`
	Date           string    `json:"date"`
	Location       string    `json:"location"`
	OrganizerID    uint      `json:"organizer_id"`
	Organizer      string    `json:"organizer"`
	OrganizerEmail string    `json:"organizer_email"`
	CreatedAt      time.Time `json:"created_at"`
}

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// ListUsers returns users newest-first with pagination.
func (r *AdminRepository) ListUsers(page, limit int) ([]models.User, int64, error) {
	var total int64
	if err := r.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var users []models.User
	err := r.db.Order("created_at DESC").Limit(limit).Offset((page - 1) * limit).Find(&users).Error
	return users, total, err
}

// ListActiveMembers returns users whose last login falls inside the window.
func (r *AdminRepository) ListActiveMembers(days, page, limit int) ([]models.User, int64, error) {
	since := time.Now().AddDate(0, 0, -days)
	q := r.db.Model(&models.User{}).Where("last_login IS NOT NULL AND last_login >= ?", since)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var users []models.User
	err := q.Order("last_login DESC").Limit(limit).Offset((page - 1) * limit).Find(&users).Error
	return users, total, err
}

// ListEvents returns events joined with the organizer's account email.
func (r *AdminRepository) ListEvents(page, limit int) ([]AdminEventRow, int64, error) {
	var total int64
	if err := r.db.Model(&models.Event{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []AdminEventRow
	err := r.db.Model(&models.Event{}).
		Select("events.id, events.title, events.category, events.date, events.location, events.organizer_id, events.organizer, users.email AS organizer_email, events.created_at").
		Joins("LEFT JOIN users ON users.id = events.organizer_id").
		Order("events.created_at DESC").
		Limit(limit).Offset((page - 1) * limit).
		Scan(&rows).Error
	return rows, total, err
}

func (r *AdminRepository) GetStats() (*AdminStats, error) {
	var s AdminStats
	if err := r.db.Model(&models.User{}).Count(&s.TotalUsers).Error; err != nil {
		return nil, err
	}
	r.db.Model(&models.Event{}).Count(&s.TotalEvents)
	r.db.Model(&models.User{}).Where("is_admin = ?", true).Count(&s.TotalAdmins)
	r.db.Model(&models.User{}).Where("created_at >= ?", time.Now().AddDate(0, 0, -7)).Count(&s.NewUsers7Days)
	// Dates are stored as YYYY-MM-DD so string comparison is chronological.
	r.db.Model(&models.Event{}).Where("date >= ?", time.Now().Format("2006-01-02")).Count(&s.UpcomingEvents)

	err := r.db.Model(&models.Event{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Order("count DESC").
		Scan(&s.ByCategory).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// DeleteUserCascade removes the user, every event they organize (with that
// event's rsvps/favorites/comments), and their own interaction rows on other
// events, all in one transaction.
func (r *AdminRepository) DeleteUserCascade(userID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var eventIDs []uint
		if err := tx.Model(&models.Event{}).Where("organizer_id = ?", userID).
			Pluck("id", &eventIDs).Error; err != nil {
			return err
		}
		if len(eventIDs) > 0 {
			if err := tx.Where("event_id IN ?", eventIDs).Delete(&models.EventRSVP{}).Error; err != nil {
				return err
			}
			if err := tx.Where("event_id IN ?", eventIDs).Delete(&models.EventFavorite{}).Error; err != nil {
				return err
			}
			if err := tx.Where("event_id IN ?", eventIDs).Delete(&models.EventComment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("organizer_id = ?", userID).Delete(&models.Event{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.EventRSVP{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.EventFavorite{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.User{}, userID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
