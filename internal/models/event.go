package models

import (
	"time"

	"gatherly/internal/domain"
)

// Event is the aggregate root. RSVPs, favorites, and comments live in their
// own tables with composite unique indexes; attendee counters are derived by
// counting RSVP rows, never stored, so list and counter cannot drift apart.
type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:100;not null" json:"title"`
	Description string    `gorm:"size:2000" json:"description"`
	Category    string    `gorm:"size:30;not null;index" json:"category"`
	Date        string    `gorm:"size:10;not null;index" json:"date"` // YYYY-MM-DD
	Time        string    `gorm:"size:50" json:"time"`
	Location    string    `gorm:"size:200;not null" json:"location"`
	ContactInfo string    `gorm:"size:255" json:"contact_info"`
	ImageURL    string    `gorm:"size:512" json:"image_url"`
	MaxCapacity int       `gorm:"default:0" json:"max_capacity"` // 0 = unlimited
	Tags        []string  `gorm:"serializer:json;type:text" json:"tags"`
	Organizer   string    `gorm:"size:30;not null" json:"organizer"` // username snapshot at creation
	OrganizerID uint      `gorm:"not null;index" json:"organizer_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Event) TableName() string {
	return "events"
}

// EventRSVP holds one row per (event, user) pair; the unique index is what
// enforces the at-most-one-entry invariant under concurrent writes.
type EventRSVP struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	EventID   uint              `gorm:"not null;index:idx_rsvp_event_user,unique" json:"event_id"`
	UserID    uint              `gorm:"not null;index:idx_rsvp_event_user,unique" json:"user_id"`
	Status    domain.RSVPStatus `gorm:"size:20;not null;index" json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func (EventRSVP) TableName() string {
	return "event_rsvps"
}

type EventFavorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	EventID   uint      `gorm:"not null;index:idx_fav_event_user,unique" json:"event_id"`
	UserID    uint      `gorm:"not null;index:idx_fav_event_user,unique" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (EventFavorite) TableName() string {
	return "event_favorites"
}

// EventComment is append-only; there is no update or delete surface.
// Username is a snapshot so later renames do not rewrite history.
type EventComment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	EventID   uint      `gorm:"not null;index" json:"event_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Username  string    `gorm:"size:30;not null" json:"username"`
	Text      string    `gorm:"size:500;not null" json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

func (EventComment) TableName() string {
	return "event_comments"
}
