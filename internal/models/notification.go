package models

import "time"

// Notification is an admin broadcast. Delivery and read-tracking are handled
// by a separate consumer surface, not this service.
type Notification struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"size:100;not null" json:"title"`
	Message     string     `gorm:"size:500;not null" json:"message"`
	Type        string     `gorm:"size:20;not null" json:"type"`     // info | warning | success | error
	Priority    string     `gorm:"size:20;not null" json:"priority"` // low | normal | high
	TargetUsers string     `gorm:"size:20;not null" json:"targetUsers"`
	TargetIDs   []uint     `gorm:"serializer:json;type:text" json:"targetIds"` // only when targetUsers=specific
	CreatedBy   uint       `gorm:"not null;index" json:"createdBy"`
	ExpiresAt   *time.Time `json:"expiresAt"`
	IsActive    bool       `gorm:"default:true" json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func (Notification) TableName() string {
	return "notifications"
}
