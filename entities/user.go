package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	Password     string    `gorm:"not null" json:"-"`
	Email        string    `json:"email,omitempty"`
	WebhookURL   string    `json:"webhook_url,omitempty"`
	ReminderDays int       `gorm:"default:7" json:"reminder_days"`

	Items []*Item `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}
