package models

import "time"

type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID  uint   `gorm:"not null;index" json:"user_id"`
	Message string `gorm:"size:255;not null" json:"message"`
	IsRead  bool   `gorm:"default:false;index" json:"is_read"`

	CreatedAt time.Time `json:"created_at"`
}
