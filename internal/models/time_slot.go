package models

import "time"

// TimeSlot is a window the principal's office opens for appointment
// requests. Slots are never deleted, only flagged unavailable.
type TimeSlot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StartTime   time.Time `gorm:"not null;index" json:"start_time"`
	EndTime     time.Time `gorm:"not null" json:"end_time"`
	IsAvailable bool      `gorm:"default:true" json:"is_available"`

	CreatedBy uint `json:"created_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
