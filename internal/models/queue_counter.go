package models

import "time"

// QueueCounter backs token numbering. One row per calendar day,
// lazily created on the first approval of that day, never decremented.
type QueueCounter struct {
	Day       string    `gorm:"primaryKey;size:10" json:"day"`
	LastValue int       `gorm:"not null;default:0" json:"last_value"`
	UpdatedAt time.Time `json:"updated_at"`
}
