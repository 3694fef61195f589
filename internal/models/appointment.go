package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	TimeSlotID uint     `gorm:"not null;index" json:"time_slot_id"`
	TimeSlot   TimeSlot `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"time_slot"`

	Purpose string `gorm:"size:255;not null" json:"purpose"`

	Status string `gorm:"size:20;default:'pending';index" json:"status"`

	// TokenNumber is assigned once on approval and never reused,
	// even if the appointment is cancelled afterwards.
	TokenNumber *int `json:"token_number"`

	BookedAt   time.Time  `json:"booked_at"`
	ReviewedBy *uint      `json:"reviewed_by"`
	ReviewedAt *time.Time `json:"reviewed_at"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
