package dto

import "github.com/rsetcampus/atspam-api/internal/models"

// TimeSlotDTO annotates a slot with its derived request count
// (non-rejected, non-cancelled appointments referencing it).
type TimeSlotDTO struct {
	models.TimeSlot
	BookedCount int64 `json:"booked_count"`
}
