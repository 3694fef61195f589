package schedule

import (
	"context"
	"time"

	"github.com/rsetcampus/atspam-api/internal/dto"
	"github.com/rsetcampus/atspam-api/internal/models"
)

type Repository interface {
	CreateSlot(ctx context.Context, slot *models.TimeSlot) error

	// ListForDay returns slots starting inside [dayStart, dayEnd),
	// ascending by start, each annotated with its booked count.
	ListForDay(ctx context.Context, dayStart, dayEnd time.Time) ([]dto.TimeSlotDTO, error)

	SetAvailability(ctx context.Context, slotID uint, available bool) (*models.TimeSlot, error)
}
