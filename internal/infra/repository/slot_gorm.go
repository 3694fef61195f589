package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/rsetcampus/atspam-api/internal/dto"
	"github.com/rsetcampus/atspam-api/internal/models"
	schedule "github.com/rsetcampus/atspam-api/internal/usecase/schedule"
)

type SlotGormRepository struct {
	db *gorm.DB
}

func NewSlotGormRepository(db *gorm.DB) *SlotGormRepository {
	return &SlotGormRepository{db: db}
}

func (r *SlotGormRepository) CreateSlot(
	ctx context.Context,
	slot *models.TimeSlot,
) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

func (r *SlotGormRepository) ListForDay(
	ctx context.Context,
	dayStart, dayEnd time.Time,
) ([]dto.TimeSlotDTO, error) {

	var out []dto.TimeSlotDTO
	err := r.db.WithContext(ctx).
		Model(&models.TimeSlot{}).
		Select(`time_slots.*,
			(SELECT COUNT(*) FROM appointments a
			 WHERE a.time_slot_id = time_slots.id
			   AND a.status NOT IN ('rejected', 'cancelled')) AS booked_count`).
		Where("start_time >= ? AND start_time < ?", dayStart, dayEnd).
		Order("start_time ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SlotGormRepository) SetAvailability(
	ctx context.Context,
	slotID uint,
	available bool,
) (*models.TimeSlot, error) {

	var slot models.TimeSlot
	if err := r.db.WithContext(ctx).First(&slot, slotID).Error; err != nil {
		return nil, notFoundOr(err)
	}

	if err := r.db.WithContext(ctx).
		Model(&slot).
		Update("is_available", available).Error; err != nil {
		return nil, err
	}

	return &slot, nil
}

// Compile-time check
var _ schedule.Repository = (*SlotGormRepository)(nil)
