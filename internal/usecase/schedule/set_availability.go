package schedule

import (
	"context"

	"github.com/rsetcampus/atspam-api/internal/models"
)

// SetAvailability toggles the advisory availability flag. Existing
// appointments against the slot are untouched.
type SetAvailability struct {
	repo Repository
}

func NewSetAvailability(repo Repository) *SetAvailability {
	return &SetAvailability{repo: repo}
}

func (uc *SetAvailability) Execute(
	ctx context.Context,
	slotID uint,
	available bool,
) (*models.TimeSlot, error) {
	return uc.repo.SetAvailability(ctx, slotID, available)
}
