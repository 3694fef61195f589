package schedule

import (
	"context"
	"time"

	"github.com/rsetcampus/atspam-api/internal/httperr"
	"github.com/rsetcampus/atspam-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateSlotInput struct {
	Start       string // RFC3339
	End         string // RFC3339
	IsAvailable bool
	CreatedBy   uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateSlot struct {
	repo Repository
}

func NewCreateSlot(repo Repository) *CreateSlot {
	return &CreateSlot{repo: repo}
}

func (uc *CreateSlot) Execute(
	ctx context.Context,
	in CreateSlotInput,
) (*models.TimeSlot, error) {

	start, err := time.Parse(time.RFC3339, in.Start)
	if err != nil {
		return nil, httperr.ErrField(httperr.CodeValidation, "start_time")
	}

	end, err := time.Parse(time.RFC3339, in.End)
	if err != nil {
		return nil, httperr.ErrField(httperr.CodeValidation, "end_time")
	}

	if !start.Before(end) {
		return nil, httperr.ErrField(httperr.CodeValidation, "end_time")
	}

	// Overlapping slots are a scheduling-policy choice, not rejected here.
	slot := &models.TimeSlot{
		StartTime:   start,
		EndTime:     end,
		IsAvailable: in.IsAvailable,
		CreatedBy:   in.CreatedBy,
	}

	if err := uc.repo.CreateSlot(ctx, slot); err != nil {
		return nil, err
	}

	return slot, nil
}
