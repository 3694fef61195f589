package schedule

import (
	"context"

	"github.com/rsetcampus/atspam-api/internal/dto"
	"github.com/rsetcampus/atspam-api/internal/httperr"
	"github.com/rsetcampus/atspam-api/internal/timezone"
)

type ListSlots struct {
	repo Repository
	tz   string
}

func NewListSlots(repo Repository, tz string) *ListSlots {
	return &ListSlots{repo: repo, tz: tz}
}

func (uc *ListSlots) Execute(
	ctx context.Context,
	day string,
) ([]dto.TimeSlotDTO, error) {

	date, err := timezone.ParseDay(day, uc.tz)
	if err != nil {
		return nil, httperr.ErrField(httperr.CodeValidation, "date")
	}

	dayStart, dayEnd := timezone.DayBounds(date, uc.tz)
	return uc.repo.ListForDay(ctx, dayStart, dayEnd)
}
