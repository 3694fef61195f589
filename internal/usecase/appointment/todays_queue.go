package appointment

import (
	"context"

	domain "github.com/rsetcampus/atspam-api/internal/domain/appointment"
	"github.com/rsetcampus/atspam-api/internal/models"
	"github.com/rsetcampus/atspam-api/internal/timezone"
)

// TodaysQueue is the pure read projection of today's service order:
// appointments whose slot falls on the current day and whose status is
// booked, active, completed or cancelled, in (slot start, token) order.
type TodaysQueue struct {
	repo domain.Repository
	tz   string
}

func NewTodaysQueue(repo domain.Repository, tz string) *TodaysQueue {
	return &TodaysQueue{repo: repo, tz: tz}
}

func (uc *TodaysQueue) Execute(ctx context.Context) ([]models.Appointment, error) {
	dayStart, dayEnd := timezone.DayBounds(timezone.NowIn(uc.tz), uc.tz)
	return uc.repo.ListQueueForDay(ctx, dayStart, dayEnd)
}
