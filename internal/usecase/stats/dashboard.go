package stats

import (
	"context"
	"time"

	"github.com/rsetcampus/atspam-api/internal/dto"
	"github.com/rsetcampus/atspam-api/internal/timezone"
)

// Source computes the whole dashboard in one consistent snapshot, so the
// numbers can never contradict each other (e.g. roles summing past the
// user total).
type Source interface {
	Snapshot(ctx context.Context, dayStart, dayEnd time.Time) (dto.DashboardStatsDTO, error)
}

type Dashboard struct {
	source Source
	tz     string
}

func NewDashboard(source Source, tz string) *Dashboard {
	return &Dashboard{source: source, tz: tz}
}

func (uc *Dashboard) Execute(ctx context.Context) (dto.DashboardStatsDTO, error) {
	dayStart, dayEnd := timezone.DayBounds(timezone.NowIn(uc.tz), uc.tz)
	return uc.source.Snapshot(ctx, dayStart, dayEnd)
}
