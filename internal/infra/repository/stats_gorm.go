package repository

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	domain "github.com/rsetcampus/atspam-api/internal/domain/appointment"
	"github.com/rsetcampus/atspam-api/internal/dto"
	"github.com/rsetcampus/atspam-api/internal/models"
	stats "github.com/rsetcampus/atspam-api/internal/usecase/stats"
)

type StatsGormSource struct {
	db *gorm.DB
}

func NewStatsGormSource(db *gorm.DB) *StatsGormSource {
	return &StatsGormSource{db: db}
}

var todayStatuses = []string{
	string(domain.StatusBooked),
	string(domain.StatusActive),
	string(domain.StatusCompleted),
}

// Snapshot reads every number inside one repeatable-read transaction so
// the dashboard never shows impossible combinations.
func (s *StatsGormSource) Snapshot(
	ctx context.Context,
	dayStart, dayEnd time.Time,
) (dto.DashboardStatsDTO, error) {

	out := dto.DashboardStatsDTO{UsersByRole: map[string]int64{}}

	tx := s.db.WithContext(ctx).Begin(&sql.TxOptions{
		Isolation: sql.LevelRepeatableRead,
		ReadOnly:  true,
	})
	if tx.Error != nil {
		return out, tx.Error
	}
	defer tx.Rollback()

	if err := tx.Model(&models.Appointment{}).
		Where("status = ?", string(domain.StatusPending)).
		Count(&out.PendingAppointments).Error; err != nil {
		return out, err
	}

	if err := tx.Model(&models.Appointment{}).
		Joins("JOIN time_slots ON time_slots.id = appointments.time_slot_id").
		Where("time_slots.start_time >= ? AND time_slots.start_time < ?", dayStart, dayEnd).
		Where("appointments.status IN ?", todayStatuses).
		Count(&out.TodaysAppointments).Error; err != nil {
		return out, err
	}

	if err := tx.Model(&models.User{}).
		Count(&out.TotalUsers).Error; err != nil {
		return out, err
	}

	var byRole []struct {
		Role  string
		Count int64
	}
	if err := tx.Model(&models.User{}).
		Select("role, COUNT(*) AS count").
		Group("role").
		Find(&byRole).Error; err != nil {
		return out, err
	}
	for _, rc := range byRole {
		out.UsersByRole[rc.Role] = rc.Count
	}

	return out, tx.Commit().Error
}

// Compile-time check
var _ stats.Source = (*StatsGormSource)(nil)
