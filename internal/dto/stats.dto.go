package dto

type DashboardStatsDTO struct {
	PendingAppointments int64            `json:"pending_appointments"`
	TodaysAppointments  int64            `json:"todays_appointments"`
	TotalUsers          int64            `json:"total_users"`
	UsersByRole         map[string]int64 `json:"users_by_role"`
}
