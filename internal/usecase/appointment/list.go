package appointment

import (
	"context"

	domain "github.com/rsetcampus/atspam-api/internal/domain/appointment"
	"github.com/rsetcampus/atspam-api/internal/models"
)

type ListMyAppointments struct {
	repo domain.Repository
}

func NewListMyAppointments(repo domain.Repository) *ListMyAppointments {
	return &ListMyAppointments{repo: repo}
}

func (uc *ListMyAppointments) Execute(
	ctx context.Context,
	userID uint,
) ([]models.Appointment, error) {
	return uc.repo.ListByRequester(ctx, userID)
}

type ListPendingAppointments struct {
	repo domain.Repository
}

func NewListPendingAppointments(repo domain.Repository) *ListPendingAppointments {
	return &ListPendingAppointments{repo: repo}
}

func (uc *ListPendingAppointments) Execute(
	ctx context.Context,
) ([]models.Appointment, error) {
	return uc.repo.ListPending(ctx)
}
