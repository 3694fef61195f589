package appointment

import (
	"context"
	"fmt"

	domain "github.com/rsetcampus/atspam-api/internal/domain/appointment"
	"github.com/rsetcampus/atspam-api/internal/httperr"
	"github.com/rsetcampus/atspam-api/internal/models"
	"github.com/rsetcampus/atspam-api/internal/notify"
	"github.com/rsetcampus/atspam-api/internal/rbac"
	"github.com/rsetcampus/atspam-api/internal/timezone"
)

// SetAppointmentStatus drives the reviewer-side moves:
// booked -> active | cancelled, active -> completed.
type SetAppointmentStatus struct {
	repo   domain.Repository
	notify *notify.Dispatcher
	tz     string
}

func NewSetAppointmentStatus(
	repo domain.Repository,
	dispatcher *notify.Dispatcher,
	tz string,
) *SetAppointmentStatus {
	return &SetAppointmentStatus{
		repo:   repo,
		notify: dispatcher,
		tz:     tz,
	}
}

func (uc *SetAppointmentStatus) Execute(
	ctx context.Context,
	actorID uint,
	appointmentID uint,
	status string,
) (*models.Appointment, error) {

	actor, err := uc.repo.GetUser(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !actor.IsActive {
		return nil, httperr.ErrBusiness(httperr.CodeInactiveUser)
	}
	if !rbac.IsReviewer(rbac.Role(actor.Role)) {
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}

	next, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	current := domain.Status(ap.Status)
	if err := domain.CanSetStatus(current, next); err != nil {
		return nil, err
	}

	now := timezone.NowIn(uc.tz)
	updated, err := uc.repo.UpdateStatusCAS(ctx, appointmentID, current, next, now)
	if err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.Event{
		Recipients: []uint{updated.UserID},
		Message:    fmt.Sprintf("Your appointment #%d is now %s.", updated.ID, updated.Status),
	})

	return updated, nil
}
