package appointment

import (
	"context"
	"fmt"

	domain "github.com/rsetcampus/atspam-api/internal/domain/appointment"
	"github.com/rsetcampus/atspam-api/internal/httperr"
	"github.com/rsetcampus/atspam-api/internal/models"
	"github.com/rsetcampus/atspam-api/internal/notify"
	"github.com/rsetcampus/atspam-api/internal/timezone"
)

// CancelAppointment is requester-only: nobody else may cancel on a
// user's behalf (reviewers go through SetAppointmentStatus instead).
type CancelAppointment struct {
	repo   domain.Repository
	notify *notify.Dispatcher
	tz     string
}

func NewCancelAppointment(
	repo domain.Repository,
	dispatcher *notify.Dispatcher,
	tz string,
) *CancelAppointment {
	return &CancelAppointment{
		repo:   repo,
		notify: dispatcher,
		tz:     tz,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	requesterID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if ap.UserID != requesterID {
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}

	current := domain.Status(ap.Status)
	if err := domain.CanCancel(current); err != nil {
		return nil, err
	}

	now := timezone.NowIn(uc.tz)
	updated, err := uc.repo.UpdateStatusCAS(ctx, appointmentID, current, domain.StatusCancelled, now)
	if err != nil {
		return nil, err
	}

	// A cancelled booked appointment changes the day's queue, so the
	// reviewers hear about it. The token stays burned either way.
	if current == domain.StatusBooked {
		uc.notifyReviewers(ctx, updated)
	}

	return updated, nil
}

func (uc *CancelAppointment) notifyReviewers(ctx context.Context, ap *models.Appointment) {
	reviewers, err := uc.repo.ListReviewers(ctx)
	if err != nil {
		return
	}

	recipients := make([]uint, 0, len(reviewers))
	for _, r := range reviewers {
		recipients = append(recipients, r.ID)
	}

	msg := fmt.Sprintf("Appointment #%d was cancelled by the requester.", ap.ID)
	if ap.TokenNumber != nil {
		msg = fmt.Sprintf("Appointment #%d (token %d) was cancelled by the requester.", ap.ID, *ap.TokenNumber)
	}

	uc.notify.Dispatch(notify.Event{
		Recipients: recipients,
		Message:    msg,
	})
}
