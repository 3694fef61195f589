package appointment

import (
	"context"
	"fmt"

	domain "github.com/rsetcampus/atspam-api/internal/domain/appointment"
	"github.com/rsetcampus/atspam-api/internal/httperr"
	"github.com/rsetcampus/atspam-api/internal/metrics"
	"github.com/rsetcampus/atspam-api/internal/models"
	"github.com/rsetcampus/atspam-api/internal/notify"
	"github.com/rsetcampus/atspam-api/internal/rbac"
	"github.com/rsetcampus/atspam-api/internal/timezone"
)

const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

type ReviewAppointmentInput struct {
	AppointmentID uint
	ReviewerID    uint
	Action        string
}

type ReviewAppointment struct {
	repo   domain.Repository
	notify *notify.Dispatcher
	tz     string
}

func NewReviewAppointment(
	repo domain.Repository,
	dispatcher *notify.Dispatcher,
	tz string,
) *ReviewAppointment {
	return &ReviewAppointment{
		repo:   repo,
		notify: dispatcher,
		tz:     tz,
	}
}

func (uc *ReviewAppointment) Execute(
	ctx context.Context,
	in ReviewAppointmentInput,
) (*models.Appointment, error) {

	if in.Action != ActionApprove && in.Action != ActionReject {
		return nil, httperr.ErrField(httperr.CodeValidation, "action")
	}

	reviewer, err := uc.repo.GetUser(ctx, in.ReviewerID)
	if err != nil {
		return nil, err
	}
	if !reviewer.IsActive {
		return nil, httperr.ErrBusiness(httperr.CodeInactiveUser)
	}
	if !rbac.IsReviewer(rbac.Role(reviewer.Role)) {
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	// Early check for a friendlier answer; the repository CAS is what
	// actually decides the race.
	if err := domain.CanReview(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	now := timezone.NowIn(uc.tz)

	var updated *models.Appointment
	switch in.Action {
	case ActionApprove:
		day := timezone.DayKey(now, uc.tz)
		updated, err = uc.repo.Approve(ctx, in.AppointmentID, in.ReviewerID, day, now)
		if err != nil {
			return nil, err
		}
		metrics.TokenMinted()

		uc.notify.Dispatch(notify.Event{
			Recipients: []uint{updated.UserID},
			Message: fmt.Sprintf(
				"Your appointment #%d was approved. Queue token: %d.",
				updated.ID, *updated.TokenNumber,
			),
		})

	case ActionReject:
		updated, err = uc.repo.Reject(ctx, in.AppointmentID, in.ReviewerID, now)
		if err != nil {
			return nil, err
		}

		uc.notify.Dispatch(notify.Event{
			Recipients: []uint{updated.UserID},
			Message:    fmt.Sprintf("Your appointment #%d was rejected.", updated.ID),
		})
	}

	return updated, nil
}
