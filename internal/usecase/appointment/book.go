package appointment

import (
	"context"
	"fmt"
	"strings"

	domain "github.com/rsetcampus/atspam-api/internal/domain/appointment"
	"github.com/rsetcampus/atspam-api/internal/httperr"
	"github.com/rsetcampus/atspam-api/internal/models"
	"github.com/rsetcampus/atspam-api/internal/notify"
	"github.com/rsetcampus/atspam-api/internal/rbac"
	"github.com/rsetcampus/atspam-api/internal/timezone"
)

// MaxPurposeLen bounds the free-text purpose field.
const MaxPurposeLen = 255

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	UserID     uint
	TimeSlotID uint
	Purpose    string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo   domain.Repository
	notify *notify.Dispatcher
	tz     string
}

func NewBookAppointment(
	repo domain.Repository,
	dispatcher *notify.Dispatcher,
	tz string,
) *BookAppointment {
	return &BookAppointment{
		repo:   repo,
		notify: dispatcher,
		tz:     tz,
	}
}

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	user, err := uc.repo.GetUser(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, httperr.ErrBusiness(httperr.CodeInactiveUser)
	}
	if !rbac.Can(rbac.Role(user.Role), rbac.ActionBook) {
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}

	purpose := strings.TrimSpace(in.Purpose)
	if purpose == "" {
		return nil, httperr.ErrField(httperr.CodeValidation, "purpose")
	}
	if len(purpose) > MaxPurposeLen {
		return nil, httperr.ErrField(httperr.CodeValidation, "purpose")
	}

	// Capacity is advisory: the slot only has to exist. Multiple requests
	// against the same slot are allowed regardless of the availability flag.
	if _, err := uc.repo.GetSlot(ctx, in.TimeSlotID); err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		UserID:     in.UserID,
		TimeSlotID: in.TimeSlotID,
		Purpose:    purpose,
		Status:     string(domain.InitialStatus()),
		BookedAt:   timezone.NowIn(uc.tz),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.notifyReviewers(ctx, ap, user)

	return ap, nil
}

func (uc *BookAppointment) notifyReviewers(
	ctx context.Context,
	ap *models.Appointment,
	requester *models.User,
) {
	reviewers, err := uc.repo.ListReviewers(ctx)
	if err != nil {
		return
	}

	recipients := make([]uint, 0, len(reviewers))
	for _, r := range reviewers {
		recipients = append(recipients, r.ID)
	}

	uc.notify.Dispatch(notify.Event{
		Recipients: recipients,
		Message:    fmt.Sprintf("New appointment request #%d from %s awaits review.", ap.ID, requester.Name),
	})
}
