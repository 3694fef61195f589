package appointment

import (
	"context"
	"time"

	"github.com/rsetcampus/atspam-api/internal/models"
)

// Repository is the persistence surface of the workflow. Implementations
// must make Approve, Reject and UpdateStatusCAS atomic check-and-set
// operations against the stored status: when the row is no longer in the
// expected state, they return the matching business error without writing.
type Repository interface {
	// -------- User --------
	GetUser(ctx context.Context, id uint) (*models.User, error)

	ListReviewers(ctx context.Context) ([]models.User, error)

	// -------- Time slot --------
	GetSlot(ctx context.Context, id uint) (*models.TimeSlot, error)

	// -------- Appointment (create / read) --------
	CreateAppointment(ctx context.Context, ap *models.Appointment) error

	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)

	ListByRequester(ctx context.Context, userID uint) ([]models.Appointment, error)

	ListPending(ctx context.Context) ([]models.Appointment, error)

	// ListQueueForDay returns appointments whose slot starts inside
	// [dayStart, dayEnd) and whose status is booked, active, completed or
	// cancelled, ordered by slot start then token number.
	ListQueueForDay(ctx context.Context, dayStart, dayEnd time.Time) ([]models.Appointment, error)

	// -------- Appointment (state change) --------

	// Approve flips pending -> booked and mints the next token for day in
	// one atomic step. The counter is only touched when the CAS wins, so a
	// losing reviewer never burns a token.
	Approve(ctx context.Context, appointmentID, reviewerID uint, day string, now time.Time) (*models.Appointment, error)

	Reject(ctx context.Context, appointmentID, reviewerID uint, now time.Time) (*models.Appointment, error)

	UpdateStatusCAS(ctx context.Context, appointmentID uint, from, to Status, now time.Time) (*models.Appointment, error)
}
