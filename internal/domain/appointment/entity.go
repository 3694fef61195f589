package appointment

import (
	"time"

	"github.com/rsetcampus/atspam-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// The mutators below are the one place appointment fields change after
// creation. Persistence layers apply them once their own concurrency
// check (conditional UPDATE, mutex) has settled who wins.

// SetStatus moves the appointment along the transition table. Cancel is
// the same move with StatusCancelled as the target.
func SetStatus(ap *models.Appointment, next Status, now time.Time) error {
	if err := CanSetStatus(Status(ap.Status), next); err != nil {
		return err
	}

	ap.Status = string(next)
	switch next {
	case StatusCompleted:
		ap.CompletedAt = &now
	case StatusCancelled:
		ap.CancelledAt = &now
	}
	return nil
}

func Approve(ap *models.Appointment, reviewerID uint, token int, now time.Time) error {
	if err := CanReview(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusBooked)
	ap.TokenNumber = &token
	ap.ReviewedBy = &reviewerID
	ap.ReviewedAt = &now
	return nil
}

func Reject(ap *models.Appointment, reviewerID uint, now time.Time) error {
	if err := CanReview(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusRejected)
	ap.ReviewedBy = &reviewerID
	ap.ReviewedAt = &now
	return nil
}
