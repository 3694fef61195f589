package appointment_test

import (
	"testing"
	"time"

	domain "github.com/rsetcampus/atspam-api/internal/domain/appointment"
	"github.com/rsetcampus/atspam-api/internal/httperr"
	"github.com/rsetcampus/atspam-api/internal/models"
)

func pendingEntity() *models.Appointment {
	return &models.Appointment{ID: 1, UserID: 2, Status: string(domain.StatusPending)}
}

func TestApproveWritesReviewFields(t *testing.T) {
	ap := pendingEntity()
	now := time.Now()

	if err := domain.Approve(ap, 7, 3, now); err != nil {
		t.Fatalf("approve: %v", err)
	}

	if ap.Status != string(domain.StatusBooked) {
		t.Errorf("status = %q, want booked", ap.Status)
	}
	if ap.TokenNumber == nil || *ap.TokenNumber != 3 {
		t.Errorf("token = %v, want 3", ap.TokenNumber)
	}
	if ap.ReviewedBy == nil || *ap.ReviewedBy != 7 {
		t.Errorf("reviewed_by = %v, want 7", ap.ReviewedBy)
	}
	if ap.ReviewedAt == nil || !ap.ReviewedAt.Equal(now) {
		t.Errorf("reviewed_at = %v, want %v", ap.ReviewedAt, now)
	}

	// A second decision bounces off the guard without touching fields.
	if err := domain.Reject(ap, 8, now); !httperr.IsBusiness(err, httperr.CodeAlreadyReviewed) {
		t.Errorf("second review err = %v, want already_reviewed", err)
	}
	if *ap.ReviewedBy != 7 || ap.Status != string(domain.StatusBooked) {
		t.Error("losing review mutated the appointment")
	}
}

func TestRejectLeavesTokenEmpty(t *testing.T) {
	ap := pendingEntity()
	now := time.Now()

	if err := domain.Reject(ap, 7, now); err != nil {
		t.Fatalf("reject: %v", err)
	}
	if ap.Status != string(domain.StatusRejected) {
		t.Errorf("status = %q, want rejected", ap.Status)
	}
	if ap.TokenNumber != nil {
		t.Errorf("token = %d, want nil", *ap.TokenNumber)
	}
}

func TestSetStatusStampsTimestamps(t *testing.T) {
	now := time.Now()

	ap := &models.Appointment{Status: string(domain.StatusBooked)}
	if err := domain.SetStatus(ap, domain.StatusActive, now); err != nil {
		t.Fatalf("activate: %v", err)
	}
	if ap.CompletedAt != nil || ap.CancelledAt != nil {
		t.Error("active set a terminal timestamp")
	}

	if err := domain.SetStatus(ap, domain.StatusCompleted, now); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if ap.CompletedAt == nil {
		t.Error("completed_at not set")
	}

	cancelled := &models.Appointment{Status: string(domain.StatusBooked)}
	if err := domain.SetStatus(cancelled, domain.StatusCancelled, now); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if cancelled.CancelledAt == nil {
		t.Error("cancelled_at not set")
	}

	if err := domain.SetStatus(ap, domain.StatusActive, now); !httperr.IsBusiness(err, httperr.CodeInvalidTransition) {
		t.Errorf("completed -> active err = %v, want invalid_transition", err)
	}
}
