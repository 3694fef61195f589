package appointment

import "github.com/rsetcampus/atspam-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusBooked    Status = "booked"
	StatusRejected  Status = "rejected"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// transitions is the complete table of legal status changes.
// Anything missing here is invalid, full stop.
var transitions = map[Status][]Status{
	StatusPending: {StatusBooked, StatusRejected, StatusCancelled},
	StatusBooked:  {StatusActive, StatusCancelled},
	StatusActive:  {StatusCompleted},
}

func InitialStatus() Status {
	return StatusPending
}

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusBooked, StatusRejected,
		StatusActive, StatusCompleted, StatusCancelled:
		return Status(s), nil
	}
	return "", httperr.ErrField(httperr.CodeValidation, "status")
}

func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func IsTerminal(s Status) bool {
	return len(transitions[s]) == 0
}

// ===============================
// Validations
// ===============================

// CanReview gates approve/reject. A non-pending appointment means a
// reviewer already decided; the caller lost the race.
func CanReview(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness(httperr.CodeAlreadyReviewed)
	}
	return nil
}

// CanCancel gates the requester-driven cancel.
func CanCancel(current Status) error {
	if current != StatusPending && current != StatusBooked {
		return httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}
	return nil
}

// CanSetStatus gates the reviewer-driven active/completed/cancelled moves.
func CanSetStatus(current, next Status) error {
	if next != StatusActive && next != StatusCompleted && next != StatusCancelled {
		return httperr.ErrField(httperr.CodeValidation, "status")
	}
	if !CanTransition(current, next) {
		return httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}
	return nil
}
