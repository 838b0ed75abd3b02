package appointment

import "github.com/barberbook/api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Occupies reports whether an appointment in this status blocks its slot.
// Cancelled rows never conflict.
func (s Status) Occupies() bool {
	return s != StatusCancelled
}

// ===============================
// Transitions
// ===============================

func CanCancel(current Status) error {
	if current == StatusCancelled || current == StatusCompleted {
		return httperr.ErrValidation("invalid_state", "L'appuntamento non può essere annullato.")
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrValidation("invalid_state", "L'appuntamento non può essere completato.")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
