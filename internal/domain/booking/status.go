package booking

import "github.com/findmychef/chef-marketplace/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusConfirmed Status = "confirmed"
	StatusDeclined  Status = "declined"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusPending
}

// ParseStatus rejects anything outside the recognized enum.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusAccepted, StatusConfirmed,
		StatusDeclined, StatusCompleted, StatusCancelled:
		return Status(s), nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

// ===============================
// Transition table
// ===============================

// declined, completed and cancelled are terminal and have no entry.
var allowedTransitions = map[Status][]Status{
	StatusPending:   {StatusAccepted, StatusDeclined},
	StatusAccepted:  {StatusConfirmed},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

func CanTransition(from, to Status) error {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_transition")
}

func IsTerminal(s Status) bool {
	return len(allowedTransitions[s]) == 0
}
