package booking

import (
	"strings"

	"github.com/findmychef/chef-marketplace/internal/httperr"
	"github.com/findmychef/chef-marketplace/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Price snapshots the chef's current rate and derives the total. Both
// values are written once at creation and never recomputed.
func Price(durationHours, hourlyRate float64) float64 {
	return durationHours * hourlyRate
}

func ValidateCreate(durationHours float64, location string) error {
	if durationHours <= 0 {
		return httperr.ErrBusiness("invalid_duration")
	}
	if strings.TrimSpace(location) == "" {
		return httperr.ErrBusiness("empty_location")
	}
	return nil
}

// Transition moves the booking to the requested status, enforcing the
// transition table. Notes, when supplied, are chef-authored.
func Transition(b *models.Booking, to Status, notes *string) error {
	if err := CanTransition(Status(b.Status), to); err != nil {
		return err
	}

	b.Status = string(to)
	if notes != nil {
		b.Notes = *notes
	}
	return nil
}
