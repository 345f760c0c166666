package booking

import (
	"testing"

	"github.com/findmychef/chef-marketplace/internal/httperr"
	"github.com/findmychef/chef-marketplace/internal/models"
)

func TestPrice(t *testing.T) {
	if got := Price(3.0, 50.0); got != 150.0 {
		t.Fatalf("Price(3, 50) = %v, want 150", got)
	}
	if got := Price(4.0, 75.0); got != 300.0 {
		t.Fatalf("Price(4, 75) = %v, want 300", got)
	}
	if got := Price(1.5, 40.0); got != 60.0 {
		t.Fatalf("Price(1.5, 40) = %v, want 60", got)
	}
}

func TestValidateCreate(t *testing.T) {
	if err := ValidateCreate(2.0, "123 Main St"); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	if err := ValidateCreate(0, "123 Main St"); !httperr.IsBusiness(err, "invalid_duration") {
		t.Fatalf("zero duration: got %v, want invalid_duration", err)
	}
	if err := ValidateCreate(-1, "123 Main St"); !httperr.IsBusiness(err, "invalid_duration") {
		t.Fatalf("negative duration: got %v, want invalid_duration", err)
	}
	if err := ValidateCreate(2.0, "   "); !httperr.IsBusiness(err, "empty_location") {
		t.Fatalf("blank location: got %v, want empty_location", err)
	}
}

func TestTransition(t *testing.T) {
	notes := "bring extra knives"

	b := &models.Booking{Status: string(StatusPending)}
	if err := Transition(b, StatusAccepted, &notes); err != nil {
		t.Fatalf("pending -> accepted rejected: %v", err)
	}
	if b.Status != string(StatusAccepted) {
		t.Fatalf("status = %q, want accepted", b.Status)
	}
	if b.Notes != notes {
		t.Fatalf("notes = %q, want %q", b.Notes, notes)
	}

	// Notes untouched when not supplied.
	if err := Transition(b, StatusConfirmed, nil); err != nil {
		t.Fatalf("accepted -> confirmed rejected: %v", err)
	}
	if b.Notes != notes {
		t.Fatalf("notes changed on nil update: %q", b.Notes)
	}

	// An illegal move leaves the booking untouched.
	if err := Transition(b, StatusPending, nil); !httperr.IsBusiness(err, "invalid_transition") {
		t.Fatalf("confirmed -> pending: got %v, want invalid_transition", err)
	}
	if b.Status != string(StatusConfirmed) {
		t.Fatalf("status mutated on rejected transition: %q", b.Status)
	}
}
