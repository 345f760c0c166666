package booking

import (
	"context"

	"github.com/findmychef/chef-marketplace/internal/audit"
	domain "github.com/findmychef/chef-marketplace/internal/domain/booking"
	"github.com/findmychef/chef-marketplace/internal/httperr"
	"github.com/findmychef/chef-marketplace/internal/models"
)

type UpdateBookingStatusInput struct {
	UserID    uint
	BookingID uint
	NewStatus string
	Notes     *string
}

type UpdateBookingStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateBookingStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	in UpdateBookingStatusInput,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingByID(ctx, in.BookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	// Only the assigned chef transitions a booking. Clients never do,
	// not even on their own bookings.
	chef, err := uc.repo.GetChefByUserID(ctx, in.UserID)
	if err != nil {
		return nil, httperr.ErrBusiness("chefs_only")
	}
	if chef.ID != b.ChefID {
		return nil, httperr.ErrBusiness("not_booking_chef")
	}

	to, err := domain.ParseStatus(in.NewStatus)
	if err != nil {
		return nil, err
	}

	if err := domain.Transition(b, to, in.Notes); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveStatusChange(ctx, b, to == domain.StatusCompleted); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   audit.ActionBookingStatusChanged,
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]string{"status": string(to)},
	})

	return b, nil
}
