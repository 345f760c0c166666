package booking

import (
	"context"

	domain "github.com/findmychef/chef-marketplace/internal/domain/booking"
	"github.com/findmychef/chef-marketplace/internal/httperr"
	"github.com/findmychef/chef-marketplace/internal/models"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(
	repo domain.Repository,
) *ListBookings {
	return &ListBookings{
		repo: repo,
	}
}

// Execute returns the caller's own side of the marketplace: a client sees
// bookings they made, a chef sees bookings assigned to them. Never both.
func (uc *ListBookings) Execute(
	ctx context.Context,
	userID uint,
	statusFilter string,
) ([]models.Booking, error) {

	if statusFilter != "" {
		if _, err := domain.ParseStatus(statusFilter); err != nil {
			return nil, err
		}
	}

	if client, err := uc.repo.GetClientByUserID(ctx, userID); err == nil {
		return uc.repo.ListBookingsByClient(ctx, client.ID, statusFilter)
	}

	if chef, err := uc.repo.GetChefByUserID(ctx, userID); err == nil {
		return uc.repo.ListBookingsByChef(ctx, chef.ID, statusFilter)
	}

	return nil, httperr.ErrBusiness("profile_required")
}
