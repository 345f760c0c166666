package booking

import (
	"context"

	"github.com/findmychef/chef-marketplace/internal/models"
)

type Repository interface {
	// -------- Profiles --------
	GetChefByID(
		ctx context.Context,
		chefID uint,
	) (*models.Chef, error)

	GetChefByUserID(
		ctx context.Context,
		userID uint,
	) (*models.Chef, error)

	GetClientByUserID(
		ctx context.Context,
		userID uint,
	) (*models.Client, error)

	// -------- Booking (create) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (read) --------
	GetBookingByID(
		ctx context.Context,
		bookingID uint,
	) (*models.Booking, error)

	ListBookingsByClient(
		ctx context.Context,
		clientID uint,
		status string,
	) ([]models.Booking, error)

	ListBookingsByChef(
		ctx context.Context,
		chefID uint,
		status string,
	) ([]models.Booking, error)

	// -------- Booking (state change) --------
	// completed additionally increments both profiles' booking counters
	// in the same transaction as the status write.
	SaveStatusChange(
		ctx context.Context,
		b *models.Booking,
		completed bool,
	) error
}
