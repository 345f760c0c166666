package booking

import (
	"context"
	"time"

	"github.com/findmychef/chef-marketplace/internal/audit"
	domain "github.com/findmychef/chef-marketplace/internal/domain/booking"
	"github.com/findmychef/chef-marketplace/internal/httperr"
	"github.com/findmychef/chef-marketplace/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserID uint
	Role   string

	ChefID uint

	Date            string
	Time            string
	DurationHours   float64
	Location        string
	SpecialRequests string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// Only clients book chefs. The assigned chef transitions afterwards.
	if in.Role != models.RoleClient {
		return nil, httperr.ErrBusiness("clients_only")
	}

	client, err := uc.repo.GetClientByUserID(ctx, in.UserID)
	if err != nil {
		return nil, httperr.ErrBusiness("client_profile_required")
	}

	chef, err := uc.repo.GetChefByID(ctx, in.ChefID)
	if err != nil {
		return nil, httperr.ErrBusiness("chef_not_found")
	}

	if err := domain.ValidateCreate(in.DurationHours, in.Location); err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	bookingTime, err := parseTimeOfDay(in.Time)
	if err != nil {
		return nil, err
	}

	// Rate snapshot: frozen here, immune to later profile edits.
	b := &models.Booking{
		ClientID:        client.ID,
		ChefID:          chef.ID,
		BookingDate:     date,
		BookingTime:     bookingTime,
		DurationHours:   in.DurationHours,
		Location:        in.Location,
		HourlyRate:      chef.HourlyRate,
		TotalPrice:      domain.Price(in.DurationHours, chef.HourlyRate),
		Status:          string(domain.InitialStatus()),
		SpecialRequests: in.SpecialRequests,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	// Populate associations for the response view.
	b.Client = *client
	b.Chef = *chef

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   audit.ActionBookingCreated,
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

func parseTimeOfDay(s string) (string, error) {
	if t, err := time.Parse("15:04:05", s); err == nil {
		return t.Format("15:04"), nil
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return "", httperr.ErrBusiness("invalid_time")
	}
	return t.Format("15:04"), nil
}
