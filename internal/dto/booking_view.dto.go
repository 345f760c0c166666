package dto

import (
	"time"

	"github.com/findmychef/chef-marketplace/internal/models"
)

// BookingView is the wire representation of a booking. Chef and client
// names are joined at serialization time, never stored on the row.
type BookingView struct {
	ID              uint    `json:"id"`
	ClientID        uint    `json:"client_id"`
	ClientName      string  `json:"client_name"`
	ChefID          uint    `json:"chef_id"`
	ChefName        string  `json:"chef_name"`
	BookingDate     string  `json:"booking_date"`
	BookingTime     string  `json:"booking_time"`
	DurationHours   float64 `json:"duration_hours"`
	Location        string  `json:"location"`
	HourlyRate      float64 `json:"hourly_rate"`
	TotalPrice      float64 `json:"total_price"`
	Status          string  `json:"status"`
	SpecialRequests string  `json:"special_requests"`
	Notes           string  `json:"notes"`
	CreatedAt       *string `json:"created_at"`
	UpdatedAt       *string `json:"updated_at"`
}

func NewBookingView(b *models.Booking) BookingView {
	return BookingView{
		ID:              b.ID,
		ClientID:        b.ClientID,
		ClientName:      b.Client.User.Name,
		ChefID:          b.ChefID,
		ChefName:        b.Chef.User.Name,
		BookingDate:     b.BookingDate.Format("2006-01-02"),
		BookingTime:     b.BookingTime,
		DurationHours:   b.DurationHours,
		Location:        b.Location,
		HourlyRate:      b.HourlyRate,
		TotalPrice:      b.TotalPrice,
		Status:          b.Status,
		SpecialRequests: b.SpecialRequests,
		Notes:           b.Notes,
		CreatedAt:       isoTimestamp(b.CreatedAt),
		UpdatedAt:       isoTimestamp(b.UpdatedAt),
	}
}

func NewBookingViews(bookings []models.Booking) []BookingView {
	out := make([]BookingView, 0, len(bookings))
	for i := range bookings {
		out = append(out, NewBookingView(&bookings[i]))
	}
	return out
}

func isoTimestamp(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
