package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"not null" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ChefID uint `gorm:"not null" json:"chef_id"`
	Chef   Chef `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	BookingDate time.Time `gorm:"type:date;not null" json:"booking_date"`
	BookingTime string    `gorm:"size:8;not null" json:"booking_time"`

	DurationHours float64 `gorm:"not null" json:"duration_hours"`
	Location      string  `gorm:"size:500;not null" json:"location"`

	// Chef's rate frozen at creation time. Later profile edits never touch
	// existing bookings.
	HourlyRate float64 `gorm:"not null" json:"hourly_rate"`

	// duration_hours * hourly_rate, computed exactly once at creation.
	TotalPrice float64 `gorm:"not null" json:"total_price"`

	Status string `gorm:"size:20;not null;default:'pending'" json:"status"`

	SpecialRequests string `gorm:"type:text" json:"special_requests"`
	Notes           string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
