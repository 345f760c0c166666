package dto

import (
	"strings"

	"github.com/findmychef/chef-marketplace/internal/models"
)

type ChefView struct {
	ID                uint     `json:"id"`
	UserID            uint     `json:"user_id"`
	Name              string   `json:"name"`
	Bio               string   `json:"bio"`
	Cuisines          []string `json:"cuisines"`
	Specialties       string   `json:"specialties"`
	HourlyRate        float64  `json:"hourly_rate"`
	Location          string   `json:"location"`
	Phone             string   `json:"phone"`
	PhotoURL          string   `json:"photo_url"`
	YearsOfExperience int      `json:"years_of_experience"`
	Rating            float64  `json:"rating"`
	TotalBookings     int      `json:"total_bookings"`
	IsAvailable       bool     `json:"is_available"`
}

func NewChefView(chef *models.Chef) ChefView {
	return ChefView{
		ID:                chef.ID,
		UserID:            chef.UserID,
		Name:              chef.User.Name,
		Bio:               chef.Bio,
		Cuisines:          SplitCuisines(chef.Cuisines),
		Specialties:       chef.Specialties,
		HourlyRate:        chef.HourlyRate,
		Location:          chef.Location,
		Phone:             chef.Phone,
		PhotoURL:          chef.PhotoURL,
		YearsOfExperience: chef.YearsOfExperience,
		Rating:            chef.Rating,
		TotalBookings:     chef.TotalBookings,
		IsAvailable:       chef.IsAvailable,
	}
}

func NewChefViews(chefs []models.Chef) []ChefView {
	out := make([]ChefView, 0, len(chefs))
	for i := range chefs {
		out = append(out, NewChefView(&chefs[i]))
	}
	return out
}

type ClientView struct {
	ID                uint     `json:"id"`
	UserID            uint     `json:"user_id"`
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	Phone             string   `json:"phone"`
	Address           string   `json:"address"`
	PreferredCuisines []string `json:"preferred_cuisines"`
	TotalBookings     int      `json:"total_bookings"`
}

func NewClientView(client *models.Client) ClientView {
	return ClientView{
		ID:                client.ID,
		UserID:            client.UserID,
		Name:              client.User.Name,
		Email:             client.User.Email,
		Phone:             client.Phone,
		Address:           client.Address,
		PreferredCuisines: SplitCuisines(client.PreferredCuisines),
		TotalBookings:     client.TotalBookings,
	}
}

// SplitCuisines turns the stored comma list into the array the frontend
// expects. An empty column yields an empty array, not null.
func SplitCuisines(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
