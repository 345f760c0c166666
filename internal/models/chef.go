package models

type Chef struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Bio string `gorm:"type:text" json:"bio"`

	// Comma-separated, e.g. "Italian,French,Mediterranean". Serialized as
	// an array in responses.
	Cuisines string `gorm:"size:500" json:"-"`

	Specialties string  `gorm:"type:text" json:"specialties"`
	HourlyRate  float64 `gorm:"not null;default:0" json:"hourly_rate"`
	Location    string  `gorm:"size:255" json:"location"`
	Phone       string  `gorm:"size:20" json:"phone"`
	PhotoURL    string  `gorm:"size:500" json:"photo_url"`

	YearsOfExperience int     `gorm:"default:0" json:"years_of_experience"`
	Rating            float64 `gorm:"default:0" json:"rating"`
	TotalBookings     int     `gorm:"default:0" json:"total_bookings"`
	IsAvailable       bool    `gorm:"default:true" json:"is_available"`
}
