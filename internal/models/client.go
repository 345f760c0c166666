package models

type Client struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Phone             string `gorm:"size:20" json:"phone"`
	Address           string `gorm:"size:500" json:"address"`
	PreferredCuisines string `gorm:"size:500" json:"-"`
	TotalBookings     int    `gorm:"default:0" json:"total_bookings"`
}
