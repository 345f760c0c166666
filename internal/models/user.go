package models

import "time"

const (
	RoleChef   = "chef"
	RoleClient = "client"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Name         string `gorm:"size:255;not null" json:"name"`

	// Fixed at registration, never updated afterwards.
	Role string `gorm:"size:20;not null" json:"role"`

	// Linked Google identity. Pointer so the unique index ignores
	// accounts that never linked one.
	GoogleUID *string `gorm:"size:255;uniqueIndex" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
