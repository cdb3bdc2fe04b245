package model

import "time"

// User roles recognized by the authorization middleware.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an account that can request and, for admins, decide bookings.
type User struct {
	ID        int64     `gorm:"primaryKey"`
	Name      string    `gorm:"size:128;not null"`
	Email     string    `gorm:"uniqueIndex;size:256;not null"`
	Password  string    `gorm:"size:128;not null" json:"-"` // bcrypt hash, never serialized
	Role      string    `gorm:"size:16;not null;default:user"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	// Associations
	Bookings []Booking `gorm:"foreignKey:UserID"`
}
