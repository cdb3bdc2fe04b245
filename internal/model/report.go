package model

import "time"

// Report is the printable artifact generated for an approved booking.
// The unique index on BookingID allows at most one report per booking, and
// its foreign key keeps the reaper from deleting a booking that has one.
type Report struct {
	ID          int64     `gorm:"primaryKey"`
	BookingID   int64     `gorm:"uniqueIndex;not null"`
	FileName    string    `gorm:"size:256;not null"`
	FilePath    string    `gorm:"size:512;not null"`
	GeneratedAt time.Time `gorm:"not null;autoCreateTime"`

	// Associations
	Booking Booking `gorm:"foreignKey:BookingID"`
}
