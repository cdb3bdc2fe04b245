package model

import "time"

// BookingStatus enumerates the booking state machine.
type BookingStatus string

const (
	StatusPending  BookingStatus = "pending"
	StatusApproved BookingStatus = "approved"
	StatusRejected BookingStatus = "rejected"
)

// ActiveStatuses are the statuses that occupy a slot for conflict detection.
// Rejected bookings are inert history and do not block new requests.
var ActiveStatuses = []BookingStatus{StatusPending, StatusApproved}

// ValidStatus reports whether s is a recognized booking status.
func ValidStatus(s BookingStatus) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// Booking represents a reservation of one field for one time slot on one day.
// A partial unique index on (field_type, date, time_slot) over the active
// statuses enforces slot exclusivity at the store level; see internal/db.
type Booking struct {
	ID         int64         `gorm:"primaryKey"`
	UserID     int64         `gorm:"index;not null"`
	FieldType  string        `gorm:"size:64;not null;index"`
	Date       time.Time     `gorm:"not null;index"` // date-only, UTC midnight
	TimeSlot   string        `gorm:"size:8;not null"` // "HH:MM" slot start label
	Status     BookingStatus `gorm:"size:16;not null;default:pending;index"`
	ApprovedBy *int64        // set if and only if Status is approved
	CreatedAt  time.Time     `gorm:"not null"`
	UpdatedAt  time.Time     `gorm:"not null"`

	// Associations
	User  User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Admin *User `gorm:"foreignKey:ApprovedBy"`
}
