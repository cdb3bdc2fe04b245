package store

import (
	"time"

	"github.com/irpanzy/sport-area-stp-backend/internal/model"
)

// BookingOrder selects one of the two listing orders. Both are stable
// tie-break orders, never arbitrary.
type BookingOrder int

const (
	// OrderBySchedule sorts by (date asc, time_slot asc) for the
	// administrative overview.
	OrderBySchedule BookingOrder = iota
	// OrderByRecent sorts by (date desc, created_at desc) for a user's
	// personal listing.
	OrderByRecent
)

// BookingFilter narrows a booking listing. Zero values mean "no filter".
type BookingFilter struct {
	UserID    int64
	Status    model.BookingStatus
	FieldType string
	Date      *time.Time // matches the whole calendar day
}

// BookingUpdate enumerates the fields the administrative update may touch.
// Nil means "leave unchanged". This update bypasses the conflict check;
// it is a trusted override.
type BookingUpdate struct {
	FieldType *string
	Date      *time.Time
	TimeSlot  *string
	Status    *model.BookingStatus
}

// UserUpdate enumerates the fields the administrative user update may touch.
type UserUpdate struct {
	Name     *string
	Email    *string
	Password *string // already hashed by the caller
	Role     *string
}
