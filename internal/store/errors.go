package store

import "errors"

var (
	// ErrSlotUnavailable is returned when a create finds an active booking
	// already holding the requested field/date/time-slot tuple.
	ErrSlotUnavailable = errors.New("time slot is no longer available")

	// ErrBookingNotPending is returned when a status decision is attempted
	// on a booking that has already been decided.
	ErrBookingNotPending = errors.New("booking has already been decided")

	ErrBookingNotFound = errors.New("booking not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrReportNotFound  = errors.New("report not found")

	// ErrEmailTaken is returned when registering with an email that already
	// belongs to an account.
	ErrEmailTaken = errors.New("email is already registered")

	// ErrReportExists is returned when a report was already generated for
	// the booking.
	ErrReportExists = errors.New("report already exists for this booking")
)
