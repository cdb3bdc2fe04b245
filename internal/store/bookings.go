package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/irpanzy/sport-area-stp-backend/internal/model"
	"github.com/irpanzy/sport-area-stp-backend/internal/parse"
)

// activeSlotTaken reports whether an active (pending or approved) booking
// already occupies the exact (field_type, date, time_slot) tuple.
func activeSlotTaken(tx *gorm.DB, fieldType string, date time.Time, timeSlot string) (bool, error) {
	var n int64
	err := tx.Model(&model.Booking{}).
		Where("field_type = ? AND date = ? AND time_slot = ? AND status IN ?",
			fieldType, date, timeSlot, model.ActiveStatuses).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("conflict check failed: %w", err)
	}
	return n > 0, nil
}

// ActiveSlotTaken is the read-only conflict check. Creation does not call
// this from outside the transaction; see CreateBooking.
func (s *gormStore) ActiveSlotTaken(ctx context.Context, fieldType string, date time.Time, timeSlot string) (bool, error) {
	return activeSlotTaken(s.db.WithContext(ctx), fieldType, date, timeSlot)
}

// CreateBooking inserts a new pending booking after verifying the slot is
// free. Check and insert run in one transaction, and the partial unique
// index over active statuses turns any remaining race into a deterministic
// rejection, so two concurrent requests for the same slot can never both
// succeed.
func (s *gormStore) CreateBooking(ctx context.Context, userID int64, fieldType string, date time.Time, timeSlot string) (*model.Booking, error) {
	booking := &model.Booking{
		UserID:    userID,
		FieldType: fieldType,
		Date:      parse.NormalizeDate(date),
		TimeSlot:  timeSlot,
		Status:    model.StatusPending,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := activeSlotTaken(tx, booking.FieldType, booking.Date, booking.TimeSlot)
		if err != nil {
			return err
		}
		if taken {
			return ErrSlotUnavailable
		}
		return tx.Create(booking).Error
	})
	if err != nil {
		if errors.Is(err, ErrSlotUnavailable) || errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlotUnavailable
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	return s.BookingByID(ctx, booking.ID)
}

// BookingByID returns a booking with its owner and approver loaded.
func (s *gormStore) BookingByID(ctx context.Context, id int64) (*model.Booking, error) {
	var booking model.Booking
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("Admin").
		First(&booking, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking %d: %w", id, err)
	}
	return &booking, nil
}

// ListBookings returns bookings matching the filter in the requested order.
func (s *gormStore) ListBookings(ctx context.Context, filter BookingFilter, order BookingOrder) ([]model.Booking, error) {
	q := s.db.WithContext(ctx).Model(&model.Booking{}).
		Preload("User").
		Preload("Admin")

	if filter.UserID != 0 {
		q = q.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.FieldType != "" {
		q = q.Where("field_type = ?", filter.FieldType)
	}
	if filter.Date != nil {
		day := parse.NormalizeDate(*filter.Date)
		q = q.Where("date >= ? AND date < ?", day, day.Add(24*time.Hour))
	}

	switch order {
	case OrderByRecent:
		q = q.Order("date DESC, created_at DESC")
	default:
		q = q.Order("date ASC, time_slot ASC")
	}

	var bookings []model.Booking
	if err := q.Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// UpdateBookingStatus decides a pending booking. Approval records the
// approver; rejection clears it. Deciding an already-decided booking fails
// with ErrBookingNotPending. The conflict check is not re-run here: the
// slot invariant is maintained at creation time only.
func (s *gormStore) UpdateBookingStatus(ctx context.Context, id int64, status model.BookingStatus, approverID int64) (*model.Booking, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var booking model.Booking
		if err := tx.First(&booking, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		if booking.Status != model.StatusPending {
			return ErrBookingNotPending
		}

		booking.Status = status
		if status == model.StatusApproved {
			booking.ApprovedBy = &approverID
		} else {
			booking.ApprovedBy = nil
		}
		return tx.Save(&booking).Error
	})
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) || errors.Is(err, ErrBookingNotPending) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update booking %d status: %w", id, err)
	}

	return s.BookingByID(ctx, id)
}

// UpdateBooking applies an administrative partial update. It does not
// re-check conflicts; the caller is trusted to preserve the slot invariant.
// The approver field follows any status change so that it stays set exactly
// when the booking is approved.
func (s *gormStore) UpdateBooking(ctx context.Context, id int64, upd BookingUpdate, adminID int64) (*model.Booking, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var booking model.Booking
		if err := tx.First(&booking, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		if upd.FieldType != nil {
			booking.FieldType = *upd.FieldType
		}
		if upd.Date != nil {
			booking.Date = parse.NormalizeDate(*upd.Date)
		}
		if upd.TimeSlot != nil {
			booking.TimeSlot = *upd.TimeSlot
		}
		if upd.Status != nil {
			booking.Status = *upd.Status
			if booking.Status == model.StatusApproved {
				booking.ApprovedBy = &adminID
			} else {
				booking.ApprovedBy = nil
			}
		}
		return tx.Save(&booking).Error
	})
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			return nil, err
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlotUnavailable
		}
		return nil, fmt.Errorf("failed to update booking %d: %w", id, err)
	}

	return s.BookingByID(ctx, id)
}

// DeleteBooking removes a booking unconditionally.
func (s *gormStore) DeleteBooking(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&model.Booking{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete booking %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// ExpiredBookings returns reap candidates: bookings dated up to now whose
// status is in the reclaimable set. The caller still has to compare each
// candidate's effective end instant against now before deleting.
func (s *gormStore) ExpiredBookings(ctx context.Context, now time.Time, statuses []model.BookingStatus) ([]model.Booking, error) {
	var bookings []model.Booking
	err := s.db.WithContext(ctx).
		Where("date <= ? AND status IN ?", now, statuses).
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch expired booking candidates: %w", err)
	}
	return bookings, nil
}

// TakenSlots lists the slot labels already occupied by active bookings for
// one field on one day.
func (s *gormStore) TakenSlots(ctx context.Context, fieldType string, date time.Time) ([]string, error) {
	day := parse.NormalizeDate(date)
	var slots []string
	err := s.db.WithContext(ctx).Model(&model.Booking{}).
		Where("field_type = ? AND date = ? AND status IN ?", fieldType, day, model.ActiveStatuses).
		Order("time_slot ASC").
		Pluck("time_slot", &slots).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list taken slots: %w", err)
	}
	return slots, nil
}
