package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/irpanzy/sport-area-stp-backend/internal/model"
)

// CreateReport records a generated report file. The unique index on
// booking_id makes a second report for the same booking a deterministic
// ErrReportExists.
func (s *gormStore) CreateReport(ctx context.Context, r *model.Report) error {
	if err := s.db.WithContext(ctx).Create(r).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrReportExists
		}
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

func (s *gormStore) ReportByID(ctx context.Context, id int64) (*model.Report, error) {
	var report model.Report
	err := s.db.WithContext(ctx).
		Preload("Booking").
		Preload("Booking.User").
		Preload("Booking.Admin").
		First(&report, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to fetch report %d: %w", id, err)
	}
	return &report, nil
}

func (s *gormStore) ReportByBookingID(ctx context.Context, bookingID int64) (*model.Report, error) {
	var report model.Report
	err := s.db.WithContext(ctx).First(&report, "booking_id = ?", bookingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to fetch report for booking %d: %w", bookingID, err)
	}
	return &report, nil
}

func (s *gormStore) ListReports(ctx context.Context, bookingID *int64) ([]model.Report, error) {
	q := s.db.WithContext(ctx).Model(&model.Report{}).
		Preload("Booking").
		Preload("Booking.User").
		Preload("Booking.Admin").
		Order("generated_at DESC")
	if bookingID != nil {
		q = q.Where("booking_id = ?", *bookingID)
	}

	var reports []model.Report
	if err := q.Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}

// ReportsByUser lists reports belonging to bookings owned by the given user.
func (s *gormStore) ReportsByUser(ctx context.Context, userID int64) ([]model.Report, error) {
	var reports []model.Report
	err := s.db.WithContext(ctx).Model(&model.Report{}).
		Joins("JOIN bookings ON bookings.id = reports.booking_id").
		Where("bookings.user_id = ?", userID).
		Preload("Booking").
		Order("generated_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reports for user %d: %w", userID, err)
	}
	return reports, nil
}

func (s *gormStore) DeleteReport(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&model.Report{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete report %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrReportNotFound
	}
	return nil
}
