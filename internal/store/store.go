package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/irpanzy/sport-area-stp-backend/internal/model"
)

// Store defines the interface for all database operations.
type Store interface {
	DB() *gorm.DB

	// Bookings
	CreateBooking(ctx context.Context, userID int64, fieldType string, date time.Time, timeSlot string) (*model.Booking, error)
	ActiveSlotTaken(ctx context.Context, fieldType string, date time.Time, timeSlot string) (bool, error)
	BookingByID(ctx context.Context, id int64) (*model.Booking, error)
	ListBookings(ctx context.Context, filter BookingFilter, order BookingOrder) ([]model.Booking, error)
	UpdateBookingStatus(ctx context.Context, id int64, status model.BookingStatus, approverID int64) (*model.Booking, error)
	UpdateBooking(ctx context.Context, id int64, upd BookingUpdate, adminID int64) (*model.Booking, error)
	DeleteBooking(ctx context.Context, id int64) error
	ExpiredBookings(ctx context.Context, now time.Time, statuses []model.BookingStatus) ([]model.Booking, error)
	TakenSlots(ctx context.Context, fieldType string, date time.Time) ([]string, error)

	// Users
	CreateUser(ctx context.Context, u *model.User) error
	UserByEmail(ctx context.Context, email string) (*model.User, error)
	UserByID(ctx context.Context, id int64) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, id int64, upd UserUpdate) (*model.User, error)
	DeleteUser(ctx context.Context, id int64) error

	// Reports
	CreateReport(ctx context.Context, r *model.Report) error
	ReportByID(ctx context.Context, id int64) (*model.Report, error)
	ReportByBookingID(ctx context.Context, bookingID int64) (*model.Report, error)
	ListReports(ctx context.Context, bookingID *int64) ([]model.Report, error)
	ReportsByUser(ctx context.Context, userID int64) ([]model.Report, error)
	DeleteReport(ctx context.Context, id int64) error

	// Push subscriptions
	UpsertSubscription(ctx context.Context, sub *model.PushSubscription) error
	SubscriptionByEndpoint(ctx context.Context, endpoint string) (*model.PushSubscription, error)
	SubscriptionsByUser(ctx context.Context, userID int64) ([]model.PushSubscription, error)
	DeleteSubscription(ctx context.Context, endpoint string) error
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// DB exposes the underlying handle for collaborators that run their own
// queries (notification workers, migrations in tests).
func (s *gormStore) DB() *gorm.DB {
	return s.db
}
