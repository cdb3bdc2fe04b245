package db

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/irpanzy/sport-area-stp-backend/config"
	"github.com/irpanzy/sport-area-stp-backend/internal/auth"
	"github.com/irpanzy/sport-area-stp-backend/internal/model"
)

// Init initializes the database connection and runs migrations.
func Init(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)

	log.Println("Running database migrations...")
	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database initialization complete.")
	return db, nil
}

// Migrate runs the schema migrations and applies the booking slot DDL.
// Exposed so tests can run the same schema against an in-memory database.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Booking{},
		&model.Report{},
		&model.PushSubscription{},
	); err != nil {
		return fmt.Errorf("automigrate failed: %w", err)
	}
	return applyBookingDDL(db)
}

// applyBookingDDL installs the partial unique index that makes slot
// exclusivity a store-level guarantee: at most one pending-or-approved
// booking per (field_type, date, time_slot). Rejected rows stay out of the
// index so they can pile up as history.
func applyBookingDDL(db *gorm.DB) error {
	ddl := "CREATE UNIQUE INDEX IF NOT EXISTS uniq_active_booking_slot " +
		"ON bookings (field_type, date, time_slot) " +
		"WHERE status IN ('pending','approved')"
	if err := db.Exec(ddl).Error; err != nil {
		return fmt.Errorf("DDL failed on %q: %w", ddl, err)
	}
	return nil
}

// SeedAdmin ensures the configured administrator account exists. Does
// nothing when no seed admin is configured or the email is already taken.
func SeedAdmin(db *gorm.DB, seed *config.SeedAdminConfig) error {
	if seed.Email == "" {
		return nil
	}

	err := db.First(&model.User{}, "email = ?", seed.Email).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for seed admin: %w", err)
	}

	hash, err := auth.HashPassword(seed.Password)
	if err != nil {
		return fmt.Errorf("failed to hash seed admin password: %w", err)
	}

	admin := model.User{
		Name:     seed.Name,
		Email:    seed.Email,
		Password: hash,
		Role:     model.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create seed admin: %w", err)
	}
	log.Printf("Seed admin %q created", seed.Email)
	return nil
}
