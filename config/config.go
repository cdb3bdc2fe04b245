package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Booking    BookingConfig    `yaml:"booking"`
	Reaper     ReaperConfig     `yaml:"reaper"`
	Reports    ReportsConfig    `yaml:"reports"`
	Push       PushConfig       `yaml:"push"`
	WorkerPool WorkerPoolConfig `yaml:"worker_pool"`
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port            int     `yaml:"port"`
	RequestIPHeader string  `yaml:"request_ip_header"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	RateBurst       int     `yaml:"rate_burst"`
	CacheTTLSeconds int     `yaml:"cache_ttl_seconds"`
}

// DatabaseConfig holds the database connection configuration.
type DatabaseConfig struct {
	DSN                    string `yaml:"dsn"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
}

// SeedAdminConfig describes the administrator account created at startup
// when no user with the given email exists yet.
type SeedAdminConfig struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

// AuthConfig holds the token signing configuration.
type AuthConfig struct {
	JWTSecret     string          `yaml:"jwt_secret"`
	TokenTTLHours int             `yaml:"token_ttl_hours"`
	TokenTTL      time.Duration   `yaml:"-"` // Ignored by YAML parser
	SeedAdmin     SeedAdminConfig `yaml:"seed_admin"`
}

// BookingConfig holds booking slot parameters.
type BookingConfig struct {
	SlotDurationMinutes int           `yaml:"slot_duration_minutes"`
	SlotDuration        time.Duration `yaml:"-"` // Ignored by YAML parser
}

// ReaperConfig holds the configuration for the expired-booking sweep.
type ReaperConfig struct {
	Enabled         bool          `yaml:"enabled"`
	IntervalSeconds int           `yaml:"interval_seconds"`
	Interval        time.Duration `yaml:"-"` // Ignored by YAML parser
	Statuses        []string      `yaml:"statuses"`
}

// ReportsConfig holds the report file storage configuration.
type ReportsConfig struct {
	Dir string `yaml:"dir"`
}

// PushConfig holds the VAPID keys for web push notifications.
type PushConfig struct {
	PublicKey  string `yaml:"vapid_public_key"`
	PrivateKey string `yaml:"vapid_private_key"`
	Subject    string `yaml:"subject"`
	TTL        int    `yaml:"ttl"`
}

// WorkerPoolConfig holds the configuration for the notification worker pool.
type WorkerPoolConfig struct {
	Size int `yaml:"size"`
}

// Load reads the configuration from the given path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	if cfg.Auth.TokenTTLHours <= 0 {
		cfg.Auth.TokenTTLHours = 24
	}
	cfg.Auth.TokenTTL = time.Duration(cfg.Auth.TokenTTLHours) * time.Hour

	if cfg.Booking.SlotDurationMinutes <= 0 {
		cfg.Booking.SlotDurationMinutes = 60
	}
	cfg.Booking.SlotDuration = time.Duration(cfg.Booking.SlotDurationMinutes) * time.Minute

	if cfg.Reaper.IntervalSeconds <= 0 {
		cfg.Reaper.IntervalSeconds = 60
	}
	cfg.Reaper.Interval = time.Duration(cfg.Reaper.IntervalSeconds) * time.Second

	// Only approved bookings are reclaimed by default; expired pending
	// bookings are left for staff to reject by hand.
	if len(cfg.Reaper.Statuses) == 0 {
		cfg.Reaper.Statuses = []string{"approved"}
	}

	if cfg.Reports.Dir == "" {
		cfg.Reports.Dir = "./uploads/reports"
	}

	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateBurst <= 0 {
		cfg.Server.RateBurst = 5
	}

	if cfg.Push.TTL <= 0 {
		cfg.Push.TTL = 3600
	}

	if cfg.WorkerPool.Size <= 0 {
		log.Printf("worker_pool.size is not set or invalid; defaulting to 1")
		cfg.WorkerPool.Size = 1
	}

	return &cfg, nil
}
