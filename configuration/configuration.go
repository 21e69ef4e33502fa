package configuration

import (
	"errors"
	"os"
	"strconv"

	"hms-backend/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config holds every knob the process reads at startup. It is built once in
// Load and never mutated afterwards.
type Config struct {
	DSN       string
	JWTSecret string
	RedisAddr string
	SMTPHost  string
	SMTPPort  int
	SMTPEmail string
	SMTPPass  string
	Port      string

	// RevalidateOnUpdate re-runs slot validation when a patient reschedules.
	// Off by default: the update path historically skipped it.
	RevalidateOnUpdate bool
}

// Load reads .env (when present) and the environment. A missing JWT secret is
// a hard error: the process must not start if it cannot issue verifiable tokens.
func Load() (*Config, error) {
	// .env is a local-dev convenience; in deployment the env is already set
	_ = godotenv.Load(".env")

	cfg := &Config{
		DSN:       os.Getenv("DB"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		RedisAddr: os.Getenv("REDIS_ADDR"),
		SMTPHost:  os.Getenv("SMTP_HOST"),
		SMTPEmail: os.Getenv("Email"),
		SMTPPass:  os.Getenv("Password"),
		Port:      os.Getenv("PORT"),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}

	if cfg.RedisAddr == "" {
		cfg.RedisAddr = "localhost:6379"
	}
	if cfg.SMTPHost == "" {
		cfg.SMTPHost = "smtp.gmail.com"
	}
	cfg.SMTPPort = 587
	if p := os.Getenv("SMTP_PORT"); p != "" {
		if n, err := strconv.Atoi(p); err == nil {
			cfg.SMTPPort = n
		}
	}
	if v, err := strconv.ParseBool(os.Getenv("REVALIDATE_ON_UPDATE")); err == nil {
		cfg.RevalidateOnUpdate = v
	}

	return cfg, nil
}

// ConfigDB opens the postgres connection and migrates the schema. The composite
// unique index on appointments is what keeps two concurrent bookings from
// landing on the same doctor/slot.
func ConfigDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.Admin{},
		&models.Doctor{},
		&models.Patient{},
		&models.Appointment{},
		&models.Prescription{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
