package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName string
	AppEnv  string
	AppURL  string
	Port    string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string

	// Sessions
	SessionSecret string
	SessionExpiry time.Duration

	// Role passwords (shared secrets; bcrypt hashes accepted, see service.Authenticator)
	TrainerPassword string
	AdminPassword   string

	// Email
	EmailProvider string // "log", "resend" or "smtp"
	EmailFrom     string
	TrainerEmail  string // recipient for entry alert notifications
	ResendAPIKey  string
	SMTPHost      string
	SMTPPort      int
	SMTPUser      string
	SMTPPassword  string

	// Observability (optional)
	SentryDSN string

	// Storage (S3-compatible: MinIO, AWS S3, Cloudflare R2, etc.)
	S3Region               string
	S3Bucket               string
	S3AccessKey            string
	S3SecretKey            string
	S3Endpoint             string        // Optional: for S3-compatible services
	S3PresignExpiryPublic  time.Duration // Expiry for public files (entry images, horse photos)
	S3PresignExpiryPrivate time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName: envString("APP_NAME", "Stablebook"),
		AppEnv:  envRequired("APP_ENV"), // Required: 'development' or 'production'
		AppURL:  envString("APP_URL", "http://localhost:8090"),
		Port:    envString("PORT", "8090"),

		// Database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/stablebook.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),

		// Sessions
		SessionSecret: envRequired("SESSION_SECRET"),
		SessionExpiry: envDuration("SESSION_EXPIRY", 168*time.Hour), // 7 days

		// Role passwords
		TrainerPassword: envString("TRAINER_PASSWORD", "michelle"),
		AdminPassword:   envString("ADMIN_PASSWORD", "admin"),

		// Email (provider "log" writes sends to the log instead of delivering)
		EmailProvider: envString("EMAIL_PROVIDER", "log"),
		EmailFrom:     envString("EMAIL_FROM", "noreply@example.com"),
		TrainerEmail:  envString("TRAINER_EMAIL", "michellelabarre@yahoo.com"),
		ResendAPIKey:  envString("RESEND_API_KEY", ""),
		SMTPHost:      envString("SMTP_HOST", ""),
		SMTPPort:      envInt("SMTP_PORT", 587),
		SMTPUser:      envString("SMTP_USER", ""),
		SMTPPassword:  envString("SMTP_PASSWORD", ""),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),

		// Storage (S3-compatible - required for image uploads)
		S3Region:               envRequired("S3_REGION"),
		S3Bucket:               envRequired("S3_BUCKET"),
		S3AccessKey:            envRequired("S3_ACCESS_KEY"),
		S3SecretKey:            envRequired("S3_SECRET_KEY"),
		S3Endpoint:             envString("S3_ENDPOINT", ""), // Optional: for non-AWS providers
		S3PresignExpiryPublic:  envDuration("S3_PRESIGN_EXPIRY_PUBLIC", 168*time.Hour),
		S3PresignExpiryPrivate: envDuration("S3_PRESIGN_EXPIRY_PRIVATE", 1*time.Hour),
	}

	// Production: validate required services
	if cfg.IsProduction() {
		validateProduction(cfg)
	}

	return cfg
}

// validateProduction ensures all required services are configured for
// production deployments. Development allows the email log mode and the
// default shared passwords for easier local testing.
func validateProduction(cfg *Config) {
	if cfg.EmailProvider == "log" {
		slog.Error("production deployment requires a real email provider",
			"hint", "set EMAIL_PROVIDER=resend or EMAIL_PROVIDER=smtp")
		os.Exit(1)
	}
	if cfg.EmailProvider == "resend" && cfg.ResendAPIKey == "" {
		slog.Error("production deployment requires RESEND_API_KEY")
		os.Exit(1)
	}
	if cfg.EmailProvider == "smtp" && cfg.SMTPHost == "" {
		slog.Error("production deployment requires SMTP_HOST")
		os.Exit(1)
	}
	if cfg.TrainerPassword == "michelle" || cfg.AdminPassword == "admin" {
		slog.Error("production deployment requires non-default TRAINER_PASSWORD and ADMIN_PASSWORD")
		os.Exit(1)
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Sanitized returns a copy of the config with only public/safe fields.
// Secrets and credentials are excluded. Safe to expose in ctx and templates.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName: c.AppName,
		AppEnv:  c.AppEnv,
		AppURL:  c.AppURL,
		Port:    c.Port,

		EmailFrom:    c.EmailFrom,
		TrainerEmail: c.TrainerEmail,

		S3Endpoint: c.S3Endpoint,
	}
}
